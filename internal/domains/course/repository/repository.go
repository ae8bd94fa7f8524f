package repository

import (
	"context"

	"nihom/infras/otel"
	"nihom/infras/sqlite"
	"nihom/internal/domains/course/model"
	gDto "nihom/shared/dto"
	gRepo "nihom/shared/repository"
)

type Course interface {
	Get(ctx context.Context, filter gDto.FilterGroup) (model.Course, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Course, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, fields map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Course]
}

func New(db *sqlite.Connection, otel otel.Otel) Course {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Course](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
