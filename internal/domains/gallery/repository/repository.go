package repository

import (
	"context"

	"nihom/infras/otel"
	"nihom/infras/sqlite"
	"nihom/internal/domains/gallery/model"
	gDto "nihom/shared/dto"
	gRepo "nihom/shared/repository"
)

type Gallery interface {
	Insert(ctx context.Context, model model.GalleryImage) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup) (model.GalleryImage, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.GalleryImage, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, fields map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.GalleryImage]
}

func New(db *sqlite.Connection, otel otel.Otel) Gallery {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.GalleryImage](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
