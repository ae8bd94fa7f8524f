package repository

import (
	"context"

	"nihom/infras/otel"
	"nihom/infras/sqlite"
	"nihom/internal/domains/admin/model"
	gDto "nihom/shared/dto"
	gRepo "nihom/shared/repository"
)

type Admin interface {
	GetByUsername(ctx context.Context, username string) (model.AdminUser, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.AdminUser]
}

func New(db *sqlite.Connection, otel otel.Otel) Admin {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.AdminUser](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func (r *repositoryImpl) GetByUsername(ctx context.Context, username string) (model.AdminUser, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUsername,
				Value:    username,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	return r.Get(ctx, filter)
}
