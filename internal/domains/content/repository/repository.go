package repository

import (
	"context"

	"nihom/infras/otel"
	"nihom/infras/sqlite"
	"nihom/internal/domains/content/model"
	gDto "nihom/shared/dto"
	gRepo "nihom/shared/repository"
)

// Content bundles the four singleton tables behind one store interface.
// Gets read the single row; updates address it by id.
type Content interface {
	GetHero(ctx context.Context) (model.HeroContent, error)
	UpdateHero(ctx context.Context, fields map[string]any, filter gDto.FilterGroup) error
	GetAbout(ctx context.Context) (model.AboutContent, error)
	UpdateAbout(ctx context.Context, fields map[string]any, filter gDto.FilterGroup) error
	GetMissionVision(ctx context.Context) (model.MissionVision, error)
	UpdateMissionVision(ctx context.Context, fields map[string]any, filter gDto.FilterGroup) error
	GetContact(ctx context.Context) (model.ContactInfo, error)
	UpdateContact(ctx context.Context, fields map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	hero          gRepo.Repository[model.HeroContent]
	about         gRepo.Repository[model.AboutContent]
	missionVision gRepo.Repository[model.MissionVision]
	contact       gRepo.Repository[model.ContactInfo]
}

func New(db *sqlite.Connection, otel otel.Otel) Content {
	return &repositoryImpl{
		hero:          gRepo.NewRepository[model.HeroContent](model.HeroEntityName, model.HeroTableName, model.FieldID, db, otel),
		about:         gRepo.NewRepository[model.AboutContent](model.AboutEntityName, model.AboutTableName, model.FieldID, db, otel),
		missionVision: gRepo.NewRepository[model.MissionVision](model.MissionVisionEntityName, model.MissionVisionTableName, model.FieldID, db, otel),
		contact:       gRepo.NewRepository[model.ContactInfo](model.ContactEntityName, model.ContactTableName, model.FieldID, db, otel),
	}
}

func (r *repositoryImpl) GetHero(ctx context.Context) (model.HeroContent, error) {
	return r.hero.Get(ctx, gDto.FilterGroup{})
}

func (r *repositoryImpl) UpdateHero(ctx context.Context, fields map[string]any, filter gDto.FilterGroup) error {
	return r.hero.Update(ctx, fields, filter)
}

func (r *repositoryImpl) GetAbout(ctx context.Context) (model.AboutContent, error) {
	return r.about.Get(ctx, gDto.FilterGroup{})
}

func (r *repositoryImpl) UpdateAbout(ctx context.Context, fields map[string]any, filter gDto.FilterGroup) error {
	return r.about.Update(ctx, fields, filter)
}

func (r *repositoryImpl) GetMissionVision(ctx context.Context) (model.MissionVision, error) {
	return r.missionVision.Get(ctx, gDto.FilterGroup{})
}

func (r *repositoryImpl) UpdateMissionVision(ctx context.Context, fields map[string]any, filter gDto.FilterGroup) error {
	return r.missionVision.Update(ctx, fields, filter)
}

func (r *repositoryImpl) GetContact(ctx context.Context) (model.ContactInfo, error) {
	return r.contact.Get(ctx, gDto.FilterGroup{})
}

func (r *repositoryImpl) UpdateContact(ctx context.Context, fields map[string]any, filter gDto.FilterGroup) error {
	return r.contact.Update(ctx, fields, filter)
}
