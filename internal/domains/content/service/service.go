package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"nihom/infras/otel"
	"nihom/internal/domains/content/model"
	"nihom/internal/domains/content/model/dto"
	"nihom/internal/domains/content/repository"
	"nihom/shared"
	"nihom/shared/constant"
	"nihom/shared/failure"
)

type Content interface {
	GetHero(ctx context.Context) (dto.HeroResponse, error)
	UpdateHero(ctx context.Context, req dto.UpdateHeroRequest) error
	GetAbout(ctx context.Context) (dto.AboutResponse, error)
	UpdateAbout(ctx context.Context, req dto.UpdateAboutRequest) error
	GetMissionVision(ctx context.Context) (dto.MissionVisionResponse, error)
	UpdateMissionVision(ctx context.Context, req dto.UpdateMissionVisionRequest) error
	GetContact(ctx context.Context) (dto.ContactResponse, error)
	UpdateContact(ctx context.Context, req dto.UpdateContactRequest) error
}

type serviceImpl struct {
	repo repository.Content
	otel otel.Otel
}

func New(repo repository.Content, otel otel.Otel) Content {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) GetHero(ctx context.Context) (res dto.HeroResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetHero")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	hero, err := s.repo.GetHero(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hero content")

		return res, err
	}

	if hero.ID == 0 {
		return res, failure.NotFound("Hero content not found")
	}

	res.FromModel(hero)

	return res, nil
}

func (s *serviceImpl) UpdateHero(ctx context.Context, req dto.UpdateHeroRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateHero")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	hero, err := s.repo.GetHero(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hero content")

		return err
	}

	if hero.ID == 0 {
		return failure.NotFound("Hero content not found")
	}

	filter := shared.FilterByID(hero.ID, model.FieldID, model.HeroTableName)
	if err = s.repo.UpdateHero(ctx, req.ToFieldMap(), filter); err != nil {
		log.Error().Err(err).Msg("failed to update hero content")

		return err
	}

	return nil
}

func (s *serviceImpl) GetAbout(ctx context.Context) (res dto.AboutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAbout")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	about, err := s.repo.GetAbout(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get about content")

		return res, err
	}

	if about.ID == 0 {
		return res, failure.NotFound("About content not found")
	}

	res.FromModel(about)

	return res, nil
}

func (s *serviceImpl) UpdateAbout(ctx context.Context, req dto.UpdateAboutRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateAbout")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	about, err := s.repo.GetAbout(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get about content")

		return err
	}

	if about.ID == 0 {
		return failure.NotFound("About content not found")
	}

	filter := shared.FilterByID(about.ID, model.FieldID, model.AboutTableName)
	if err = s.repo.UpdateAbout(ctx, req.ToFieldMap(), filter); err != nil {
		log.Error().Err(err).Msg("failed to update about content")

		return err
	}

	return nil
}

func (s *serviceImpl) GetMissionVision(ctx context.Context) (res dto.MissionVisionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMissionVision")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	missionVision, err := s.repo.GetMissionVision(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get mission/vision")

		return res, err
	}

	if missionVision.ID == 0 {
		return res, failure.NotFound("Mission/Vision not found")
	}

	res.FromModel(missionVision)

	return res, nil
}

func (s *serviceImpl) UpdateMissionVision(ctx context.Context, req dto.UpdateMissionVisionRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateMissionVision")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	missionVision, err := s.repo.GetMissionVision(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get mission/vision")

		return err
	}

	if missionVision.ID == 0 {
		return failure.NotFound("Mission/Vision not found")
	}

	filter := shared.FilterByID(missionVision.ID, model.FieldID, model.MissionVisionTableName)
	if err = s.repo.UpdateMissionVision(ctx, req.ToFieldMap(), filter); err != nil {
		log.Error().Err(err).Msg("failed to update mission/vision")

		return err
	}

	return nil
}

func (s *serviceImpl) GetContact(ctx context.Context) (res dto.ContactResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetContact")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	contact, err := s.repo.GetContact(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get contact info")

		return res, err
	}

	if contact.ID == 0 {
		return res, failure.NotFound("Contact info not found")
	}

	res.FromModel(contact)

	return res, nil
}

func (s *serviceImpl) UpdateContact(ctx context.Context, req dto.UpdateContactRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateContact")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	contact, err := s.repo.GetContact(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get contact info")

		return err
	}

	if contact.ID == 0 {
		return failure.NotFound("Contact info not found")
	}

	filter := shared.FilterByID(contact.ID, model.FieldID, model.ContactTableName)
	if err = s.repo.UpdateContact(ctx, req.ToFieldMap(), filter); err != nil {
		log.Error().Err(err).Msg("failed to update contact info")

		return err
	}

	return nil
}
