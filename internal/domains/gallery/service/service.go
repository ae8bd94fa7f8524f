package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"nihom/infras/otel"
	"nihom/internal/domains/gallery/model"
	"nihom/internal/domains/gallery/model/dto"
	"nihom/internal/domains/gallery/repository"
	"nihom/shared"
	"nihom/shared/constant"
	gDto "nihom/shared/dto"
	"nihom/shared/failure"
)

type Gallery interface {
	Create(ctx context.Context, req dto.CreateGalleryImageRequest) (dto.GalleryImageResponse, error)
	GetAll(ctx context.Context, activeOnly bool) ([]dto.GalleryImageResponse, error)
	Get(ctx context.Context, id int64) (dto.GalleryImageResponse, error)
	Update(ctx context.Context, req dto.UpdateGalleryImageRequest, id int64) error
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo repository.Gallery
	otel otel.Otel
}

func New(repo repository.Gallery, otel otel.Otel) Gallery {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateGalleryImageRequest) (res dto.GalleryImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateGalleryImage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	image := req.ToModel()

	id, err := s.repo.Insert(ctx, image)
	if err != nil {
		log.Error().Err(err).Msg("failed to create gallery image")

		return res, err
	}

	image.ID = id
	res.FromModel(image)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, activeOnly bool) (res []dto.GalleryImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllGalleryImages")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.FilterGroup{}
	if activeOnly {
		filter = shared.FilterByActive(model.FieldIsActive, model.TableName)
	}

	images, err := s.repo.GetAll(ctx, gDto.OrderedBy(model.FieldDisplayOrder), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get all gallery images")

		return res, err
	}

	return dto.GalleryImageResponsesFromModels(images), nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.GalleryImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetGalleryImage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	image, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get gallery image")

		return res, err
	}

	if image.ID == 0 {
		return res, failure.NotFound("Image not found")
	}

	res.FromModel(image)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateGalleryImageRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateGalleryImage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to check gallery image")

		return err
	}

	if !exist {
		return failure.NotFound("Image not found")
	}

	if err = s.repo.Update(ctx, req.ToFieldMap(), filter); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update gallery image")

		return err
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteGalleryImage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to check gallery image")

		return err
	}

	if !exist {
		return failure.NotFound("Image not found")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to delete gallery image")

		return err
	}

	return nil
}
