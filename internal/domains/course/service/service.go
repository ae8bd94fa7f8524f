package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"nihom/infras/otel"
	"nihom/internal/domains/course/model"
	"nihom/internal/domains/course/model/dto"
	"nihom/internal/domains/course/repository"
	"nihom/shared"
	"nihom/shared/constant"
	gDto "nihom/shared/dto"
	"nihom/shared/failure"
)

type Course interface {
	GetAll(ctx context.Context, activeOnly bool) ([]dto.CourseResponse, error)
	Get(ctx context.Context, id int64) (dto.CourseResponse, error)
	Update(ctx context.Context, req dto.UpdateCourseRequest, id int64) error
}

type serviceImpl struct {
	repo repository.Course
	otel otel.Otel
}

func New(repo repository.Course, otel otel.Otel) Course {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// GetAll lists courses ordered by display position. The public site passes
// activeOnly; the admin panel sees hidden courses too.
func (s *serviceImpl) GetAll(ctx context.Context, activeOnly bool) (res []dto.CourseResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllCourses")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.FilterGroup{}
	if activeOnly {
		filter = shared.FilterByActive(model.FieldIsActive, model.TableName)
	}

	courses, err := s.repo.GetAll(ctx, gDto.OrderedBy(model.FieldDisplayOrder), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get all courses")

		return res, err
	}

	return dto.CourseResponsesFromModels(courses), nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.CourseResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCourse")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	course, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get course")

		return res, err
	}

	if course.ID == 0 {
		return res, failure.NotFound("Course not found")
	}

	res.FromModel(course)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCourseRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateCourse")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to check course")

		return err
	}

	if !exist {
		return failure.NotFound("Course not found")
	}

	if err = s.repo.Update(ctx, req.ToFieldMap(), filter); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update course")

		return err
	}

	return nil
}
