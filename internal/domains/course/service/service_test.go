package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nihom/config"
	"nihom/infras/otel/mocks"
	"nihom/infras/sqlite"
	"nihom/internal/domains/course/model/dto"
	"nihom/internal/domains/course/repository"
	"nihom/shared/failure"
)

func setupService(t *testing.T) Course {
	t.Helper()

	conn, err := sqlite.Open(":memory:", 5000)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
	})

	cfg := &config.Config{}
	cfg.Admin.Username = "admin"
	cfg.Admin.Password = "admin123"
	cfg.Admin.Email = "admin@example.com"
	require.NoError(t, conn.EnsureSeedData(cfg))

	otl := mocks.NewOtel()

	return New(repository.New(conn, otl), otl)
}

func TestGetAllOrdered(t *testing.T) {
	svc := setupService(t)

	courses, err := svc.GetAll(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, courses, 3)

	for i := 1; i < len(courses); i++ {
		assert.LessOrEqual(t, courses[i-1].DisplayOrder, courses[i].DisplayOrder)
	}

	assert.Equal(t, "bakery-pastry", courses[0].Slug)
	assert.Equal(t, "food-beverage-production", courses[1].Slug)
	assert.Equal(t, "food-beverage-service", courses[2].Slug)
}

func TestGetAllIdempotent(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	first, err := svc.GetAll(ctx, false)
	require.NoError(t, err)

	second, err := svc.GetAll(ctx, false)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGetByID(t *testing.T) {
	svc := setupService(t)

	course, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), course.ID)
	assert.Equal(t, "bakery-pastry", course.Slug)
	assert.True(t, course.IsActive)
}

func TestGetMissingID(t *testing.T) {
	svc := setupService(t)

	_, err := svc.Get(context.Background(), 999)
	assert.True(t, failure.IsNotFound(err))
}

func TestUpdateRoundTrip(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	req := dto.UpdateCourseRequest{
		Title:            "Advanced Pastry",
		ShortDescription: "Updated description",
		ImageURL:         "uploads/new-image.jpg",
		IsActive:         true,
		DisplayOrder:     5,
	}

	require.NoError(t, svc.Update(ctx, req, 1))

	course, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, req.Title, course.Title)
	assert.Equal(t, req.ShortDescription, course.ShortDescription)
	assert.Equal(t, req.ImageURL, course.ImageURL)
	assert.Equal(t, req.DisplayOrder, course.DisplayOrder)
	assert.Equal(t, "bakery-pastry", course.Slug, "slug stays immutable")
}

func TestUpdateMissingID(t *testing.T) {
	svc := setupService(t)

	err := svc.Update(context.Background(), dto.UpdateCourseRequest{
		Title:            "t",
		ShortDescription: "d",
		ImageURL:         "u",
	}, 999)
	assert.True(t, failure.IsNotFound(err))
}

func TestDeactivationHidesFromPublicList(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	active, err := svc.GetAll(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 3)

	first, err := svc.Get(ctx, 1)
	require.NoError(t, err)

	require.NoError(t, svc.Update(ctx, dto.UpdateCourseRequest{
		Title:            first.Title,
		ShortDescription: first.ShortDescription,
		ImageURL:         first.ImageURL,
		IsActive:         false,
		DisplayOrder:     first.DisplayOrder,
	}, first.ID))

	active, err = svc.GetAll(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "food-beverage-production", active[0].Slug)
	assert.Equal(t, "food-beverage-service", active[1].Slug)

	all, err := svc.GetAll(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 3, "admin list keeps hidden rows")
}
