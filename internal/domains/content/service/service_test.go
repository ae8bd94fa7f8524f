package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nihom/config"
	"nihom/infras/otel/mocks"
	"nihom/infras/sqlite"
	"nihom/internal/domains/content/model/dto"
	"nihom/internal/domains/content/repository"
	"nihom/shared/failure"
)

func setupService(t *testing.T, seed bool) Content {
	t.Helper()

	conn, err := sqlite.Open(":memory:", 5000)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
	})

	if seed {
		cfg := &config.Config{}
		cfg.Admin.Username = "admin"
		cfg.Admin.Password = "admin123"
		cfg.Admin.Email = "admin@example.com"
		require.NoError(t, conn.EnsureSeedData(cfg))
	}

	otl := mocks.NewOtel()

	return New(repository.New(conn, otl), otl)
}

func TestSingletonsBeforeSeed(t *testing.T) {
	svc := setupService(t, false)
	ctx := context.Background()

	_, err := svc.GetHero(ctx)
	assert.True(t, failure.IsNotFound(err))

	_, err = svc.GetAbout(ctx)
	assert.True(t, failure.IsNotFound(err))

	_, err = svc.GetMissionVision(ctx)
	assert.True(t, failure.IsNotFound(err))

	_, err = svc.GetContact(ctx)
	assert.True(t, failure.IsNotFound(err))
}

func TestSingletonsAfterSeed(t *testing.T) {
	svc := setupService(t, true)
	ctx := context.Background()

	hero, err := svc.GetHero(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Since 2020 | Bangladesh Navy", hero.BadgeText)
	assert.Equal(t, "Navy Institute of", hero.TitleLine1)
	assert.Equal(t, 500, hero.StatStudents)

	about, err := svc.GetAbout(ctx)
	require.NoError(t, err)
	assert.Equal(t, "About Us", about.SectionTag)

	missionVision, err := svc.GetMissionVision(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, missionVision.MissionText)
	assert.NotEmpty(t, missionVision.VisionText)

	contact, err := svc.GetContact(ctx)
	require.NoError(t, err)
	assert.Equal(t, "info@nihom.edu.bd", contact.Email)
}

func TestUpdateHeroRoundTrip(t *testing.T) {
	svc := setupService(t, true)
	ctx := context.Background()

	req := dto.UpdateHeroRequest{
		BadgeText:     "New badge",
		TitleLine1:    "First line",
		TitleLine2:    "Second line",
		SubtitleWord1: "one",
		SubtitleWord2: "two",
		SubtitleWord3: "three",
		Description:   "Updated description",
		StatStudents:  700,
		StatPrograms:  4,
		StatFaculty:   60,
	}

	require.NoError(t, svc.UpdateHero(ctx, req))

	hero, err := svc.GetHero(ctx)
	require.NoError(t, err)
	assert.Equal(t, req.BadgeText, hero.BadgeText)
	assert.Equal(t, req.Description, hero.Description)
	assert.Equal(t, req.StatStudents, hero.StatStudents)
	assert.Equal(t, req.StatPrograms, hero.StatPrograms)
	assert.Equal(t, req.StatFaculty, hero.StatFaculty)
}

func TestUpdateHeroZeroStatsPersist(t *testing.T) {
	svc := setupService(t, true)
	ctx := context.Background()

	req := dto.UpdateHeroRequest{
		BadgeText:     "badge",
		TitleLine1:    "a",
		TitleLine2:    "b",
		SubtitleWord1: "c",
		SubtitleWord2: "d",
		SubtitleWord3: "e",
		Description:   "f",
	}

	require.NoError(t, svc.UpdateHero(ctx, req))

	hero, err := svc.GetHero(ctx)
	require.NoError(t, err)
	assert.Zero(t, hero.StatStudents)
	assert.Zero(t, hero.StatPrograms)
	assert.Zero(t, hero.StatFaculty)
}

func TestUpdateContactRoundTrip(t *testing.T) {
	svc := setupService(t, true)
	ctx := context.Background()

	req := dto.UpdateContactRequest{
		Location: "New campus",
		Email:    "contact@example.com",
		Phone:    "+880123456789",
	}

	require.NoError(t, svc.UpdateContact(ctx, req))

	contact, err := svc.GetContact(ctx)
	require.NoError(t, err)
	assert.Equal(t, req.Location, contact.Location)
	assert.Equal(t, req.Email, contact.Email)
	assert.Equal(t, req.Phone, contact.Phone)
}

func TestUpdateBeforeSeedFailsNotFound(t *testing.T) {
	svc := setupService(t, false)

	err := svc.UpdateMissionVision(context.Background(), dto.UpdateMissionVisionRequest{
		MissionText: "m",
		VisionText:  "v",
	})
	assert.True(t, failure.IsNotFound(err))
}
