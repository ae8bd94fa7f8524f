package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nihom/config"
	"nihom/infras/otel/mocks"
	"nihom/infras/sqlite"
	"nihom/internal/domains/admin/repository"
	"nihom/shared/failure"
)

func setupService(t *testing.T) Auth {
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

func TestVerifyCorrectCredentials(t *testing.T) {
	svc := setupService(t)

	identity, err := svc.Verify(context.Background(), "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin", identity.Username)
	assert.Equal(t, "admin@example.com", identity.Email)
}

func TestVerifyWrongPassword(t *testing.T) {
	svc := setupService(t)

	_, err := svc.Verify(context.Background(), "admin", "wrong")
	require.Error(t, err)
	assert.Equal(t, failure.InvalidCredentials.Error(), err.Error())
}

func TestVerifyUnknownUsername(t *testing.T) {
	svc := setupService(t)

	_, err := svc.Verify(context.Background(), "nobody", "admin123")
	require.Error(t, err)
	assert.Equal(t, failure.InvalidCredentials.Error(), err.Error())
}

func TestVerifyFailuresAreIndistinguishable(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, errUser := svc.Verify(ctx, "nobody", "admin123")
	_, errPass := svc.Verify(ctx, "admin", "wrong")

	assert.Equal(t, errUser.Error(), errPass.Error())
	assert.Equal(t, failure.GetCode(errUser), failure.GetCode(errPass))
}
