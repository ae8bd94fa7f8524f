package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"nihom/infras/otel"
	"nihom/internal/domains/admin/repository"
	"nihom/shared/constant"
	"nihom/shared/failure"
	"nihom/shared/password"
)

// Identity is the authenticated admin attached to the request context.
type Identity struct {
	Username string
	Email    string
}

type Auth interface {
	Verify(ctx context.Context, username, plain string) (Identity, error)
}

type serviceImpl struct {
	repo repository.Admin
	otel otel.Otel
}

func New(repo repository.Admin, otel otel.Otel) Auth {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// Verify checks the credential pair against the stored bcrypt hash. Unknown
// usernames and wrong passwords return the same failure so callers cannot
// probe which usernames exist.
func (s *serviceImpl) Verify(ctx context.Context, username, plain string) (res Identity, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".VerifyCredentials")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin user")

		return res, err
	}

	if user.ID == 0 {
		log.Warn().Str("username", username).Msg("login attempt with unknown username")

		return res, failure.InvalidCredentials
	}

	if err = password.Verify(plain, user.Password); err != nil {
		log.Warn().Str("username", username).Msg("login attempt with wrong password")

		return res, failure.InvalidCredentials
	}

	return Identity{Username: user.Username, Email: user.Email}, nil
}
