package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"sufra/config"
	"sufra/infras/jwt"
	"sufra/infras/otel"
	"sufra/internal/domains/auth/model/dto"
	"sufra/shared/constant"
	"sufra/shared/failure"
	"sufra/shared/password"
)

type Auth interface {
	AdminLogin(ctx context.Context, req dto.AdminLoginRequest) (dto.AdminTokenResponse, error)
}

type serviceImpl struct {
	cfg  *config.Config
	jwt  jwt.JWT
	otel otel.Otel
}

func New(cfg *config.Config, jwt jwt.JWT, otel otel.Otel) Auth {
	return &serviceImpl{
		cfg:  cfg,
		jwt:  jwt,
		otel: otel,
	}
}

// AdminLogin trades the shared admin secret for a short-lived token. There
// are no admin accounts; the secret itself is the identity.
func (s *serviceImpl) AdminLogin(ctx context.Context, req dto.AdminLoginRequest) (res dto.AdminTokenResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AdminLogin")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = password.Verify(req.Password, s.cfg.App.AdminPasswordHash); err != nil {
		return res, failure.Unauthorized("incorrect password") //nolint:wrapcheck
	}

	token, err := s.jwt.GenerateAdminToken()
	if err != nil {
		return res, fmt.Errorf("failed to generate admin token: %w", err)
	}

	res.FromToken(token)

	return res, nil
}
