package service

import (
	"fmt"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
)

type Services struct {
	AuthService    AuthService
	AppInfoService AppInfoService
}

// NewServices wires the auth service for the configured session policy and
// decorates it with validation and tracing.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	tokens := NewTokenIssuer(cfg.App)

	var sessions SessionRegistry
	switch cfg.App.SessionPolicy {
	case config.SessionPolicyMulti:
		if storages.Redis == nil {
			return nil, fmt.Errorf("%s session policy requires redis", cfg.App.SessionPolicy)
		}
		sessions = NewMultiSession(storages.Redis, cfg.App.RefreshTokenSecret, tokens.RefreshTTL())
	default:
		sessions = NewSingleActiveSession(storages.CredentialStore, tokens.RefreshTTL())
	}

	core := NewAuthService(
		storages.CredentialStore,
		sessions,
		NewPasswordVerifier(cfg.App),
		tokens,
		cfg.App,
		logger,
	)
	authService := NewAuthTracingService().Wrap(NewAuthValidationService().Wrap(core))

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    authService,
		AppInfoService: appInfoService,
	}, nil
}
