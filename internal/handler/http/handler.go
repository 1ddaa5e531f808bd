package http

import (
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
)

type Handler struct {
	services *service.Services

	// secureCookies sets the Secure attribute on token cookies.
	secureCookies  bool
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		secureCookies:  !cfg.InsecureCookies,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
