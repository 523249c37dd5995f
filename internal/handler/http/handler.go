package http

import (
	"github.com/MKhiriev/go-softjobs/internal/config"
	"github.com/MKhiriev/go-softjobs/internal/logger"
	"github.com/MKhiriev/go-softjobs/internal/service"
	"github.com/MKhiriev/go-softjobs/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator
	cfg       config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validators.NewCredentialsValidator(),
		cfg:       cfg,
		logger:    logger,
	}
}
