package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aquariuspest/booking-api/internal/domain"
	"github.com/aquariuspest/booking-api/internal/platform/logger"
	"github.com/aquariuspest/booking-api/internal/store"
)

// CatalogService manages the services customers can book.
type CatalogService interface {
	List(ctx context.Context) ([]domain.Service, error)
	Get(ctx context.Context, id int64) (*domain.Service, error)
	Create(ctx context.Context, in domain.ServiceInput) (*domain.Service, error)
	Update(ctx context.Context, id int64, in domain.ServiceInput) (*domain.Service, error)
	// Delete removes a service; existing bookings keep their rows.
	Delete(ctx context.Context, id int64) error
}

type catalogServiceImpl struct {
	services store.ServiceStore
	logger   *slog.Logger
}

// NewCatalogService creates a CatalogService.
func NewCatalogService(services store.ServiceStore, logger *slog.Logger) (CatalogService, error) {
	if services == nil {
		return nil, errors.New("service store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &catalogServiceImpl{
		services: services,
		logger:   logger.With(slog.String("component", "catalog_service")),
	}, nil
}

func (s *catalogServiceImpl) List(ctx context.Context) ([]domain.Service, error) {
	services, err := s.services.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

func (s *catalogServiceImpl) Get(ctx context.Context, id int64) (*domain.Service, error) {
	if id <= 0 {
		return nil, store.ErrServiceNotFound
	}
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get service %d: %w", id, err)
	}
	return svc, nil
}

func (s *catalogServiceImpl) Create(ctx context.Context, in domain.ServiceInput) (*domain.Service, error) {
	if err := in.ValidateForCreate(); err != nil {
		return nil, err
	}
	svc, err := s.services.Create(ctx, trimInput(in))
	if err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	logger.FromContextOrDefault(ctx, s.logger).Info("catalog service created", slog.Int64("service_id", svc.ID))
	return svc, nil
}

func (s *catalogServiceImpl) Update(ctx context.Context, id int64, in domain.ServiceInput) (*domain.Service, error) {
	if err := in.ValidateForUpdate(); err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, store.ErrServiceNotFound
	}
	svc, err := s.services.Update(ctx, id, trimInput(in))
	if err != nil {
		return nil, fmt.Errorf("failed to update service %d: %w", id, err)
	}
	return svc, nil
}

func (s *catalogServiceImpl) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return store.ErrServiceNotFound
	}
	if err := s.services.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete service %d: %w", id, err)
	}
	logger.FromContextOrDefault(ctx, s.logger).Info("catalog service deleted", slog.Int64("service_id", id))
	return nil
}

func trimInput(in domain.ServiceInput) domain.ServiceInput {
	out := in
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		out.Name = &name
	}
	if in.Description != nil {
		desc := strings.TrimSpace(*in.Description)
		out.Description = &desc
	}
	return out
}
