package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aquariuspest/booking-api/internal/domain"
	"github.com/aquariuspest/booking-api/internal/store"
)

// DashboardService builds the admin dashboard.
type DashboardService interface {
	Summary(ctx context.Context, filter domain.DashboardFilter) (*domain.DashboardStats, error)
}

type dashboardServiceImpl struct {
	bookings  store.BookingStore
	customers store.CustomerStore
	services  store.ServiceStore
}

// NewDashboardService creates a DashboardService over the three read stores.
func NewDashboardService(
	bookings store.BookingStore,
	customers store.CustomerStore,
	services store.ServiceStore,
) (DashboardService, error) {
	if bookings == nil || customers == nil || services == nil {
		return nil, errors.New("dashboard stores cannot be nil")
	}
	return &dashboardServiceImpl{bookings: bookings, customers: customers, services: services}, nil
}

// Summary reads the current state and projects it. The three reads are not
// taken from one snapshot, so counts may be off by concurrent writes.
func (s *dashboardServiceImpl) Summary(
	ctx context.Context,
	filter domain.DashboardFilter,
) (*domain.DashboardStats, error) {
	bookings, err := s.bookings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load customers: %w", err)
	}
	services, err := s.services.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load services: %w", err)
	}

	stats := domain.BuildDashboard(bookings, len(customers), len(services), filter)
	return &stats, nil
}
