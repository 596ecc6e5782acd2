package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aquariuspest/booking-api/internal/domain"
	"github.com/aquariuspest/booking-api/internal/store"
)

// CustomerService lists customers derived from bookings.
type CustomerService interface {
	List(ctx context.Context) ([]domain.Customer, error)
}

type customerServiceImpl struct {
	customers store.CustomerStore
}

// NewCustomerService creates a CustomerService.
func NewCustomerService(customers store.CustomerStore) (CustomerService, error) {
	if customers == nil {
		return nil, errors.New("customer store cannot be nil")
	}
	return &customerServiceImpl{customers: customers}, nil
}

func (s *customerServiceImpl) List(ctx context.Context) ([]domain.Customer, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}
