// Package memory is an in-memory implementation of the store interfaces.
// It mirrors the PostgreSQL semantics the services depend on (ordering,
// not-found errors, ON DELETE SET NULL) and is used by tests and local demos.
package memory

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/aquariuspest/booking-api/internal/domain"
	"github.com/aquariuspest/booking-api/internal/store"
)

// DB holds all entities behind one mutex.
type DB struct {
	mu       sync.Mutex
	admins   map[int64]domain.Admin
	services map[int64]domain.Service
	bookings map[int64]domain.Booking
	nextID   map[string]int64
	failWith error
	now      func() time.Time
}

// New creates an empty database.
func New() *DB {
	return &DB{
		admins:   map[int64]domain.Admin{},
		services: map[int64]domain.Service{},
		bookings: map[int64]domain.Booking{},
		nextID:   map[string]int64{},
		now:      time.Now,
	}
}

// FailWith makes every subsequent operation return err. Pass nil to recover.
func (db *DB) FailWith(err error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.failWith = err
}

func (db *DB) id(kind string) int64 {
	db.nextID[kind]++
	return db.nextID[kind]
}

// lock acquires the mutex and reports any injected failure. Callers must
// unlock even when an error is returned.
func (db *DB) lock() error {
	db.mu.Lock()
	return db.failWith
}

// Admins returns a store.AdminStore view.
func (db *DB) Admins() *AdminStore { return &AdminStore{db: db} }

// Services returns a store.ServiceStore view.
func (db *DB) Services() *ServiceStore { return &ServiceStore{db: db} }

// Bookings returns a store.BookingStore view.
func (db *DB) Bookings() *BookingStore { return &BookingStore{db: db} }

// Customers returns a store.CustomerStore view.
func (db *DB) Customers() *CustomerStore { return &CustomerStore{db: db} }

// AdminStore implements store.AdminStore.
type AdminStore struct{ db *DB }

var _ store.AdminStore = (*AdminStore)(nil)

func (s *AdminStore) GetByUsername(_ context.Context, username string) (*domain.Admin, error) {
	err := s.db.lock()
	defer s.db.mu.Unlock()
	if err != nil {
		return nil, err
	}
	for _, a := range s.db.admins {
		if a.Username == username {
			return &a, nil
		}
	}
	return nil, store.ErrAdminNotFound
}

func (s *AdminStore) GetByID(_ context.Context, id int64) (*domain.Admin, error) {
	err := s.db.lock()
	defer s.db.mu.Unlock()
	if err != nil {
		return nil, err
	}
	a, ok := s.db.admins[id]
	if !ok {
		return nil, store.ErrAdminNotFound
	}
	return &a, nil
}

func (s *AdminStore) Upsert(_ context.Context, username, passwordHash string) (*domain.Admin, error) {
	err := s.db.lock()
	defer s.db.mu.Unlock()
	if err != nil {
		return nil, err
	}
	for id, a := range s.db.admins {
		if a.Username == username {
			a.PasswordHash = passwordHash
			s.db.admins[id] = a
			return &a, nil
		}
	}
	a := domain.Admin{ID: s.db.id("admin"), Username: username, PasswordHash: passwordHash, CreatedAt: s.db.now()}
	s.db.admins[a.ID] = a
	return &a, nil
}

// ServiceStore implements store.ServiceStore.
type ServiceStore struct{ db *DB }

var _ store.ServiceStore = (*ServiceStore)(nil)

func (s *ServiceStore) List(_ context.Context) ([]domain.Service, error) {
	err := s.db.lock()
	defer s.db.mu.Unlock()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Service, 0, len(s.db.services))
	for _, svc := range s.db.services {
		out = append(out, svc)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *ServiceStore) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	err := s.db.lock()
	defer s.db.mu.Unlock()
	if err != nil {
		return nil, err
	}
	svc, ok := s.db.services[id]
	if !ok {
		return nil, store.ErrServiceNotFound
	}
	return &svc, nil
}

func (s *ServiceStore) Create(_ context.Context, in domain.ServiceInput) (*domain.Service, error) {
	err := s.db.lock()
	defer s.db.mu.Unlock()
	if err != nil {
		return nil, err
	}
	if in.Name == nil || in.Description == nil || in.Price == nil {
		return nil, fmt.Errorf("%w: service fields missing", store.ErrInvalidEntity)
	}
	svc := domain.Service{
		ID:          s.db.id("service"),
		Name:        *in.Name,
		Description: *in.Description,
		Price:       *in.Price,
		CreatedAt:   s.db.now(),
	}
	s.db.services[svc.ID] = svc
	return &svc, nil
}

func (s *ServiceStore) Update(_ context.Context, id int64, in domain.ServiceInput) (*domain.Service, error) {
	err := s.db.lock()
	defer s.db.mu.Unlock()
	if err != nil {
		return nil, err
	}
	svc, ok := s.db.services[id]
	if !ok {
		return nil, store.ErrServiceNotFound
	}
	if in.Name != nil {
		svc.Name = *in.Name
	}
	if in.Description != nil {
		svc.Description = *in.Description
	}
	if in.Price != nil {
		svc.Price = *in.Price
	}
	s.db.services[id] = svc
	return &svc, nil
}

func (s *ServiceStore) Delete(_ context.Context, id int64) error {
	err := s.db.lock()
	defer s.db.mu.Unlock()
	if err != nil {
		return err
	}
	if _, ok := s.db.services[id]; !ok {
		return store.ErrServiceNotFound
	}
	delete(s.db.services, id)
	for bid, b := range s.db.bookings {
		if b.ServiceID == id {
			b.ServiceID = 0
			s.db.bookings[bid] = b
		}
	}
	return nil
}

// BookingStore implements store.BookingStore.
type BookingStore struct{ db *DB }

var _ store.BookingStore = (*BookingStore)(nil)

func (s *BookingStore) Create(_ context.Context, b *domain.Booking) error {
	err := s.db.lock()
	defer s.db.mu.Unlock()
	if err != nil {
		return err
	}
	if _, ok := s.db.services[b.ServiceID]; !ok {
		return fmt.Errorf("%w: service %d does not exist", store.ErrInvalidEntity, b.ServiceID)
	}
	if !b.Status.Valid() {
		return fmt.Errorf("%w: status %q", store.ErrInvalidEntity, b.Status)
	}
	b.ID = s.db.id("booking")
	stored := *b
	stored.ServiceName = nil
	s.db.bookings[b.ID] = stored
	return nil
}

func (s *BookingStore) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	err := s.db.lock()
	defer s.db.mu.Unlock()
	if err != nil {
		return nil, err
	}
	b, ok := s.db.bookings[id]
	if !ok {
		return nil, store.ErrBookingNotFound
	}
	return s.withServiceName(b), nil
}

func (s *BookingStore) List(_ context.Context) ([]domain.Booking, error) {
	err := s.db.lock()
	defer s.db.mu.Unlock()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Booking, 0, len(s.db.bookings))
	for _, b := range s.db.bookings {
		out = append(out, *s.withServiceName(b))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *BookingStore) UpdateStatus(
	_ context.Context,
	id int64,
	status domain.BookingStatus,
) (*domain.Booking, error) {
	err := s.db.lock()
	defer s.db.mu.Unlock()
	if err != nil {
		return nil, err
	}
	b, ok := s.db.bookings[id]
	if !ok {
		return nil, store.ErrBookingNotFound
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: status %q", store.ErrInvalidEntity, status)
	}
	b.Status = status
	s.db.bookings[id] = b
	return s.withServiceName(b), nil
}

// WithTx returns the same store; the memory store has no transactions.
func (s *BookingStore) WithTx(*sql.Tx) store.BookingStore { return s }

// withServiceName must be called with the mutex held.
func (s *BookingStore) withServiceName(b domain.Booking) *domain.Booking {
	b.ServiceName = nil
	if svc, ok := s.db.services[b.ServiceID]; ok {
		name := svc.Name
		b.ServiceName = &name
	}
	return &b
}

// CustomerStore implements store.CustomerStore.
type CustomerStore struct{ db *DB }

var _ store.CustomerStore = (*CustomerStore)(nil)

func (s *CustomerStore) List(_ context.Context) ([]domain.Customer, error) {
	err := s.db.lock()
	defer s.db.mu.Unlock()
	if err != nil {
		return nil, err
	}

	type key struct{ name, email, phone, address string }
	counts := map[key]int{}
	for _, b := range s.db.bookings {
		counts[key{b.Name, b.Email, b.Phone, b.Address}]++
	}

	keys := make([]key, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		return strings.Join([]string{a.name, a.email, a.phone, a.address}, "\x00") <
			strings.Join([]string{b.name, b.email, b.phone, b.address}, "\x00")
	})

	out := make([]domain.Customer, 0, len(keys))
	for i, k := range keys {
		out = append(out, domain.Customer{
			ID: i + 1, Name: k.name, Email: k.email, Phone: k.phone, Address: k.address,
			TotalBookings: counts[k],
		})
	}
	return out, nil
}

// SeedServices adds the default catalog, matching the SQL seed migration.
func (db *DB) SeedServices() {
	db.mu.Lock()
	defer db.mu.Unlock()
	for _, s := range []struct {
		name, desc string
		price      float64
	}{
		{"Ant Control", "Effective ant elimination and prevention", 150},
		{"Roach Control", "Complete roach removal services", 200},
		{"Rodent Control", "Safe rodent removal and prevention", 250},
		{"Termite Control", "Professional termite treatment", 300},
	} {
		svc := domain.Service{ID: db.id("service"), Name: s.name, Description: s.desc, Price: s.price, CreatedAt: db.now()}
		db.services[svc.ID] = svc
	}
}
