package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	apimw "github.com/aquariuspest/booking-api/internal/api/middleware"
	"github.com/aquariuspest/booking-api/internal/config"
	"github.com/aquariuspest/booking-api/internal/notify"
	"github.com/aquariuspest/booking-api/internal/service"
	"github.com/aquariuspest/booking-api/internal/service/auth"
	"github.com/aquariuspest/booking-api/internal/store/memory"
)

const (
	testAdminUser     = "admin"
	testAdminPassword = "admin123"
)

type fakePinger struct{ err error }

func (p fakePinger) PingContext(context.Context) error { return p.err }

type capturingSender struct{ sent []notify.Notification }

func (s *capturingSender) Send(_ context.Context, n notify.Notification) error {
	s.sent = append(s.sent, n)
	return nil
}

type testServer struct {
	handler http.Handler
	db      *memory.DB
	sender  *capturingSender
}

// newTestServer wires real services over the in-memory store behind the
// production route table.
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db := memory.New()
	db.SeedServices()

	hash, err := auth.HashPassword(testAdminPassword, bcrypt.MinCost)
	require.NoError(t, err)
	_, err = db.Admins().Upsert(context.Background(), testAdminUser, hash)
	require.NoError(t, err)

	jwtService, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:            "test-secret-that-is-at-least-32-characters",
		TokenLifetimeMinutes: 60,
	})
	require.NoError(t, err)
	credentials, err := auth.NewCredentialService(db.Admins(), jwtService, auth.NewBcryptVerifier(), bcrypt.MinCost, nil)
	require.NoError(t, err)

	bookings, err := service.NewBookingService(db.Bookings(), nil, nil)
	require.NoError(t, err)
	catalog, err := service.NewCatalogService(db.Services(), nil)
	require.NoError(t, err)
	customers, err := service.NewCustomerService(db.Customers())
	require.NoError(t, err)
	dashboard, err := service.NewDashboardService(db.Bookings(), db.Customers(), db.Services())
	require.NoError(t, err)
	sender := &capturingSender{}
	contact, err := service.NewContactService(sender, "office@example.com", nil)
	require.NoError(t, err)

	h := Handlers{
		Auth:     NewAuthHandler(credentials, nil),
		Bookings: NewBookingHandler(bookings, nil),
		Catalog:  NewCatalogHandler(catalog, nil),
		Admin:    NewAdminHandler(customers, dashboard),
		Contact:  NewContactHandler(contact),
		Health:   NewHealthHandler(fakePinger{}),
	}

	r := chi.NewRouter()
	r.Use(apimw.NewTraceMiddleware(nil))
	h.Mount(r, apimw.NewAuthMiddleware(credentials).Authenticate)

	return &testServer{handler: r, db: db, sender: sender}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) login(t *testing.T) string {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/api/auth/admin/login", "", LoginRequest{
		Username: testAdminUser, Password: testAdminPassword,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Token
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func bookingPayload() map[string]any {
	return map[string]any{
		"name":           "Jane",
		"email":          "jane@x.com",
		"phone":          "09012345678",
		"address":        "1 Main St",
		"service_id":     1,
		"preferred_date": "2025-01-10",
		"preferred_time": "09:00",
	}
}

func itoa(id int64) string { return strconv.FormatInt(id, 10) }

func newRecorderFor(h http.HandlerFunc) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	return rec
}
