package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aquariuspest/booking-api/internal/api/shared"
	"github.com/aquariuspest/booking-api/internal/domain"
	"github.com/aquariuspest/booking-api/internal/service/auth"
)

type fakeVerifier struct {
	admin *domain.AdminSummary
	err   error
	calls int
	token string
}

func (f *fakeVerifier) Verify(_ context.Context, token string) (*domain.AdminSummary, error) {
	f.calls++
	f.token = token
	return f.admin, f.err
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Parallel()

	admin := &domain.AdminSummary{ID: 1, Username: "admin"}

	tests := []struct {
		name           string
		authHeader     string
		verifyErr      error
		expectedStatus int
		expectedError  string
		expectVerify   bool
	}{
		{name: "valid token", authHeader: "Bearer good", expectedStatus: http.StatusOK, expectVerify: true},
		{name: "missing header", expectedStatus: http.StatusUnauthorized, expectedError: "Authorization header required"},
		{name: "no scheme", authHeader: "good", expectedStatus: http.StatusUnauthorized, expectedError: "Invalid authorization format"},
		{name: "wrong scheme", authHeader: "Basic good", expectedStatus: http.StatusUnauthorized, expectedError: "Invalid authorization format"},
		{name: "empty token", authHeader: "Bearer ", expectedStatus: http.StatusUnauthorized, expectedError: "Invalid authorization format"},
		{
			name:           "rejected token",
			authHeader:     "Bearer expired",
			verifyErr:      auth.ErrUnauthorized,
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Invalid or expired token",
			expectVerify:   true,
		},
		{
			name:           "verifier failure",
			authHeader:     "Bearer good",
			verifyErr:      errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Authentication error",
			expectVerify:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := &fakeVerifier{admin: admin, err: tt.verifyErr}
			mw := NewAuthMiddleware(verifier)

			reached := false
			var got domain.AdminSummary
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				reached = true
				got, _ = shared.AdminFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/admin/bookings", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			mw.Authenticate(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectVerify, verifier.calls == 1)
			if tt.expectedStatus == http.StatusOK {
				require.True(t, reached)
				assert.Equal(t, *admin, got)
				assert.Equal(t, "good", verifier.token)
				return
			}
			assert.False(t, reached, "rejected request must not reach the handler")
			assert.Contains(t, rec.Body.String(), tt.expectedError)
		})
	}
}
