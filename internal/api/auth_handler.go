package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/aquariuspest/booking-api/internal/api/shared"
	"github.com/aquariuspest/booking-api/internal/service/auth"
)

// Authenticator checks admin credentials. auth.CredentialService implements it.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (*auth.LoginResult, error)
}

// AuthHandler handles admin authentication requests.
type AuthHandler struct {
	authenticator Authenticator
	logger        *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authenticator Authenticator, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		authenticator: authenticator,
		logger:        logger.With(slog.String("component", "auth_handler")),
	}
}

// Login handles POST /api/auth/admin/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.authenticator.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "Login failed")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt.UTC().Format(time.RFC3339),
		Admin:     result.Admin,
	})
}
