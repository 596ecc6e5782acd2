package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aquariuspest/booking-api/internal/domain"
	"github.com/aquariuspest/booking-api/internal/platform/logger"
	"github.com/aquariuspest/booking-api/internal/store"
)

// LoginResult is returned by a successful Authenticate.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Admin     domain.AdminSummary
}

// CredentialService authenticates administrators and verifies their tokens.
type CredentialService struct {
	admins    store.AdminStore
	tokens    JWTService
	verifier  PasswordVerifier
	dummyHash string
	logger    *slog.Logger
}

// NewCredentialService wires the admin store, token service and password
// verifier. bcryptCost sizes the hash compared for unknown usernames so
// both failure paths cost about the same.
func NewCredentialService(
	admins store.AdminStore,
	tokens JWTService,
	verifier PasswordVerifier,
	bcryptCost int,
	logger *slog.Logger,
) (*CredentialService, error) {
	if admins == nil {
		return nil, errors.New("admin store cannot be nil")
	}
	if tokens == nil {
		return nil, errors.New("jwt service cannot be nil")
	}
	if verifier == nil {
		return nil, errors.New("password verifier cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	dummyHash, err := HashPassword("not-a-real-password", bcryptCost)
	if err != nil {
		return nil, err
	}

	return &CredentialService{
		admins:    admins,
		tokens:    tokens,
		verifier:  verifier,
		dummyHash: dummyHash,
		logger:    logger.With(slog.String("component", "credential_service")),
	}, nil
}

// Authenticate checks a username and password and issues a session token.
//
// Errors:
//   - a ValidationError wrapping domain.ErrInvalidInput when either field is blank
//   - ErrInvalidCredentials for an unknown username or a wrong password
//   - a wrapped store error when the lookup itself fails
func (s *CredentialService) Authenticate(ctx context.Context, username, password string) (*LoginResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var missing []string
	if strings.TrimSpace(username) == "" {
		missing = append(missing, "username")
	}
	if strings.TrimSpace(password) == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return nil, &domain.ValidationError{
			Fields:  missing,
			Message: "Username and password are required",
			Err:     domain.ErrInvalidInput,
		}
	}

	admin, err := s.admins.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrAdminNotFound) {
			_ = s.verifier.Compare(s.dummyHash, password)
			log.Info("login rejected", slog.String("reason", "unknown username"))
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}

	if err := s.verifier.Compare(admin.PasswordHash, password); err != nil {
		log.Info("login rejected",
			slog.String("reason", "password mismatch"),
			slog.Int64("admin_id", admin.ID))
		return nil, ErrInvalidCredentials
	}

	summary := admin.Summary()
	token, expiresAt, err := s.tokens.GenerateToken(ctx, summary)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	log.Info("admin logged in", slog.Int64("admin_id", admin.ID))
	return &LoginResult{Token: token, ExpiresAt: expiresAt, Admin: summary}, nil
}

// Verify returns the admin a token was issued to. Any missing, malformed,
// tampered or expired token yields ErrUnauthorized. Tokens are stateless and
// cannot be revoked before they expire.
func (s *CredentialService) Verify(ctx context.Context, token string) (*domain.AdminSummary, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrUnauthorized
	}

	claims, err := s.tokens.ValidateToken(ctx, token)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Debug("token rejected", slog.String("reason", err.Error()))
		return nil, ErrUnauthorized
	}

	return &domain.AdminSummary{ID: claims.AdminID, Username: claims.Username}, nil
}
