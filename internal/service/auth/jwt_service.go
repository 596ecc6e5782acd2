package auth

import (
	"context"
	"time"

	"github.com/aquariuspest/booking-api/internal/domain"
)

// JWTService issues and validates session tokens for administrators.
type JWTService interface {
	// GenerateToken creates a signed token for admin and reports when it expires.
	GenerateToken(ctx context.Context, admin domain.AdminSummary) (string, time.Time, error)

	// ValidateToken checks signature, algorithm and expiry and returns the
	// claims. Returns ErrExpiredToken or ErrInvalidToken on failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the decoded content of a valid session token.
type Claims struct {
	AdminID   int64
	Username  string
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}
