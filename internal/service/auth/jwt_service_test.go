package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aquariuspest/booking-api/internal/config"
	"github.com/aquariuspest/booking-api/internal/domain"
)

const testSecret = "test-secret-that-is-long-enough-for-testing"

// newTestJWTService creates a service with a controllable clock.
func newTestJWTService(secret string, lifetime time.Duration, now func() time.Time) *hmacJWTService {
	return &hmacJWTService{
		signingKey:    []byte(secret),
		tokenLifetime: lifetime,
		timeFunc:      now,
	}
}

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(config.AuthConfig{JWTSecret: "short", TokenLifetimeMinutes: 60})
	assert.Error(t, err)

	_, err = NewJWTService(config.AuthConfig{JWTSecret: testSecret})
	assert.Error(t, err)

	svc, err := NewJWTService(config.AuthConfig{JWTSecret: testSecret, TokenLifetimeMinutes: 1440})
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	admin := domain.AdminSummary{ID: 1, Username: "admin"}
	svc := newTestJWTService(testSecret, 24*time.Hour, func() time.Time { return fixedTime })

	token, expiresAt, err := svc.GenerateToken(context.Background(), admin)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, fixedTime.Add(24*time.Hour).Unix(), expiresAt.Unix())

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.AdminID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "1", claims.Subject)
	assert.Equal(t, fixedTime.Unix(), claims.IssuedAt.Unix())
	assert.NotEmpty(t, claims.ID)

	other, _, err := svc.GenerateToken(context.Background(), admin)
	require.NoError(t, err)
	assert.NotEqual(t, token, other, "jti makes every token unique")
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	issued := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	lifetime := 24 * time.Hour
	admin := domain.AdminSummary{ID: 7, Username: "office"}

	issuer := newTestJWTService(testSecret, lifetime, func() time.Time { return issued })
	token, _, err := issuer.GenerateToken(context.Background(), admin)
	require.NoError(t, err)

	tests := []struct {
		name    string
		secret  string
		now     time.Time
		token   string
		wantErr error
	}{
		{name: "valid just before expiry", secret: testSecret, now: issued.Add(lifetime - time.Second), token: token},
		{name: "expired at expiry", secret: testSecret, now: issued.Add(lifetime), token: token, wantErr: ErrExpiredToken},
		{name: "expired long after", secret: testSecret, now: issued.Add(48 * time.Hour), token: token, wantErr: ErrExpiredToken},
		{name: "wrong secret", secret: "wrong-secret-that-is-long-enough-for-testing", now: issued, token: token, wantErr: ErrInvalidToken},
		{name: "malformed", secret: testSecret, now: issued, token: "not.a.token", wantErr: ErrInvalidToken},
		{name: "empty", secret: testSecret, now: issued, token: "", wantErr: ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := newTestJWTService(tt.secret, lifetime, func() time.Time { return tt.now })
			claims, err := svc.ValidateToken(context.Background(), tt.token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, admin.ID, claims.AdminID)
		})
	}
}

func TestValidateTokenRejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	now := time.Now()
	claims := jwtCustomClaims{
		AdminID:  1,
		Username: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	svc := newTestJWTService(testSecret, time.Hour, func() time.Time { return now })
	_, err = svc.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = svc.ValidateToken(context.Background(), none)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRequiresExpiry(t *testing.T) {
	t.Parallel()

	claims := jwtCustomClaims{AdminID: 1, Username: "admin"}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	svc := newTestJWTService(testSecret, time.Hour, time.Now)
	_, err = svc.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsAnySignatureChange(t *testing.T) {
	t.Parallel()

	issued := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestJWTService(testSecret, time.Hour, func() time.Time { return issued })
	token, _, err := svc.GenerateToken(context.Background(), domain.AdminSummary{ID: 1, Username: "admin"})
	require.NoError(t, err)

	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
	sigStart := strings.LastIndex(token, ".") + 1
	require.Positive(t, sigStart)

	for pos := sigStart; pos < len(token); pos++ {
		for _, c := range []byte(alphabet) {
			if c == token[pos] {
				continue
			}
			tampered := token[:pos] + string(c) + token[pos+1:]
			_, err := svc.ValidateToken(context.Background(), tampered)
			require.ErrorIsf(t, err, ErrInvalidToken, "signature byte %d changed to %q", pos-sigStart, c)
		}
	}
}
