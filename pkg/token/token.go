package token

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

// ErrTokenExpired is returned when a token has expired.
var ErrTokenExpired = errors.New("token is expired")

// ErrInvalidToken is returned for malformed, badly signed, or revoked tokens.
var ErrInvalidToken = errors.New("invalid token")

// ErrRevocationUnavailable is returned by Revoke when no denylist backend is
// configured; verification is purely stateless in that mode.
var ErrRevocationUnavailable = errors.New("token revocation not configured")

// Claims is the identity subset embedded in every issued token.
type Claims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Manager issues and verifies signed bearer tokens. Validity is purely a
// function of signature and expiry; with a Redis client attached, Revoke
// additionally denylists individual tokens until they expire.
type Manager interface {
	Issue(userID uint, email string) (string, error)
	Verify(ctx context.Context, tokenString string) (*Claims, error)
	Revoke(ctx context.Context, tokenString string) error
}

type manager struct {
	secret []byte
	ttl    time.Duration
	redis  *redis.Client
}

// NewManager creates a Manager signing with the given secret. redisClient may
// be nil, which disables revocation.
func NewManager(secret string, ttl time.Duration, redisClient *redis.Client) Manager {
	return &manager{secret: []byte(secret), ttl: ttl, redis: redisClient}
}

// Issue mints a signed token carrying the user's id and email, expiring
// ttl from now.
func (m *manager) Issue(userID uint, email string) (string, error) {
	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(m.secret)
}

// Verify parses and validates the token and, when a denylist is configured,
// rejects revoked tokens.
func (m *manager) Verify(ctx context.Context, tokenString string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, ErrInvalidToken
	}
	if m.redis != nil {
		revoked, err := m.isRevoked(ctx, tokenString)
		if err != nil {
			return nil, err
		}
		if revoked {
			return nil, ErrInvalidToken
		}
	}
	return claims, nil
}

// Revoke denylists the token for its remaining lifetime.
func (m *manager) Revoke(ctx context.Context, tokenString string) error {
	if m.redis == nil {
		return ErrRevocationUnavailable
	}
	claims, err := m.Verify(ctx, tokenString)
	if err != nil {
		return err
	}
	if claims.ExpiresAt == nil {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil // already expired
	}
	return m.redis.Set(ctx, m.redisKey(tokenString), "revoked", ttl).Err()
}

func (m *manager) isRevoked(ctx context.Context, tokenString string) (bool, error) {
	res, err := m.redis.Exists(ctx, m.redisKey(tokenString)).Result()
	if err != nil {
		return false, err
	}
	return res == 1, nil
}

func (m *manager) redisKey(tokenString string) string {
	return "jwt:denylist:" + tokenString
}
