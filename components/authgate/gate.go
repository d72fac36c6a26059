package authgate

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidPassword reports a failed password exchange.
	ErrInvalidPassword = errors.New("authgate: invalid password")
	// ErrInvalidToken reports a missing, malformed, or expired session token.
	ErrInvalidToken = errors.New("authgate: invalid session token")
)

// DefaultSessionTTL bounds how long an admin session stays valid. Logout is
// a client-side token drop; expiry ends the session server-side.
const DefaultSessionTTL = 12 * time.Hour

// Options configures the gate.
type Options struct {
	// AdminPassword is the shared secret exchanged for a session token.
	AdminPassword string
	// SigningSecret signs session tokens (HS256).
	SigningSecret []byte
	// SessionTTL defaults to DefaultSessionTTL.
	SessionTTL time.Duration
	// Now overrides the clock in tests.
	Now func() time.Time
}

// Gate exchanges the admin password for signed, expiring session tokens and
// verifies them on privileged routes.
type Gate struct {
	opts Options
}

// New builds a Gate. AdminPassword and SigningSecret are required.
func New(opts Options) (*Gate, error) {
	if opts.AdminPassword == "" {
		return nil, errors.New("authgate: admin password is required")
	}
	if len(opts.SigningSecret) == 0 {
		return nil, errors.New("authgate: signing secret is required")
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = DefaultSessionTTL
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Gate{opts: opts}, nil
}

// Login compares the submitted password in constant time and issues a
// session token on success.
func (g *Gate) Login(password string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(g.opts.AdminPassword)) != 1 {
		return "", ErrInvalidPassword
	}
	now := g.opts.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(g.opts.SessionTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.opts.SigningSecret)
	if err != nil {
		return "", fmt.Errorf("authgate: sign session token: %w", err)
	}
	return signed, nil
}

// Verify checks a raw session token's signature and expiry.
func (g *Gate) Verify(tokenString string) error {
	if tokenString == "" {
		return ErrInvalidToken
	}
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return g.opts.SigningSecret, nil
	}, jwt.WithTimeFunc(g.opts.Now))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return ErrInvalidToken
	}
	return nil
}

// Authorize verifies an Authorization header carrying "Bearer <token>".
func (g *Gate) Authorize(authorization string) error {
	token := strings.TrimSpace(authorization)
	if rest, ok := strings.CutPrefix(token, "Bearer "); ok {
		token = strings.TrimSpace(rest)
	}
	return g.Verify(token)
}
