package auth

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionCookie is the cookie name used when none is configured.
const DefaultSessionCookie = "cms_session"

// CookieSession implements SessionManager by issuing a signed HS256 token in
// an HttpOnly cookie.
type CookieSession struct {
	secret     []byte
	ttl        time.Duration
	cookieName string
	secure     bool
}

// SessionOption configures a CookieSession.
type SessionOption func(*CookieSession)

// WithTTL overrides the default 24h session lifetime.
func WithTTL(ttl time.Duration) SessionOption {
	return func(s *CookieSession) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithCookieName overrides the session cookie name.
func WithCookieName(name string) SessionOption {
	return func(s *CookieSession) {
		if name != "" {
			s.cookieName = name
		}
	}
}

// WithSecureCookie marks the cookie as HTTPS-only.
func WithSecureCookie(secure bool) SessionOption {
	return func(s *CookieSession) { s.secure = secure }
}

// NewCookieSession constructs a session manager signing with the given
// secret.
func NewCookieSession(secret []byte, options ...SessionOption) (*CookieSession, error) {
	if len(secret) == 0 {
		return nil, errors.New("auth: session secret is required")
	}
	s := &CookieSession{
		secret:     secret,
		ttl:        24 * time.Hour,
		cookieName: DefaultSessionCookie,
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	return s, nil
}

// Login issues the session cookie for an authenticated user.
func (s *CookieSession) Login(w http.ResponseWriter, user *User) error {
	if user == nil {
		return errors.New("auth: login requires an authenticated user")
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   user.Username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return fmt.Errorf("auth: sign session token: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(s.ttl / time.Second),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Verify parses a session token and returns the username it was issued for.
func (s *CookieSession) Verify(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("auth: unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("auth: parse session token: %w", err)
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", errors.New("auth: session token missing subject")
	}
	return claims.Subject, nil
}

// CookieName returns the configured session cookie name.
func (s *CookieSession) CookieName() string { return s.cookieName }
