// Package session resolves inbound cookie tokens to user records and
// issues tokens at login.
//
// The token is the raw username: unsigned, not tracked server-side and
// only bounded by the cookie max-age set at issuance. Logout therefore
// clears the client cookie and nothing else; other copies of the same
// token stay usable until their cookies expire. This mirrors the legacy
// system and is preserved deliberately (see DESIGN.md).
package session

import (
	"context"
	"errors"
	"net/http"

	"clinikit/internal/domain/user"

	"golang.org/x/exp/slog"
)

const (
	// CookieName carries the session token.
	CookieName = "session"

	// SessionTTL is the cookie max-age for ordinary logins, in seconds.
	SessionTTL = 3600
	// RememberTTL is the cookie max-age with "remember me", 30 days.
	RememberTTL = 2592000
)

type Servicer interface {
	Login(ctx context.Context, username, password string, remember bool) (http.Cookie, error)
	Logout() http.Cookie
	Resolve(ctx context.Context, token string) (user.User, error)
}

type Service struct {
	users user.Repository
	log   *slog.Logger
}

func NewService(users user.Repository, log *slog.Logger) *Service {
	return &Service{
		users: users,
		log:   log,
	}
}

// Login checks the supplied password against the stored value for an
// exact match and issues the session cookie on success.
func (s *Service) Login(ctx context.Context, username, password string, remember bool) (http.Cookie, error) {
	u, err := s.users.Find(ctx, username)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return http.Cookie{}, ErrInvalidCredentials
		}
		return http.Cookie{}, err
	}
	if password != u.Password {
		return http.Cookie{}, ErrInvalidCredentials
	}

	maxAge := SessionTTL
	if remember {
		maxAge = RememberTTL
	}

	s.log.Info("login successful", "username", username, "remember", remember)
	return sessionCookie(u.Username, maxAge), nil
}

// Logout returns a cookie that clears the session on the client.
func (s *Service) Logout() http.Cookie {
	return sessionCookie("", -1)
}

// Resolve maps a cookie token to its user record. It is the single
// authentication gate: every protected endpoint goes through here.
func (s *Service) Resolve(ctx context.Context, token string) (user.User, error) {
	if token == "" {
		return user.User{}, ErrUnauthenticated
	}

	u, err := s.users.Find(ctx, token)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrUnauthenticated
		}
		return user.User{}, err
	}
	return u, nil
}

// Cross-site frontends need SameSite=None, which in turn requires Secure.
func sessionCookie(value string, maxAge int) http.Cookie {
	return http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
}
