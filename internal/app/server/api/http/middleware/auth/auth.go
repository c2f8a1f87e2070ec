package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"clinikit/internal/domain/session"
	"clinikit/internal/domain/user"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Auth struct {
	session session.Servicer
	log     *slog.Logger
}

func New(session session.Servicer, log *slog.Logger) *Auth {
	return &Auth{
		session: session,
		log:     log.With(slog.String("component", "auth middleware")),
	}
}

type contextKey string

const userKey contextKey = "currentUser"

// Middleware resolves the session cookie to a user record and stores it
// in the request context. Requests without a resolvable token get a 401
// before the operation handler runs.
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		var token string
		if cookie, err := huma.ReadCookie(ctx, session.CookieName); err == nil {
			token = cookie.Value
		}

		u, err := a.session.Resolve(ctx.Context(), token)
		if err != nil {
			a.log.Debug("session resolution failed", "error", err)
			ctx.SetStatus(http.StatusUnauthorized)
			ctx.SetHeader("Content-Type", "application/json")

			if err := json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{
				"detail": "Not authenticated",
			}); err != nil {
				a.log.Error("encode 401 body", "error", err)
			}
			return
		}

		next(huma.WithContext(ctx, WithUser(ctx.Context(), u)))
	}
}

// WithUser stores the authenticated user in the context. Exported for
// handler tests.
func WithUser(ctx context.Context, u user.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// GetUser fetches the authenticated user placed by Middleware.
func GetUser(ctx context.Context) (user.User, bool) {
	u, ok := ctx.Value(userKey).(user.User)
	return u, ok
}
