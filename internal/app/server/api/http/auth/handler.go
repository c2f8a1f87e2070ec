package auth

import (
	"context"
	"errors"

	authmw "clinikit/internal/app/server/api/http/middleware/auth"
	"clinikit/internal/domain/session"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	session    session.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
	protected  huma.Middlewares
}

// NewHandler wires the auth endpoints. Login and logout run with the
// public middleware stack; /me requires the session middleware.
func NewHandler(session session.Servicer, log *slog.Logger, public, protected huma.Middlewares) *Handler {
	return &Handler{
		session:    session,
		log:        log,
		middleware: public,
		protected:  protected,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.loginOp(), h.login)
	huma.Register(api, h.logoutOp(), h.logout)
	huma.Register(api, h.meOp(), h.me)
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*loginOutput, error) {
	cookie, err := h.session.Login(ctx, input.Body.Username, input.Body.Password, input.Body.Remember)
	if err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			return nil, huma.Error401Unauthorized("Invalid credentials")
		}
		return nil, err
	}

	return &loginOutput{
		SetCookie: cookie,
		Body:      messageResponse{Message: "Login successful"},
	}, nil
}

func (h *Handler) logout(_ context.Context, _ *struct{}) (*logoutOutput, error) {
	return &logoutOutput{
		SetCookie: h.session.Logout(),
		Body:      messageResponse{Message: "Logged out"},
	}, nil
}

func (h *Handler) me(ctx context.Context, _ *struct{}) (*meOutput, error) {
	u, ok := authmw.GetUser(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Not authenticated")
	}

	return &meOutput{
		Body: meResponse{
			Username:    u.Username,
			Permissions: u.Permissions,
		},
	}, nil
}
