package users

import (
	"context"

	"clinikit/internal/app/server/api/http/middleware/auth"
	"clinikit/internal/domain/permission"
	"clinikit/internal/domain/user"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    user.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service user.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	current, ok := auth.GetUser(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Not authenticated")
	}
	if err := permission.RequireAdmin(current); err != nil {
		return nil, huma.Error403Forbidden("Admin access required")
	}

	all, err := h.service.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]userResponse, 0, len(all))
	for _, u := range all {
		out = append(out, userResponse{
			Username:    u.Username,
			Permissions: u.Permissions,
		})
	}

	return &listOutput{
		Body: listResponse{Users: out},
	}, nil
}
