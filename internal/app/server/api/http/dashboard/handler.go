package dashboard

import (
	"context"

	"clinikit/internal/app/server/api/http/middleware/auth"
	"clinikit/internal/domain/module"
	"clinikit/internal/domain/permission"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	modules    module.Repository
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(modules module.Repository, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		modules:    modules,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.dashboardOp(), h.dashboard)
}

func (h *Handler) dashboard(ctx context.Context, _ *struct{}) (*dashboardOutput, error) {
	u, ok := auth.GetUser(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Not authenticated")
	}

	known, err := h.modules.List(ctx)
	if err != nil {
		return nil, err
	}

	return &dashboardOutput{
		Body: dashboardResponse{
			Cards: permission.VisibleCards(u, known),
		},
	}, nil
}
