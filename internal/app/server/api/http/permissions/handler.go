package permissions

import (
	"context"
	"errors"

	"clinikit/internal/app/server/api/http/middleware/auth"
	"clinikit/internal/domain/module"
	"clinikit/internal/domain/permission"
	"clinikit/internal/domain/user"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	users      user.Servicer
	modules    module.Repository
	log        *slog.Logger
	middleware huma.Middlewares
	protected  huma.Middlewares
}

func NewHandler(users user.Servicer, modules module.Repository, log *slog.Logger, public, protected huma.Middlewares) *Handler {
	return &Handler{
		users:      users,
		modules:    modules,
		log:        log,
		middleware: public,
		protected:  protected,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.optionsOp(), h.options)
	huma.Register(api, h.updateOp(), h.update)
}

func (h *Handler) options(ctx context.Context, _ *struct{}) (*optionsOutput, error) {
	known, err := h.modules.List(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(known))
	for _, m := range known {
		ids = append(ids, m.ID)
	}

	return &optionsOutput{
		Body: optionsResponse{
			Modules: ids,
			Levels:  permission.Levels,
		},
	}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*updateOutput, error) {
	current, ok := auth.GetUser(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Not authenticated")
	}
	if err := permission.RequireAdmin(current); err != nil {
		return nil, huma.Error403Forbidden("Admin access required")
	}

	if _, err := h.users.Get(ctx, input.Username); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, huma.Error404NotFound("User not found")
		}
		return nil, err
	}

	known, err := h.modules.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := permission.ValidatePayload(input.Body, known); err != nil {
		var invalid *permission.InvalidSettingError
		if errors.As(err, &invalid) {
			return nil, huma.Error400BadRequest(invalid.Error())
		}
		return nil, err
	}

	if err := h.users.UpdatePermissions(ctx, input.Username, input.Body); err != nil {
		return nil, huma.Error500InternalServerError("Failed to update permissions")
	}

	return &updateOutput{
		Body: updateResponse{
			Username:    input.Username,
			Permissions: input.Body,
		},
	}, nil
}
