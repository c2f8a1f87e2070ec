package patients

import (
	"context"
	"errors"

	"clinikit/internal/app/server/api/http/middleware/auth"
	"clinikit/internal/domain/patient"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    patient.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service patient.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	if _, ok := auth.GetUser(ctx); !ok {
		return nil, huma.Error401Unauthorized("Not authenticated")
	}

	summaries, err := h.service.List(ctx)
	if err != nil {
		return nil, err
	}

	return &listOutput{
		Body: listResponse{Patients: summaries},
	}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*patientOutput, error) {
	if _, ok := auth.GetUser(ctx); !ok {
		return nil, huma.Error401Unauthorized("Not authenticated")
	}

	p, err := h.service.Get(ctx, input.ID)
	if err != nil {
		if errors.Is(err, patient.ErrNotFound) {
			return nil, huma.Error404NotFound("Patient not found")
		}
		return nil, err
	}

	return &patientOutput{Body: p}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*patientOutput, error) {
	if _, ok := auth.GetUser(ctx); !ok {
		return nil, huma.Error401Unauthorized("Not authenticated")
	}

	p, err := h.service.Create(ctx, input.Body)
	if err != nil {
		if errors.Is(err, patient.ErrInvalidInput) {
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		return nil, err
	}

	return &patientOutput{Body: p}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*patientOutput, error) {
	if _, ok := auth.GetUser(ctx); !ok {
		return nil, huma.Error401Unauthorized("Not authenticated")
	}

	p, err := h.service.Update(ctx, input.ID, input.Body)
	if err != nil {
		if errors.Is(err, patient.ErrNotFound) {
			return nil, huma.Error404NotFound("Patient not found")
		}
		return nil, err
	}

	return &patientOutput{Body: p}, nil
}
