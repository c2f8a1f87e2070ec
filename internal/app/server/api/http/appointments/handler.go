// Package appointments serves the appointment endpoints. Unlike every
// other resource these carry no session check, matching the system this
// replaces; see DESIGN.md before attaching the auth middleware here.
package appointments

import (
	"context"
	"errors"

	"clinikit/internal/domain/appointment"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    appointment.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service appointment.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.updateOp(), h.update)
}

func (h *Handler) list(_ context.Context, _ *struct{}) (*listOutput, error) {
	return &listOutput{
		Body: listResponse{Appointments: h.service.List()},
	}, nil
}

func (h *Handler) create(_ context.Context, input *createInput) (*wrappedOutput, error) {
	appt := h.service.Create(input.Body)
	return &wrappedOutput{
		Body: wrappedResponse{Appointment: appt},
	}, nil
}

func (h *Handler) find(_ context.Context, input *findInput) (*wrappedOutput, error) {
	appt, err := h.service.Get(input.ID)
	if err != nil {
		if errors.Is(err, appointment.ErrNotFound) {
			return nil, huma.Error404NotFound("Appointment not found")
		}
		return nil, err
	}
	return &wrappedOutput{
		Body: wrappedResponse{Appointment: appt},
	}, nil
}

func (h *Handler) update(_ context.Context, input *updateInput) (*updateOutput, error) {
	appt, err := h.service.Update(input.ID, input.Body)
	if err != nil {
		if errors.Is(err, appointment.ErrNotFound) {
			return nil, huma.Error404NotFound("Appointment not found")
		}
		return nil, err
	}
	return &updateOutput{Body: appt}, nil
}
