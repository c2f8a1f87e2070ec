package appointments

import (
	"context"
	"net/http"
	"testing"

	"clinikit/internal/domain/appointment"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func newHandler() *Handler {
	return NewHandler(appointment.NewService(slog.Default()), slog.Default(), huma.Middlewares{})
}

func TestHandler_list(t *testing.T) {
	h := newHandler()

	out, err := h.list(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, out.Body.Appointments, 3)
	assert.Equal(t, "Alice Johnson", out.Body.Appointments[0].PatientName)
}

func TestHandler_find(t *testing.T) {
	h := newHandler()

	out, err := h.find(context.Background(), &findInput{ID: 2})
	require.NoError(t, err)
	assert.Equal(t, "Bob Smith", out.Body.Appointment.PatientName)

	_, err = h.find(context.Background(), &findInput{ID: 99})
	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.GetStatus())
	assert.Contains(t, err.Error(), "Appointment not found")
}

func TestHandler_create(t *testing.T) {
	h := newHandler()

	out, err := h.create(context.Background(), &createInput{
		Body: appointment.UpdateRequest{
			Date: "2023-11-01", Time: "14:00", Reason: "Vaccination", Status: "Scheduled",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 4, out.Body.Appointment.ID)
	assert.Equal(t, "Patient 4", out.Body.Appointment.PatientName)
}

func TestHandler_update(t *testing.T) {
	h := newHandler()

	out, err := h.update(context.Background(), &updateInput{
		ID: 1,
		Body: appointment.UpdateRequest{
			Date: "2023-10-05", Time: "10:30", Reason: "Routine Checkup", Status: "Completed",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Completed", out.Body.Status)

	_, err = h.update(context.Background(), &updateInput{ID: 42})
	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.GetStatus())
}
