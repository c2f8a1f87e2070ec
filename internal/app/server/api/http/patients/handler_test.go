package patients

import (
	"context"
	"net/http"
	"testing"

	"clinikit/internal/app/server/api/http/middleware/auth"
	"clinikit/internal/domain/patient"
	"clinikit/internal/domain/user"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context) ([]patient.Summary, error) {
	args := m.Called(ctx)
	return args.Get(0).([]patient.Summary), args.Error(1)
}

func (m *MockService) Get(ctx context.Context, id int64) (patient.Patient, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(patient.Patient), args.Error(1)
}

func (m *MockService) Create(ctx context.Context, req patient.CreateRequest) (patient.Patient, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(patient.Patient), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, id int64, req patient.UpdateRequest) (patient.Patient, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(patient.Patient), args.Error(1)
}

func authedCtx() context.Context {
	return auth.WithUser(context.Background(), user.User{
		Username:    "doc",
		Permissions: map[string]string{"patient_mgmt": "View"},
	})
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, status, statusErr.GetStatus())
}

func TestHandler_list(t *testing.T) {
	t.Run("returns summaries", func(t *testing.T) {
		svc := new(MockService)
		svc.On("List", mock.Anything).Return([]patient.Summary{
			{ID: 1, Name: "Alice Johnson", DateOfBirth: "1985-04-12", Gender: "F", LastVisit: "2024-01-15"},
		}, nil)
		h := NewHandler(svc, slog.Default(), huma.Middlewares{})

		out, err := h.list(authedCtx(), nil)
		require.NoError(t, err)
		require.Len(t, out.Body.Patients, 1)
		assert.Equal(t, "Alice Johnson", out.Body.Patients[0].Name)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		h := NewHandler(new(MockService), slog.Default(), huma.Middlewares{})

		_, err := h.list(context.Background(), nil)
		requireStatus(t, err, http.StatusUnauthorized)
	})
}

func TestHandler_find(t *testing.T) {
	t.Run("known patient", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Get", mock.Anything, int64(1)).Return(patient.Patient{ID: 1, Name: "Alice Johnson"}, nil)
		h := NewHandler(svc, slog.Default(), huma.Middlewares{})

		out, err := h.find(authedCtx(), &findInput{ID: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(1), out.Body.ID)
	})

	t.Run("unknown patient maps to 404", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Get", mock.Anything, int64(999)).Return(patient.Patient{}, patient.ErrNotFound)
		h := NewHandler(svc, slog.Default(), huma.Middlewares{})

		_, err := h.find(authedCtx(), &findInput{ID: 999})
		requireStatus(t, err, http.StatusNotFound)
		assert.Contains(t, err.Error(), "Patient not found")
	})
}

func TestHandler_create(t *testing.T) {
	req := patient.CreateRequest{
		Name:             "Alice Johnson",
		DateOfBirth:      "1985-04-12",
		Gender:           "F",
		LastVisit:        "2024-01-15",
		Contact:          map[string]string{"phone": "555-0101"},
		EmergencyContact: map[string]string{"name": "Bob"},
		Insurance:        "Acme Health",
	}

	t.Run("created record echoes with assigned id", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Create", mock.Anything, req).Return(patient.Patient{ID: 7, Name: req.Name}, nil)
		h := NewHandler(svc, slog.Default(), huma.Middlewares{})

		out, err := h.create(authedCtx(), &createInput{Body: req})
		require.NoError(t, err)
		assert.Equal(t, int64(7), out.Body.ID)
	})

	t.Run("invalid payload maps to 422", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Create", mock.Anything, mock.Anything).Return(patient.Patient{}, patient.ErrInvalidInput)
		h := NewHandler(svc, slog.Default(), huma.Middlewares{})

		_, err := h.create(authedCtx(), &createInput{Body: patient.CreateRequest{}})
		requireStatus(t, err, http.StatusUnprocessableEntity)
	})
}

func TestHandler_update(t *testing.T) {
	notes := "x"

	t.Run("partial update returns merged record", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Update", mock.Anything, int64(3), patient.UpdateRequest{Notes: &notes}).
			Return(patient.Patient{ID: 3, Name: "Bob Smith", Notes: &notes}, nil)
		h := NewHandler(svc, slog.Default(), huma.Middlewares{})

		out, err := h.update(authedCtx(), &updateInput{ID: 3, Body: patient.UpdateRequest{Notes: &notes}})
		require.NoError(t, err)
		assert.Equal(t, "Bob Smith", out.Body.Name)
		require.NotNil(t, out.Body.Notes)
		assert.Equal(t, "x", *out.Body.Notes)
	})

	t.Run("unknown patient maps to 404", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Update", mock.Anything, int64(999), mock.Anything).
			Return(patient.Patient{}, patient.ErrNotFound)
		h := NewHandler(svc, slog.Default(), huma.Middlewares{})

		_, err := h.update(authedCtx(), &updateInput{ID: 999})
		requireStatus(t, err, http.StatusNotFound)
	})
}
