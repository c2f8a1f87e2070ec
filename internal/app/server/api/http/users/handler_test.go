package users

import (
	"context"
	"net/http"
	"testing"

	"clinikit/internal/app/server/api/http/middleware/auth"
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

func (m *MockService) Get(ctx context.Context, username string) (user.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockService) List(ctx context.Context) ([]user.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]user.User), args.Error(1)
}

func (m *MockService) UpdatePermissions(ctx context.Context, username string, permissions map[string]string) error {
	args := m.Called(ctx, username, permissions)
	return args.Error(0)
}

func TestHandler_list(t *testing.T) {
	t.Run("admin sees all users without passwords", func(t *testing.T) {
		svc := new(MockService)
		svc.On("List", mock.Anything).Return([]user.User{
			{Username: "admin", Password: "password", Permissions: map[string]string{"patient_mgmt": "Edit"}},
			{Username: "doc", Password: "password", Permissions: map[string]string{"patient_mgmt": "View"}},
		}, nil)
		h := NewHandler(svc, slog.Default(), huma.Middlewares{})
		ctx := auth.WithUser(context.Background(), user.User{Username: "admin"})

		out, err := h.list(ctx, nil)
		require.NoError(t, err)
		require.Len(t, out.Body.Users, 2)
		assert.Equal(t, "admin", out.Body.Users[0].Username)
		assert.Equal(t, "View", out.Body.Users[1].Permissions["patient_mgmt"])
	})

	t.Run("non-admin gets 403", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, slog.Default(), huma.Middlewares{})
		ctx := auth.WithUser(context.Background(), user.User{Username: "doc"})

		_, err := h.list(ctx, nil)
		var statusErr huma.StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusForbidden, statusErr.GetStatus())
		assert.Contains(t, err.Error(), "Admin access required")
		svc.AssertNotCalled(t, "List")
	})

	t.Run("unauthenticated gets 401", func(t *testing.T) {
		h := NewHandler(new(MockService), slog.Default(), huma.Middlewares{})

		_, err := h.list(context.Background(), nil)
		var statusErr huma.StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusUnauthorized, statusErr.GetStatus())
	})
}
