package permissions

import (
	"context"
	"net/http"
	"testing"

	"clinikit/internal/app/server/api/http/middleware/auth"
	"clinikit/internal/domain/module"
	"clinikit/internal/domain/user"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Get(ctx context.Context, username string) (user.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockUserService) List(ctx context.Context) ([]user.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]user.User), args.Error(1)
}

func (m *MockUserService) UpdatePermissions(ctx context.Context, username string, permissions map[string]string) error {
	args := m.Called(ctx, username, permissions)
	return args.Error(0)
}

type MockModuleRepository struct {
	mock.Mock
}

func (m *MockModuleRepository) List(ctx context.Context) ([]module.Module, error) {
	args := m.Called(ctx)
	return args.Get(0).([]module.Module), args.Error(1)
}

var registry = []module.Module{
	{ID: "patient_mgmt"},
	{ID: "user_mgmt"},
	{ID: "appointments"},
}

func adminCtx() context.Context {
	return auth.WithUser(context.Background(), user.User{Username: "admin"})
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, status, statusErr.GetStatus())
}

func TestHandler_options(t *testing.T) {
	modules := new(MockModuleRepository)
	modules.On("List", mock.Anything).Return(registry, nil)
	h := NewHandler(new(MockUserService), modules, slog.Default(), huma.Middlewares{}, huma.Middlewares{})

	out, err := h.options(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"patient_mgmt", "user_mgmt", "appointments"}, out.Body.Modules)
	assert.Equal(t, []string{"None", "View", "Edit"}, out.Body.Levels)
}

func TestHandler_update(t *testing.T) {
	payload := map[string]string{"patient_mgmt": "Edit"}

	t.Run("admin applies a valid payload", func(t *testing.T) {
		users := new(MockUserService)
		users.On("Get", mock.Anything, "doc").Return(user.User{Username: "doc"}, nil)
		users.On("UpdatePermissions", mock.Anything, "doc", payload).Return(nil)
		modules := new(MockModuleRepository)
		modules.On("List", mock.Anything).Return(registry, nil)
		h := NewHandler(users, modules, slog.Default(), huma.Middlewares{}, huma.Middlewares{})

		out, err := h.update(adminCtx(), &updateInput{Username: "doc", Body: payload})
		require.NoError(t, err)
		assert.Equal(t, "doc", out.Body.Username)
		assert.Equal(t, payload, out.Body.Permissions)
		users.AssertExpectations(t)
	})

	t.Run("non-admin always gets 403 regardless of payload", func(t *testing.T) {
		users := new(MockUserService)
		modules := new(MockModuleRepository)
		h := NewHandler(users, modules, slog.Default(), huma.Middlewares{}, huma.Middlewares{})
		ctx := auth.WithUser(context.Background(), user.User{Username: "doc"})

		_, err := h.update(ctx, &updateInput{Username: "doc", Body: map[string]string{"bogus": "nope"}})
		requireStatus(t, err, http.StatusForbidden)
		users.AssertNotCalled(t, "Get")
		users.AssertNotCalled(t, "UpdatePermissions")
	})

	t.Run("unknown target user gives 404", func(t *testing.T) {
		users := new(MockUserService)
		users.On("Get", mock.Anything, "ghost").Return(user.User{}, user.ErrNotFound)
		modules := new(MockModuleRepository)
		h := NewHandler(users, modules, slog.Default(), huma.Middlewares{}, huma.Middlewares{})

		_, err := h.update(adminCtx(), &updateInput{Username: "ghost", Body: payload})
		requireStatus(t, err, http.StatusNotFound)
		assert.Contains(t, err.Error(), "User not found")
	})

	t.Run("invalid module rejects the whole payload with one 400", func(t *testing.T) {
		users := new(MockUserService)
		users.On("Get", mock.Anything, "doc").Return(user.User{Username: "doc"}, nil)
		modules := new(MockModuleRepository)
		modules.On("List", mock.Anything).Return(registry, nil)
		h := NewHandler(users, modules, slog.Default(), huma.Middlewares{}, huma.Middlewares{})

		// One unknown module and one unknown level in the same payload:
		// exactly one 400 comes back and nothing is written.
		_, err := h.update(adminCtx(), &updateInput{Username: "doc", Body: map[string]string{
			"pharmacy":     "View",
			"patient_mgmt": "Write",
		}})
		requireStatus(t, err, http.StatusBadRequest)
		assert.Contains(t, err.Error(), "Invalid setting")
		users.AssertNotCalled(t, "UpdatePermissions")
	})

	t.Run("store write failure maps to 500", func(t *testing.T) {
		users := new(MockUserService)
		users.On("Get", mock.Anything, "doc").Return(user.User{Username: "doc"}, nil)
		users.On("UpdatePermissions", mock.Anything, "doc", payload).Return(assert.AnError)
		modules := new(MockModuleRepository)
		modules.On("List", mock.Anything).Return(registry, nil)
		h := NewHandler(users, modules, slog.Default(), huma.Middlewares{}, huma.Middlewares{})

		_, err := h.update(adminCtx(), &updateInput{Username: "doc", Body: payload})
		requireStatus(t, err, http.StatusInternalServerError)
		assert.Contains(t, err.Error(), "Failed to update permissions")
	})
}
