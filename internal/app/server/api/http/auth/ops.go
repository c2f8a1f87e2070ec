package auth

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) loginOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-login",
		Method:      http.MethodPost,
		Path:        "/login",
		Summary:     "Log in and receive a session cookie",
		Tags:        []string{"auth"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) logoutOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-logout",
		Method:      http.MethodPost,
		Path:        "/logout",
		Summary:     "Clear the session cookie",
		Tags:        []string{"auth"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) meOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-me",
		Method:      http.MethodGet,
		Path:        "/me",
		Summary:     "Current user and permissions",
		Tags:        []string{"auth"},
		Security:    []map[string][]string{{"cookieAuth": {}}},
		Middlewares: h.protected,
	}
}
