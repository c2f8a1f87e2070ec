package users

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "users-list",
		Method:      http.MethodGet,
		Path:        "/users/",
		Summary:     "List system users (admin only)",
		Tags:        []string{"users"},
		Security:    []map[string][]string{{"cookieAuth": {}}},
		Middlewares: h.middleware,
	}
}
