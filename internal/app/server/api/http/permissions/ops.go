package permissions

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) optionsOp() huma.Operation {
	return huma.Operation{
		OperationID: "permissions-options",
		Method:      http.MethodGet,
		Path:        "/permissions/options",
		Summary:     "Valid modules and permission levels",
		Tags:        []string{"permissions"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "permissions-update",
		Method:      http.MethodPost,
		Path:        "/permissions/{username}/permissions",
		Summary:     "Replace a user's permission mapping (admin only)",
		Description: "Validation is all-or-nothing: one invalid pair rejects the whole payload and nothing is written.",
		Tags:        []string{"permissions"},
		Security:    []map[string][]string{{"cookieAuth": {}}},
		Middlewares: h.protected,
	}
}
