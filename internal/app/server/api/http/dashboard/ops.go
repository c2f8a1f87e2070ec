package dashboard

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) dashboardOp() huma.Operation {
	return huma.Operation{
		OperationID: "dashboard",
		Method:      http.MethodGet,
		Path:        "/dashboard",
		Summary:     "Module cards visible to the current user",
		Tags:        []string{"dashboard"},
		Security:    []map[string][]string{{"cookieAuth": {}}},
		Middlewares: h.middleware,
	}
}
