package appointments

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "appointments-list",
		Method:      http.MethodGet,
		Path:        "/appointments/",
		Summary:     "List all appointments",
		Tags:        []string{"appointments"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "appointments-create",
		Method:      http.MethodPost,
		Path:        "/appointments/new",
		Summary:     "Create an appointment",
		Tags:        []string{"appointments"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "appointments-find",
		Method:      http.MethodGet,
		Path:        "/appointments/{id}",
		Summary:     "Get an appointment",
		Tags:        []string{"appointments"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "appointments-update",
		Method:      http.MethodPost,
		Path:        "/appointments/{id}",
		Summary:     "Update an appointment",
		Tags:        []string{"appointments"},
		Middlewares: h.middleware,
	}
}
