package patients

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "patients-list",
		Method:      http.MethodGet,
		Path:        "/patients/",
		Summary:     "List patient summaries",
		Tags:        []string{"patients"},
		Security:    []map[string][]string{{"cookieAuth": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "patients-find",
		Method:      http.MethodGet,
		Path:        "/patients/{id}",
		Summary:     "Get a full patient record",
		Tags:        []string{"patients"},
		Security:    []map[string][]string{{"cookieAuth": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "patients-create",
		Method:      http.MethodPost,
		Path:        "/patients/new",
		Summary:     "Create a patient",
		Tags:        []string{"patients"},
		Security:    []map[string][]string{{"cookieAuth": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "patients-update",
		Method:      http.MethodPost,
		Path:        "/patients/{id}",
		Summary:     "Update a patient record",
		Description: "Partial update: fields absent from the payload keep their stored value.",
		Tags:        []string{"patients"},
		Security:    []map[string][]string{{"cookieAuth": {}}},
		Middlewares: h.middleware,
	}
}
