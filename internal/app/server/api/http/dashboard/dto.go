package dashboard

import "clinikit/internal/domain/permission"

type dashboardOutput struct {
	Body dashboardResponse
}

type dashboardResponse struct {
	Cards []permission.Card `json:"cards"`
}
