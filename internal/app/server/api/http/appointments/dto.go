package appointments

import "clinikit/internal/domain/appointment"

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Appointments []appointment.Appointment `json:"appointments"`
}

type findInput struct {
	ID int `path:"id" example:"1" doc:"Appointment id"`
}

type wrappedOutput struct {
	Body wrappedResponse
}

type wrappedResponse struct {
	Appointment appointment.Appointment `json:"appointment"`
}

type createInput struct {
	Body appointment.UpdateRequest
}

type updateInput struct {
	ID   int `path:"id" example:"1" doc:"Appointment id"`
	Body appointment.UpdateRequest
}

type updateOutput struct {
	Body appointment.Appointment
}
