package patients

import "clinikit/internal/domain/patient"

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Patients []patient.Summary `json:"patients"`
}

type findInput struct {
	ID int64 `path:"id" example:"1" doc:"Patient id"`
}

type patientOutput struct {
	Body patient.Patient
}

type createInput struct {
	Body patient.CreateRequest
}

type updateInput struct {
	ID   int64 `path:"id" example:"1" doc:"Patient id"`
	Body patient.UpdateRequest
}
