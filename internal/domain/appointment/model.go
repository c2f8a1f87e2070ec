package appointment

// Appointment is a scheduled visit. Appointments live in process memory
// only; they are demo data and not part of the relational store.
type Appointment struct {
	ID          int    `json:"id"`
	PatientName string `json:"patient_name"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Reason      string `json:"reason"`
	Status      string `json:"status"`
}

// UpdateRequest carries the editable appointment fields.
type UpdateRequest struct {
	Date   string `json:"date"`
	Time   string `json:"time"`
	Reason string `json:"reason"`
	Status string `json:"status"`
}
