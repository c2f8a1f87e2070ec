package patient

// Patient is the full clinical record. Contact and EmergencyContact are
// free-form mappings (phone/email and the like) persisted as serialized
// text; MedicalHistory and Notes are optional.
type Patient struct {
	ID               int64             `json:"id"`
	Name             string            `json:"name"`
	DateOfBirth      string            `json:"date_of_birth"`
	Gender           string            `json:"gender"`
	LastVisit        string            `json:"last_visit"`
	Contact          map[string]string `json:"contact"`
	EmergencyContact map[string]string `json:"emergency_contact"`
	Insurance        string            `json:"insurance"`
	MedicalHistory   *string           `json:"medical_history"`
	Notes            *string           `json:"notes"`
}

// Summary is the reduced projection served by the patient list.
type Summary struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	DateOfBirth string `json:"date_of_birth"`
	Gender      string `json:"gender"`
	LastVisit   string `json:"last_visit"`
}

// CreateRequest carries a new patient record.
type CreateRequest struct {
	Name             string            `json:"name" validate:"required"`
	DateOfBirth      string            `json:"date_of_birth" validate:"required"`
	Gender           string            `json:"gender" validate:"required"`
	LastVisit        string            `json:"last_visit" validate:"required"`
	Contact          map[string]string `json:"contact" validate:"required"`
	EmergencyContact map[string]string `json:"emergency_contact" validate:"required"`
	Insurance        string            `json:"insurance" validate:"required"`
	MedicalHistory   *string           `json:"medical_history"`
	Notes            *string           `json:"notes"`
}

// UpdateRequest is a partial update: nil fields keep their stored value.
type UpdateRequest struct {
	Name             *string           `json:"name"`
	DateOfBirth      *string           `json:"date_of_birth"`
	Gender           *string           `json:"gender"`
	LastVisit        *string           `json:"last_visit"`
	Contact          map[string]string `json:"contact"`
	EmergencyContact map[string]string `json:"emergency_contact"`
	Insurance        *string           `json:"insurance"`
	MedicalHistory   *string           `json:"medical_history"`
	Notes            *string           `json:"notes"`
}
