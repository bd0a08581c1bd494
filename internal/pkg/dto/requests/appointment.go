package requests

// CreateAppointment is the booking submission payload. Slot is the start time
// of a generated slot in RFC 3339. The validation order matters: slot presence
// is checked before the reason text, mirroring the booking flow.
type CreateAppointment struct {
	DoctorID string `json:"doctor_id" validate:"required"`
	Slot     string `json:"slot"`
	Reason   string `json:"reason"`
}

// TransitionAppointment carries the optional notes persisted alongside a
// confirm/complete/cancel status change.
type TransitionAppointment struct {
	Notes string `json:"notes,omitempty"`
}

type QueryParams struct {
	Filter    string
	Search    string
	Date      string
	DoctorID  string
	PatientID string
	UserID    string
	Page      int
	PageSize  int
}
