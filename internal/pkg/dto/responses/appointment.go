package responses

import "time"

type Appointment struct {
	ID          string    `json:"id"`
	PatientID   string    `json:"patient_id"`
	DoctorID    string    `json:"doctor_id"`
	PatientName string    `json:"patient_name"`
	DoctorName  string    `json:"doctor_name,omitempty"`
	Date        time.Time `json:"date"`
	Reason      string    `json:"reason"`
	Status      string    `json:"status"`
	UpdatedAt   time.Time `json:"updated_at"`
	Notes       string    `json:"notes,omitempty"`
}

type CreateAppointment struct {
	AppointmentID string    `json:"appointment_id"`
	Status        string    `json:"status"`
	Date          time.Time `json:"date"`
}

type Slot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
