package responses

import "time"

type Register struct {
	UserID   string `json:"user_id"`
	UserType string `json:"user_type"`
}

type Login struct {
	Token    string `json:"token"`
	UserType string `json:"user_type"`
}

type UserProfile struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	UserType         string     `json:"user_type"`
	PhoneNumber      string     `json:"phone_number,omitempty"`
	DateOfBirth      *time.Time `json:"date_of_birth,omitempty"`
	RegistrationDate time.Time  `json:"registration_date"`
	ProfileImageURL  string     `json:"profile_image_url,omitempty"`

	// Doctor-only fields.
	Specialization string `json:"specialization,omitempty"`
	Availability   string `json:"availability,omitempty"`
}

type UploadProfileImage struct {
	ObjectName string `json:"object_name"`
	URL        string `json:"url"`
}

type DashboardStats struct {
	TodayAppointments   int `json:"today_appointments"`
	PendingAppointments int `json:"pending_appointments"`
	TotalPatients       int `json:"total_patients"`
}
