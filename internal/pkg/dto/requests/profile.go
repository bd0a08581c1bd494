package requests

type UpdateProfile struct {
	Name        string  `json:"name,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`

	// Doctor-only fields.
	Specialization string `json:"specialization,omitempty"`
	Availability   string `json:"availability,omitempty"`
}

type Pagination struct {
	Page     int
	PageSize int
}
