package responses

import "time"

type Doctor struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Specialization   string    `json:"specialization"`
	License          string    `json:"license"`
	Availability     string    `json:"availability"`
	RegistrationDate time.Time `json:"registration_date"`
	IsActive         bool      `json:"is_active"`
	AvgRating        float64   `json:"avg_rating"`
	TotalPatients    int       `json:"total_patients"`
}

type Patient struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	PhoneNumber      string     `json:"phone_number,omitempty"`
	DateOfBirth      *time.Time `json:"date_of_birth,omitempty"`
	RegistrationDate time.Time  `json:"registration_date"`
}

type Medicine struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	Price                float64 `json:"price"`
	Description          string  `json:"description"`
	Manufacturer         string  `json:"manufacturer,omitempty"`
	Category             string  `json:"category,omitempty"`
	RequiresPrescription bool    `json:"requires_prescription"`
	InStock              bool    `json:"in_stock"`
}

type LabTest struct {
	ID                      string  `json:"id"`
	Name                    string  `json:"name"`
	Price                   float64 `json:"price"`
	Description             string  `json:"description"`
	PreparationInstructions string  `json:"preparation_instructions,omitempty"`
}

type HealthArticle struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Content     string    `json:"content"`
	PublishedAt time.Time `json:"published_at"`
}
