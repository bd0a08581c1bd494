package requests

type PrescriptionMedicine struct {
	Name      string `json:"name" validate:"required"`
	Dosage    string `json:"dosage" validate:"required"`
	Frequency string `json:"frequency" validate:"required"`
	Duration  string `json:"duration" validate:"required"`
}

type CreatePrescription struct {
	PatientID    string                 `json:"patient_id" validate:"required"`
	Instructions string                 `json:"instructions" validate:"required"`
	Medicines    []PrescriptionMedicine `json:"medicines" validate:"required,min=1,dive"`
}
