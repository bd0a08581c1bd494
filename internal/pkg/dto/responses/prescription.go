package responses

import "time"

type PrescriptionMedicine struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	Duration  string `json:"duration"`
}

type Prescription struct {
	ID           string                 `json:"id"`
	PatientID    string                 `json:"patient_id"`
	DoctorID     string                 `json:"doctor_id"`
	PatientName  string                 `json:"patient_name"`
	Date         time.Time              `json:"date"`
	Instructions string                 `json:"instructions"`
	Medicines    []PrescriptionMedicine `json:"medicines"`
}

type LabTestInfo struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

type LabResult struct {
	ID          string      `json:"id"`
	PatientID   string      `json:"patient_id"`
	DoctorID    string      `json:"doctor_id"`
	PatientName string      `json:"patient_name"`
	TestDate    time.Time   `json:"test_date"`
	Results     string      `json:"results"`
	Status      string      `json:"status"`
	LabTest     LabTestInfo `json:"lab_test"`
}
