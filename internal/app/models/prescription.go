package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PrescriptionMedicine struct {
	Name      string
	Dosage    string
	Frequency string
	Duration  string
}

type Prescription struct {
	ID           string
	PatientID    string
	DoctorID     string
	PatientName  string
	Date         time.Time
	Instructions string
	Medicines    []PrescriptionMedicine
}

func PrescriptionFromDoc(doc bson.M) (*Prescription, bool) {
	id, ok := docID(doc)
	if !ok {
		return nil, false
	}
	patientID, ok := docString(doc, "patientId")
	if !ok {
		return nil, false
	}
	doctorID, ok := docString(doc, "doctorId")
	if !ok {
		return nil, false
	}
	patientName, ok := docString(doc, "patientName")
	if !ok {
		return nil, false
	}
	date, ok := docTime(doc, "date")
	if !ok {
		return nil, false
	}
	instructions, ok := docString(doc, "instructions")
	if !ok {
		return nil, false
	}
	medicinesRaw, ok := doc["medicines"].(bson.A)
	if !ok {
		return nil, false
	}

	medicines := make([]PrescriptionMedicine, 0, len(medicinesRaw))
	for _, entry := range medicinesRaw {
		medicineDoc, ok := entry.(bson.M)
		if !ok {
			continue
		}
		name, okName := docString(medicineDoc, "name")
		dosage, okDosage := docString(medicineDoc, "dosage")
		frequency, okFrequency := docString(medicineDoc, "frequency")
		duration, okDuration := docString(medicineDoc, "duration")
		if !okName || !okDosage || !okFrequency || !okDuration {
			continue
		}
		medicines = append(medicines, PrescriptionMedicine{
			Name:      name,
			Dosage:    dosage,
			Frequency: frequency,
			Duration:  duration,
		})
	}

	return &Prescription{
		ID:           id,
		PatientID:    patientID,
		DoctorID:     doctorID,
		PatientName:  patientName,
		Date:         date,
		Instructions: instructions,
		Medicines:    medicines,
	}, true
}

func (p *Prescription) ToDoc() bson.M {
	medicines := make(bson.A, 0, len(p.Medicines))
	for _, medicine := range p.Medicines {
		medicines = append(medicines, bson.M{
			"name":      medicine.Name,
			"dosage":    medicine.Dosage,
			"frequency": medicine.Frequency,
			"duration":  medicine.Duration,
		})
	}

	return bson.M{
		"_id":          p.ID,
		"patientId":    p.PatientID,
		"doctorId":     p.DoctorID,
		"patientName":  p.PatientName,
		"date":         primitive.NewDateTimeFromTime(p.Date),
		"instructions": p.Instructions,
		"medicines":    medicines,
	}
}
