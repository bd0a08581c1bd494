package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type LabResultStatus string

const (
	LabResultPending   LabResultStatus = "pending"
	LabResultCompleted LabResultStatus = "completed"
)

func ParseLabResultStatus(raw string) (LabResultStatus, bool) {
	switch LabResultStatus(raw) {
	case LabResultPending, LabResultCompleted:
		return LabResultStatus(raw), true
	}
	return "", false
}

type LabTestInfo struct {
	ID          string
	Name        string
	Price       float64
	Description string
}

type LabResult struct {
	ID          string
	PatientID   string
	DoctorID    string
	PatientName string
	TestDate    time.Time
	Results     string
	Status      LabResultStatus
	LabTest     LabTestInfo
}

func LabResultFromDoc(doc bson.M) (*LabResult, bool) {
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
	testDate, ok := docTime(doc, "testDate")
	if !ok {
		return nil, false
	}
	results, ok := docString(doc, "results")
	if !ok {
		return nil, false
	}
	statusRaw, ok := docString(doc, "status")
	if !ok {
		return nil, false
	}
	status, ok := ParseLabResultStatus(statusRaw)
	if !ok {
		return nil, false
	}
	labTestDoc, ok := doc["labTest"].(bson.M)
	if !ok {
		return nil, false
	}
	labTestID, ok := docString(labTestDoc, "id")
	if !ok {
		return nil, false
	}
	labTestName, ok := docString(labTestDoc, "name")
	if !ok {
		return nil, false
	}
	labTestPrice, ok := docFloat(labTestDoc, "price")
	if !ok {
		return nil, false
	}
	labTestDescription, ok := docString(labTestDoc, "description")
	if !ok {
		return nil, false
	}

	return &LabResult{
		ID:          id,
		PatientID:   patientID,
		DoctorID:    doctorID,
		PatientName: patientName,
		TestDate:    testDate,
		Results:     results,
		Status:      status,
		LabTest: LabTestInfo{
			ID:          labTestID,
			Name:        labTestName,
			Price:       labTestPrice,
			Description: labTestDescription,
		},
	}, true
}

func (l *LabResult) ToDoc() bson.M {
	return bson.M{
		"_id":         l.ID,
		"patientId":   l.PatientID,
		"doctorId":    l.DoctorID,
		"patientName": l.PatientName,
		"testDate":    primitive.NewDateTimeFromTime(l.TestDate),
		"results":     l.Results,
		"status":      string(l.Status),
		"labTest": bson.M{
			"id":          l.LabTest.ID,
			"name":        l.LabTest.Name,
			"price":       l.LabTest.Price,
			"description": l.LabTest.Description,
		},
	}
}
