package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

func ParseAppointmentStatus(raw string) (AppointmentStatus, bool) {
	switch AppointmentStatus(raw) {
	case AppointmentPending, AppointmentConfirmed, AppointmentCompleted, AppointmentCancelled:
		return AppointmentStatus(raw), true
	}
	return "", false
}

// IsTerminal reports whether no further transition is permitted. The store
// itself does not enforce this; the usecase does.
func (s AppointmentStatus) IsTerminal() bool {
	return s == AppointmentCompleted || s == AppointmentCancelled
}

// CanTransitionTo encodes the lifecycle:
// pending -> confirmed -> completed, and pending|confirmed -> cancelled.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	switch next {
	case AppointmentConfirmed:
		return s == AppointmentPending
	case AppointmentCompleted:
		return s == AppointmentConfirmed
	case AppointmentCancelled:
		return s == AppointmentPending || s == AppointmentConfirmed
	}
	return false
}

type Appointment struct {
	ID          string
	PatientID   string
	DoctorID    string
	PatientName string
	Date        time.Time
	Reason      string
	Status      AppointmentStatus
	UpdatedAt   time.Time
	Notes       string
}

// AppointmentFromDoc decodes a raw appointment document. It returns false when
// any required field is missing or mistyped; the record is then dropped.
func AppointmentFromDoc(doc bson.M) (*Appointment, bool) {
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
	reason, ok := docString(doc, "reason")
	if !ok {
		return nil, false
	}
	statusRaw, ok := docString(doc, "status")
	if !ok {
		return nil, false
	}
	status, ok := ParseAppointmentStatus(statusRaw)
	if !ok {
		return nil, false
	}

	return &Appointment{
		ID:          id,
		PatientID:   patientID,
		DoctorID:    doctorID,
		PatientName: patientName,
		Date:        date,
		Reason:      reason,
		Status:      status,
		UpdatedAt:   docTimeOr(doc, "updatedAt", time.Now()),
		Notes:       docStringOr(doc, "notes", ""),
	}, true
}

func (a *Appointment) ToDoc() bson.M {
	doc := bson.M{
		"_id":         a.ID,
		"patientId":   a.PatientID,
		"doctorId":    a.DoctorID,
		"patientName": a.PatientName,
		"date":        primitive.NewDateTimeFromTime(a.Date),
		"reason":      a.Reason,
		"status":      string(a.Status),
		"updatedAt":   primitive.NewDateTimeFromTime(a.UpdatedAt),
	}
	if a.Notes != "" {
		doc["notes"] = a.Notes
	}
	return doc
}
