package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Doctor struct {
	ID               string
	Name             string
	Email            string
	Specialization   string
	License          string
	Availability     string
	RegistrationDate time.Time
	IsActive         bool
	AvgRating        float64
	TotalPatients    int
}

func DoctorFromDoc(doc bson.M) (*Doctor, bool) {
	id, ok := docID(doc)
	if !ok {
		return nil, false
	}
	name, ok := docString(doc, "name")
	if !ok {
		return nil, false
	}
	email, ok := docString(doc, "email")
	if !ok {
		return nil, false
	}
	specialization, ok := docString(doc, "specialization")
	if !ok {
		return nil, false
	}
	license, ok := docString(doc, "license")
	if !ok {
		return nil, false
	}
	availability, ok := docString(doc, "availability")
	if !ok {
		return nil, false
	}

	return &Doctor{
		ID:               id,
		Name:             name,
		Email:            email,
		Specialization:   specialization,
		License:          license,
		Availability:     availability,
		RegistrationDate: docTimeOr(doc, "registrationDate", time.Now()),
		IsActive:         docBool(doc, "isActive", true),
		AvgRating:        docFloatOr(doc, "avgRating", 5.0),
		TotalPatients:    docInt(doc, "totalPatients", 0),
	}, true
}

func (d *Doctor) ToDoc() bson.M {
	return bson.M{
		"_id":              d.ID,
		"name":             d.Name,
		"email":            d.Email,
		"specialization":   d.Specialization,
		"license":          d.License,
		"availability":     d.Availability,
		"registrationDate": primitive.NewDateTimeFromTime(d.RegistrationDate),
		"isActive":         d.IsActive,
		"avgRating":        d.AvgRating,
		"totalPatients":    d.TotalPatients,
	}
}

// MatchesSearch reports a case-insensitive substring match against the
// doctor's name or specialization.
func (d *Doctor) MatchesSearch(term string) bool {
	return matchesFold(term, d.Name, d.Specialization)
}
