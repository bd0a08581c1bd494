package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account document in the users collection. Patients keep their
// profile here; doctors additionally own a document in the doctors collection
// keyed by the same ID.
type User struct {
	ID               string
	Name             string
	Email            string
	PasswordHash     string
	UserType         string
	PhoneNumber      string
	DateOfBirth      *time.Time
	RegistrationDate time.Time
	ProfileImage     string
}

func UserFromDoc(doc bson.M) (*User, bool) {
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

	user := &User{
		ID:               id,
		Name:             name,
		Email:            email,
		PasswordHash:     docStringOr(doc, "passwordHash", ""),
		UserType:         docStringOr(doc, "userType", "patient"),
		PhoneNumber:      docStringOr(doc, "phoneNumber", ""),
		RegistrationDate: docTimeOr(doc, "registrationDate", time.Now()),
		ProfileImage:     docStringOr(doc, "profileImage", ""),
	}
	if dob, ok := docTime(doc, "dateOfBirth"); ok {
		user.DateOfBirth = &dob
	}
	return user, true
}

// MatchesSearch reports a case-insensitive substring match against the
// user's name or email.
func (u *User) MatchesSearch(term string) bool {
	return matchesFold(term, u.Name, u.Email)
}

func (u *User) ToDoc() bson.M {
	doc := bson.M{
		"_id":              u.ID,
		"name":             u.Name,
		"email":            u.Email,
		"passwordHash":     u.PasswordHash,
		"userType":         u.UserType,
		"registrationDate": primitive.NewDateTimeFromTime(u.RegistrationDate),
	}
	if u.PhoneNumber != "" {
		doc["phoneNumber"] = u.PhoneNumber
	}
	if u.DateOfBirth != nil {
		doc["dateOfBirth"] = primitive.NewDateTimeFromTime(*u.DateOfBirth)
	}
	if u.ProfileImage != "" {
		doc["profileImage"] = u.ProfileImage
	}
	return doc
}
