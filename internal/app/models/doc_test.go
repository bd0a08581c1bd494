package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func validAppointmentDoc() bson.M {
	return bson.M{
		"_id":         "appt-1",
		"patientId":   "pat-1",
		"doctorId":    "doc-1",
		"patientName": "Jane Smith",
		"date":        primitive.NewDateTimeFromTime(time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC)),
		"reason":      "annual checkup",
		"status":      "pending",
	}
}

func TestAppointmentFromDoc(t *testing.T) {
	t.Run("decodes a complete document", func(t *testing.T) {
		appointment, ok := AppointmentFromDoc(validAppointmentDoc())

		require.True(t, ok)
		assert.Equal(t, "appt-1", appointment.ID)
		assert.Equal(t, "Jane Smith", appointment.PatientName)
		assert.Equal(t, AppointmentPending, appointment.Status)
		assert.Equal(t, 9, appointment.Date.UTC().Hour())
	})

	t.Run("drops a document with a missing required field", func(t *testing.T) {
		for _, field := range []string{"_id", "patientId", "doctorId", "patientName", "date", "reason", "status"} {
			doc := validAppointmentDoc()
			delete(doc, field)

			_, ok := AppointmentFromDoc(doc)
			assert.False(t, ok, "field %s", field)
		}
	})

	t.Run("drops a document with a mistyped field", func(t *testing.T) {
		doc := validAppointmentDoc()
		doc["patientId"] = int32(42)

		_, ok := AppointmentFromDoc(doc)
		assert.False(t, ok)
	})

	t.Run("drops an unknown status value", func(t *testing.T) {
		doc := validAppointmentDoc()
		doc["status"] = "rescheduled"

		_, ok := AppointmentFromDoc(doc)
		assert.False(t, ok)
	})

	t.Run("tolerates missing optional fields", func(t *testing.T) {
		appointment, ok := AppointmentFromDoc(validAppointmentDoc())

		require.True(t, ok)
		assert.Empty(t, appointment.Notes)
		assert.False(t, appointment.UpdatedAt.IsZero())
	})
}

func TestCartItemFromDoc(t *testing.T) {
	t.Run("decodes a complete document", func(t *testing.T) {
		item, ok := CartItemFromDoc(bson.M{
			"_id":                  "item-1",
			"userId":               "user-1",
			"type":                 "medicine",
			"productId":            "med-9",
			"name":                 "Paracetamol",
			"price":                25.5,
			"requiresPrescription": true,
		})

		require.True(t, ok)
		assert.Equal(t, "med-9", item.ProductID)
		assert.Equal(t, 25.5, item.Price)
		assert.True(t, item.RequiresPrescription)
	})

	t.Run("accepts an integer price", func(t *testing.T) {
		item, ok := CartItemFromDoc(bson.M{
			"_id":    "item-2",
			"userId": "user-1",
			"type":   "labTest",
			"name":   "Blood Panel",
			"price":  int32(120),
		})

		require.True(t, ok)
		assert.Equal(t, 120.0, item.Price)
		assert.False(t, item.RequiresPrescription)
	})

	t.Run("drops a document without a price", func(t *testing.T) {
		_, ok := CartItemFromDoc(bson.M{
			"_id":    "item-3",
			"userId": "user-1",
			"type":   "medicine",
			"name":   "Ibuprofen",
		})

		assert.False(t, ok)
	})
}

func TestLabTestFromDoc(t *testing.T) {
	t.Run("decodes a complete document", func(t *testing.T) {
		labTest, ok := LabTestFromDoc(bson.M{
			"_id":                     "lab-1",
			"name":                    "Lipid Panel",
			"price":                   80.0,
			"description":             "Cholesterol and triglycerides",
			"preparationInstructions": "Fast for 12 hours",
		})

		require.True(t, ok)
		assert.Equal(t, "Lipid Panel", labTest.Name)
		assert.Equal(t, "Fast for 12 hours", labTest.PreparationInstructions)
	})

	t.Run("drops a document without a description", func(t *testing.T) {
		_, ok := LabTestFromDoc(bson.M{
			"_id":   "lab-2",
			"name":  "Blood Panel",
			"price": 120.0,
		})

		assert.False(t, ok)
	})
}

func TestDocID(t *testing.T) {
	t.Run("accepts a string id", func(t *testing.T) {
		id, ok := docID(bson.M{"_id": "abc"})

		require.True(t, ok)
		assert.Equal(t, "abc", id)
	})

	t.Run("converts an object id to hex", func(t *testing.T) {
		objectID := primitive.NewObjectID()
		id, ok := docID(bson.M{"_id": objectID})

		require.True(t, ok)
		assert.Equal(t, objectID.Hex(), id)
	})

	t.Run("rejects other types", func(t *testing.T) {
		_, ok := docID(bson.M{"_id": int64(7)})
		assert.False(t, ok)
	})
}
