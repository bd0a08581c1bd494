package appointments

import (
	"healthsync-service/internal/app/models"
	"healthsync-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterAppointments(t *testing.T) {
	now := time.Date(2026, time.September, 2, 12, 0, 0, 0, time.UTC)

	appointments := []models.Appointment{
		{ID: "a1", Status: models.AppointmentPending, Date: now.Add(2 * time.Hour)},
		{ID: "a2", Status: models.AppointmentConfirmed, Date: now.AddDate(0, 0, 1)},
		{ID: "a3", Status: models.AppointmentCancelled, Date: now.AddDate(0, 0, 2)},
		{ID: "a4", Status: models.AppointmentCompleted, Date: now.AddDate(0, 0, -3)},
	}

	ids := func(list []models.Appointment) []string {
		out := make([]string, 0, len(list))
		for _, a := range list {
			out = append(out, a.ID)
		}
		return out
	}

	t.Run("all keeps everything", func(t *testing.T) {
		assert.Len(t, FilterAppointments(appointments, constvars.AppointmentFilterAll, now), 4)
	})

	t.Run("unknown filter behaves as all", func(t *testing.T) {
		assert.Len(t, FilterAppointments(appointments, "bogus", now), 4)
	})

	t.Run("pending keeps only pending status", func(t *testing.T) {
		result := FilterAppointments(appointments, constvars.AppointmentFilterPending, now)
		assert.Equal(t, []string{"a1"}, ids(result))
	})

	t.Run("today keeps the whole calendar day", func(t *testing.T) {
		endOfDay := []models.Appointment{
			{ID: "late", Status: models.AppointmentPending, Date: time.Date(2026, time.September, 2, 23, 59, 0, 0, time.UTC)},
			{ID: "nextDay", Status: models.AppointmentPending, Date: time.Date(2026, time.September, 3, 0, 1, 0, 0, time.UTC)},
		}
		result := FilterAppointments(endOfDay, constvars.AppointmentFilterToday, now)
		assert.Equal(t, []string{"late"}, ids(result))
	})

	t.Run("today includes past-status appointments on the same day", func(t *testing.T) {
		result := FilterAppointments(appointments, constvars.AppointmentFilterToday, now)
		assert.Equal(t, []string{"a1"}, ids(result))
	})

	t.Run("upcoming requires a strictly future day", func(t *testing.T) {
		result := FilterAppointments(appointments, constvars.AppointmentFilterUpcoming, now)
		require.Len(t, result, 1)
		assert.Equal(t, "a2", result[0].ID)
	})

	t.Run("upcoming excludes later today", func(t *testing.T) {
		laterToday := []models.Appointment{
			{ID: "soon", Status: models.AppointmentConfirmed, Date: now.Add(3 * time.Hour)},
		}
		assert.Empty(t, FilterAppointments(laterToday, constvars.AppointmentFilterUpcoming, now))
	})

	t.Run("upcoming excludes cancelled on future days", func(t *testing.T) {
		cancelled := []models.Appointment{
			{ID: "c1", Status: models.AppointmentCancelled, Date: now.AddDate(0, 0, 5)},
		}
		assert.Empty(t, FilterAppointments(cancelled, constvars.AppointmentFilterUpcoming, now))
	})
}
