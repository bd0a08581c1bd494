package appointments

import (
	"healthsync-service/internal/app/models"
	"healthsync-service/internal/pkg/constvars"
	"time"
)

// FilterAppointments narrows a list by the named filter, evaluated against
// now's calendar day in now's location. Unknown filter names behave as "all".
func FilterAppointments(appointments []models.Appointment, filter string, now time.Time) []models.Appointment {
	result := make([]models.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		if matchesFilter(&appointment, filter, now) {
			result = append(result, appointment)
		}
	}
	return result
}

func matchesFilter(appointment *models.Appointment, filter string, now time.Time) bool {
	switch filter {
	case constvars.AppointmentFilterPending:
		return appointment.Status == models.AppointmentPending
	case constvars.AppointmentFilterToday:
		return sameDay(appointment.Date.In(now.Location()), now)
	case constvars.AppointmentFilterUpcoming:
		// Strictly future calendar days only; anything later today is
		// not upcoming, and cancelled appointments never are.
		if appointment.Status == models.AppointmentCancelled {
			return false
		}
		return startOfDay(appointment.Date.In(now.Location())).After(startOfDay(now))
	}
	return true
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
