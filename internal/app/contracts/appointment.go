package contracts

import (
	"context"
	"healthsync-service/internal/app/models"
	"healthsync-service/internal/pkg/dto/requests"
	"healthsync-service/internal/pkg/dto/responses"
	"time"
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, sessionData string, request *requests.CreateAppointment) (*responses.CreateAppointment, error)
	FindAll(ctx context.Context, sessionData string, queryParamsRequest *requests.QueryParams) ([]responses.Appointment, error)
	FindByID(ctx context.Context, sessionData string, appointmentID string) (*responses.Appointment, error)
	ConfirmAppointment(ctx context.Context, sessionData string, appointmentID string, request *requests.TransitionAppointment) (*responses.Appointment, error)
	CompleteAppointment(ctx context.Context, sessionData string, appointmentID string, request *requests.TransitionAppointment) (*responses.Appointment, error)
	CancelAppointment(ctx context.Context, sessionData string, appointmentID string, request *requests.TransitionAppointment) (*responses.Appointment, error)
}

type AppointmentRepository interface {
	Insert(ctx context.Context, appointment *models.Appointment) error
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error)
	FindByDoctorID(ctx context.Context, doctorID string) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, appointmentID string, status models.AppointmentStatus, notes string, updatedAt time.Time) error
	CountByDoctorAndStatus(ctx context.Context, doctorID string, status models.AppointmentStatus) (int, error)
	CountByDoctorBetween(ctx context.Context, doctorID string, from, to time.Time) (int, error)
	DistinctPatientsByDoctor(ctx context.Context, doctorID string) (int, error)
}

type SlotUsecase interface {
	GetAvailableSlots(ctx context.Context, doctorID, date string) ([]responses.Slot, error)
}
