package appointments

import (
	"context"
	"healthsync-service/internal/app/contracts"
	"healthsync-service/internal/app/models"
	"healthsync-service/internal/pkg/constvars"
	"healthsync-service/internal/pkg/dto/requests"
	"healthsync-service/internal/pkg/dto/responses"
	"healthsync-service/internal/pkg/exceptions"
	"healthsync-service/internal/pkg/utils"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	DoctorRepository      contracts.DoctorRepository
	UserRepository        contracts.UserRepository
	SessionService        contracts.SessionService
	Log                   *zap.Logger
}

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	doctorRepository contracts.DoctorRepository,
	userRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = &appointmentUsecase{
			AppointmentRepository: appointmentRepository,
			DoctorRepository:      doctorRepository,
			UserRepository:        userRepository,
			SessionService:        sessionService,
			Log:                   logger,
		}
	})
	return appointmentUsecaseInstance
}

func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, sessionData string, request *requests.CreateAppointment) (*responses.CreateAppointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	// Slot presence is checked before the reason text so the client always
	// sees the slot error first when both are missing.
	if request.Slot == "" {
		return nil, exceptions.ErrSlotNotSelected(nil)
	}
	slotStart, err := time.Parse(time.RFC3339, request.Slot)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	if strings.TrimSpace(request.Reason) == "" {
		return nil, exceptions.ErrReasonRequired(nil)
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, request.DoctorID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CreateAppointment error finding doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
			zap.Error(err),
		)
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	// The booking carries a denormalized patient name so doctor-side
	// listings never need a join back to the users collection.
	patient, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if patient == nil || patient.Name == "" {
		return nil, exceptions.ErrPatientNameMissing(nil)
	}

	now := time.Now()
	appointment := &models.Appointment{
		ID:          utils.GenerateDocumentID(),
		PatientID:   session.UserID,
		DoctorID:    request.DoctorID,
		PatientName: patient.Name,
		Date:        slotStart,
		Reason:      strings.TrimSpace(request.Reason),
		Status:      models.AppointmentPending,
		UpdatedAt:   now,
	}

	// Double bookings of the same slot are accepted; the doctor resolves
	// them at confirmation time.
	if err := uc.AppointmentRepository.Insert(ctx, appointment); err != nil {
		uc.Log.Error("appointmentUsecase.CreateAppointment error inserting appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
		zap.String(constvars.LoggingPatientIDKey, appointment.PatientID),
	)
	return &responses.CreateAppointment{
		AppointmentID: appointment.ID,
		Status:        string(appointment.Status),
		Date:          appointment.Date,
	}, nil
}

func (uc *appointmentUsecase) FindAll(ctx context.Context, sessionData string, queryParamsRequest *requests.QueryParams) ([]responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryParamsKey, queryParamsRequest.Filter),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	var appointments []models.Appointment
	if session.IsDoctor() {
		appointments, err = uc.AppointmentRepository.FindByDoctorID(ctx, session.UserID)
	} else {
		appointments, err = uc.AppointmentRepository.FindByPatientID(ctx, session.UserID)
	}
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindAll error finding appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, session.UserID),
			zap.Error(err),
		)
		return nil, err
	}

	filtered := FilterAppointments(appointments, queryParamsRequest.Filter, time.Now())
	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].Date.Before(filtered[j].Date)
	})

	doctorNames := make(map[string]string)
	result := make([]responses.Appointment, 0, len(filtered))
	for _, appointment := range filtered {
		result = append(result, uc.buildAppointmentResponse(ctx, &appointment, doctorNames))
	}

	uc.Log.Info("appointmentUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentCountKey, len(result)),
	)
	return result, nil
}

func (uc *appointmentUsecase) FindByID(ctx context.Context, sessionData string, appointmentID string) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	appointment, err := uc.findOwned(ctx, session.UserID, appointmentID)
	if err != nil {
		return nil, err
	}

	response := uc.buildAppointmentResponse(ctx, appointment, make(map[string]string))
	return &response, nil
}

func (uc *appointmentUsecase) ConfirmAppointment(ctx context.Context, sessionData string, appointmentID string, request *requests.TransitionAppointment) (*responses.Appointment, error) {
	return uc.transition(ctx, sessionData, appointmentID, models.AppointmentConfirmed, request.Notes, true)
}

func (uc *appointmentUsecase) CompleteAppointment(ctx context.Context, sessionData string, appointmentID string, request *requests.TransitionAppointment) (*responses.Appointment, error) {
	return uc.transition(ctx, sessionData, appointmentID, models.AppointmentCompleted, request.Notes, true)
}

func (uc *appointmentUsecase) CancelAppointment(ctx context.Context, sessionData string, appointmentID string, request *requests.TransitionAppointment) (*responses.Appointment, error) {
	return uc.transition(ctx, sessionData, appointmentID, models.AppointmentCancelled, request.Notes, false)
}

// transition applies a status change after checking ownership and the
// lifecycle rules. doctorOnly restricts confirm and complete to the treating
// doctor; cancel is open to either party.
func (uc *appointmentUsecase) transition(ctx context.Context, sessionData string, appointmentID string, next models.AppointmentStatus, notes string, doctorOnly bool) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.transition called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingStatusKey, string(next)),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	appointment, err := uc.findOwned(ctx, session.UserID, appointmentID)
	if err != nil {
		return nil, err
	}
	if doctorOnly && appointment.DoctorID != session.UserID {
		return nil, exceptions.WrapWithoutError(constvars.StatusForbidden, constvars.ErrClientNotAuthorized, constvars.ErrDevInvalidInput)
	}

	if !appointment.Status.CanTransitionTo(next) {
		return nil, exceptions.ErrAppointmentInvalidTransition(string(appointment.Status), string(next))
	}

	now := time.Now()
	if err := uc.AppointmentRepository.UpdateStatus(ctx, appointmentID, next, notes, now); err != nil {
		uc.Log.Error("appointmentUsecase.transition error updating status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		return nil, err
	}

	appointment.Status = next
	appointment.UpdatedAt = now
	if notes != "" {
		appointment.Notes = notes
	}

	uc.Log.Info("appointmentUsecase.transition succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	response := uc.buildAppointmentResponse(ctx, appointment, make(map[string]string))
	return &response, nil
}

// findOwned loads an appointment and rejects callers who are neither the
// patient nor the doctor on it.
func (uc *appointmentUsecase) findOwned(ctx context.Context, userID, appointmentID string) (*models.Appointment, error) {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}
	if appointment.PatientID != userID && appointment.DoctorID != userID {
		return nil, exceptions.WrapWithoutError(constvars.StatusForbidden, constvars.ErrClientNotAuthorized, constvars.ErrDevInvalidInput)
	}
	return appointment, nil
}

func (uc *appointmentUsecase) buildAppointmentResponse(ctx context.Context, appointment *models.Appointment, doctorNames map[string]string) responses.Appointment {
	doctorName, ok := doctorNames[appointment.DoctorID]
	if !ok {
		if doctor, err := uc.DoctorRepository.FindByID(ctx, appointment.DoctorID); err == nil && doctor != nil {
			doctorName = doctor.Name
		}
		doctorNames[appointment.DoctorID] = doctorName
	}

	return responses.Appointment{
		ID:          appointment.ID,
		PatientID:   appointment.PatientID,
		DoctorID:    appointment.DoctorID,
		PatientName: appointment.PatientName,
		DoctorName:  doctorName,
		Date:        appointment.Date,
		Reason:      appointment.Reason,
		Status:      string(appointment.Status),
		UpdatedAt:   appointment.UpdatedAt,
		Notes:       appointment.Notes,
	}
}
