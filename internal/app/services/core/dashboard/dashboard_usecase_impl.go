package dashboard

import (
	"context"
	"healthsync-service/internal/app/contracts"
	"healthsync-service/internal/app/models"
	"healthsync-service/internal/pkg/constvars"
	"healthsync-service/internal/pkg/dto/responses"
	"healthsync-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.uber.org/zap"
)

type dashboardUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	SessionService        contracts.SessionService
	Location              *time.Location
	Log                   *zap.Logger
}

var (
	dashboardUsecaseInstance contracts.DashboardUsecase
	onceDashboardUsecase     sync.Once
)

func NewDashboardUsecase(
	appointmentRepository contracts.AppointmentRepository,
	sessionService contracts.SessionService,
	location *time.Location,
	logger *zap.Logger,
) contracts.DashboardUsecase {
	onceDashboardUsecase.Do(func() {
		dashboardUsecaseInstance = &dashboardUsecase{
			AppointmentRepository: appointmentRepository,
			SessionService:        sessionService,
			Location:              location,
			Log:                   logger,
		}
	})
	return dashboardUsecaseInstance
}

func (uc *dashboardUsecase) GetDoctorStats(ctx context.Context, sessionData string) (*responses.DashboardStats, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("dashboardUsecase.GetDoctorStats called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if !session.IsDoctor() {
		return nil, exceptions.WrapWithoutError(constvars.StatusForbidden, constvars.ErrClientNotAuthorized, constvars.ErrDevInvalidInput)
	}

	now := time.Now().In(uc.Location)
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, uc.Location)
	dayEnd := dayStart.AddDate(0, 0, 1)

	// The three counts are independent reads, fetched concurrently.
	var (
		wg            sync.WaitGroup
		today         int
		pending       int
		totalPatients int
		errToday      error
		errPending    error
		errPatients   error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		today, errToday = uc.AppointmentRepository.CountByDoctorBetween(ctx, session.UserID, dayStart, dayEnd)
	}()
	go func() {
		defer wg.Done()
		pending, errPending = uc.AppointmentRepository.CountByDoctorAndStatus(ctx, session.UserID, models.AppointmentPending)
	}()
	go func() {
		defer wg.Done()
		totalPatients, errPatients = uc.AppointmentRepository.DistinctPatientsByDoctor(ctx, session.UserID)
	}()
	wg.Wait()

	for _, err := range []error{errToday, errPending, errPatients} {
		if err != nil {
			uc.Log.Error("dashboardUsecase.GetDoctorStats error counting appointments",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingDoctorIDKey, session.UserID),
				zap.Error(err),
			)
			return nil, err
		}
	}

	uc.Log.Info("dashboardUsecase.GetDoctorStats succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, session.UserID),
	)
	return &responses.DashboardStats{
		TodayAppointments:   today,
		PendingAppointments: pending,
		TotalPatients:       totalPatients,
	}, nil
}
