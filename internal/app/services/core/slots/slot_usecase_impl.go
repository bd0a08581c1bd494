package slots

import (
	"context"
	"healthsync-service/internal/app/contracts"
	"healthsync-service/internal/pkg/constvars"
	"healthsync-service/internal/pkg/dto/responses"
	"healthsync-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.uber.org/zap"
)

type slotUsecase struct {
	DoctorRepository contracts.DoctorRepository
	Location         *time.Location
	Log              *zap.Logger
}

var (
	slotUsecaseInstance contracts.SlotUsecase
	onceSlotUsecase     sync.Once
)

func NewSlotUsecase(doctorRepository contracts.DoctorRepository, location *time.Location, logger *zap.Logger) contracts.SlotUsecase {
	onceSlotUsecase.Do(func() {
		slotUsecaseInstance = &slotUsecase{
			DoctorRepository: doctorRepository,
			Location:         location,
			Log:              logger,
		}
	})
	return slotUsecaseInstance
}

func (uc *slotUsecase) GetAvailableSlots(ctx context.Context, doctorID, date string) ([]responses.Slot, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("slotUsecase.GetAvailableSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		uc.Log.Error("slotUsecase.GetAvailableSlots error finding doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	day, err := time.ParseInLocation("2006-01-02", date, uc.Location)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	slots := GenerateDailySlots(day)

	uc.Log.Info("slotUsecase.GetAvailableSlots succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.Int(constvars.LoggingResponseCountKey, len(slots)),
	)
	return slots, nil
}

// GenerateDailySlots returns the bookable slots of the given day: hourly
// slots starting on the hour from 09:00 through 16:00 on weekdays, none on
// weekends. Slot times inherit the day's location.
func GenerateDailySlots(day time.Time) []responses.Slot {
	weekday := day.Weekday()
	if weekday == time.Saturday || weekday == time.Sunday {
		return []responses.Slot{}
	}

	slots := make([]responses.Slot, 0, constvars.SlotsPerWeekday)
	for hour := constvars.SlotStartHour; hour <= constvars.SlotEndHour; hour++ {
		start := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location())
		slots = append(slots, responses.Slot{
			Start: start,
			End:   start.Add(constvars.SlotDurationMins * time.Minute),
		})
	}
	return slots
}
