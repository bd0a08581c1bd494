package doctors

import (
	"context"
	"healthsync-service/internal/app/contracts"
	"healthsync-service/internal/app/models"
	"healthsync-service/internal/pkg/constvars"
	"healthsync-service/internal/pkg/dto/requests"
	"healthsync-service/internal/pkg/dto/responses"
	"healthsync-service/internal/pkg/exceptions"
	"healthsync-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

type doctorUsecase struct {
	DoctorRepository contracts.DoctorRepository
	Log              *zap.Logger
}

var (
	doctorUsecaseInstance contracts.DoctorUsecase
	onceDoctorUsecase     sync.Once
)

func NewDoctorUsecase(doctorRepository contracts.DoctorRepository, logger *zap.Logger) contracts.DoctorUsecase {
	onceDoctorUsecase.Do(func() {
		doctorUsecaseInstance = &doctorUsecase{
			DoctorRepository: doctorRepository,
			Log:              logger,
		}
	})
	return doctorUsecaseInstance
}

func (uc *doctorUsecase) FindAll(ctx context.Context, queryParamsRequest *requests.QueryParams, pagination *requests.Pagination) ([]responses.Doctor, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, queryParamsRequest.Search),
	)

	doctors, err := uc.DoctorRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("doctorUsecase.FindAll error finding doctors",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}

	// Search filters in memory after the fetch, matching name or
	// specialization case-insensitively. An empty term keeps everything.
	filtered := make([]responses.Doctor, 0, len(doctors))
	for _, doctor := range doctors {
		if !doctor.MatchesSearch(queryParamsRequest.Search) {
			continue
		}
		filtered = append(filtered, buildDoctorResponse(&doctor))
	}

	start, end := utils.PageBounds(pagination, len(filtered))
	result := filtered[start:end]

	uc.Log.Info("doctorUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(result)),
	)
	return result, len(filtered), nil
}

func (uc *doctorUsecase) FindByID(ctx context.Context, doctorID string) (*responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		uc.Log.Error("doctorUsecase.FindByID error finding doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	response := buildDoctorResponse(doctor)
	return &response, nil
}

func buildDoctorResponse(doctor *models.Doctor) responses.Doctor {
	return responses.Doctor{
		ID:               doctor.ID,
		Name:             doctor.Name,
		Email:            doctor.Email,
		Specialization:   doctor.Specialization,
		License:          doctor.License,
		Availability:     doctor.Availability,
		RegistrationDate: doctor.RegistrationDate,
		IsActive:         doctor.IsActive,
		AvgRating:        doctor.AvgRating,
		TotalPatients:    doctor.TotalPatients,
	}
}
