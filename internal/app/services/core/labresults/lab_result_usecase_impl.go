package labresults

import (
	"context"
	"healthsync-service/internal/app/contracts"
	"healthsync-service/internal/app/models"
	"healthsync-service/internal/pkg/constvars"
	"healthsync-service/internal/pkg/dto/requests"
	"healthsync-service/internal/pkg/dto/responses"
	"healthsync-service/internal/pkg/exceptions"
	"sort"
	"sync"

	"go.uber.org/zap"
)

type labResultUsecase struct {
	LabResultRepository contracts.LabResultRepository
	SessionService      contracts.SessionService
	Log                 *zap.Logger
}

var (
	labResultUsecaseInstance contracts.LabResultUsecase
	onceLabResultUsecase     sync.Once
)

func NewLabResultUsecase(
	labResultRepository contracts.LabResultRepository,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.LabResultUsecase {
	onceLabResultUsecase.Do(func() {
		labResultUsecaseInstance = &labResultUsecase{
			LabResultRepository: labResultRepository,
			SessionService:      sessionService,
			Log:                 logger,
		}
	})
	return labResultUsecaseInstance
}

func (uc *labResultUsecase) FindAll(ctx context.Context, sessionData string) ([]responses.LabResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("labResultUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	var labResults []models.LabResult
	if session.IsDoctor() {
		labResults, err = uc.LabResultRepository.FindByDoctorID(ctx, session.UserID)
	} else {
		labResults, err = uc.LabResultRepository.FindByPatientID(ctx, session.UserID)
	}
	if err != nil {
		uc.Log.Error("labResultUsecase.FindAll error finding lab results",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, session.UserID),
			zap.Error(err),
		)
		return nil, err
	}

	sort.Slice(labResults, func(i, j int) bool {
		return labResults[i].TestDate.After(labResults[j].TestDate)
	})

	result := make([]responses.LabResult, 0, len(labResults))
	for _, labResult := range labResults {
		result = append(result, buildLabResultResponse(&labResult))
	}
	return result, nil
}

func (uc *labResultUsecase) FindByID(ctx context.Context, sessionData string, labResultID string) (*responses.LabResult, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	labResult, err := uc.findOwned(ctx, session.UserID, labResultID)
	if err != nil {
		return nil, err
	}

	response := buildLabResultResponse(labResult)
	return &response, nil
}

func (uc *labResultUsecase) UpdateLabResult(ctx context.Context, sessionData string, labResultID string, request *requests.UpdateLabResult) (*responses.LabResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("labResultUsecase.UpdateLabResult called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDocumentIDKey, labResultID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if !session.IsDoctor() {
		return nil, exceptions.WrapWithoutError(constvars.StatusForbidden, constvars.ErrClientNotAuthorized, constvars.ErrDevInvalidInput)
	}

	labResult, err := uc.findOwned(ctx, session.UserID, labResultID)
	if err != nil {
		return nil, err
	}

	status, ok := models.ParseLabResultStatus(request.Status)
	if !ok {
		return nil, exceptions.ErrInputValidation(nil)
	}
	labResult.Results = request.Results
	labResult.Status = status

	if err := uc.LabResultRepository.Update(ctx, labResult); err != nil {
		uc.Log.Error("labResultUsecase.UpdateLabResult error updating lab result",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDocumentIDKey, labResultID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("labResultUsecase.UpdateLabResult succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDocumentIDKey, labResultID),
	)
	response := buildLabResultResponse(labResult)
	return &response, nil
}

func (uc *labResultUsecase) findOwned(ctx context.Context, userID, labResultID string) (*models.LabResult, error) {
	labResult, err := uc.LabResultRepository.FindByID(ctx, labResultID)
	if err != nil {
		return nil, err
	}
	if labResult == nil {
		return nil, exceptions.WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientCannotProcessRequest, constvars.ErrDevDBFailedToFindDocument)
	}
	if labResult.PatientID != userID && labResult.DoctorID != userID {
		return nil, exceptions.WrapWithoutError(constvars.StatusForbidden, constvars.ErrClientNotAuthorized, constvars.ErrDevInvalidInput)
	}
	return labResult, nil
}

func buildLabResultResponse(labResult *models.LabResult) responses.LabResult {
	return responses.LabResult{
		ID:          labResult.ID,
		PatientID:   labResult.PatientID,
		DoctorID:    labResult.DoctorID,
		PatientName: labResult.PatientName,
		TestDate:    labResult.TestDate,
		Results:     labResult.Results,
		Status:      string(labResult.Status),
		LabTest: responses.LabTestInfo{
			ID:          labResult.LabTest.ID,
			Name:        labResult.LabTest.Name,
			Price:       labResult.LabTest.Price,
			Description: labResult.LabTest.Description,
		},
	}
}
