package prescriptions

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
	"sync"
	"time"

	"go.uber.org/zap"
)

type prescriptionUsecase struct {
	PrescriptionRepository contracts.PrescriptionRepository
	UserRepository         contracts.UserRepository
	SessionService         contracts.SessionService
	Log                    *zap.Logger
}

var (
	prescriptionUsecaseInstance contracts.PrescriptionUsecase
	oncePrescriptionUsecase     sync.Once
)

func NewPrescriptionUsecase(
	prescriptionRepository contracts.PrescriptionRepository,
	userRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.PrescriptionUsecase {
	oncePrescriptionUsecase.Do(func() {
		prescriptionUsecaseInstance = &prescriptionUsecase{
			PrescriptionRepository: prescriptionRepository,
			UserRepository:         userRepository,
			SessionService:         sessionService,
			Log:                    logger,
		}
	})
	return prescriptionUsecaseInstance
}

func (uc *prescriptionUsecase) CreatePrescription(ctx context.Context, sessionData string, request *requests.CreatePrescription) (*responses.Prescription, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("prescriptionUsecase.CreatePrescription called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if !session.IsDoctor() {
		return nil, exceptions.WrapWithoutError(constvars.StatusForbidden, constvars.ErrClientNotAuthorized, constvars.ErrDevInvalidInput)
	}

	patient, err := uc.UserRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	medicines := make([]models.PrescriptionMedicine, 0, len(request.Medicines))
	for _, medicine := range request.Medicines {
		medicines = append(medicines, models.PrescriptionMedicine{
			Name:      medicine.Name,
			Dosage:    medicine.Dosage,
			Frequency: medicine.Frequency,
			Duration:  medicine.Duration,
		})
	}

	prescription := &models.Prescription{
		ID:           utils.GenerateDocumentID(),
		PatientID:    patient.ID,
		DoctorID:     session.UserID,
		PatientName:  patient.Name,
		Date:         time.Now(),
		Instructions: request.Instructions,
		Medicines:    medicines,
	}
	if err := uc.PrescriptionRepository.Insert(ctx, prescription); err != nil {
		uc.Log.Error("prescriptionUsecase.CreatePrescription error inserting prescription",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("prescriptionUsecase.CreatePrescription succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDocumentIDKey, prescription.ID),
	)
	response := buildPrescriptionResponse(prescription)
	return &response, nil
}

func (uc *prescriptionUsecase) FindAll(ctx context.Context, sessionData string) ([]responses.Prescription, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("prescriptionUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	var prescriptions []models.Prescription
	if session.IsDoctor() {
		prescriptions, err = uc.PrescriptionRepository.FindByDoctorID(ctx, session.UserID)
	} else {
		prescriptions, err = uc.PrescriptionRepository.FindByPatientID(ctx, session.UserID)
	}
	if err != nil {
		uc.Log.Error("prescriptionUsecase.FindAll error finding prescriptions",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, session.UserID),
			zap.Error(err),
		)
		return nil, err
	}

	sort.Slice(prescriptions, func(i, j int) bool {
		return prescriptions[i].Date.After(prescriptions[j].Date)
	})

	result := make([]responses.Prescription, 0, len(prescriptions))
	for _, prescription := range prescriptions {
		result = append(result, buildPrescriptionResponse(&prescription))
	}
	return result, nil
}

func (uc *prescriptionUsecase) FindByID(ctx context.Context, sessionData string, prescriptionID string) (*responses.Prescription, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("prescriptionUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDocumentIDKey, prescriptionID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	prescription, err := uc.PrescriptionRepository.FindByID(ctx, prescriptionID)
	if err != nil {
		return nil, err
	}
	if prescription == nil {
		return nil, exceptions.WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientCannotProcessRequest, constvars.ErrDevDBFailedToFindDocument)
	}
	if prescription.PatientID != session.UserID && prescription.DoctorID != session.UserID {
		return nil, exceptions.WrapWithoutError(constvars.StatusForbidden, constvars.ErrClientNotAuthorized, constvars.ErrDevInvalidInput)
	}

	response := buildPrescriptionResponse(prescription)
	return &response, nil
}

func buildPrescriptionResponse(prescription *models.Prescription) responses.Prescription {
	medicines := make([]responses.PrescriptionMedicine, 0, len(prescription.Medicines))
	for _, medicine := range prescription.Medicines {
		medicines = append(medicines, responses.PrescriptionMedicine{
			Name:      medicine.Name,
			Dosage:    medicine.Dosage,
			Frequency: medicine.Frequency,
			Duration:  medicine.Duration,
		})
	}
	return responses.Prescription{
		ID:           prescription.ID,
		PatientID:    prescription.PatientID,
		DoctorID:     prescription.DoctorID,
		PatientName:  prescription.PatientName,
		Date:         prescription.Date,
		Instructions: prescription.Instructions,
		Medicines:    medicines,
	}
}
