package contracts

import (
	"context"
	"healthsync-service/internal/app/models"
	"healthsync-service/internal/pkg/dto/requests"
	"healthsync-service/internal/pkg/dto/responses"
)

type PrescriptionUsecase interface {
	CreatePrescription(ctx context.Context, sessionData string, request *requests.CreatePrescription) (*responses.Prescription, error)
	FindAll(ctx context.Context, sessionData string) ([]responses.Prescription, error)
	FindByID(ctx context.Context, sessionData string, prescriptionID string) (*responses.Prescription, error)
}

type PrescriptionRepository interface {
	Insert(ctx context.Context, prescription *models.Prescription) error
	FindByPatientID(ctx context.Context, patientID string) ([]models.Prescription, error)
	FindByDoctorID(ctx context.Context, doctorID string) ([]models.Prescription, error)
	FindByID(ctx context.Context, prescriptionID string) (*models.Prescription, error)
}

type LabResultUsecase interface {
	FindAll(ctx context.Context, sessionData string) ([]responses.LabResult, error)
	FindByID(ctx context.Context, sessionData string, labResultID string) (*responses.LabResult, error)
	UpdateLabResult(ctx context.Context, sessionData string, labResultID string, request *requests.UpdateLabResult) (*responses.LabResult, error)
}

type LabResultRepository interface {
	FindByPatientID(ctx context.Context, patientID string) ([]models.LabResult, error)
	FindByDoctorID(ctx context.Context, doctorID string) ([]models.LabResult, error)
	FindByID(ctx context.Context, labResultID string) (*models.LabResult, error)
	Update(ctx context.Context, labResult *models.LabResult) error
}

type DashboardUsecase interface {
	GetDoctorStats(ctx context.Context, sessionData string) (*responses.DashboardStats, error)
}
