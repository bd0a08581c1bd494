package contracts

import (
	"context"
	"healthsync-service/internal/app/models"
	"healthsync-service/internal/pkg/dto/requests"
	"healthsync-service/internal/pkg/dto/responses"
)

type MedicineUsecase interface {
	FindAll(ctx context.Context, queryParamsRequest *requests.QueryParams, pagination *requests.Pagination) ([]responses.Medicine, int, error)
	FindByID(ctx context.Context, medicineID string) (*responses.Medicine, error)
}

type MedicineRepository interface {
	FindAll(ctx context.Context) ([]models.Medicine, error)
	FindByID(ctx context.Context, medicineID string) (*models.Medicine, error)
}

type LabTestUsecase interface {
	FindAll(ctx context.Context) ([]responses.LabTest, error)
	FindByID(ctx context.Context, labTestID string) (*responses.LabTest, error)
}

type LabTestRepository interface {
	FindAll(ctx context.Context) ([]models.LabTest, error)
	FindByID(ctx context.Context, labTestID string) (*models.LabTest, error)
}

type HealthArticleUsecase interface {
	FindAll(ctx context.Context) ([]responses.HealthArticle, error)
	FindByID(ctx context.Context, articleID string) (*responses.HealthArticle, error)
}

type HealthArticleRepository interface {
	FindAll(ctx context.Context) ([]models.HealthArticle, error)
	FindByID(ctx context.Context, articleID string) (*models.HealthArticle, error)
}
