package contracts

import (
	"context"
	"healthsync-service/internal/app/models"
	"healthsync-service/internal/pkg/dto/requests"
	"healthsync-service/internal/pkg/dto/responses"
)

type DoctorUsecase interface {
	// FindAll returns one page of the filtered directory plus the total
	// match count, so the caller can build pagination links.
	FindAll(ctx context.Context, queryParamsRequest *requests.QueryParams, pagination *requests.Pagination) ([]responses.Doctor, int, error)
	FindByID(ctx context.Context, doctorID string) (*responses.Doctor, error)
}

type DoctorRepository interface {
	Insert(ctx context.Context, doctor *models.Doctor) error
	FindAll(ctx context.Context) ([]models.Doctor, error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	Update(ctx context.Context, doctor *models.Doctor) error
}
