package medicines

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

type medicineUsecase struct {
	MedicineRepository contracts.MedicineRepository
	Log                *zap.Logger
}

var (
	medicineUsecaseInstance contracts.MedicineUsecase
	onceMedicineUsecase     sync.Once
)

func NewMedicineUsecase(medicineRepository contracts.MedicineRepository, logger *zap.Logger) contracts.MedicineUsecase {
	onceMedicineUsecase.Do(func() {
		medicineUsecaseInstance = &medicineUsecase{
			MedicineRepository: medicineRepository,
			Log:                logger,
		}
	})
	return medicineUsecaseInstance
}

func (uc *medicineUsecase) FindAll(ctx context.Context, queryParamsRequest *requests.QueryParams, pagination *requests.Pagination) ([]responses.Medicine, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicineUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, queryParamsRequest.Search),
	)

	medicines, err := uc.MedicineRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("medicineUsecase.FindAll error finding medicines",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}

	filtered := make([]responses.Medicine, 0, len(medicines))
	for _, medicine := range medicines {
		if !medicine.MatchesSearch(queryParamsRequest.Search) {
			continue
		}
		filtered = append(filtered, buildMedicineResponse(&medicine))
	}

	start, end := utils.PageBounds(pagination, len(filtered))
	return filtered[start:end], len(filtered), nil
}

func (uc *medicineUsecase) FindByID(ctx context.Context, medicineID string) (*responses.Medicine, error) {
	medicine, err := uc.MedicineRepository.FindByID(ctx, medicineID)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, exceptions.WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientCannotProcessRequest, constvars.ErrDevDBFailedToFindDocument)
	}
	response := buildMedicineResponse(medicine)
	return &response, nil
}

func buildMedicineResponse(medicine *models.Medicine) responses.Medicine {
	return responses.Medicine{
		ID:                   medicine.ID,
		Name:                 medicine.Name,
		Price:                medicine.Price,
		Description:          medicine.Description,
		Manufacturer:         medicine.Manufacturer,
		Category:             medicine.Category,
		RequiresPrescription: medicine.RequiresPrescription,
		InStock:              medicine.InStock,
	}
}
