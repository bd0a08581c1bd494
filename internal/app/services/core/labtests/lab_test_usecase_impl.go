package labtests

import (
	"context"
	"healthsync-service/internal/app/contracts"
	"healthsync-service/internal/app/models"
	"healthsync-service/internal/pkg/constvars"
	"healthsync-service/internal/pkg/dto/responses"
	"healthsync-service/internal/pkg/exceptions"
	"sync"

	"go.uber.org/zap"
)

type labTestUsecase struct {
	LabTestRepository contracts.LabTestRepository
	Log               *zap.Logger
}

var (
	labTestUsecaseInstance contracts.LabTestUsecase
	onceLabTestUsecase     sync.Once
)

func NewLabTestUsecase(labTestRepository contracts.LabTestRepository, logger *zap.Logger) contracts.LabTestUsecase {
	onceLabTestUsecase.Do(func() {
		labTestUsecaseInstance = &labTestUsecase{
			LabTestRepository: labTestRepository,
			Log:               logger,
		}
	})
	return labTestUsecaseInstance
}

func (uc *labTestUsecase) FindAll(ctx context.Context) ([]responses.LabTest, error) {
	labTests, err := uc.LabTestRepository.FindAll(ctx)
	if err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Error("labTestUsecase.FindAll error finding lab tests",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result := make([]responses.LabTest, 0, len(labTests))
	for _, labTest := range labTests {
		result = append(result, buildLabTestResponse(&labTest))
	}
	return result, nil
}

func (uc *labTestUsecase) FindByID(ctx context.Context, labTestID string) (*responses.LabTest, error) {
	labTest, err := uc.LabTestRepository.FindByID(ctx, labTestID)
	if err != nil {
		return nil, err
	}
	if labTest == nil {
		return nil, exceptions.WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientCannotProcessRequest, constvars.ErrDevDBFailedToFindDocument)
	}
	response := buildLabTestResponse(labTest)
	return &response, nil
}

func buildLabTestResponse(labTest *models.LabTest) responses.LabTest {
	return responses.LabTest{
		ID:                      labTest.ID,
		Name:                    labTest.Name,
		Price:                   labTest.Price,
		Description:             labTest.Description,
		PreparationInstructions: labTest.PreparationInstructions,
	}
}
