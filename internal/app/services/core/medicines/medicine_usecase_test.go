package medicines

import (
	"context"
	"healthsync-service/internal/app/models"
	"healthsync-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeMedicineRepository struct {
	medicines []models.Medicine
}

func (f *fakeMedicineRepository) FindAll(ctx context.Context) ([]models.Medicine, error) {
	return f.medicines, nil
}

func (f *fakeMedicineRepository) FindByID(ctx context.Context, medicineID string) (*models.Medicine, error) {
	for _, medicine := range f.medicines {
		if medicine.ID == medicineID {
			m := medicine
			return &m, nil
		}
	}
	return nil, nil
}

func TestMedicineUsecase_FindAll_Search(t *testing.T) {
	uc := &medicineUsecase{
		MedicineRepository: &fakeMedicineRepository{medicines: []models.Medicine{
			{ID: "m1", Name: "Paracetamol", Manufacturer: "Acme Pharma", Category: "Analgesic"},
			{ID: "m2", Name: "Amoxicillin", Manufacturer: "BetterMeds", Category: "Antibiotic"},
			{ID: "m3", Name: "Ibuprofen", Manufacturer: "Acme Pharma", Category: "Analgesic"},
		}},
		Log: zap.NewNop(),
	}

	pagination := &requests.Pagination{Page: 1, PageSize: 10}

	t.Run("empty term returns everything", func(t *testing.T) {
		result, total, err := uc.FindAll(context.Background(), &requests.QueryParams{}, pagination)
		require.NoError(t, err)
		assert.Len(t, result, 3)
		assert.Equal(t, 3, total)
	})

	t.Run("matches manufacturer", func(t *testing.T) {
		result, total, err := uc.FindAll(context.Background(), &requests.QueryParams{Search: "acme"}, pagination)
		require.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, 2, total)
	})

	t.Run("matches category case-insensitively", func(t *testing.T) {
		result, total, err := uc.FindAll(context.Background(), &requests.QueryParams{Search: "ANTIBIOTIC"}, pagination)
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, 1, total)
		assert.Equal(t, "m2", result[0].ID)
	})

	t.Run("matches name substring", func(t *testing.T) {
		result, total, err := uc.FindAll(context.Background(), &requests.QueryParams{Search: "profen"}, pagination)
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, 1, total)
		assert.Equal(t, "m3", result[0].ID)
	})

	t.Run("slices the catalog into pages", func(t *testing.T) {
		result, total, err := uc.FindAll(context.Background(), &requests.QueryParams{}, &requests.Pagination{Page: 2, PageSize: 2})
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, 3, total)
		assert.Equal(t, "m3", result[0].ID)
	})

	t.Run("page past the end is empty but keeps the total", func(t *testing.T) {
		result, total, err := uc.FindAll(context.Background(), &requests.QueryParams{}, &requests.Pagination{Page: 4, PageSize: 2})
		require.NoError(t, err)
		assert.Empty(t, result)
		assert.Equal(t, 3, total)
	})
}
