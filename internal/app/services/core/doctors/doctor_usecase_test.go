package doctors

import (
	"context"
	"healthsync-service/internal/app/models"
	"healthsync-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeDoctorRepository struct {
	doctors []models.Doctor
}

func (f *fakeDoctorRepository) Insert(ctx context.Context, doctor *models.Doctor) error {
	f.doctors = append(f.doctors, *doctor)
	return nil
}

func (f *fakeDoctorRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	return f.doctors, nil
}

func (f *fakeDoctorRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	for _, doctor := range f.doctors {
		if doctor.ID == doctorID {
			d := doctor
			return &d, nil
		}
	}
	return nil, nil
}

func (f *fakeDoctorRepository) Update(ctx context.Context, doctor *models.Doctor) error {
	for i := range f.doctors {
		if f.doctors[i].ID == doctor.ID {
			f.doctors[i] = *doctor
		}
	}
	return nil
}

func newTestDoctorUsecase(repo *fakeDoctorRepository) *doctorUsecase {
	return &doctorUsecase{
		DoctorRepository: repo,
		Log:              zap.NewNop(),
	}
}

func TestDoctorUsecase_FindAll_Search(t *testing.T) {
	repo := &fakeDoctorRepository{doctors: []models.Doctor{
		{ID: "d1", Name: "Alice Tan", Specialization: "Cardiology"},
		{ID: "d2", Name: "Bob Carter", Specialization: "Dermatology"},
		{ID: "d3", Name: "Carla Diaz", Specialization: "Cardiothoracic Surgery"},
	}}
	uc := newTestDoctorUsecase(repo)

	pagination := &requests.Pagination{Page: 1, PageSize: 10}

	t.Run("empty term returns all doctors", func(t *testing.T) {
		result, total, err := uc.FindAll(context.Background(), &requests.QueryParams{}, pagination)
		require.NoError(t, err)
		assert.Len(t, result, 3)
		assert.Equal(t, 3, total)
	})

	t.Run("matches specialization case-insensitively", func(t *testing.T) {
		result, total, err := uc.FindAll(context.Background(), &requests.QueryParams{Search: "cardio"}, pagination)
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, 2, total)
		assert.Equal(t, "d1", result[0].ID)
		assert.Equal(t, "d3", result[1].ID)
	})

	t.Run("matches name substring", func(t *testing.T) {
		result, total, err := uc.FindAll(context.Background(), &requests.QueryParams{Search: "carter"}, pagination)
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, 1, total)
		assert.Equal(t, "d2", result[0].ID)
	})

	t.Run("no match returns empty slice", func(t *testing.T) {
		result, total, err := uc.FindAll(context.Background(), &requests.QueryParams{Search: "neurology"}, pagination)
		require.NoError(t, err)
		assert.Empty(t, result)
		assert.Zero(t, total)
	})
}

func TestDoctorUsecase_FindAll_Pagination(t *testing.T) {
	repo := &fakeDoctorRepository{doctors: []models.Doctor{
		{ID: "d1", Name: "Alice Tan", Specialization: "Cardiology"},
		{ID: "d2", Name: "Bob Carter", Specialization: "Dermatology"},
		{ID: "d3", Name: "Carla Diaz", Specialization: "Cardiothoracic Surgery"},
	}}
	uc := newTestDoctorUsecase(repo)

	t.Run("second page holds the remainder", func(t *testing.T) {
		result, total, err := uc.FindAll(context.Background(), &requests.QueryParams{}, &requests.Pagination{Page: 2, PageSize: 2})
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, 3, total)
		assert.Equal(t, "d3", result[0].ID)
	})

	t.Run("page past the end is empty but keeps the total", func(t *testing.T) {
		result, total, err := uc.FindAll(context.Background(), &requests.QueryParams{}, &requests.Pagination{Page: 5, PageSize: 2})
		require.NoError(t, err)
		assert.Empty(t, result)
		assert.Equal(t, 3, total)
	})

	t.Run("total counts matches across pages, not the page size", func(t *testing.T) {
		result, total, err := uc.FindAll(context.Background(), &requests.QueryParams{Search: "cardio"}, &requests.Pagination{Page: 1, PageSize: 1})
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, 2, total)
		assert.Equal(t, "d1", result[0].ID)
	})
}

func TestDoctorUsecase_FindByID(t *testing.T) {
	repo := &fakeDoctorRepository{doctors: []models.Doctor{
		{ID: "d1", Name: "Alice Tan", Specialization: "Cardiology"},
	}}
	uc := newTestDoctorUsecase(repo)

	t.Run("found", func(t *testing.T) {
		result, err := uc.FindByID(context.Background(), "d1")
		require.NoError(t, err)
		assert.Equal(t, "Alice Tan", result.Name)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := uc.FindByID(context.Background(), "missing")
		require.Error(t, err)
	})
}
