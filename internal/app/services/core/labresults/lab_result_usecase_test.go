package labresults

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"healthsync-service/internal/app/models"
	"healthsync-service/internal/pkg/constvars"
	"healthsync-service/internal/pkg/dto/requests"
	"healthsync-service/internal/pkg/exceptions"
)

type fakeSessionService struct {
	sessions map[string]*models.Session
}

func (f *fakeSessionService) CreateSession(ctx context.Context, session *models.Session, expHours int) error {
	return nil
}

func (f *fakeSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	session, ok := f.sessions[sessionData]
	if !ok {
		return nil, exceptions.ErrSessionInvalid(nil)
	}
	return session, nil
}

func (f *fakeSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	return sessionID, nil
}

func (f *fakeSessionService) DestroySession(ctx context.Context, sessionID string) error {
	return nil
}

type fakeLabResultRepository struct {
	labResults map[string]*models.LabResult
	updated    int
}

func (f *fakeLabResultRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.LabResult, error) {
	result := make([]models.LabResult, 0)
	for _, labResult := range f.labResults {
		if labResult.PatientID == patientID {
			result = append(result, *labResult)
		}
	}
	return result, nil
}

func (f *fakeLabResultRepository) FindByDoctorID(ctx context.Context, doctorID string) ([]models.LabResult, error) {
	result := make([]models.LabResult, 0)
	for _, labResult := range f.labResults {
		if labResult.DoctorID == doctorID {
			result = append(result, *labResult)
		}
	}
	return result, nil
}

func (f *fakeLabResultRepository) FindByID(ctx context.Context, labResultID string) (*models.LabResult, error) {
	return f.labResults[labResultID], nil
}

func (f *fakeLabResultRepository) Update(ctx context.Context, labResult *models.LabResult) error {
	f.updated++
	f.labResults[labResult.ID] = labResult
	return nil
}

func newTestLabResultUsecase(repo *fakeLabResultRepository) *labResultUsecase {
	return &labResultUsecase{
		LabResultRepository: repo,
		SessionService: &fakeSessionService{sessions: map[string]*models.Session{
			"doctor-session":  {SessionID: "s1", UserID: "doc-1", UserType: constvars.UserTypeDoctor},
			"patient-session": {SessionID: "s2", UserID: "pat-1", UserType: constvars.UserTypePatient},
		}},
		Log: zap.NewNop(),
	}
}

func pendingLabResult(id, patientID, doctorID string, testDate time.Time) *models.LabResult {
	return &models.LabResult{
		ID:          id,
		PatientID:   patientID,
		DoctorID:    doctorID,
		PatientName: "Pat One",
		TestDate:    testDate,
		Status:      models.LabResultPending,
		LabTest:     models.LabTestInfo{ID: "lab-1", Name: "Lipid Panel", Price: 80},
	}
}

func statusCodeOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	return customErr.StatusCode
}

func TestLabResultUsecase_FindAll(t *testing.T) {
	now := time.Now()
	repo := &fakeLabResultRepository{labResults: map[string]*models.LabResult{
		"lr-1": pendingLabResult("lr-1", "pat-1", "doc-1", now.Add(-48*time.Hour)),
		"lr-2": pendingLabResult("lr-2", "pat-1", "doc-1", now.Add(-2*time.Hour)),
		"lr-3": pendingLabResult("lr-3", "pat-2", "doc-1", now.Add(-24*time.Hour)),
	}}
	uc := newTestLabResultUsecase(repo)

	t.Run("patient sees only their own results, newest first", func(t *testing.T) {
		result, err := uc.FindAll(context.Background(), "patient-session")
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "lr-2", result[0].ID)
		assert.Equal(t, "lr-1", result[1].ID)
	})

	t.Run("doctor sees every result they ordered", func(t *testing.T) {
		result, err := uc.FindAll(context.Background(), "doctor-session")
		require.NoError(t, err)
		assert.Len(t, result, 3)
	})
}

func TestLabResultUsecase_FindByID(t *testing.T) {
	repo := &fakeLabResultRepository{labResults: map[string]*models.LabResult{
		"lr-1": pendingLabResult("lr-1", "pat-1", "doc-1", time.Now()),
		"lr-2": pendingLabResult("lr-2", "pat-2", "doc-2", time.Now()),
	}}
	uc := newTestLabResultUsecase(repo)

	t.Run("owner can read a result", func(t *testing.T) {
		result, err := uc.FindByID(context.Background(), "patient-session", "lr-1")
		require.NoError(t, err)
		assert.Equal(t, "pending", result.Status)
		assert.Equal(t, "Lipid Panel", result.LabTest.Name)
	})

	t.Run("another patient's result is forbidden", func(t *testing.T) {
		_, err := uc.FindByID(context.Background(), "patient-session", "lr-2")
		require.Error(t, err)
		assert.Equal(t, constvars.StatusForbidden, statusCodeOf(t, err))
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := uc.FindByID(context.Background(), "patient-session", "missing")
		require.Error(t, err)
		assert.Equal(t, constvars.StatusNotFound, statusCodeOf(t, err))
	})
}

func TestLabResultUsecase_UpdateLabResult(t *testing.T) {
	newRepo := func() *fakeLabResultRepository {
		return &fakeLabResultRepository{labResults: map[string]*models.LabResult{
			"lr-1": pendingLabResult("lr-1", "pat-1", "doc-1", time.Now()),
		}}
	}

	t.Run("doctor completes a pending result", func(t *testing.T) {
		repo := newRepo()
		uc := newTestLabResultUsecase(repo)

		result, err := uc.UpdateLabResult(context.Background(), "doctor-session", "lr-1", &requests.UpdateLabResult{
			Results: "LDL 130 mg/dL",
			Status:  "completed",
		})
		require.NoError(t, err)
		assert.Equal(t, "completed", result.Status)
		assert.Equal(t, "LDL 130 mg/dL", result.Results)
		assert.Equal(t, 1, repo.updated)
		assert.Equal(t, models.LabResultCompleted, repo.labResults["lr-1"].Status)
	})

	t.Run("doctor can move a result back to pending", func(t *testing.T) {
		repo := newRepo()
		repo.labResults["lr-1"].Status = models.LabResultCompleted
		uc := newTestLabResultUsecase(repo)

		result, err := uc.UpdateLabResult(context.Background(), "doctor-session", "lr-1", &requests.UpdateLabResult{
			Results: "Sample contaminated, redraw needed",
			Status:  "pending",
		})
		require.NoError(t, err)
		assert.Equal(t, "pending", result.Status)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		repo := newRepo()
		uc := newTestLabResultUsecase(repo)

		_, err := uc.UpdateLabResult(context.Background(), "doctor-session", "lr-1", &requests.UpdateLabResult{
			Results: "LDL 130 mg/dL",
			Status:  "finished",
		})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusBadRequest, statusCodeOf(t, err))
		assert.Equal(t, models.LabResultPending, repo.labResults["lr-1"].Status)
		assert.Zero(t, repo.updated)
	})

	t.Run("patient cannot update a result", func(t *testing.T) {
		repo := newRepo()
		uc := newTestLabResultUsecase(repo)

		_, err := uc.UpdateLabResult(context.Background(), "patient-session", "lr-1", &requests.UpdateLabResult{
			Results: "LDL 130 mg/dL",
			Status:  "completed",
		})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusForbidden, statusCodeOf(t, err))
		assert.Zero(t, repo.updated)
	})

	t.Run("doctor cannot update another doctor's result", func(t *testing.T) {
		repo := newRepo()
		repo.labResults["lr-1"].DoctorID = "doc-2"
		uc := newTestLabResultUsecase(repo)

		_, err := uc.UpdateLabResult(context.Background(), "doctor-session", "lr-1", &requests.UpdateLabResult{
			Results: "LDL 130 mg/dL",
			Status:  "completed",
		})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusForbidden, statusCodeOf(t, err))
	})
}
