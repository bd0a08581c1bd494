package appointments

import (
	"context"
	"errors"
	"healthsync-service/internal/app/models"
	"healthsync-service/internal/pkg/constvars"
	"healthsync-service/internal/pkg/dto/requests"
	"healthsync-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
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

type fakeAppointmentRepository struct {
	appointments map[string]*models.Appointment
	inserted     int
}

func (f *fakeAppointmentRepository) Insert(ctx context.Context, appointment *models.Appointment) error {
	f.inserted++
	f.appointments[appointment.ID] = appointment
	return nil
}

func (f *fakeAppointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	return f.appointments[appointmentID], nil
}

func (f *fakeAppointmentRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error) {
	result := make([]models.Appointment, 0)
	for _, a := range f.appointments {
		if a.PatientID == patientID {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (f *fakeAppointmentRepository) FindByDoctorID(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	result := make([]models.Appointment, 0)
	for _, a := range f.appointments {
		if a.DoctorID == doctorID {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (f *fakeAppointmentRepository) UpdateStatus(ctx context.Context, appointmentID string, status models.AppointmentStatus, notes string, updatedAt time.Time) error {
	appointment, ok := f.appointments[appointmentID]
	if !ok {
		return exceptions.ErrAppointmentNotFound(nil)
	}
	appointment.Status = status
	appointment.UpdatedAt = updatedAt
	if notes != "" {
		appointment.Notes = notes
	}
	return nil
}

func (f *fakeAppointmentRepository) CountByDoctorAndStatus(ctx context.Context, doctorID string, status models.AppointmentStatus) (int, error) {
	count := 0
	for _, a := range f.appointments {
		if a.DoctorID == doctorID && a.Status == status {
			count++
		}
	}
	return count, nil
}

func (f *fakeAppointmentRepository) CountByDoctorBetween(ctx context.Context, doctorID string, from, to time.Time) (int, error) {
	count := 0
	for _, a := range f.appointments {
		if a.DoctorID == doctorID && !a.Date.Before(from) && a.Date.Before(to) {
			count++
		}
	}
	return count, nil
}

func (f *fakeAppointmentRepository) DistinctPatientsByDoctor(ctx context.Context, doctorID string) (int, error) {
	seen := make(map[string]bool)
	for _, a := range f.appointments {
		if a.DoctorID == doctorID {
			seen[a.PatientID] = true
		}
	}
	return len(seen), nil
}

type fakeDoctorRepository struct {
	doctors map[string]*models.Doctor
}

func (f *fakeDoctorRepository) Insert(ctx context.Context, doctor *models.Doctor) error {
	f.doctors[doctor.ID] = doctor
	return nil
}

func (f *fakeDoctorRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	result := make([]models.Doctor, 0)
	for _, d := range f.doctors {
		result = append(result, *d)
	}
	return result, nil
}

func (f *fakeDoctorRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	return f.doctors[doctorID], nil
}

func (f *fakeDoctorRepository) Update(ctx context.Context, doctor *models.Doctor) error {
	f.doctors[doctor.ID] = doctor
	return nil
}

type fakeUserRepository struct {
	users map[string]*models.User
}

func (f *fakeUserRepository) CreateUser(ctx context.Context, userModel *models.User) (string, error) {
	f.users[userModel.ID] = userModel
	return userModel.ID, nil
}

func (f *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	return f.users[userID], nil
}

func (f *fakeUserRepository) FindByIDs(ctx context.Context, userIDs []string) ([]models.User, error) {
	result := make([]models.User, 0)
	for _, id := range userIDs {
		if u, ok := f.users[id]; ok {
			result = append(result, *u)
		}
	}
	return result, nil
}

func (f *fakeUserRepository) UpdateUser(ctx context.Context, userModel *models.User) error {
	f.users[userModel.ID] = userModel
	return nil
}

type appointmentFixture struct {
	uc       *appointmentUsecase
	repo     *fakeAppointmentRepository
	doctors  *fakeDoctorRepository
	users    *fakeUserRepository
	sessions *fakeSessionService
}

func newAppointmentFixture() *appointmentFixture {
	repo := &fakeAppointmentRepository{appointments: make(map[string]*models.Appointment)}
	doctors := &fakeDoctorRepository{doctors: map[string]*models.Doctor{
		"doc-1": {ID: "doc-1", Name: "Alice Tan", Specialization: "Cardiology"},
	}}
	users := &fakeUserRepository{users: map[string]*models.User{
		"pat-1": {ID: "pat-1", Name: "John Moore", Email: "john@example.com", UserType: constvars.UserTypePatient},
	}}
	sessions := &fakeSessionService{sessions: map[string]*models.Session{
		"patient-session": {SessionID: "s1", UserID: "pat-1", Name: "John Moore", UserType: constvars.UserTypePatient},
		"doctor-session":  {SessionID: "s2", UserID: "doc-1", Name: "Alice Tan", UserType: constvars.UserTypeDoctor},
	}}

	return &appointmentFixture{
		uc: &appointmentUsecase{
			AppointmentRepository: repo,
			DoctorRepository:      doctors,
			UserRepository:        users,
			SessionService:        sessions,
			Log:                   zap.NewNop(),
		},
		repo:     repo,
		doctors:  doctors,
		users:    users,
		sessions: sessions,
	}
}

func statusCodeOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	return customErr.StatusCode
}

func clientMessageOf(t *testing.T, err error) string {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	return customErr.ClientMessage
}

func TestAppointmentUsecase_CreateAppointment(t *testing.T) {
	slot := time.Date(2026, time.September, 7, 10, 0, 0, 0, time.UTC).Format(time.RFC3339)

	t.Run("books a pending appointment with the patient name attached", func(t *testing.T) {
		f := newAppointmentFixture()
		result, err := f.uc.CreateAppointment(context.Background(), "patient-session", &requests.CreateAppointment{
			DoctorID: "doc-1",
			Slot:     slot,
			Reason:   "Chest pain",
		})
		require.NoError(t, err)
		assert.Equal(t, string(models.AppointmentPending), result.Status)
		assert.NotEmpty(t, result.AppointmentID)

		stored := f.repo.appointments[result.AppointmentID]
		require.NotNil(t, stored)
		assert.Equal(t, "John Moore", stored.PatientName)
		assert.Equal(t, "pat-1", stored.PatientID)
	})

	t.Run("missing slot is reported before missing reason", func(t *testing.T) {
		f := newAppointmentFixture()
		_, err := f.uc.CreateAppointment(context.Background(), "patient-session", &requests.CreateAppointment{
			DoctorID: "doc-1",
		})
		require.Error(t, err)
		assert.Equal(t, constvars.ErrClientSlotNotSelected, clientMessageOf(t, err))
		assert.Zero(t, f.repo.inserted)
	})

	t.Run("blank reason rejects the booking without persisting", func(t *testing.T) {
		f := newAppointmentFixture()
		_, err := f.uc.CreateAppointment(context.Background(), "patient-session", &requests.CreateAppointment{
			DoctorID: "doc-1",
			Slot:     slot,
			Reason:   "   ",
		})
		require.Error(t, err)
		assert.Equal(t, constvars.ErrClientReasonRequired, clientMessageOf(t, err))
		assert.Zero(t, f.repo.inserted)
	})

	t.Run("unknown doctor rejects the booking", func(t *testing.T) {
		f := newAppointmentFixture()
		_, err := f.uc.CreateAppointment(context.Background(), "patient-session", &requests.CreateAppointment{
			DoctorID: "doc-404",
			Slot:     slot,
			Reason:   "Checkup",
		})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusNotFound, statusCodeOf(t, err))
		assert.Zero(t, f.repo.inserted)
	})
}

func TestAppointmentUsecase_Lifecycle(t *testing.T) {
	book := func(t *testing.T, f *appointmentFixture) string {
		t.Helper()
		slot := time.Date(2026, time.September, 7, 10, 0, 0, 0, time.UTC).Format(time.RFC3339)
		result, err := f.uc.CreateAppointment(context.Background(), "patient-session", &requests.CreateAppointment{
			DoctorID: "doc-1",
			Slot:     slot,
			Reason:   "Checkup",
		})
		require.NoError(t, err)
		return result.AppointmentID
	}

	t.Run("pending to confirmed to completed", func(t *testing.T) {
		f := newAppointmentFixture()
		id := book(t, f)

		confirmed, err := f.uc.ConfirmAppointment(context.Background(), "doctor-session", id, &requests.TransitionAppointment{})
		require.NoError(t, err)
		assert.Equal(t, string(models.AppointmentConfirmed), confirmed.Status)

		completed, err := f.uc.CompleteAppointment(context.Background(), "doctor-session", id, &requests.TransitionAppointment{Notes: "All clear"})
		require.NoError(t, err)
		assert.Equal(t, string(models.AppointmentCompleted), completed.Status)
		assert.Equal(t, "All clear", completed.Notes)
	})

	t.Run("completing straight from pending is rejected", func(t *testing.T) {
		f := newAppointmentFixture()
		id := book(t, f)

		_, err := f.uc.CompleteAppointment(context.Background(), "doctor-session", id, &requests.TransitionAppointment{})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusUnprocessableEntity, statusCodeOf(t, err))
	})

	t.Run("terminal states accept no further transitions", func(t *testing.T) {
		f := newAppointmentFixture()
		id := book(t, f)

		_, err := f.uc.CancelAppointment(context.Background(), "patient-session", id, &requests.TransitionAppointment{})
		require.NoError(t, err)

		_, err = f.uc.ConfirmAppointment(context.Background(), "doctor-session", id, &requests.TransitionAppointment{})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusUnprocessableEntity, statusCodeOf(t, err))
	})

	t.Run("patient cannot confirm", func(t *testing.T) {
		f := newAppointmentFixture()
		id := book(t, f)

		_, err := f.uc.ConfirmAppointment(context.Background(), "patient-session", id, &requests.TransitionAppointment{})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusForbidden, statusCodeOf(t, err))
	})

	t.Run("strangers cannot read someone else's appointment", func(t *testing.T) {
		f := newAppointmentFixture()
		id := book(t, f)
		f.sessions.sessions["other-session"] = &models.Session{SessionID: "s3", UserID: "pat-2", UserType: constvars.UserTypePatient}

		_, err := f.uc.FindByID(context.Background(), "other-session", id)
		require.Error(t, err)
		assert.Equal(t, constvars.StatusForbidden, statusCodeOf(t, err))
	})
}
