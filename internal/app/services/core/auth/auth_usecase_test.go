package auth

import (
	"context"
	"errors"
	"healthsync-service/internal/app/config"
	"healthsync-service/internal/app/models"
	"healthsync-service/internal/pkg/constvars"
	"healthsync-service/internal/pkg/dto/requests"
	"healthsync-service/internal/pkg/exceptions"
	"healthsync-service/internal/pkg/utils"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeUserRepository struct {
	users map[string]*models.User
}

func (f *fakeUserRepository) CreateUser(_ context.Context, user *models.User) (string, error) {
	f.users[user.ID] = user
	return user.ID, nil
}

func (f *fakeUserRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepository) FindByID(_ context.Context, userID string) (*models.User, error) {
	user, found := f.users[userID]
	if !found {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepository) FindByIDs(_ context.Context, userIDs []string) ([]models.User, error) {
	var result []models.User
	for _, id := range userIDs {
		if user, found := f.users[id]; found {
			result = append(result, *user)
		}
	}
	return result, nil
}

func (f *fakeUserRepository) UpdateUser(_ context.Context, user *models.User) error {
	f.users[user.ID] = user
	return nil
}

type fakeDoctorRepository struct {
	doctors map[string]*models.Doctor
}

func (f *fakeDoctorRepository) Insert(_ context.Context, doctor *models.Doctor) error {
	f.doctors[doctor.ID] = doctor
	return nil
}

func (f *fakeDoctorRepository) FindAll(_ context.Context) ([]models.Doctor, error) {
	var result []models.Doctor
	for _, doctor := range f.doctors {
		result = append(result, *doctor)
	}
	return result, nil
}

func (f *fakeDoctorRepository) FindByID(_ context.Context, doctorID string) (*models.Doctor, error) {
	doctor, found := f.doctors[doctorID]
	if !found {
		return nil, nil
	}
	return doctor, nil
}

func (f *fakeDoctorRepository) Update(_ context.Context, doctor *models.Doctor) error {
	f.doctors[doctor.ID] = doctor
	return nil
}

type fakeSessionService struct {
	sessions  map[string]*models.Session
	destroyed []string
}

func (f *fakeSessionService) CreateSession(_ context.Context, session *models.Session, _ int) error {
	f.sessions[session.SessionID] = session
	return nil
}

func (f *fakeSessionService) ParseSessionData(_ context.Context, sessionData string) (*models.Session, error) {
	session := new(models.Session)
	if err := json.Unmarshal([]byte(sessionData), session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (f *fakeSessionService) GetSessionData(_ context.Context, sessionID string) (string, error) {
	session, found := f.sessions[sessionID]
	if !found {
		return "", exceptions.ErrSessionInvalid(nil)
	}
	raw, _ := json.Marshal(session)
	return string(raw), nil
}

func (f *fakeSessionService) DestroySession(_ context.Context, sessionID string) error {
	delete(f.sessions, sessionID)
	f.destroyed = append(f.destroyed, sessionID)
	return nil
}

// fakeRedisRepository marshals values to JSON the same way the real
// repository does, so string values round-trip with quotes.
type fakeRedisRepository struct {
	values map[string]string
}

func (f *fakeRedisRepository) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.values[key] = string(raw)
	return nil
}

func (f *fakeRedisRepository) Get(_ context.Context, key string) (string, error) {
	return f.values[key], nil
}

func (f *fakeRedisRepository) Delete(_ context.Context, key string) error {
	delete(f.values, key)
	return nil
}

type fakeMailerService struct {
	sent []*requests.EmailPayload
}

func (f *fakeMailerService) SendEmail(_ context.Context, request *requests.EmailPayload) error {
	f.sent = append(f.sent, request)
	return nil
}

type authFixture struct {
	uc      *authUsecase
	users   *fakeUserRepository
	doctors *fakeDoctorRepository
	session *fakeSessionService
	redis   *fakeRedisRepository
	mailer  *fakeMailerService
}

func newAuthFixture(existingUsers ...*models.User) *authFixture {
	users := &fakeUserRepository{users: make(map[string]*models.User)}
	for _, user := range existingUsers {
		users.users[user.ID] = user
	}
	doctors := &fakeDoctorRepository{doctors: make(map[string]*models.Doctor)}
	session := &fakeSessionService{sessions: make(map[string]*models.Session)}
	redisRepo := &fakeRedisRepository{values: make(map[string]string)}
	mailerService := &fakeMailerService{}

	internalConfig := &config.InternalConfig{
		App: config.App{
			SessionExpTimeInHour:               24,
			ForgotPasswordTokenExpTimeInMinute: 30,
			ResetPasswordUrl:                   "https://healthsync.example/reset",
		},
		JWT: config.JWT{
			Secret:        "test-secret",
			ExpTimeInHour: 24,
		},
	}

	return &authFixture{
		uc: &authUsecase{
			UserRepository:   users,
			DoctorRepository: doctors,
			SessionService:   session,
			RedisRepository:  redisRepo,
			MailerService:    mailerService,
			InternalConfig:   internalConfig,
			Log:              zap.NewNop(),
		},
		users:   users,
		doctors: doctors,
		session: session,
		redis:   redisRepo,
		mailer:  mailerService,
	}
}

func clientMessageOf(t *testing.T, err error) string {
	t.Helper()
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	return customErr.ClientMessage
}

func existingUser(id, email, password string) *models.User {
	hash, _ := utils.HashPassword(password)
	return &models.User{
		ID:           id,
		Name:         "Existing User",
		Email:        email,
		PasswordHash: hash,
		UserType:     constvars.UserTypePatient,
	}
}

func TestAuthUsecaseRegister(t *testing.T) {
	t.Run("registers a patient", func(t *testing.T) {
		fx := newAuthFixture()

		response, err := fx.uc.Register(context.Background(), &requests.Register{
			Name:     "Jane Smith",
			Email:    "jane@example.com",
			Password: "Sup3rSecret!",
			UserType: constvars.UserTypePatient,
		})

		require.NoError(t, err)
		assert.NotEmpty(t, response.UserID)
		assert.Equal(t, constvars.UserTypePatient, response.UserType)

		stored := fx.users.users[response.UserID]
		require.NotNil(t, stored)
		assert.NotEqual(t, "Sup3rSecret!", stored.PasswordHash)
		assert.Empty(t, fx.doctors.doctors)
	})

	t.Run("registers a doctor with a doctors document under the same id", func(t *testing.T) {
		fx := newAuthFixture()

		response, err := fx.uc.Register(context.Background(), &requests.Register{
			Name:           "Dr. Gregory House",
			Email:          "house@example.com",
			Password:       "Sup3rSecret!",
			UserType:       constvars.UserTypeDoctor,
			Specialization: "Diagnostics",
			License:        "MD-001",
		})

		require.NoError(t, err)
		doctor := fx.doctors.doctors[response.UserID]
		require.NotNil(t, doctor)
		assert.Equal(t, "Diagnostics", doctor.Specialization)
		assert.True(t, doctor.IsActive)
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		fx := newAuthFixture(existingUser("user-1", "jane@example.com", "whatever1"))

		_, err := fx.uc.Register(context.Background(), &requests.Register{
			Name:     "Jane Again",
			Email:    "jane@example.com",
			Password: "Sup3rSecret!",
			UserType: constvars.UserTypePatient,
		})

		require.Error(t, err)
		assert.Equal(t, constvars.ErrClientEmailAlreadyExists, clientMessageOf(t, err))
		assert.Len(t, fx.users.users, 1)
	})
}

func TestAuthUsecaseLogin(t *testing.T) {
	t.Run("logs in with valid credentials", func(t *testing.T) {
		fx := newAuthFixture(existingUser("user-1", "jane@example.com", "Sup3rSecret!"))

		response, err := fx.uc.Login(context.Background(), &requests.Login{
			Email:    "jane@example.com",
			Password: "Sup3rSecret!",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, response.Token)
		assert.Equal(t, constvars.UserTypePatient, response.UserType)
		assert.Len(t, fx.session.sessions, 1)
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		fx := newAuthFixture(existingUser("user-1", "jane@example.com", "Sup3rSecret!"))

		_, err := fx.uc.Login(context.Background(), &requests.Login{
			Email:    "jane@example.com",
			Password: "nope",
		})

		require.Error(t, err)
		assert.Equal(t, constvars.ErrClientInvalidUsernameOrPassword, clientMessageOf(t, err))
		assert.Empty(t, fx.session.sessions)
	})

	t.Run("rejects an unknown email with the same error", func(t *testing.T) {
		fx := newAuthFixture()

		_, err := fx.uc.Login(context.Background(), &requests.Login{
			Email:    "ghost@example.com",
			Password: "Sup3rSecret!",
		})

		require.Error(t, err)
		assert.Equal(t, constvars.ErrClientInvalidUsernameOrPassword, clientMessageOf(t, err))
	})
}

func TestAuthUsecaseLogout(t *testing.T) {
	fx := newAuthFixture()
	fx.session.sessions["sess-1"] = &models.Session{SessionID: "sess-1", UserID: "user-1"}

	err := fx.uc.Logout(context.Background(), "sess-1")

	require.NoError(t, err)
	assert.Empty(t, fx.session.sessions)
	assert.Equal(t, []string{"sess-1"}, fx.session.destroyed)
}

func TestAuthUsecaseForgotPassword(t *testing.T) {
	t.Run("stores a token and mails the reset link", func(t *testing.T) {
		fx := newAuthFixture(existingUser("user-1", "jane@example.com", "Sup3rSecret!"))

		err := fx.uc.ForgotPassword(context.Background(), &requests.ForgotPassword{Email: "jane@example.com"})

		require.NoError(t, err)
		require.Len(t, fx.mailer.sent, 1)
		assert.Equal(t, "jane@example.com", fx.mailer.sent[0].To)
		assert.Contains(t, fx.mailer.sent[0].Body, "https://healthsync.example/reset?token=")
		assert.Len(t, fx.redis.values, 1)
	})

	t.Run("silently succeeds for an unknown email", func(t *testing.T) {
		fx := newAuthFixture()

		err := fx.uc.ForgotPassword(context.Background(), &requests.ForgotPassword{Email: "ghost@example.com"})

		require.NoError(t, err)
		assert.Empty(t, fx.mailer.sent)
		assert.Empty(t, fx.redis.values)
	})
}

func TestAuthUsecaseResetPassword(t *testing.T) {
	t.Run("resets the password and consumes the token", func(t *testing.T) {
		user := existingUser("user-1", "jane@example.com", "OldPassw0rd!")
		fx := newAuthFixture(user)
		require.NoError(t, fx.redis.Set(context.Background(), constvars.ResetTokenKeyPrefix+"tok-1", "user-1", time.Minute))

		err := fx.uc.ResetPassword(context.Background(), &requests.ResetPassword{
			Token:    "tok-1",
			Password: "NewPassw0rd!",
		})

		require.NoError(t, err)
		updated := fx.users.users["user-1"]
		assert.True(t, utils.CheckPasswordHash("NewPassw0rd!", updated.PasswordHash))
		assert.False(t, utils.CheckPasswordHash("OldPassw0rd!", updated.PasswordHash))
		assert.Empty(t, fx.redis.values)
	})

	t.Run("rejects an expired or unknown token", func(t *testing.T) {
		fx := newAuthFixture(existingUser("user-1", "jane@example.com", "OldPassw0rd!"))

		err := fx.uc.ResetPassword(context.Background(), &requests.ResetPassword{
			Token:    "missing",
			Password: "NewPassw0rd!",
		})

		require.Error(t, err)
		assert.Equal(t, constvars.ErrClientResetPasswordTokenExpired, clientMessageOf(t, err))

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusGone, customErr.StatusCode)
	})
}
