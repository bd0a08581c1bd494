package auth

import (
	"context"
	"fmt"
	"healthsync-service/internal/app/config"
	"healthsync-service/internal/app/contracts"
	"healthsync-service/internal/app/models"
	"healthsync-service/internal/pkg/constvars"
	"healthsync-service/internal/pkg/dto/requests"
	"healthsync-service/internal/pkg/dto/responses"
	"healthsync-service/internal/pkg/exceptions"
	"healthsync-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository   contracts.UserRepository
	DoctorRepository contracts.DoctorRepository
	SessionService   contracts.SessionService
	RedisRepository  contracts.RedisRepository
	MailerService    contracts.MailerService
	InternalConfig   *config.InternalConfig
	Log              *zap.Logger
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	doctorRepository contracts.DoctorRepository,
	sessionService contracts.SessionService,
	redisRepository contracts.RedisRepository,
	mailerService contracts.MailerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			UserRepository:   userRepository,
			DoctorRepository: doctorRepository,
			SessionService:   sessionService,
			RedisRepository:  redisRepository,
			MailerService:    mailerService,
			InternalConfig:   internalConfig,
			Log:              logger,
		}
	})
	return authUsecaseInstance
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.Register) (*responses.Register, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	existing, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		uc.Log.Error("authUsecase.Register error finding user by email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		uc.Log.Error("authUsecase.Register error hashing password",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrHashPassword(err)
	}

	now := time.Now()
	user := &models.User{
		ID:               utils.GenerateDocumentID(),
		Name:             request.Name,
		Email:            request.Email,
		PasswordHash:     hashedPassword,
		UserType:         request.UserType,
		RegistrationDate: now,
	}
	if request.PhoneNumber != nil {
		user.PhoneNumber = *request.PhoneNumber
	}
	if request.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *request.DateOfBirth)
		if err != nil {
			return nil, exceptions.ErrInputValidation(err)
		}
		user.DateOfBirth = &dob
	}

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		uc.Log.Error("authUsecase.Register error creating user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	// Doctors also own a document in the doctors collection keyed by the
	// same ID, so the catalog and dashboard can read it directly.
	if request.UserType == constvars.UserTypeDoctor {
		doctor := &models.Doctor{
			ID:               userID,
			Name:             request.Name,
			Email:            request.Email,
			Specialization:   request.Specialization,
			License:          request.License,
			Availability:     request.Availability,
			RegistrationDate: now,
			IsActive:         true,
			AvgRating:        5.0,
		}
		if err := uc.DoctorRepository.Insert(ctx, doctor); err != nil {
			uc.Log.Error("authUsecase.Register error creating doctor document",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingUserIDKey, userID),
				zap.Error(err),
			)
			return nil, err
		}
	}

	uc.Log.Info("authUsecase.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)
	return &responses.Register{
		UserID:   userID,
		UserType: request.UserType,
	}, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		uc.Log.Error("authUsecase.Login error finding user by email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(request.Password, user.PasswordHash) {
		return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
	}

	session := &models.Session{
		SessionID: utils.GenerateSessionID(),
		UserID:    user.ID,
		Email:     user.Email,
		Name:      user.Name,
		UserType:  user.UserType,
	}
	err = uc.SessionService.CreateSession(ctx, session, uc.InternalConfig.App.SessionExpTimeInHour)
	if err != nil {
		uc.Log.Error("authUsecase.Login error creating session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, user.ID),
			zap.Error(err),
		)
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		uc.Log.Error("authUsecase.Login error generating token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, user.ID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return &responses.Login{
		Token:    token,
		UserType: user.UserType,
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := uc.SessionService.DestroySession(ctx, sessionID)
	if err != nil {
		uc.Log.Error("authUsecase.Logout error destroying session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("authUsecase.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (uc *authUsecase) ForgotPassword(ctx context.Context, request *requests.ForgotPassword) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.ForgotPassword called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		uc.Log.Error("authUsecase.ForgotPassword error finding user by email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if user == nil {
		// Unknown emails get the same success response.
		return nil
	}

	token := utils.GenerateResetToken()
	expiry := time.Duration(uc.InternalConfig.App.ForgotPasswordTokenExpTimeInMinute) * time.Minute
	err = uc.RedisRepository.Set(ctx, constvars.ResetTokenKeyPrefix+token, user.ID, expiry)
	if err != nil {
		uc.Log.Error("authUsecase.ForgotPassword error storing reset token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	resetLink := fmt.Sprintf("%s?token=%s", uc.InternalConfig.App.ResetPasswordUrl, token)
	err = uc.MailerService.SendEmail(ctx, &requests.EmailPayload{
		To:      user.Email,
		Subject: "Reset your password",
		Body:    fmt.Sprintf("Hi %s,\n\nUse the link below to reset your password. It expires in %d minutes.\n\n%s", user.Name, uc.InternalConfig.App.ForgotPasswordTokenExpTimeInMinute, resetLink),
	})
	if err != nil {
		uc.Log.Error("authUsecase.ForgotPassword error publishing reset email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("authUsecase.ForgotPassword succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return nil
}

func (uc *authUsecase) ResetPassword(ctx context.Context, request *requests.ResetPassword) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.ResetPassword called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	key := constvars.ResetTokenKeyPrefix + request.Token
	value, err := uc.RedisRepository.Get(ctx, key)
	if err != nil {
		uc.Log.Error("authUsecase.ResetPassword error reading reset token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if value == "" {
		return exceptions.ErrTokenResetPasswordExpired(nil)
	}

	var userID string
	if err := json.Unmarshal([]byte(value), &userID); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}

	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		uc.Log.Error("authUsecase.ResetPassword error finding user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, userID),
			zap.Error(err),
		)
		return err
	}
	if user == nil {
		return exceptions.ErrUserNotExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return exceptions.ErrHashPassword(err)
	}
	user.PasswordHash = hashedPassword

	if err := uc.UserRepository.UpdateUser(ctx, user); err != nil {
		uc.Log.Error("authUsecase.ResetPassword error updating user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, userID),
			zap.Error(err),
		)
		return err
	}

	// Single-use token.
	if err := uc.RedisRepository.Delete(ctx, key); err != nil {
		uc.Log.Error("authUsecase.ResetPassword error deleting reset token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("authUsecase.ResetPassword succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)
	return nil
}
