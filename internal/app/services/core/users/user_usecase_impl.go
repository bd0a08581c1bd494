package users

import (
	"context"
	"fmt"
	"healthsync-service/internal/app/config"
	"healthsync-service/internal/app/contracts"
	"healthsync-service/internal/pkg/constvars"
	"healthsync-service/internal/pkg/dto/requests"
	"healthsync-service/internal/pkg/dto/responses"
	"healthsync-service/internal/pkg/exceptions"
	"mime/multipart"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

const profileImageURLExpiry = 24 * time.Hour

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

type userUsecase struct {
	UserRepository        contracts.UserRepository
	DoctorRepository      contracts.DoctorRepository
	AppointmentRepository contracts.AppointmentRepository
	SessionService        contracts.SessionService
	MinioStorage          contracts.Storage
	InternalConfig        *config.InternalConfig
	DriverConfig          *config.DriverConfig
	Log                   *zap.Logger
}

var (
	userUsecaseInstance contracts.UserUsecase
	onceUserUsecase     sync.Once
)

func NewUserUsecase(
	userRepository contracts.UserRepository,
	doctorRepository contracts.DoctorRepository,
	appointmentRepository contracts.AppointmentRepository,
	sessionService contracts.SessionService,
	minioStorage contracts.Storage,
	internalConfig *config.InternalConfig,
	driverConfig *config.DriverConfig,
	logger *zap.Logger,
) contracts.UserUsecase {
	onceUserUsecase.Do(func() {
		userUsecaseInstance = &userUsecase{
			UserRepository:        userRepository,
			DoctorRepository:      doctorRepository,
			AppointmentRepository: appointmentRepository,
			SessionService:        sessionService,
			MinioStorage:          minioStorage,
			InternalConfig:        internalConfig,
			DriverConfig:          driverConfig,
			Log:                   logger,
		}
	})
	return userUsecaseInstance
}

func (uc *userUsecase) GetUserProfileBySession(ctx context.Context, sessionData string) (*responses.UserProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.GetUserProfileBySession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		uc.Log.Error("userUsecase.GetUserProfileBySession error finding user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, session.UserID),
			zap.Error(err),
		)
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	profile := &responses.UserProfile{
		ID:               user.ID,
		Name:             user.Name,
		Email:            user.Email,
		UserType:         user.UserType,
		PhoneNumber:      user.PhoneNumber,
		DateOfBirth:      user.DateOfBirth,
		RegistrationDate: user.RegistrationDate,
	}

	if user.ProfileImage != "" {
		url, err := uc.MinioStorage.GetObjectUrlWithExpiryTime(ctx, uc.DriverConfig.Minio.BucketName, user.ProfileImage, profileImageURLExpiry)
		if err != nil {
			uc.Log.Error("userUsecase.GetUserProfileBySession error presigning profile image",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingUserIDKey, user.ID),
				zap.Error(err),
			)
		} else {
			profile.ProfileImageURL = url
		}
	}

	if session.IsDoctor() {
		doctor, err := uc.DoctorRepository.FindByID(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		if doctor != nil {
			profile.Specialization = doctor.Specialization
			profile.Availability = doctor.Availability
		}
	}

	return profile, nil
}

func (uc *userUsecase) UpdateUserProfileBySession(ctx context.Context, sessionData string, request *requests.UpdateProfile) (*responses.UserProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.UpdateUserProfileBySession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	if request.Name != "" {
		user.Name = request.Name
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

	// Last write wins; concurrent profile updates are not guarded.
	if err := uc.UserRepository.UpdateUser(ctx, user); err != nil {
		uc.Log.Error("userUsecase.UpdateUserProfileBySession error updating user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, user.ID),
			zap.Error(err),
		)
		return nil, err
	}

	if session.IsDoctor() && (request.Specialization != "" || request.Availability != "") {
		doctor, err := uc.DoctorRepository.FindByID(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		if doctor != nil {
			if request.Specialization != "" {
				doctor.Specialization = request.Specialization
			}
			if request.Availability != "" {
				doctor.Availability = request.Availability
			}
			if request.Name != "" {
				doctor.Name = request.Name
			}
			if err := uc.DoctorRepository.Update(ctx, doctor); err != nil {
				return nil, err
			}
		}
	}

	uc.Log.Info("userUsecase.UpdateUserProfileBySession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return uc.GetUserProfileBySession(ctx, sessionData)
}

func (uc *userUsecase) UploadProfileImage(ctx context.Context, sessionData string, file multipart.File, fileHeader *multipart.FileHeader) (*responses.UploadProfileImage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.UploadProfileImage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	maxBytes := uc.InternalConfig.App.MinioProfilePictureMaxUploadSizeInMB * 1024 * 1024
	if fileHeader.Size > maxBytes {
		return nil, exceptions.ErrImageValidation(fmt.Errorf("file size %d exceeds limit %d", fileHeader.Size, maxBytes))
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExtensions[ext] {
		return nil, exceptions.ErrImageValidation(fmt.Errorf("extension %s not allowed", ext))
	}

	objectName := fmt.Sprintf(constvars.ProfileImagePathFormat, session.UserID, ext)
	_, err = uc.MinioStorage.UploadFile(ctx, file, fileHeader, uc.DriverConfig.Minio.BucketName, objectName)
	if err != nil {
		uc.Log.Error("userUsecase.UploadProfileImage error uploading object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, session.UserID),
			zap.Error(err),
		)
		return nil, err
	}

	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}
	user.ProfileImage = objectName
	if err := uc.UserRepository.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	url, err := uc.MinioStorage.GetObjectUrlWithExpiryTime(ctx, uc.DriverConfig.Minio.BucketName, objectName, profileImageURLExpiry)
	if err != nil {
		uc.Log.Error("userUsecase.UploadProfileImage error presigning object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, session.UserID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("userUsecase.UploadProfileImage succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)
	return &responses.UploadProfileImage{
		ObjectName: objectName,
		URL:        url,
	}, nil
}

func (uc *userUsecase) FindPatients(ctx context.Context, sessionData string, queryParamsRequest *requests.QueryParams) ([]responses.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.FindPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if !session.IsDoctor() {
		return nil, exceptions.WrapWithoutError(constvars.StatusForbidden, constvars.ErrClientNotAuthorized, constvars.ErrDevInvalidInput)
	}

	appointments, err := uc.AppointmentRepository.FindByDoctorID(ctx, session.UserID)
	if err != nil {
		uc.Log.Error("userUsecase.FindPatients error finding appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, session.UserID),
			zap.Error(err),
		)
		return nil, err
	}

	seen := make(map[string]bool)
	patientIDs := make([]string, 0)
	for _, appointment := range appointments {
		if !seen[appointment.PatientID] {
			seen[appointment.PatientID] = true
			patientIDs = append(patientIDs, appointment.PatientID)
		}
	}
	if len(patientIDs) == 0 {
		return []responses.Patient{}, nil
	}

	users, err := uc.UserRepository.FindByIDs(ctx, patientIDs)
	if err != nil {
		return nil, err
	}

	patients := make([]responses.Patient, 0, len(users))
	for _, user := range users {
		if !user.MatchesSearch(queryParamsRequest.Search) {
			continue
		}
		patients = append(patients, responses.Patient{
			ID:               user.ID,
			Name:             user.Name,
			Email:            user.Email,
			PhoneNumber:      user.PhoneNumber,
			DateOfBirth:      user.DateOfBirth,
			RegistrationDate: user.RegistrationDate,
		})
	}

	uc.Log.Info("userUsecase.FindPatients succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(patients)),
	)
	return patients, nil
}
