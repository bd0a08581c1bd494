package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":  "is required",
	"email":     "must be a valid email",
	"min":       "must be at least %s characters long",
	"max":       "maximum at %s characters long",
	"eqfield":   "must match %s",
	"password":  "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"numeric":   "must be a number",
	"len":       "must be %s characters long",
	"oneof":     "must be one of [%s]",
	"gt":        "must be greater than %s",
	"gte":       "must be greater than or equal to %s",
	"lt":        "must be less than %s",
	"lte":       "must be less than or equal to %s",
	"uuid":      "must be a valid UUID",
	"user_type": "must be either patient or doctor",
}

var TagsWithParams = map[string]bool{
	"min":     true,
	"max":     true,
	"eqfield": true,
	"len":     true,
	"oneof":   true,
	"gt":      true,
	"gte":     true,
	"lt":      true,
	"lte":     true,
}

const (
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientCannotProcessRequest          = "cannot process your request"
	ErrClientNotAuthorized                 = "you are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "you must be logged in to perform this action"
	ErrClientInvalidUsernameOrPassword     = "invalid email or password"
	ErrClientEmailAlreadyExists            = "email already registered"
	ErrClientInvalidImageFormat            = "invalid image format"
	ErrClientServerLongRespond             = "server took too long to respond"
	ErrClientResetPasswordTokenExpired     = "reset password link already expired"

	ErrClientSlotNotSelected       = "please select an appointment time"
	ErrClientReasonRequired        = "please enter a reason for your visit"
	ErrClientAppointmentNotFound   = "appointment not found"
	ErrClientInvalidTransition     = "this appointment can no longer be updated"
	ErrClientDoctorNotFound        = "doctor not found"
	ErrClientPatientNotFound       = "could not retrieve your information"
	ErrClientCartEmpty             = "your cart is empty"
	ErrClientCartItemNotFound      = "cart item not found"
	ErrClientPrescriptionRequired  = "some items in your cart require a valid prescription"
	ErrClientOrderNotFound         = "order not found"
	ErrClientOrderNotCancellable   = "this order can no longer be cancelled"
	ErrClientCartNotClearedInOrder = "order placed but unable to clear cart"
)

const (
	ErrDevInvalidInput          = "invalid input"
	ErrDevCannotParseJSON       = "cannot parse JSON"
	ErrDevCannotMarshalJSON     = "cannot marshal JSON"
	ErrDevValidationFailed      = "validation failed"
	ErrDevMissingRequestID      = "request ID not found in request context"
	ErrDevMissingSessionData    = "session data not found in request context"
	ErrDevURLParamIDMissing     = "URL parameter %s is missing"
	ErrDevServerDeadlineExceeded = "server deadline exceeded"

	ErrDevFailedToCreateUser   = "failed to create user"
	ErrDevFailedToHashPassword = "failed to hash password"
	ErrDevInvalidCredentials   = "invalid credentials"
	ErrDevEmailAlreadyExists   = "email already exists"
	ErrDevUserNotExists        = "user does not exist"

	ErrDevAuthTokenMissing          = "authorization token is missing"
	ErrDevAuthTokenInvalid          = "authorization token is invalid"
	ErrDevAuthTokenInvalidOrExpired = "authorization token is invalid or expired"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthInvalidSession        = "session not found or expired"
	ErrDevAuthResetTokenExpired     = "reset password token expired"

	ErrDevAppointmentNotFound       = "appointment document not found"
	ErrDevAppointmentInvalidStatus  = "appointment status %q does not allow transition to %q"
	ErrDevDoctorNotFound            = "doctor document not found"
	ErrDevPatientNameMissing        = "patient document has no name field"
	ErrDevCartItemNotFound          = "cart item document not found"
	ErrDevOrderNotFound             = "order document not found"
	ErrDevOrderInvalidStatus        = "order status %q does not allow cancellation"
	ErrDevPrescriptionIDEmpty       = "prescription verification id is empty"
	ErrDevCartClearAfterOrderFailed = "order %s created but cart clear failed"

	ErrDevDBFailedToFindDocument     = "failed to find document"
	ErrDevDBFailedToInsertDocument   = "failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "failed to update document"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents"
	ErrDevDBFailedToCountDocuments   = "failed to count documents"

	ErrDevRedisSet      = "failed to set redis key"
	ErrDevRedisGet      = "failed to get redis key %s"
	ErrDevRedisDelete   = "failed to delete redis key"
	ErrDevMinioPutObject = "failed to put object into bucket %s"
	ErrDevMinioPresign   = "failed to presign object url in bucket %s"
	ErrDevMailerPublish  = "failed to publish mail payload to queue"
)
