package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	RegisterSuccess       = "account created successfully"
	LoginSuccess          = "successfully login"
	LogoutSuccess         = "successfully logout"
	ForgotPasswordSuccess = "reset password link already sent to your email"
	ResetPasswordSuccess  = "password already reset successfully"

	// Profile messages
	ProfileGetSuccess          = "get profile successfully"
	ProfileUpdateSuccess       = "profile updated successfully"
	ProfileImageUploadSuccess  = "profile image uploaded successfully"

	// Appointment messages
	GetAppointmentSuccess     = "appointments retrieved successfully"
	CreateAppointmentSuccess  = "appointment booked successfully"
	ConfirmAppointmentSuccess = "appointment confirmed"
	CompleteAppointmentSuccess = "appointment marked as completed"
	CancelAppointmentSuccess  = "appointment cancelled"
	GetSlotsSuccess           = "available slots retrieved successfully"

	// Cart and order messages
	GetCartSuccess      = "cart retrieved successfully"
	AddCartItemSuccess  = "item added to cart"
	RemoveCartItemSuccess = "item removed from cart"
	ClearCartSuccess    = "cart cleared"
	CheckoutSuccess     = "order placed successfully"
	GetOrderSuccess     = "orders retrieved successfully"
	CancelOrderSuccess  = "order cancelled"

	// Catalog messages
	GetDoctorSuccess       = "doctors retrieved successfully"
	GetPatientSuccess      = "patients retrieved successfully"
	GetMedicineSuccess     = "medicines retrieved successfully"
	GetLabTestSuccess      = "lab tests retrieved successfully"
	GetArticleSuccess      = "health articles retrieved successfully"
	GetPrescriptionSuccess = "prescriptions retrieved successfully"
	CreatePrescriptionSuccess = "prescription created successfully"
	GetLabResultSuccess    = "lab results retrieved successfully"
	UpdateLabResultSuccess = "lab result updated successfully"
	GetDashboardSuccess    = "dashboard statistics retrieved successfully"
)
