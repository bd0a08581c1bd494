package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_SESSION_ID_KEY           ContextKey = "session_id"
)

// Mongo collection names mirror the hosted document-store collections
// the mobile clients already read and write.
const (
	MongoCollectionUsers          = "users"
	MongoCollectionDoctors        = "doctors"
	MongoCollectionAppointments   = "appointments"
	MongoCollectionPrescriptions  = "prescriptions"
	MongoCollectionLabResults     = "labResults"
	MongoCollectionOrders         = "orders"
	MongoCollectionMedicines      = "medicines"
	MongoCollectionLabTests       = "labTests"
	MongoCollectionHealthArticles = "healthArticles"
	MongoCollectionCarts          = "carts"
)

const (
	UserTypePatient = "patient"
	UserTypeDoctor  = "doctor"
)

const (
	CartItemTypeMedicine = "medicine"
	CartItemTypeLabTest  = "labTest"
)

const (
	AppointmentFilterAll      = "all"
	AppointmentFilterPending  = "pending"
	AppointmentFilterToday    = "today"
	AppointmentFilterUpcoming = "upcoming"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

// Daily booking window: weekdays only, hourly slots.
const (
	SlotStartHour    = 9
	SlotEndHour      = 16
	SlotsPerWeekday  = 8
	SlotDurationMins = 60
)

const (
	SessionKeyPrefix       = "session:"
	ResetTokenKeyPrefix    = "reset_password:"
	ProfileImagePathFormat = "profile_images/%s%s"
)
