package constvars

const (
	LoggingRequestIDKey        = "request_id"
	LoggingSessionDataKey      = "session_data"
	LoggingQueryParamsKey      = "query_params"
	LoggingResponseLengthKey   = "response_length"
	LoggingResponseCountKey    = "response_count"
	LoggingMethodKey           = "method"
	LoggingEndpointKey         = "endpoint"
	LoggingRemoteAddrKey       = "remote_addr"
	LoggingUserAgentKey        = "user_agent"
	LoggingQueryKey            = "query"
	LoggingStatusCodeKey       = "status_code"
	LoggingStatusKey           = "status"
	LoggingDurationKey         = "duration"
	LoggingSuccessKey          = "success"
	LoggingUserIDKey           = "user_id"
	LoggingDoctorIDKey         = "doctor_id"
	LoggingPatientIDKey        = "patient_id"
	LoggingAppointmentIDKey    = "appointment_id"
	LoggingOrderIDKey          = "order_id"
	LoggingCartItemIDKey       = "cart_item_id"
	LoggingAppointmentCountKey = "appointment_count"
	LoggingCollectionKey       = "collection"
	LoggingDocumentIDKey       = "document_id"
)
