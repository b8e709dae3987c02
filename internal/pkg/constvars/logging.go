package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingSessionIDKey      = "session_id"
	LoggingUserIDKey         = "user_id"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingUpstreamUrlKey    = "upstream_url"
	LoggingBookingIDKey      = "booking_id"
	LoggingBookingCountKey   = "booking_count"
	LoggingGenerationKey     = "generation"
	LoggingMetricNameKey     = "metric_name"
	LoggingObjectNameKey     = "object_name"
	LoggingQueueMessageIDKey = "queue_message_id"
	LoggingResponseLengthKey = "response_length"
)
