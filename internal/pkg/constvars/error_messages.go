package constvars

// Client-facing messages. Kept generic on purpose; dev messages carry detail.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process your request, please check your input"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "You are not logged in, please login first"
	ErrClientSessionExpired                = "Your session has expired, please login again"
	ErrClientInvalidUsernameOrPassword     = "Invalid email or password"
	ErrClientUpstreamUnavailable           = "The booking service is temporarily unavailable, please try again later"
	ErrClientServerLongRespond             = "Server takes too long to respond, please try again later"
	ErrClientPhotoNotFound                 = "Photo not found"
	ErrClientInvalidImageFormat            = "Invalid image, please upload a valid image file"
	ErrClientImageTooLarge                 = "Image exceeds the maximum allowed size"
	ErrClientInvalidBookingStatus          = "Invalid booking status"
	ErrClientInvalidMonth                  = "Invalid month, expected YYYY-MM"
	ErrClientInvalidDay                    = "Invalid day, expected YYYY-MM-DD"
)

// Dev messages.
const (
	ErrDevAuthTokenMissing          = "authorization token is missing from the request header"
	ErrDevAuthTokenInvalid          = "authorization token is invalid"
	ErrDevAuthTokenInvalidOrExpired = "authorization token is invalid or expired"
	ErrDevAuthInvalidSession        = "session not found or expired in redis"
	ErrDevAuthGenerateToken         = "failed to generate session JWT"
	ErrDevAuthSigningMethod         = "unexpected JWT signing method"
	ErrDevAuthUpstreamLoginFailed   = "upstream login request rejected"
	ErrDevAuthRefreshFailed         = "upstream token refresh failed"

	ErrDevCannotParseJSON           = "failed to parse JSON request body"
	ErrDevCannotMarshalJSON         = "failed to marshal value to JSON"
	ErrDevCannotParseMultipartForm  = "failed to parse multipart form"
	ErrDevValidationFailed          = "request validation failed"
	ErrDevURLParamValidationFailed  = "failed to validate URL param: %s"
	ErrDevServerDeadlineExceeded    = "server deadline exceeded"
	ErrDevMissingSessionData        = "session data not found in request context"
	ErrDevImageValidationFailed     = "uploaded file failed image validation"
	ErrDevImageTooLarge             = "uploaded image exceeds configured max size"
	ErrDevInvalidBookingStatus      = "booking status must be CONFIRMED or CANCELLED"
	ErrDevStaleDashboardGeneration  = "dashboard fetch result discarded, generation is stale"
	ErrDevCreateHTTPRequest         = "failed to create HTTP request"
	ErrDevSendHTTPRequest           = "failed to send HTTP request"
	ErrDevDecodeUpstreamResponse    = "failed to decode upstream response for %s"
	ErrDevUpstreamRejected          = "upstream rejected %s %s with status %d: %s"
	ErrDevUpstreamRateLimiterWait   = "upstream rate limiter wait aborted"
	ErrDevRedisSet                  = "failed to SET value in redis"
	ErrDevRedisGet                  = "failed to GET value from redis, key: %s"
	ErrDevRedisDelete               = "failed to DEL key in redis"
	ErrDevMinioPutObject            = "failed to put object into bucket %s"
	ErrDevMinioGetObject            = "failed to get object from bucket %s"
	ErrDevMinioStatObject           = "failed to stat object in bucket %s"
	ErrDevPhotoObjectMissing        = "photo object not found in bucket"
	ErrDevNotResourceOwner          = "session user is neither the resource owner nor an admin"
	ErrDevRoleNotAllowed            = "session role is not allowed to perform this operation"
	ErrDevQueuePublish              = "failed to publish message to queue %s"
	ErrDevQueuePublishNotConfirmed  = "publish to queue %s was not confirmed by broker"
	ErrDevQueueConsume              = "failed to start consuming queue %s"
	ErrDevDashboardStateCorrupt     = "cached dashboard state cannot be decoded"
	ErrDevAnalyticsMetricFetch      = "failed to fetch analytics metric"
	ErrDevAnalyticsUnexpectedShape  = "analytics payload has an unexpected shape"
)
