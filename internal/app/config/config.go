package config

import (
	"salon-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", "customRedisPass"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "salon-photos"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                       utils.GetEnvString("APP_ENV", "development"),
			Port:                      utils.GetEnvString("APP_PORT", ":8080"),
			Version:                   utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                   utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                  utils.GetEnvString("APP_TIMEZONE", "Europe/Lisbon"),
			EndpointPrefix:            utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api/v1"),
			RabbitMQBookingQueue:      utils.GetEnvString("APP_RABBITMQ_BOOKING_QUEUE", "booking_events"),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeout:           utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxTimeRequestsPerSeconds: utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 10),
		},
		SalonAPI: SalonAPI{
			BaseUrl:              utils.GetEnvString("SALON_API_BASE_URL", "http://localhost:5555"),
			TimeoutInSeconds:     utils.GetEnvInt("SALON_API_TIMEOUT_IN_SECONDS", 15),
			RequestsPerSecond:    utils.GetEnvFloat("SALON_API_REQUESTS_PER_SECOND", 20),
			RequestBurst:         utils.GetEnvInt("SALON_API_REQUEST_BURST", 40),
			RefreshCookieName:    utils.GetEnvString("SALON_API_REFRESH_COOKIE_NAME", "refresh_token"),
			SessionFallbackHours: utils.GetEnvInt("SALON_API_SESSION_FALLBACK_HOURS", 8),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 8),
		},
		Photo: Photo{
			MaxUploadSizeInMB: utils.GetEnvInt64("APP_PHOTO_UPLOAD_MAX_SIZE_IN_MB", 2),
		},
		Events: Events{
			WebhookURL:           utils.GetEnvString("EVENTS_WEBHOOK_URL", ""),
			MaxQueue:             utils.GetEnvInt("EVENTS_MAX_QUEUE", 20),
			ThrottleRetry:        utils.GetEnvInt("EVENTS_THROTTLE_RETRY", 5),
			HTTPTimeoutInSeconds: utils.GetEnvInt("EVENTS_HTTP_TIMEOUT_IN_SECONDS", 10),
		},
	}
}
