package config

type (
	DriverConfig struct {
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}
)

type (
	InternalConfig struct {
		App      App
		SalonAPI SalonAPI
		JWT      JWT
		Photo    Photo
		Events   Events
	}
	App struct {
		Env                       string
		Port                      string
		Version                   string
		Address                   string
		Timezone                  string
		EndpointPrefix            string
		RabbitMQBookingQueue      string
		MaxRequests               int
		ShutdownTimeout           int
		MaxTimeRequestsPerSeconds int
	}
	SalonAPI struct {
		BaseUrl              string
		TimeoutInSeconds     int
		RequestsPerSecond    float64
		RequestBurst         int
		RefreshCookieName    string
		SessionFallbackHours int
	}
	JWT struct {
		Secret        string
		ExpTimeInHour int
	}
	Photo struct {
		MaxUploadSizeInMB int64
	}
	Events struct {
		WebhookURL           string
		MaxQueue             int
		ThrottleRetry        int
		HTTPTimeoutInSeconds int
	}
)
