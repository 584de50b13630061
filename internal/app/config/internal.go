package config

type InternalConfig struct {
	App      App
	JWT      AppJWT
	Cache    AppCache
	RabbitMQ AppRabbitMQ
	Minio    AppMinio
	Export   AppExport
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	BaseUrl                    string
	Timezone                   string
	FrontendDomain             string
	EndpointPrefix             string
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	RequestTimeoutInSeconds    int
	RequestBodyLimitInMegabyte int
}

// AppJWT holds the secret shared with the identity service that issues console sessions.
type AppJWT struct {
	Secret string
}

type AppCache struct {
	ListTTLInSeconds int
}

type AppRabbitMQ struct {
	NotificationQueue string
}

type AppMinio struct {
	ExportBucketName                         string
	MinioPreSignedUrlObjectExpiryTimeInHours int
}

// AppExport configures the scheduled spreadsheet archive. An empty cron spec disables it.
type AppExport struct {
	ArchiveCronSpec            string
	ArchiveLockTTLInMinutes    int
	ArchiveRunTimeoutInSeconds int
}
