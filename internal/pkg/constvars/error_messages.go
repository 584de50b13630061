package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"numeric":  "must be a number",
	"email":    "must be a valid email",
	"min":      "must be at least %s",
	"max":      "must be at most %s",
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
	"oneof":    "must be one of [%s]",
	"datetime": "must be a date formatted as %s",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"gte":      true,
	"lte":      true,
	"oneof":    true,
	"datetime": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "cannot process the request"
	ErrClientSomethingWrongWithApplication = "something went wrong with the application"
	ErrClientServerLongRespond             = "server took too long to respond"
	ErrClientNotLoggedIn                   = "you must be logged in to access this resource"
	ErrClientValidationFailed              = "some fields are invalid"
	ErrClientRecordNotFound                = "%s not found"
	ErrClientDeleteNotConfirmed            = "deleting a %s must be confirmed"
	ErrClientBackendUnavailable            = "the data service is unavailable"
	ErrClientExportArchiveNotFound         = "no export archive is available yet"
	ErrClientExportArchiveDisabled         = "export archive is disabled"
	ErrClientTooManyRequests               = "too many requests"
	ErrClientRequestBodyTooLarge           = "request body is too large"
)

// Error messages for developers
const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevValidationFailed           = "validation failed"
	ErrDevURLParamIDValidationFailed = "url param '%s' must be a positive integer"
	ErrDevQueryParamValidationFailed = "query params validation failed"
	ErrDevCannotParseJSON            = "cannot parse request body as JSON"
	ErrDevRequestBodyTooLarge        = "request body exceeds %d bytes"
	ErrDevCannotMarshalJSON          = "cannot marshal JSON"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevAuthTokenMissing           = "authorization bearer token missing"
	ErrDevAuthTokenInvalidOrExpired  = "authorization bearer token invalid or expired"
	ErrDevRecordNotFound             = "no row in table '%s' with key %d"
	ErrDevDeleteNotConfirmed         = "delete on table '%s' requested without confirmation"
	ErrDevPostgresRejected           = "postgres rejected the statement on table '%s' (code %s)"
	ErrDevPostgresFindData           = "failed to read from table '%s'"
	ErrDevPostgresCountData          = "failed to count rows of table '%s'"
	ErrDevPostgresInsertData         = "failed to insert into table '%s'"
	ErrDevPostgresUpdateData         = "failed to update table '%s'"
	ErrDevPostgresDeleteData         = "failed to delete from table '%s'"
	ErrDevPostgresCallProcedure      = "failed to call procedure '%s'"
	ErrDevPostgresScanRow            = "failed to scan row"
	ErrDevRedisGetData               = "failed to get data from redis"
	ErrDevRedisSetData               = "failed to set data on redis"
	ErrDevRedisDeleteData            = "failed to delete data on redis"
	ErrDevRedisIncr                  = "failed to increment redis counter"
	ErrDevRedisSetNX                 = "failed to set redis key if absent"
	ErrDevMinioPutObject             = "failed to upload object to minio"
	ErrDevMinioListObjects           = "failed to list objects on minio"
	ErrDevMinioPresignedURL          = "failed to build minio presigned url"
	ErrDevRabbitMQPublish            = "failed to publish message to rabbitmq"
	ErrDevBuildSpreadsheet           = "failed to build spreadsheet"
	ErrDevBuildCSV                   = "failed to build csv"
	ErrDevExportArchiveNotFound      = "bucket has no object under prefix '%s'"
	ErrDevExportArchiveDisabled      = "export archive storage is not configured"
	ErrDevSomethingWrongWithApp      = "something went wrong with the application"
)
