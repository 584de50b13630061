package constvars

const (
	LoggingRequestIDKey       = "request_id"
	LoggingResourceKey        = "resource"
	LoggingTableKey           = "table"
	LoggingRecordIDKey        = "record_id"
	LoggingSearchTermKey      = "search_term"
	LoggingPageKey            = "page"
	LoggingPageSizeKey        = "page_size"
	LoggingTotalKey           = "total"
	LoggingResponseCountKey   = "response_count"
	LoggingRedisKey           = "redis_key"
	LoggingCacheGenerationKey = "cache_generation"
	LoggingCacheHitKey        = "cache_hit"
	LoggingFieldErrorsKey     = "field_errors"
	LoggingQueueNameKey       = "queue_name"
	LoggingBucketNameKey      = "bucket_name"
	LoggingObjectNameKey      = "object_name"
	LoggingColumnsCountKey    = "columns_count"
	LoggingRowsCountKey       = "rows_count"
	LoggingPreviewKey         = "preview"
	LoggingCronSpecKey        = "cron_spec"
	LoggingLockValueKey       = "lock_value"
	LoggingNotificationKey    = "notification"
	LoggingStatusKey          = "report_status"

	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
	LoggingOperationKey  = "operation"
)

const (
	LoggingSubjectKey       = "subject"
	LoggingResponseBytesKey = "response_bytes"
	LoggingEventKey         = "event"
	LoggingSeverityKey      = "severity"
)
