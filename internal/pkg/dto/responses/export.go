package responses

import "time"

type MergedData struct {
	Columns []string                 `json:"columns"`
	Rows    []map[string]interface{} `json:"rows"`
}

type ExportArchive struct {
	ObjectName   string    `json:"object_name"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
	URL          string    `json:"url"`
	ExpiresAt    time.Time `json:"expires_at"`
}
