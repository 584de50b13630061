package responses

import "time"

type Dashboard struct {
	Counts         DashboardCounts `json:"counts"`
	Departments    []LocationSlice `json:"departments"`
	Municipalities []LocationSlice `json:"municipalities"`
}

type DashboardCounts struct {
	Providers      int64 `json:"providers"`
	SampleRequests int64 `json:"sample_requests"`
	Reports        int64 `json:"reports"`
	Laboratories   int64 `json:"laboratories"`
	Technicians    int64 `json:"technicians"`
	Requesters     int64 `json:"requesters"`
}

// LocationSlice is one bucket of a count breakdown.
type LocationSlice struct {
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// ReportsByStatus breaks every report down by estado. Statuses lists every
// bucket, including ones dropped by the filter.
type ReportsByStatus struct {
	Total    int                 `json:"total"`
	Statuses []string            `json:"statuses"`
	Groups   []ReportStatusGroup `json:"groups"`
}

type ReportStatusGroup struct {
	Estado     string          `json:"estado"`
	Count      int             `json:"count"`
	Percentage float64         `json:"percentage"`
	Reports    []ReportSummary `json:"reports"`
}

type ReportSummary struct {
	ID              int64      `json:"id_reporte"`
	Codigo          string     `json:"codigo"`
	FechaCreacion   *time.Time `json:"fecha_creacion"`
	PrestadorNombre *string    `json:"prestador_nombre"`
}
