package constvars

type ContextKey string

const (
	ResourceProviders       = "providers"
	ResourceLaboratories    = "laboratories"
	ResourceTechnicians     = "technicians"
	ResourceSampleRequests  = "sample-requests"
	ResourceRequesters      = "requesters"
	ResourceReports         = "reports"
	ResourceLocations       = "locations"
	ResourceRepresentatives = "representatives"
	ResourceDashboard       = "dashboard"
	ResourceExport          = "export"
)

const (
	TableProvider       = "prestador"
	TableLaboratory     = "laboratorio"
	TableTechnician     = "tecnico"
	TableSampleRequest  = "muestreo"
	TableRequester      = "solicitante"
	TableReport         = "reporte"
	TableLocation       = "ubicacion"
	TableRepresentative = "representante"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SUBJECT_KEY              ContextKey = "subject"
)

const (
	REQUEST_ID_PREFIX = "UESV_SVC_"
)

const (
	DefaultPage     = 0
	DefaultPageSize = 10
	// mirrors the lte bound on requests.ListQuery.Page
	MaxPage         = 1000000
)

// PageSizeOptions are the only page sizes the console grid offers.
var PageSizeOptions = []int{10, 25, 50, 100}

const (
	DashboardTopMunicipalities   = 10
	DashboardNoLocationLabel     = "Sin ubicación"
	DashboardNoDepartmentLabel   = "Sin departamento"
	DashboardNoMunicipalityLabel = "Sin municipio"
	DashboardNoStatusLabel       = "Sin estado"
	ExportPreviewRowLimit        = 20
	ExportSheetName              = "merge"
	ExportCSVFileNameFormat      = "exportacion_%s.csv"
	ExportXLSXFileNameFormat     = "exportacion_%s.xlsx"
	ExportArchiveObjectPrefix    = "exports/"
	ExportArchiveLeaderLockKey   = "export-archive:leader"
	MergeProcedureName           = "merge"
)
