package constvars

const (
	URLParamID = "id"
)

const (
	URLQueryParamSearch   = "search"
	URLQueryParamPage     = "page"
	URLQueryParamPageSize = "page_size"
	URLQueryParamConfirm  = "confirm"
	URLQueryParamPreview  = "preview"
	URLQueryParamStatus   = "estado"
)
