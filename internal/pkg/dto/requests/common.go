package requests

// ListQuery is the grid state sent by the console: zero-based page.
// The page bound keeps page*page_size inside int for every allowed size.
type ListQuery struct {
	Search   string `json:"search"`
	Page     int    `json:"page" validate:"gte=0,lte=1000000"`
	PageSize int    `json:"page_size" validate:"oneof=10 25 50 100"`
}
