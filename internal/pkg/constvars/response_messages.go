package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Entity messages, formatted with the entity label
	ListEntitySuccessMessage    = "get %s list successfully"
	GetEntitySuccessMessage     = "get %s successfully"
	GetEntityFormSuccessMessage = "get %s form successfully"
	CreateEntitySuccessMessage  = "%s created successfully"
	UpdateEntitySuccessMessage  = "%s updated successfully"
	DeleteEntitySuccessMessage  = "%s deleted successfully"
	CreateEntityErrorTitle      = "Error creating %s"
	UpdateEntityErrorTitle      = "Error updating %s"
	DeleteEntityErrorTitle      = "Error deleting %s"

	GetDashboardSuccessMessage       = "get dashboard successfully"
	GetReportsByStatusSuccessMessage = "get reports by status successfully"
	GetProviderDetailSuccessMessage  = "get provider detail successfully"
	GetMergeSuccessMessage           = "get merged data successfully"
	GetLatestArchiveSuccessMessage   = "get latest export archive successfully"
	CreateArchiveSuccessMessage      = "export archive created successfully"
)

const (
	NotificationLevelSuccess = "success"
	NotificationLevelError   = "error"
)
