package responses

type FormDialog struct {
	Resource     string                 `json:"resource"`
	State        string                 `json:"state"`
	Mode         string                 `json:"mode"`
	RecordID     *int64                 `json:"record_id,omitempty"`
	Values       map[string]interface{} `json:"values"`
	FieldErrors  map[string]string      `json:"field_errors,omitempty"`
	Notification *Notification          `json:"notification,omitempty"`
}
