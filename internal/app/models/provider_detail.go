package models

type ProviderDetail struct {
	Provider        Provider                   `json:"provider"`
	Representatives []Representative           `json:"representatives"`
	SampleRequests  []ProviderSampleRequestRow `json:"sample_requests"`
	Reports         []Report                   `json:"reports"`
}
