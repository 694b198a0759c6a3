package dto

// Response is the envelope used by the profile, listing and vault endpoints
type Response struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}

// HealthResponse reports the liveness of the service and its database
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Dialect  string `json:"dialect,omitempty"`
	Pool     any    `json:"pool,omitempty"`
}
