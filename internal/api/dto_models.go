package api

// ErrorResponse is the structured error envelope returned for every failed
// request: {"detail": "..."} with the appropriate status class.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// DeleteResponse acknowledges a successful delete.
type DeleteResponse struct {
	Success bool `json:"success"`
}

// StatusResponse is the body of the public connectivity check.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
