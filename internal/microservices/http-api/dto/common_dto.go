package dto

// StatusResponse is the {"message": ...} body of create endpoints
type StatusResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}
