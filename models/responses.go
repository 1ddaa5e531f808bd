package models

// Response is the envelope of every JSON body written by the HTTP API.
//
// Success is derived from StatusCode: codes below 400 are successful.
type Response struct {
	// StatusCode mirrors the HTTP status of the response.
	StatusCode int `json:"statusCode"`

	// Data is the payload of a successful response, or nil.
	Data any `json:"data"`

	// Message is a short human-readable description of the outcome.
	Message string `json:"message"`

	// Success reports whether the request succeeded.
	Success bool `json:"success"`
}

// NewResponse builds a [Response] for the given status code.
func NewResponse(statusCode int, data any, message string) Response {
	return Response{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    statusCode < 400,
	}
}
