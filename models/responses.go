package models

// ErrorResponse is the body written for failed resource requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body written for informational replies and for
// rejections issued by the authentication middleware.
type MessageResponse struct {
	Message string `json:"message"`
}

// ProtectedResponse is the body of GET /protected. It echoes the identity
// decoded from the caller's token.
type ProtectedResponse struct {
	Message string `json:"message"`
	User    Claims `json:"user"`
}
