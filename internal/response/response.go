package response

// BaseResponse is the envelope every endpoint returns: a numeric status code,
// a human-readable message, the payload on success, and an optional failure
// description.
type BaseResponse struct {
	Code        int         `json:"code"`
	Message     string      `json:"message"`
	Data        interface{} `json:"data,omitempty"`
	Description string      `json:"description,omitempty"`
}

// Success wraps a payload in a zero-code envelope.
func Success(data interface{}) *BaseResponse {
	return &BaseResponse{Code: 0, Message: "ok", Data: data}
}

// Error builds a failure envelope.
func Error(code int, message, description string) *BaseResponse {
	return &BaseResponse{Code: code, Message: message, Description: description}
}
