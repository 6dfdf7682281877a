package errors

// Stable numeric codes carried in every response envelope.
const (
	CodeSuccess                 = 0
	CodeBadRequest              = 40000
	CodeAccountAlreadyExists    = 40001
	CodeAccountNotExists        = 40002
	CodeAccountStatusNotAllowed = 40003
	CodeTransferNotAllowed      = 40004
	CodeSystemError             = 50000
)

// BusinessError is a typed, recoverable business-rule violation. It is caught
// at the HTTP boundary and mapped to a structured response; it is never
// retried automatically.
type BusinessError struct {
	Code        int    `json:"code"`
	Message     string `json:"message"`
	Description string `json:"description,omitempty"`
}

func (e *BusinessError) Error() string {
	if e.Description != "" {
		return e.Message + ": " + e.Description
	}
	return e.Message
}

// WithDescription returns a copy of the error carrying an additional
// human-readable description.
func (e *BusinessError) WithDescription(description string) *BusinessError {
	return &BusinessError{Code: e.Code, Message: e.Message, Description: description}
}

var (
	// ErrAccountAlreadyExists is returned on a card number collision,
	// either at the creation pre-check or on a racing insert.
	ErrAccountAlreadyExists = &BusinessError{Code: CodeAccountAlreadyExists, Message: "account already exists"}
	// ErrAccountNotExists is returned on a lookup miss.
	ErrAccountNotExists = &BusinessError{Code: CodeAccountNotExists, Message: "account does not exist"}
	// ErrAccountStatusNotAllowed is returned when an update targets a non-ACTIVE account.
	ErrAccountStatusNotAllowed = &BusinessError{Code: CodeAccountStatusNotAllowed, Message: "account status does not allow this operation"}
	// ErrTransferNotAllowed is returned on a name mismatch or insufficient funds.
	ErrTransferNotAllowed = &BusinessError{Code: CodeTransferNotAllowed, Message: "transfer not allowed"}
)

// BadRequest builds a validation failure rejected at the boundary.
func BadRequest(description string) *BusinessError {
	return &BusinessError{Code: CodeBadRequest, Message: "bad request", Description: description}
}
