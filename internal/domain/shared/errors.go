package shared

// DomainError is a business-rule violation with a stable machine code.
// The HTTP layer maps codes to statuses; the message is safe to return
// to API clients.
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a DomainError with the given code and message
func NewDomainError(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// ErrNotFound is the sentinel repositories return when a lookup
// matches nothing.
var ErrNotFound = NewDomainError("NOT_FOUND", "Resource not found")
