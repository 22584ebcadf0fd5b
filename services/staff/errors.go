package staff

import "fmt"

// StaffError carries a stable code alongside a human-readable message.
type StaffError struct {
	Code    string
	Message string
}

func (e *StaffError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &StaffError{Code: "validationError", Message: msg}
}

func NewDuplicateWindowError(msg string) error {
	return &StaffError{Code: "duplicateWindow", Message: msg}
}

func NewNotFoundError(msg string) error {
	return &StaffError{Code: "notFound", Message: msg}
}

// CodeOf extracts the StaffError code, or "" for other errors.
func CodeOf(err error) string {
	if se, ok := err.(*StaffError); ok {
		return se.Code
	}
	return ""
}
