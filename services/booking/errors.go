package booking

import "fmt"

// BookingError carries a stable code alongside a human-readable message so
// handlers can map failures to HTTP statuses.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &BookingError{Code: "validationError", Message: msg}
}

func NewSlotTakenError(msg string) error {
	return &BookingError{Code: "slotTaken", Message: msg}
}

func NewNotFoundError(msg string) error {
	return &BookingError{Code: "notFound", Message: msg}
}

func NewBusyError(msg string) error {
	return &BookingError{Code: "staffBusy", Message: msg}
}

// CodeOf extracts the BookingError code, or "" for other errors.
func CodeOf(err error) string {
	if be, ok := err.(*BookingError); ok {
		return be.Code
	}
	return ""
}
