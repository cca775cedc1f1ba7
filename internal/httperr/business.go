package httperr

import "errors"

// Códigos de negócio compartilhados entre casos de uso e handlers.
const (
	CodeValidation         = "validation_error"
	CodeNotAuthenticated   = "not_authenticated"
	CodeForbidden          = "forbidden"
	CodeNoManagedShop      = "no_managed_barbershop"
	CodeSlotTaken          = "slot_taken"
	CodeHasFutureBookings  = "has_future_bookings"
	CodeBarbershopNotFound = "barbershop_not_found"
	CodeServiceNotFound    = "service_not_found"
	CodeInvalidCredentials = "invalid_credentials"
	CodeEmailTaken         = "email_already_registered"
)

type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Code + ": " + e.Message
	}
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func ErrBusinessMsg(code, message string) error {
	return BusinessError{Code: code, Message: message}
}

func ErrValidation(message string) error {
	return BusinessError{Code: CodeValidation, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}
