package httperr

import "errors"

// Business error codes shared between usecases and handlers.
const (
	CodeValidationFailed  = "validation_failed"
	CodeSlotTaken         = "slot_taken"
	CodeInvalidSlot       = "invalid_slot"
	CodeDateInPast        = "date_in_past"
	CodeTooSoon           = "too_soon"
	CodeTooFarAhead       = "too_far_ahead"
	CodeBarberNotFound    = "barber_not_found"
	CodeServiceNotFound   = "service_not_found"
	CodeBarberNotWorking  = "barber_not_working"
	CodeShopClosed        = "shop_closed"
	CodeBookingNotFound   = "booking_not_found"
	CodeInvalidState      = "invalid_state"
	CodePersistenceFailed = "persistence_failed"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extracts the code from a business error, or "" for other errors.
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
