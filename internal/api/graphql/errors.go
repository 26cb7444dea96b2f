package graphql

import (
	"errors"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
	"github.com/m04kA/SMC-HospitalityService/internal/service/businesses"
	"github.com/m04kA/SMC-HospitalityService/internal/service/catalog"
	"github.com/m04kA/SMC-HospitalityService/internal/service/invoices"
	"github.com/m04kA/SMC-HospitalityService/internal/service/privatisation"
	"github.com/m04kA/SMC-HospitalityService/internal/service/reservations"
	"github.com/m04kA/SMC-HospitalityService/internal/usecase/create_privatisation_v2"
	"github.com/m04kA/SMC-HospitalityService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-HospitalityService/internal/usecase/create_reservation_v2"
	"github.com/m04kA/SMC-HospitalityService/internal/usecase/get_availability"
	"github.com/m04kA/SMC-HospitalityService/internal/usecase/update_restaurant"
)

// Коды ошибок в extensions.code
const (
	CodeBadUserInput    = "BAD_USER_INPUT"
	CodeNotFound        = "NOT_FOUND"
	CodeForbidden       = "FORBIDDEN"
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeInternal        = "INTERNAL_SERVER_ERROR"
)

const msgInternal = "internal server error"

var notFoundErrors = []error{
	businesses.ErrBusinessNotFound,
	reservations.ErrReservationNotFound,
	privatisation.ErrOptionNotFound,
	privatisation.ErrRestaurantNotFound,
	catalog.ErrItemNotFound,
	invoices.ErrInvoiceNotFound,
	create_reservation.ErrServiceNotFound,
	create_reservation.ErrRoomNotFound,
	create_reservation_v2.ErrRestaurantNotFound,
	create_privatisation_v2.ErrRestaurantNotFound,
	get_availability.ErrRestaurantNotFound,
	update_restaurant.ErrRestaurantNotFound,
}

// Error ошибка резолвера с кодом для клиента
type Error struct {
	Code    string
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Extensions попадает в errors[].extensions ответа
func (e *Error) Extensions() map[string]interface{} {
	ext := map[string]interface{}{"code": e.Code}
	if e.Field != "" {
		ext["field"] = e.Field
	}
	return ext
}

// mapError переводит ошибки сервисов в ошибки API.
// Детали внутренних ошибок пишутся только в лог.
func (r *Resolver) mapError(op string, err error) error {
	if err == nil {
		return nil
	}

	if ve, ok := domain.AsValidationError(err); ok {
		return &Error{Code: CodeBadUserInput, Field: ve.Field, Message: ve.Message}
	}

	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return &Error{Code: CodeUnauthenticated, Message: err.Error()}
	case errors.Is(err, domain.ErrForbidden):
		return &Error{Code: CodeForbidden, Message: err.Error()}
	case errors.Is(err, reservations.ErrCannotCancel):
		return &Error{Code: CodeBadUserInput, Field: "status", Message: reservations.ErrCannotCancel.Error()}
	case errors.Is(err, invoices.ErrInvalidInput):
		return &Error{Code: CodeBadUserInput, Message: invoices.ErrInvalidInput.Error()}
	}

	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			return &Error{Code: CodeNotFound, Message: target.Error()}
		}
	}

	r.logger.Error("graphql %s - %v", op, err)
	return &Error{Code: CodeInternal, Message: msgInternal}
}
