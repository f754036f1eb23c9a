package response

import (
	"errors"
	"net/http"

	"github.com/sistema-turnos/turnos-backend-go/internal/domain/administrator"
	"github.com/sistema-turnos/turnos-backend-go/internal/domain/auth"
	"github.com/sistema-turnos/turnos-backend-go/internal/domain/employee"
	"github.com/sistema-turnos/turnos-backend-go/internal/domain/report"
	"github.com/sistema-turnos/turnos-backend-go/internal/domain/shift"
	"github.com/sistema-turnos/turnos-backend-go/internal/domain/site"
	"github.com/sistema-turnos/turnos-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Errors that carry their own message
	var alreadyRegistered *shift.AlreadyRegisteredError
	if errors.As(err, &alreadyRegistered) {
		BadRequest(w, alreadyRegistered.Error(), nil)
		return
	}
	var windowErr *shift.WindowError
	if errors.As(err, &windowErr) {
		BadRequest(w, windowErr.Error(), nil)
		return
	}
	var siteMismatch *auth.SiteMismatchError
	if errors.As(err, &siteMismatch) {
		Forbidden(w, siteMismatch.Error())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrMissingPassword):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, auth.ErrMissingSede):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, auth.ErrWrongSede):
		Forbidden(w, err.Error())
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, err.Error())

	// Shift domain errors
	case errors.Is(err, shift.ErrUnknownEventKind):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, shift.ErrNotToday):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, shift.ErrRecordNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, shift.ErrVerificationFailed):
		InternalServerError(w, err.Error())

	// Lookup errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, administrator.ErrAdministratorNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, site.ErrSiteNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, report.ErrEmptyHistory):
		NotFound(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
