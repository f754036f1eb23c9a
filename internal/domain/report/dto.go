package report

import (
	"github.com/sistema-turnos/turnos-backend-go/internal/pkg/validator"
)

type ExportRequest struct {
	Email string
}

func (r *ExportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// EmailReportRequest mails a caller-supplied PDF report. The server
// attaches the bytes as-is and never renders PDF itself.
type EmailReportRequest struct {
	Email    string
	Message  string
	PDF      []byte
	Filename string
}

func (r *EmailReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if len(r.PDF) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "pdf",
			Message: "pdf attachment is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ExportResponse carries a built workbook ready for download.
type ExportResponse struct {
	Filename string
	Content  []byte
}
