package shift

import (
	"github.com/sistema-turnos/turnos-backend-go/internal/pkg/validator"
)

type RegisterEventRequest struct {
	EmpleadoID int    `json:"empleado_id"`
	Tipo       string `json:"tipo"`
}

func (r *RegisterEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmpleadoID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "empleado_id",
			Message: "empleado_id is required",
		})
	}

	if validator.IsEmpty(r.Tipo) {
		errs = append(errs, validator.ValidationError{
			Field:   "tipo",
			Message: "tipo is required",
		})
	} else if _, err := ParseEventKind(r.Tipo); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "tipo",
			Message: "tipo is not a recognized event",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RegisterEventResponse struct {
	Columna string `json:"columna"`
	Hora    string `json:"hora"`
	Fecha   string `json:"fecha"`
}

// RecordResponse mirrors one historial_turnos row on the wire.
type RecordResponse struct {
	ID              string  `json:"id"`
	EmpleadoEmail   string  `json:"empleado_email"`
	Fecha           string  `json:"fecha"`
	HoraEntrada     *string `json:"hora_entrada"`
	Break1Salida    *string `json:"break1_salida"`
	Break1Entrada   *string `json:"break1_entrada"`
	AlmuerzoSalida  *string `json:"almuerzo_salida"`
	AlmuerzoEntrada *string `json:"almuerzo_entrada"`
	Break2Salida    *string `json:"break2_salida"`
	Break2Entrada   *string `json:"break2_entrada"`
	HoraSalida      *string `json:"hora_salida"`
}

// HistoryEntry is a record plus its computed worked hours.
type HistoryEntry struct {
	RecordResponse
	TotalHoras string `json:"total_horas"`
}

// SaveDayRequest imports a full day row. Only today may be written.
type SaveDayRequest struct {
	EmpleadoID      int     `json:"empleado_id"`
	Fecha           string  `json:"fecha"`
	HoraEntrada     *string `json:"hora_entrada"`
	Break1Salida    *string `json:"break1_salida"`
	Break1Entrada   *string `json:"break1_entrada"`
	AlmuerzoSalida  *string `json:"almuerzo_salida"`
	AlmuerzoEntrada *string `json:"almuerzo_entrada"`
	Break2Salida    *string `json:"break2_salida"`
	Break2Entrada   *string `json:"break2_entrada"`
	HoraSalida      *string `json:"hora_salida"`
}

func (r *SaveDayRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmpleadoID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "empleado_id",
			Message: "empleado_id is required",
		})
	}

	if validator.IsEmpty(r.Fecha) {
		errs = append(errs, validator.ValidationError{
			Field:   "fecha",
			Message: "fecha is required",
		})
	} else if _, ok := validator.IsValidDate(r.Fecha); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "fecha",
			Message: "fecha must be in YYYY-MM-DD format",
		})
	}

	clocks := map[string]*string{
		"hora_entrada":     r.HoraEntrada,
		"break1_salida":    r.Break1Salida,
		"break1_entrada":   r.Break1Entrada,
		"almuerzo_salida":  r.AlmuerzoSalida,
		"almuerzo_entrada": r.AlmuerzoEntrada,
		"break2_salida":    r.Break2Salida,
		"break2_entrada":   r.Break2Entrada,
		"hora_salida":      r.HoraSalida,
	}
	for field, value := range clocks {
		if value != nil && !validator.IsValidClock(*value) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be in HH:MM:SS format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CleanupRequest struct {
	EmpleadoID int    `json:"empleado_id"`
	Email      string `json:"email"`
}

func (r *CleanupRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmpleadoID <= 0 && validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "empleado_id",
			Message: "empleado_id or email is required",
		})
	}

	if !validator.IsEmpty(r.Email) && !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type WindowResponse struct {
	Tipo   string `json:"tipo"`
	Valido bool   `json:"valido"`
	Motivo string `json:"motivo,omitempty"`
}
