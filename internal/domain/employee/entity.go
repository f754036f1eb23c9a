package employee

import (
	"time"
)

// Employee is one row of empleados. EmpleadoID is the human-visible
// numeric code typed into the clock terminal; Correo keys the shift
// history. DireccionIP holds the last IP the employee logged in from.
type Employee struct {
	ID           string
	EmpleadoID   int
	Nombre       string
	Correo       string
	SedeID       *string
	TurnoEntrada *string
	TurnoSalida  *string
	DireccionIP  *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
