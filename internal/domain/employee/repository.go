package employee

import (
	"context"
)

// Repository defines data access for empleados.
type Repository interface {
	// GetByEmpleadoID resolves the numeric terminal code.
	GetByEmpleadoID(ctx context.Context, empleadoID int) (Employee, error)

	// GetByEmail resolves the login email.
	GetByEmail(ctx context.Context, correo string) (Employee, error)

	// UpdateIP overwrites the stored login IP. Runs on every
	// successful employee login.
	UpdateIP(ctx context.Context, id string, ip string) error
}
