package administrator

import (
	"context"
)

// Repository defines data access for administradores.
type Repository interface {
	GetByEmail(ctx context.Context, correo string) (Administrator, error)
}
