package administrator

import (
	"time"
)

// Administrator is one row of administradores. Clave is either a bcrypt
// hash or, for rows migrated from the legacy system, a plaintext
// password.
type Administrator struct {
	ID        string
	Nombre    string
	Correo    string
	Clave     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
