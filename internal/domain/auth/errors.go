package auth

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials  = errors.New("correo o contrasena incorrectos")
	ErrMissingPassword     = errors.New("la contrasena es requerida para administradores")
	ErrMissingSede         = errors.New("la sede es requerida para empleados")
	ErrWrongSede           = errors.New("el empleado no pertenece a la sede seleccionada")
	ErrUserNotFound        = errors.New("el usuario no esta registrado")
	ErrInvalidToken        = errors.New("token invalido o expirado")
	ErrRefreshTokenRevoked = errors.New("el refresh token fue revocado")
)

// SiteMismatchError signals an employee login from an IP that does not
// match the registered address of the chosen sede.
type SiteMismatchError struct {
	Expected string
	Observed string
}

func (e *SiteMismatchError) Error() string {
	return fmt.Sprintf("la direccion IP %s no corresponde a la sede seleccionada", e.Observed)
}
