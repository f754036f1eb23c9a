package administrator

import "errors"

var (
	ErrAdministratorNotFound = errors.New("administrador no encontrado")
)
