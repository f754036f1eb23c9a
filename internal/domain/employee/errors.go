package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("empleado no encontrado")
)
