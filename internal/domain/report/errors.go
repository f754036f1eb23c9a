package report

import "errors"

var (
	ErrEmptyHistory = errors.New("no hay registros para el correo indicado")
)
