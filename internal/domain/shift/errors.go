package shift

import (
	"errors"
	"fmt"
)

// Shift domain errors
var (
	ErrUnknownEventKind   = errors.New("tipo de registro no reconocido")
	ErrRecordNotFound     = errors.New("no existe registro para la fecha indicada")
	ErrNotToday           = errors.New("solo se pueden registrar turnos del dia actual")
	ErrVerificationFailed = errors.New("el registro no pudo ser verificado despues de guardarlo")
)

// AlreadyRegisteredError signals an attempt to write an event whose
// column is already set for today.
type AlreadyRegisteredError struct {
	Kind EventKind
}

func (e *AlreadyRegisteredError) Error() string {
	return fmt.Sprintf("Ya se ha registrado la %s para hoy", e.Kind.Label())
}

// WindowError signals an event attempted outside its allowed window.
type WindowError struct {
	Kind   EventKind
	Reason string
}

func (e *WindowError) Error() string {
	return e.Reason
}
