package shift

import (
	"fmt"
	"time"
)

// EventKind identifies one of the eight clock events of a work day.
type EventKind string

const (
	KindEntrada         EventKind = "entrada"
	KindBreak1Salida    EventKind = "break1_salida"
	KindBreak1Entrada   EventKind = "break1_entrada"
	KindAlmuerzoSalida  EventKind = "almuerzo_salida"
	KindAlmuerzoEntrada EventKind = "almuerzo_entrada"
	KindBreak2Salida    EventKind = "break2_salida"
	KindBreak2Entrada   EventKind = "break2_entrada"
	KindSalida          EventKind = "salida"
)

// Kinds lists every event in chronological order of the work day.
var Kinds = []EventKind{
	KindEntrada,
	KindBreak1Salida,
	KindBreak1Entrada,
	KindAlmuerzoSalida,
	KindAlmuerzoEntrada,
	KindBreak2Salida,
	KindBreak2Entrada,
	KindSalida,
}

// ParseEventKind validates a wire value against the known kinds.
func ParseEventKind(s string) (EventKind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEventKind, s)
}

// Column returns the historial_turnos column the event writes to.
// Entry and exit have their own column names; the break events map 1:1.
func (k EventKind) Column() string {
	switch k {
	case KindEntrada:
		return "hora_entrada"
	case KindSalida:
		return "hora_salida"
	default:
		return string(k)
	}
}

// Label is the human-facing Spanish name used in duplicate messages.
func (k EventKind) Label() string {
	switch k {
	case KindEntrada:
		return "entrada"
	case KindBreak1Salida:
		return "salida del primer break"
	case KindBreak1Entrada:
		return "entrada del primer break"
	case KindAlmuerzoSalida:
		return "salida del almuerzo"
	case KindAlmuerzoEntrada:
		return "entrada del almuerzo"
	case KindBreak2Salida:
		return "salida del segundo break"
	case KindBreak2Entrada:
		return "entrada del segundo break"
	case KindSalida:
		return "salida"
	default:
		return string(k)
	}
}

// DailyRecord is one row of historial_turnos: every clock event of a
// single employee on a single day. Times are stored as "HH:MM:SS" text,
// nil when the event has not happened.
type DailyRecord struct {
	ID              string
	EmpleadoEmail   string
	Fecha           time.Time
	HoraEntrada     *string
	Break1Salida    *string
	Break1Entrada   *string
	AlmuerzoSalida  *string
	AlmuerzoEntrada *string
	Break2Salida    *string
	Break2Entrada   *string
	HoraSalida      *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Field returns a pointer to the record field holding the given event.
func (r *DailyRecord) Field(kind EventKind) **string {
	switch kind {
	case KindEntrada:
		return &r.HoraEntrada
	case KindBreak1Salida:
		return &r.Break1Salida
	case KindBreak1Entrada:
		return &r.Break1Entrada
	case KindAlmuerzoSalida:
		return &r.AlmuerzoSalida
	case KindAlmuerzoEntrada:
		return &r.AlmuerzoEntrada
	case KindBreak2Salida:
		return &r.Break2Salida
	case KindBreak2Entrada:
		return &r.Break2Entrada
	case KindSalida:
		return &r.HoraSalida
	default:
		return nil
	}
}

// Value returns the stored time for an event, nil when unset.
func (r *DailyRecord) Value(kind EventKind) *string {
	f := r.Field(kind)
	if f == nil {
		return nil
	}
	return *f
}
