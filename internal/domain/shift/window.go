package shift

import (
	"fmt"
	"time"
)

// Window is the inclusive range of the day in which an event may be
// registered, expressed in minutes since midnight.
type Window struct {
	From int
	To   int
}

func (w Window) format(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// FromLabel and ToLabel render the boundaries as "HH:MM".
func (w Window) FromLabel() string { return w.format(w.From) }
func (w Window) ToLabel() string   { return w.format(w.To) }

var windows = map[EventKind]Window{
	KindEntrada:         {From: 6 * 60, To: 8*60 + 30},
	KindBreak1Salida:    {From: 9 * 60, To: 10*60 + 30},
	KindBreak1Entrada:   {From: 10*60 + 30, To: 11*60 + 30},
	KindAlmuerzoSalida:  {From: 10 * 60, To: 13 * 60},
	KindAlmuerzoEntrada: {From: 13 * 60, To: 14*60 + 30},
	KindBreak2Salida:    {From: 14*60 + 30, To: 15*60 + 30},
	KindBreak2Entrada:   {From: 15*60 + 30, To: 16*60 + 30},
	KindSalida:          {From: 16*60 + 30, To: 17*60 + 30},
}

// WindowFor returns the allowed window of an event kind.
func WindowFor(kind EventKind) (Window, bool) {
	w, ok := windows[kind]
	return w, ok
}

// WindowVerdict is the result of a window check.
type WindowVerdict struct {
	Valid  bool
	Reason string
}

// ValidateWindow checks whether an event may be registered at the given
// local time. Each window is checked independently; no event requires a
// previous one to be registered first. Sundays are always rejected.
func ValidateWindow(kind EventKind, now time.Time) WindowVerdict {
	if now.Weekday() == time.Sunday {
		return WindowVerdict{Valid: false, Reason: "No se permite registrar turnos los domingos"}
	}

	w, ok := windows[kind]
	if !ok {
		return WindowVerdict{Valid: false, Reason: fmt.Sprintf("Tipo de registro no reconocido: %s", kind)}
	}

	// Seconds count toward the boundary so 08:30:59 is still past 08:30.
	minutes := now.Hour()*60 + now.Minute()
	seconds := minutes*60 + now.Second()

	if seconds < w.From*60 {
		return WindowVerdict{
			Valid: false,
			Reason: fmt.Sprintf("Aun no es hora de registrar la %s (desde las %s)",
				kind.Label(), w.FromLabel()),
		}
	}
	if seconds > w.To*60 {
		return WindowVerdict{
			Valid: false,
			Reason: fmt.Sprintf("Ya paso la hora permitida para registrar la %s (hasta las %s)",
				kind.Label(), w.ToLabel()),
		}
	}
	return WindowVerdict{Valid: true}
}
