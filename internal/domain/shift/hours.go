package shift

import (
	"fmt"
	"time"
)

// NoTotal is returned when worked hours cannot be computed.
const NoTotal = "N/A"

var breakPairs = [][2]EventKind{
	{KindBreak1Salida, KindBreak1Entrada},
	{KindAlmuerzoSalida, KindAlmuerzoEntrada},
	{KindBreak2Salida, KindBreak2Entrada},
}

// ComputeWorked returns the total worked time of a day as "HH:MM:SS".
// It needs both entry and exit; incomplete break pairs are ignored, a
// negative total collapses to zero.
func ComputeWorked(rec *DailyRecord) string {
	entrada := parseClock(rec.HoraEntrada)
	salida := parseClock(rec.HoraSalida)
	if entrada < 0 || salida < 0 {
		return NoTotal
	}

	total := salida - entrada
	for _, pair := range breakPairs {
		out := parseClock(rec.Value(pair[0]))
		in := parseClock(rec.Value(pair[1]))
		if out < 0 || in < 0 {
			continue
		}
		total -= in - out
	}

	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

// parseClock converts "HH:MM:SS" to seconds since midnight, -1 when
// missing or malformed.
func parseClock(s *string) int {
	if s == nil {
		return -1
	}
	t, err := time.Parse("15:04:05", *s)
	if err != nil {
		return -1
	}
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}
