package shift

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func s(v string) *string { return &v }

func TestComputeWorkedFullDay(t *testing.T) {
	rec := &DailyRecord{
		HoraEntrada:     s("08:00:00"),
		Break1Salida:    s("09:30:00"),
		Break1Entrada:   s("09:45:00"),
		AlmuerzoSalida:  s("12:00:00"),
		AlmuerzoEntrada: s("13:00:00"),
		Break2Salida:    s("15:00:00"),
		Break2Entrada:   s("15:15:00"),
		HoraSalida:      s("17:00:00"),
	}
	// 9h minus 15m, 1h, 15m of breaks
	assert.Equal(t, "07:30:00", ComputeWorked(rec))
}

func TestComputeWorkedNoBreaks(t *testing.T) {
	rec := &DailyRecord{
		HoraEntrada: s("08:00:00"),
		HoraSalida:  s("16:30:00"),
	}
	assert.Equal(t, "08:30:00", ComputeWorked(rec))
}

func TestComputeWorkedMissingEntryOrExit(t *testing.T) {
	assert.Equal(t, NoTotal, ComputeWorked(&DailyRecord{HoraSalida: s("17:00:00")}))
	assert.Equal(t, NoTotal, ComputeWorked(&DailyRecord{HoraEntrada: s("08:00:00")}))
	assert.Equal(t, NoTotal, ComputeWorked(&DailyRecord{}))
}

func TestComputeWorkedIncompleteBreakIgnored(t *testing.T) {
	rec := &DailyRecord{
		HoraEntrada:  s("08:00:00"),
		Break1Salida: s("09:30:00"),
		HoraSalida:   s("17:00:00"),
	}
	// break1 has no return, so it does not subtract
	assert.Equal(t, "09:00:00", ComputeWorked(rec))
}

func TestComputeWorkedNegativeClampsToZero(t *testing.T) {
	rec := &DailyRecord{
		HoraEntrada:     s("09:00:00"),
		AlmuerzoSalida:  s("09:10:00"),
		AlmuerzoEntrada: s("16:50:00"),
		HoraSalida:      s("10:00:00"),
	}
	assert.Equal(t, "00:00:00", ComputeWorked(rec))
}

func TestComputeWorkedSeconds(t *testing.T) {
	rec := &DailyRecord{
		HoraEntrada: s("08:00:30"),
		HoraSalida:  s("16:00:45"),
	}
	assert.Equal(t, "08:00:15", ComputeWorked(rec))
}

func TestComputeWorkedMalformedClock(t *testing.T) {
	rec := &DailyRecord{
		HoraEntrada: s("ocho en punto"),
		HoraSalida:  s("17:00:00"),
	}
	assert.Equal(t, NoTotal, ComputeWorked(rec))
}
