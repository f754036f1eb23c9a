package shift

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// mon returns a Monday at the given clock time.
func mon(hour, min, sec int) time.Time {
	return time.Date(2025, time.March, 3, hour, min, sec, 0, time.UTC)
}

func TestValidateWindow(t *testing.T) {
	cases := []struct {
		name  string
		kind  EventKind
		now   time.Time
		valid bool
	}{
		{"entrada at opening", KindEntrada, mon(6, 0, 0), true},
		{"entrada at closing", KindEntrada, mon(8, 30, 0), true},
		{"entrada one second late", KindEntrada, mon(8, 30, 1), false},
		{"entrada too early", KindEntrada, mon(5, 59, 59), false},
		{"break1 salida inside", KindBreak1Salida, mon(9, 45, 0), true},
		{"break1 entrada boundary", KindBreak1Entrada, mon(10, 30, 0), true},
		{"almuerzo salida wide window", KindAlmuerzoSalida, mon(12, 59, 59), true},
		{"almuerzo entrada late", KindAlmuerzoEntrada, mon(14, 31, 0), false},
		{"break2 salida inside", KindBreak2Salida, mon(15, 0, 0), true},
		{"break2 entrada inside", KindBreak2Entrada, mon(16, 0, 0), true},
		{"salida at closing", KindSalida, mon(17, 30, 0), true},
		{"salida after closing", KindSalida, mon(17, 31, 0), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			verdict := ValidateWindow(c.kind, c.now)
			assert.Equal(t, c.valid, verdict.Valid, verdict.Reason)
			if !c.valid {
				assert.NotEmpty(t, verdict.Reason)
			}
		})
	}
}

func TestValidateWindowSunday(t *testing.T) {
	sunday := time.Date(2025, time.March, 2, 7, 0, 0, 0, time.UTC)
	for _, kind := range Kinds {
		verdict := ValidateWindow(kind, sunday)
		assert.False(t, verdict.Valid, "kind %s", kind)
		assert.Contains(t, verdict.Reason, "domingos")
	}
}

func TestValidateWindowUnknownKind(t *testing.T) {
	verdict := ValidateWindow(EventKind("siesta"), mon(12, 0, 0))
	assert.False(t, verdict.Valid)
}

func TestValidateWindowReasonsCarryBoundaries(t *testing.T) {
	early := ValidateWindow(KindEntrada, mon(5, 0, 0))
	assert.Contains(t, early.Reason, "06:00")

	late := ValidateWindow(KindEntrada, mon(9, 0, 0))
	assert.Contains(t, late.Reason, "08:30")
}

func TestParseEventKind(t *testing.T) {
	for _, kind := range Kinds {
		parsed, err := ParseEventKind(string(kind))
		assert.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}

	_, err := ParseEventKind("merienda")
	assert.ErrorIs(t, err, ErrUnknownEventKind)
}

func TestEventKindColumn(t *testing.T) {
	assert.Equal(t, "hora_entrada", KindEntrada.Column())
	assert.Equal(t, "hora_salida", KindSalida.Column())
	assert.Equal(t, "break1_salida", KindBreak1Salida.Column())
	assert.Equal(t, "almuerzo_entrada", KindAlmuerzoEntrada.Column())
}
