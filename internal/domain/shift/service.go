package shift

import (
	"context"
)

// Service defines business logic for shift registration.
type Service interface {
	// RegisterEvent writes one clock event for today, at most once per
	// event. The window check runs before the write.
	RegisterEvent(ctx context.Context, req RegisterEventRequest) (RegisterEventResponse, error)

	// Records returns the record for one employee and date (0 or 1 rows).
	Records(ctx context.Context, empleadoID int, fecha string) ([]RecordResponse, error)

	// CheckWindow evaluates the registration window for an event at the
	// current time. Informational; RegisterEvent re-checks.
	CheckWindow(tipo string) (WindowResponse, error)

	// SaveDay imports a full day row. Only today is accepted.
	SaveDay(ctx context.Context, req SaveDayRequest) (RecordResponse, error)

	// CleanupToday deletes today's record for an employee.
	CleanupToday(ctx context.Context, req CleanupRequest) (int64, error)

	// History returns all records for an email, newest first, with
	// computed worked hours.
	History(ctx context.Context, email string) ([]HistoryEntry, error)
}
