package shift

import (
	"context"
	"time"
)

// Repository defines data access for daily shift records. Records are
// keyed by (empleado_email, fecha); event columns are write-once and the
// guards live in SQL so concurrent writers cannot overwrite each other.
type Repository interface {
	// GetByEmailAndDate returns the record for one day, nil when absent.
	GetByEmailAndDate(ctx context.Context, email string, date time.Time) (*DailyRecord, error)

	// InsertEvent creates the day row with only the given event column
	// set. Returns false when the row already existed.
	InsertEvent(ctx context.Context, email string, date time.Time, kind EventKind, hora string) (bool, error)

	// SetEventIfUnset fills an event column only while it is NULL.
	// Returns false when the column was already set.
	SetEventIfUnset(ctx context.Context, email string, date time.Time, kind EventKind, hora string) (bool, error)

	// UpsertDay writes a full day row, replacing any event columns
	// already present.
	UpsertDay(ctx context.Context, rec DailyRecord) (DailyRecord, error)

	// DeleteByEmailAndDate removes a day row, returning rows deleted.
	DeleteByEmailAndDate(ctx context.Context, email string, date time.Time) (int64, error)

	// ListByEmail returns every record for an email, newest first.
	ListByEmail(ctx context.Context, email string) ([]DailyRecord, error)
}
