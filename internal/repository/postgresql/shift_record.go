package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/sistema-turnos/turnos-backend-go/internal/domain/shift"
	"github.com/sistema-turnos/turnos-backend-go/internal/pkg/database"
)

type shiftRecordRepository struct {
	db *database.DB
}

func NewShiftRecordRepository(db *database.DB) shift.Repository {
	return &shiftRecordRepository{db: db}
}

const recordColumns = `
	id, empleado_email, fecha,
	hora_entrada, break1_salida, break1_entrada,
	almuerzo_salida, almuerzo_entrada,
	break2_salida, break2_entrada, hora_salida,
	created_at, updated_at`

func scanRecord(row pgx.Row) (shift.DailyRecord, error) {
	var rec shift.DailyRecord
	err := row.Scan(
		&rec.ID, &rec.EmpleadoEmail, &rec.Fecha,
		&rec.HoraEntrada, &rec.Break1Salida, &rec.Break1Entrada,
		&rec.AlmuerzoSalida, &rec.AlmuerzoEntrada,
		&rec.Break2Salida, &rec.Break2Entrada, &rec.HoraSalida,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// GetByEmailAndDate implements shift.Repository.
func (r *shiftRecordRepository) GetByEmailAndDate(ctx context.Context, email string, date time.Time) (*shift.DailyRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM historial_turnos
		WHERE empleado_email = $1
		  AND fecha = $2
		LIMIT 1
	`, recordColumns)

	rec, err := scanRecord(q.QueryRow(ctx, query, email, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // No record for that day yet
		}
		return nil, fmt.Errorf("failed to get shift record: %w", err)
	}

	return &rec, nil
}

// InsertEvent implements shift.Repository. The unique index on
// (empleado_email, fecha) makes the insert race-safe: a concurrent
// insert wins the conflict and we report false so the caller retries
// with the column guard.
func (r *shiftRecordRepository) InsertEvent(ctx context.Context, email string, date time.Time, kind shift.EventKind, hora string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO historial_turnos (id, empleado_email, fecha, %s)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (empleado_email, fecha) DO NOTHING
	`, kind.Column())

	id := uuid.Must(uuid.NewV7()).String()
	tag, err := q.Exec(ctx, query, id, email, date, hora)
	if err != nil {
		return false, fmt.Errorf("failed to insert shift event: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// SetEventIfUnset implements shift.Repository. The NULL guard in the
// WHERE clause enforces write-once at the database, so two concurrent
// writers can never both succeed.
func (r *shiftRecordRepository) SetEventIfUnset(ctx context.Context, email string, date time.Time, kind shift.EventKind, hora string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	col := kind.Column()
	query := fmt.Sprintf(`
		UPDATE historial_turnos
		SET %s = $1, updated_at = NOW()
		WHERE empleado_email = $2
		  AND fecha = $3
		  AND %s IS NULL
	`, col, col)

	tag, err := q.Exec(ctx, query, hora, email, date)
	if err != nil {
		return false, fmt.Errorf("failed to set shift event: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// UpsertDay implements shift.Repository.
func (r *shiftRecordRepository) UpsertDay(ctx context.Context, rec shift.DailyRecord) (shift.DailyRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO historial_turnos (
			id, empleado_email, fecha,
			hora_entrada, break1_salida, break1_entrada,
			almuerzo_salida, almuerzo_entrada,
			break2_salida, break2_entrada, hora_salida
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (empleado_email, fecha) DO UPDATE SET
			hora_entrada = EXCLUDED.hora_entrada,
			break1_salida = EXCLUDED.break1_salida,
			break1_entrada = EXCLUDED.break1_entrada,
			almuerzo_salida = EXCLUDED.almuerzo_salida,
			almuerzo_entrada = EXCLUDED.almuerzo_entrada,
			break2_salida = EXCLUDED.break2_salida,
			break2_entrada = EXCLUDED.break2_entrada,
			hora_salida = EXCLUDED.hora_salida,
			updated_at = NOW()
		RETURNING %s
	`, recordColumns)

	id := uuid.Must(uuid.NewV7()).String()
	saved, err := scanRecord(q.QueryRow(ctx, query,
		id, rec.EmpleadoEmail, rec.Fecha,
		rec.HoraEntrada, rec.Break1Salida, rec.Break1Entrada,
		rec.AlmuerzoSalida, rec.AlmuerzoEntrada,
		rec.Break2Salida, rec.Break2Entrada, rec.HoraSalida,
	))
	if err != nil {
		return shift.DailyRecord{}, fmt.Errorf("failed to upsert shift record: %w", err)
	}

	return saved, nil
}

// DeleteByEmailAndDate implements shift.Repository.
func (r *shiftRecordRepository) DeleteByEmailAndDate(ctx context.Context, email string, date time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM historial_turnos
		WHERE empleado_email = $1
		  AND fecha = $2
	`

	tag, err := q.Exec(ctx, query, email, date)
	if err != nil {
		return 0, fmt.Errorf("failed to delete shift record: %w", err)
	}

	return tag.RowsAffected(), nil
}

// ListByEmail implements shift.Repository.
func (r *shiftRecordRepository) ListByEmail(ctx context.Context, email string) ([]shift.DailyRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM historial_turnos
		WHERE empleado_email = $1
		ORDER BY fecha DESC
	`, recordColumns)

	rows, err := q.Query(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift records: %w", err)
	}
	defer rows.Close()

	var records []shift.DailyRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shift records: %w", err)
	}

	return records, nil
}
