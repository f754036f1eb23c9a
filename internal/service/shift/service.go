package shift

import (
	"context"
	"fmt"
	"time"

	"github.com/sistema-turnos/turnos-backend-go/internal/domain/employee"
	"github.com/sistema-turnos/turnos-backend-go/internal/domain/shift"
)

type ShiftServiceImpl struct {
	shift.Repository
	employeeRepo employee.Repository
	location     *time.Location

	// now is swappable so tests can pin the clock.
	now func() time.Time
}

func NewShiftService(shiftRepository shift.Repository, employeeRepository employee.Repository, location *time.Location) shift.Service {
	return &ShiftServiceImpl{
		Repository:   shiftRepository,
		employeeRepo: employeeRepository,
		location:     location,
		now:          time.Now,
	}
}

// RegisterEvent implements shift.Service.
func (s *ShiftServiceImpl) RegisterEvent(ctx context.Context, req shift.RegisterEventRequest) (shift.RegisterEventResponse, error) {
	kind, err := shift.ParseEventKind(req.Tipo)
	if err != nil {
		return shift.RegisterEventResponse{}, err
	}

	emp, err := s.employeeRepo.GetByEmpleadoID(ctx, req.EmpleadoID)
	if err != nil {
		return shift.RegisterEventResponse{}, err
	}

	now := s.now().In(s.location)
	if verdict := shift.ValidateWindow(kind, now); !verdict.Valid {
		return shift.RegisterEventResponse{}, &shift.WindowError{Kind: kind, Reason: verdict.Reason}
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location)
	hora := now.Format("15:04:05")

	existing, err := s.Repository.GetByEmailAndDate(ctx, emp.Correo, today)
	if err != nil {
		return shift.RegisterEventResponse{}, err
	}

	if existing == nil {
		inserted, err := s.Repository.InsertEvent(ctx, emp.Correo, today, kind, hora)
		if err != nil {
			return shift.RegisterEventResponse{}, err
		}
		if !inserted {
			// A concurrent writer created the row; fall through to the
			// guarded update.
			existing = &shift.DailyRecord{}
		}
	}

	if existing != nil {
		if existing.Value(kind) != nil {
			return shift.RegisterEventResponse{}, &shift.AlreadyRegisteredError{Kind: kind}
		}
		updated, err := s.Repository.SetEventIfUnset(ctx, emp.Correo, today, kind, hora)
		if err != nil {
			return shift.RegisterEventResponse{}, err
		}
		if !updated {
			return shift.RegisterEventResponse{}, &shift.AlreadyRegisteredError{Kind: kind}
		}
	}

	// Read back what was stored; a mismatch means the write was lost.
	saved, err := s.Repository.GetByEmailAndDate(ctx, emp.Correo, today)
	if err != nil {
		return shift.RegisterEventResponse{}, err
	}
	if saved == nil || saved.Value(kind) == nil || *saved.Value(kind) != hora {
		return shift.RegisterEventResponse{}, shift.ErrVerificationFailed
	}

	return shift.RegisterEventResponse{
		Columna: kind.Column(),
		Hora:    hora,
		Fecha:   today.Format("2006-01-02"),
	}, nil
}

// Records implements shift.Service.
func (s *ShiftServiceImpl) Records(ctx context.Context, empleadoID int, fecha string) ([]shift.RecordResponse, error) {
	emp, err := s.employeeRepo.GetByEmpleadoID(ctx, empleadoID)
	if err != nil {
		return nil, err
	}

	date, err := time.ParseInLocation("2006-01-02", fecha, s.location)
	if err != nil {
		return nil, fmt.Errorf("invalid fecha %q: %w", fecha, err)
	}

	rec, err := s.Repository.GetByEmailAndDate(ctx, emp.Correo, date)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return []shift.RecordResponse{}, nil
	}

	return []shift.RecordResponse{toRecordResponse(rec)}, nil
}

// CheckWindow implements shift.Service.
func (s *ShiftServiceImpl) CheckWindow(tipo string) (shift.WindowResponse, error) {
	kind, err := shift.ParseEventKind(tipo)
	if err != nil {
		return shift.WindowResponse{}, err
	}

	verdict := shift.ValidateWindow(kind, s.now().In(s.location))
	return shift.WindowResponse{
		Tipo:   string(kind),
		Valido: verdict.Valid,
		Motivo: verdict.Reason,
	}, nil
}

// SaveDay implements shift.Service.
func (s *ShiftServiceImpl) SaveDay(ctx context.Context, req shift.SaveDayRequest) (shift.RecordResponse, error) {
	emp, err := s.employeeRepo.GetByEmpleadoID(ctx, req.EmpleadoID)
	if err != nil {
		return shift.RecordResponse{}, err
	}

	date, err := time.ParseInLocation("2006-01-02", req.Fecha, s.location)
	if err != nil {
		return shift.RecordResponse{}, fmt.Errorf("invalid fecha %q: %w", req.Fecha, err)
	}

	now := s.now().In(s.location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location)
	if !date.Equal(today) {
		return shift.RecordResponse{}, shift.ErrNotToday
	}

	rec := shift.DailyRecord{
		EmpleadoEmail:   emp.Correo,
		Fecha:           date,
		HoraEntrada:     req.HoraEntrada,
		Break1Salida:    req.Break1Salida,
		Break1Entrada:   req.Break1Entrada,
		AlmuerzoSalida:  req.AlmuerzoSalida,
		AlmuerzoEntrada: req.AlmuerzoEntrada,
		Break2Salida:    req.Break2Salida,
		Break2Entrada:   req.Break2Entrada,
		HoraSalida:      req.HoraSalida,
	}

	saved, err := s.Repository.UpsertDay(ctx, rec)
	if err != nil {
		return shift.RecordResponse{}, err
	}

	return toRecordResponse(&saved), nil
}

// CleanupToday implements shift.Service.
func (s *ShiftServiceImpl) CleanupToday(ctx context.Context, req shift.CleanupRequest) (int64, error) {
	email := req.Email
	if email == "" {
		emp, err := s.employeeRepo.GetByEmpleadoID(ctx, req.EmpleadoID)
		if err != nil {
			return 0, err
		}
		email = emp.Correo
	}

	now := s.now().In(s.location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location)

	return s.Repository.DeleteByEmailAndDate(ctx, email, today)
}

// History implements shift.Service.
func (s *ShiftServiceImpl) History(ctx context.Context, email string) ([]shift.HistoryEntry, error) {
	records, err := s.Repository.ListByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	entries := make([]shift.HistoryEntry, 0, len(records))
	for i := range records {
		entries = append(entries, shift.HistoryEntry{
			RecordResponse: toRecordResponse(&records[i]),
			TotalHoras:     shift.ComputeWorked(&records[i]),
		})
	}

	return entries, nil
}

func toRecordResponse(rec *shift.DailyRecord) shift.RecordResponse {
	return shift.RecordResponse{
		ID:              rec.ID,
		EmpleadoEmail:   rec.EmpleadoEmail,
		Fecha:           rec.Fecha.Format("2006-01-02"),
		HoraEntrada:     rec.HoraEntrada,
		Break1Salida:    rec.Break1Salida,
		Break1Entrada:   rec.Break1Entrada,
		AlmuerzoSalida:  rec.AlmuerzoSalida,
		AlmuerzoEntrada: rec.AlmuerzoEntrada,
		Break2Salida:    rec.Break2Salida,
		Break2Entrada:   rec.Break2Entrada,
		HoraSalida:      rec.HoraSalida,
	}
}
