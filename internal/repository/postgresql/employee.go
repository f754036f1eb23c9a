package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sistema-turnos/turnos-backend-go/internal/domain/employee"
	"github.com/sistema-turnos/turnos-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	id, empleado_id, nombre, correo, sede_id,
	turno_entrada, turno_salida, direccion_ip,
	created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.EmpleadoID, &emp.Nombre, &emp.Correo, &emp.SedeID,
		&emp.TurnoEntrada, &emp.TurnoSalida, &emp.DireccionIP,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

// GetByEmpleadoID implements employee.Repository.
func (e *employeeRepositoryImpl) GetByEmpleadoID(ctx context.Context, empleadoID int) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM empleados
		WHERE empleado_id = $1
		LIMIT 1
	`, employeeColumns)

	emp, err := scanEmployee(q.QueryRow(ctx, query, empleadoID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by empleado_id: %w", err)
	}

	return emp, nil
}

// GetByEmail implements employee.Repository.
func (e *employeeRepositoryImpl) GetByEmail(ctx context.Context, correo string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM empleados
		WHERE LOWER(correo) = LOWER($1)
		LIMIT 1
	`, employeeColumns)

	emp, err := scanEmployee(q.QueryRow(ctx, query, correo))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	return emp, nil
}

// UpdateIP implements employee.Repository.
func (e *employeeRepositoryImpl) UpdateIP(ctx context.Context, id string, ip string) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE empleados
		SET direccion_ip = $1, updated_at = NOW()
		WHERE id = $2
	`

	tag, err := q.Exec(ctx, query, ip, id)
	if err != nil {
		return fmt.Errorf("failed to update employee ip: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
