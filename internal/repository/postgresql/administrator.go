package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sistema-turnos/turnos-backend-go/internal/domain/administrator"
	"github.com/sistema-turnos/turnos-backend-go/internal/pkg/database"
)

type administratorRepositoryImpl struct {
	db *database.DB
}

func NewAdministratorRepository(db *database.DB) administrator.Repository {
	return &administratorRepositoryImpl{db: db}
}

// GetByEmail implements administrator.Repository.
func (a *administratorRepositoryImpl) GetByEmail(ctx context.Context, correo string) (administrator.Administrator, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, nombre, correo, clave, created_at, updated_at
		FROM administradores
		WHERE LOWER(correo) = LOWER($1)
		LIMIT 1
	`

	var adm administrator.Administrator
	err := q.QueryRow(ctx, query, correo).Scan(
		&adm.ID, &adm.Nombre, &adm.Correo, &adm.Clave,
		&adm.CreatedAt, &adm.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return administrator.Administrator{}, administrator.ErrAdministratorNotFound
		}
		return administrator.Administrator{}, fmt.Errorf("failed to get administrator by email: %w", err)
	}

	return adm, nil
}
