package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sistema-turnos/turnos-backend-go/internal/domain/site"
	"github.com/sistema-turnos/turnos-backend-go/internal/pkg/database"
)

type siteRepositoryImpl struct {
	db *database.DB
}

func NewSiteRepository(db *database.DB) site.Repository {
	return &siteRepositoryImpl{db: db}
}

// List implements site.Repository.
func (s *siteRepositoryImpl) List(ctx context.Context) ([]site.Site, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, nombre, direccion_ip, created_at, updated_at
		FROM sedes
		ORDER BY nombre ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list sites: %w", err)
	}
	defer rows.Close()

	var sites []site.Site
	for rows.Next() {
		var st site.Site
		if err := rows.Scan(&st.ID, &st.Nombre, &st.DireccionIP, &st.CreatedAt, &st.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan site: %w", err)
		}
		sites = append(sites, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sites: %w", err)
	}

	return sites, nil
}

// GetByID implements site.Repository.
func (s *siteRepositoryImpl) GetByID(ctx context.Context, id string) (site.Site, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, nombre, direccion_ip, created_at, updated_at
		FROM sedes
		WHERE id = $1
		LIMIT 1
	`

	var st site.Site
	err := q.QueryRow(ctx, query, id).Scan(&st.ID, &st.Nombre, &st.DireccionIP, &st.CreatedAt, &st.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return site.Site{}, site.ErrSiteNotFound
		}
		return site.Site{}, fmt.Errorf("failed to get site: %w", err)
	}

	return st, nil
}
