package site

import (
	"context"
)

// Repository defines data access for sedes.
type Repository interface {
	// List returns every site ordered by name, for the login form.
	List(ctx context.Context) ([]Site, error)

	GetByID(ctx context.Context, id string) (Site, error)
}
