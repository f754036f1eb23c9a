package site

import (
	"time"
)

// Site is one row of sedes. DireccionIP is the public address employee
// logins from this site must come from.
type Site struct {
	ID          string
	Nombre      string
	DireccionIP string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
