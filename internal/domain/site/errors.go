package site

import "errors"

var (
	ErrSiteNotFound = errors.New("sede no encontrada")
)
