package repositories

import "errors"

var (
	// ErrNotFound se devuelve cuando el documento/fila no existe
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateKey se devuelve cuando se viola un índice único (ej: email)
	ErrDuplicateKey = errors.New("duplicate key")
)
