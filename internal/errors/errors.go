// Package errors contiene los errores centinela compartidos por store,
// repositorios, servicios y handlers. Se envuelven con %w y se comprueban
// con errors.Is.
package errors

import "errors"

var (
	// NotFound cubre tanto un documento inexistente como un id mal formado.
	ErrNotFound = errors.New("not found")

	// AlreadyExists indica que no se hizo nada: el documento ya existía.
	ErrAlreadyExists = errors.New("already exists")

	ErrUnsupportedLanguage = errors.New("unsupported language")

	ErrInvalidInput = errors.New("invalid input")

	// StoreUnavailable indica que no se pudo llegar a Mongo.
	ErrStoreUnavailable = errors.New("store unavailable")
)
