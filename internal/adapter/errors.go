package adapter

import "errors"

// Errors returned by the hub adapter, one per HTTP status class the API uses.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")

	ErrNoToken = errors.New("no token was returned by the server")
)
