package client

import "errors"

var (
	ErrNoCommand       = errors.New("no command given")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingArgument = errors.New("missing required argument")
	ErrInvalidDate     = errors.New("invalid date, use YYYY-MM-DD or RFC 3339")
)
