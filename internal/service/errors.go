package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrPasswordHashing     = errors.New("password hashing failed")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrNotProjectOwner = errors.New("user is not the owner of the project")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
