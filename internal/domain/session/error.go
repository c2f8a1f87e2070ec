package session

import "errors"

var (
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrInvalidCredentials covers both a wrong password and an unknown
	// username; callers must not learn which part was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
