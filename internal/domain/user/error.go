package user

import "errors"

var (
	ErrNotFound      = errors.New("user not found")
	ErrCorruptRecord = errors.New("corrupt user record")
)
