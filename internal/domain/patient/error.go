package patient

import "errors"

var (
	ErrNotFound      = errors.New("patient not found")
	ErrInvalidInput  = errors.New("invalid patient payload")
	ErrCorruptRecord = errors.New("corrupt patient record")
)
