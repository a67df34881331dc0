package user

import "errors"

var (
	ErrInvalidCredential = errors.New("invalid credential")
	ErrPasswordMismatch  = errors.New("passwords do not match")
)
