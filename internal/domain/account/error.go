package account

import "errors"

var (
	ErrUnknownPeriod = errors.New("unknown period")
)
