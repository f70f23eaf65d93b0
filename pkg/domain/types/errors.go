package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrUnauthorized      = goerr.New("unauthorized")
	ErrValidationFailed  = goerr.New("validation failed")
	ErrSourceUnavailable = goerr.New("activity source unavailable")
	ErrStoreUnavailable  = goerr.New("store unavailable")
	ErrInvalidOption     = goerr.New("invalid option")
)
