package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption      = goerr.New("invalid option")
	ErrValidationFailed   = goerr.New("validation failed")
	ErrFetchFailed        = goerr.New("failed to fetch projects")
	ErrSendFailed         = goerr.New("failed to send message")
	ErrSubmissionInFlight = goerr.New("submission already in flight")
)
