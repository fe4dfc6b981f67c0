package gerr

import "errors"

var (
	ErrInvalidPeriod   = errors.New("invalid period")
	ErrInvalidTimezone = errors.New("invalid timezone")
	ErrInvalidAlert    = errors.New("invalid alert config")
	ErrAlertNotFound   = errors.New("alert config not found")
	ErrRateLimited     = errors.New("too many requests")
	ErrSyncInProgress  = errors.New("sync already in progress")
)
