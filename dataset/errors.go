package dataset

import "errors"

var (
	ErrUnknownCity     = errors.New("unknown city")
	ErrMissingColumn   = errors.New("missing column")
	ErrInvalidTripData = errors.New("invalid trip data")
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidDuration = errors.New("invalid duration")
	ErrInvalidYear     = errors.New("invalid birth year")
	ErrUnknownMonth    = errors.New("unknown month")
)
