package prizeconfig

import "errors"

var (
	ErrInvalidWeightData = errors.New("invalid weight data")
	ErrInvalidCapData    = errors.New("invalid cap data")
)
