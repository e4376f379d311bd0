package timeseries

import (
	"errors"
)

var (
	ERR_SHAPE_MISMATCH      = errors.New("Sequence of times does not match sequence of values")
	ERR_KEY_NOT_FOUND       = errors.New("Time not in TimeSeries")
	ERR_EMPTY               = errors.New("TimeSeries is empty")
	ERR_TOO_FEW_SAMPLES     = errors.New("Too few samples")
	ERR_NOT_STRICTLY_SORTED = errors.New("Times are not strictly increasing")
	ERR_UNKNOWN_METHOD      = errors.New("Unknown interpolation method")
)
