package eventmodels

import "errors"

var (
	ErrMissingBenchmark = errors.New("benchmark symbol missing from scan")
	ErrEmptyBatch       = errors.New("empty trade batch")
	ErrInvalidConfig    = errors.New("invalid config")
)
