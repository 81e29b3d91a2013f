package trajectory

import "errors"

var (
	// ErrInvalidFrames indicates a sampler with fewer than two frames.
	ErrInvalidFrames = errors.New("trajectory: frames must be >= 2")

	// ErrInvalidFallback indicates a non-positive fallback duration.
	ErrInvalidFallback = errors.New("trajectory: fallback duration must be > 0")
)
