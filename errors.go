package upsample

import "errors"

// Errors returned by upsamplers and the plane helpers.
var (
	// ErrInvalidDimension is returned when an upsampler is constructed with
	// a width, height or stride it cannot process.
	ErrInvalidDimension = errors.New("upsample: invalid dimension")

	// ErrUnsupportedOperation is returned by operations an upsampler does
	// not implement, such as single-axis edge-directed upsampling.
	ErrUnsupportedOperation = errors.New("upsample: unsupported operation")

	// ErrGeometryMismatch is returned when a plane does not have the
	// geometry the upsampler was built for.
	ErrGeometryMismatch = errors.New("upsample: plane geometry mismatch")

	// ErrBufferTooSmall is returned when a plane's sample slice is shorter
	// than its geometry requires.
	ErrBufferTooSmall = errors.New("upsample: buffer too small")
)
