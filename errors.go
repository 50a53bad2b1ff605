package slicecube

import "errors"

// Sentinel errors for the slicecube package.
var (
	// Construction errors
	ErrInvalidExtent = errors.New("slicecube: extent must be positive")

	// Rotation errors
	ErrInvalidAxis        = errors.New("slicecube: invalid axis")
	ErrMalformedSliceMask = errors.New("slicecube: slice mask does not match grid extent")

	// ErrOutOfRange is the value carried by the panic raised when a grid is
	// indexed outside [0, extent).
	ErrOutOfRange = errors.New("slicecube: coordinate out of range")
)
