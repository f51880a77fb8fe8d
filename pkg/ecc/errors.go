package ecc

import "errors"

// Common errors returned by the elliptic curve arithmetic layer.
var (
	ErrOutOfRange      = errors.New("field element value out of range")
	ErrFieldMismatch   = errors.New("operands belong to different fields")
	ErrCurveMismatch   = errors.New("points are not on the same curve")
	ErrPointNotOnCurve = errors.New("point is not on the curve")
)
