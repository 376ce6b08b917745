package usecase

import "errors"

var (
	ErrConfigMissing       = errors.New("Config missing.")             //nolint
	ErrCharPointerNotFound = errors.New("Char URL pointer not found.") //nolint
	ErrCharDataMissing     = errors.New("Char data missing.")          //nolint
	ErrUnitUnsupported     = errors.New("Unit unsupported.")           //nolint
	ErrDataNotFound        = errors.New("Data not found.")             //nolint
	ErrCharBlobNotObject   = errors.New("Char blob is not an object.") //nolint
)
