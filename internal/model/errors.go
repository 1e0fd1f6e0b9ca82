package model

import "errors"

var (
	// ErrInvalidGrid is returned when a grid or scenario fails validation.
	ErrInvalidGrid = errors.New("invalid grid")
	// ErrBrokenChain is returned when a predecessor map does not lead back to the start.
	ErrBrokenChain = errors.New("broken predecessor chain")
	// ErrUnknownStrategy is returned for strategy names that do not parse.
	ErrUnknownStrategy = errors.New("unknown strategy")
)
