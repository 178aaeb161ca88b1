package domain

import "errors"

// ErrInvalidBoard is returned when board dimensions or hazard count cannot form a playable grid.
var ErrInvalidBoard = errors.New("invalid board")

// ErrUnknownDifficulty is returned when a difficulty name is not recognised.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// ErrInvalidLayout is returned when a textual grid layout cannot be parsed.
var ErrInvalidLayout = errors.New("invalid layout")
