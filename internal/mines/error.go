package mines

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig = errors.New("invalid board config")
	ErrNotEnoughRoom = errors.New("not enough room to place mines")
)

// PlacementError reports a board whose mines cannot all fit outside the
// safety zone around the first click.
type PlacementError struct {
	Config   Config
	Anchor   Position
	Eligible int
}

// [PlacementError] implements [error]
func (e *PlacementError) Error() string {
	return fmt.Sprintf(
		"cannot place %d mines on %s around %s: only %d eligible cells",
		e.Config.MineCount, e.Config, e.Anchor, e.Eligible,
	)
}

func (e *PlacementError) Unwrap() error {
	return ErrNotEnoughRoom
}
