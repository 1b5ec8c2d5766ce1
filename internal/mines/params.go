package mines

import "fmt"

type Config struct {
	Size
	MineCount int
}

func (c Config) String() string {
	return fmt.Sprintf("%dx%d(%d)", c.Width, c.Height, c.MineCount)
}

// Validate checks the static requirements of a playable board. Whether the
// mines also fit around the first click is only known at placement.
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("%w: %s: width and height must be positive", ErrInvalidConfig, c)
	}
	if c.MineCount < 0 {
		return fmt.Errorf("%w: %s: negative mine count", ErrInvalidConfig, c)
	}
	if c.MineCount >= c.CellCount() {
		return fmt.Errorf("%w: %s: mine count must be below cell count", ErrInvalidConfig, c)
	}
	return nil
}
