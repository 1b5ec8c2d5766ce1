package mines

import "strconv"

/*
CellContent is what a cell holds: either a mine or the number of mines
among its neighbours (0 to 8). The zero value is Number(0), the
placeholder every cell carries until the board is seeded.
*/
type CellContent struct {
	mine  bool
	count uint8
}

func Mine() CellContent {
	return CellContent{mine: true}
}

// Number panics if n is outside [0, 8].
func Number(n int) CellContent {
	if n < 0 || n > 8 {
		panic("mines: neighbour count out of range: " + strconv.Itoa(n))
	}
	return CellContent{count: uint8(n)}
}

func (c CellContent) IsMine() bool {
	return c.mine
}

// Count is the number of neighbouring mines. It is always 0 for a mine.
func (c CellContent) Count() int {
	return int(c.count)
}

func (c CellContent) String() string {
	if c.mine {
		return "*"
	}
	return strconv.Itoa(int(c.count))
}

type CellState int8

const (
	Hidden CellState = iota
	Revealed
	Flagged
)

func (s CellState) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	case Flagged:
		return "flagged"
	default:
		return "CellState(" + strconv.Itoa(int(s)) + ")"
	}
}

// Cell pairs the content of a square with what the player can see of it.
type Cell struct {
	Content CellContent
	State   CellState
}

// reveal moves a hidden cell to Revealed. Flagged and revealed cells are
// left as they are.
func (c *Cell) reveal() bool {
	if c.State != Hidden {
		return false
	}
	c.State = Revealed
	return true
}

// toggleFlag flips between Hidden and Flagged. Revealed cells cannot be
// flagged.
func (c *Cell) toggleFlag() bool {
	switch c.State {
	case Hidden:
		c.State = Flagged
	case Flagged:
		c.State = Hidden
	default:
		return false
	}
	return true
}
