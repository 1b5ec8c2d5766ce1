package mines

import "fmt"

// Position addresses a cell by zero-based row and column. It carries no
// bounds of its own; check it against a [Size] before use.
type Position struct {
	Row, Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

type Size struct {
	Width, Height int
}

func (s Size) CellCount() int {
	return s.Width * s.Height
}

func (s Size) Contains(p Position) bool {
	return 0 <= p.Row && p.Row < s.Height &&
		0 <= p.Col && p.Col < s.Width
}

func (s Size) index(p Position) int {
	return p.Row*s.Width + p.Col
}

func (s Size) position(i int) Position {
	return Position{Row: i / s.Width, Col: i % s.Width}
}

/*
Adjacent returns every in-bounds position within one step of p in any
direction, including diagonals, in row-major order. There is no
wraparound: corners have 3 neighbours, edges 5 and interior cells 8.
When skipCenter is false, p itself is part of the result as well.
*/
func Adjacent(p Position, size Size, skipCenter bool) []Position {
	adj := make([]Position, 0, 9)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if skipCenter && dr == 0 && dc == 0 {
				continue
			}
			q := Position{Row: p.Row + dr, Col: p.Col + dc}
			if size.Contains(q) {
				adj = append(adj, q)
			}
		}
	}
	return adj
}
