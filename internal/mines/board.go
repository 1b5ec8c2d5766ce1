package mines

import (
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"strings"

	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type Result int8

const (
	Continue Result = iota
	GameOver
	Victory
	Invalid
)

func (r Result) String() string {
	switch r {
	case Continue:
		return "Continue"
	case GameOver:
		return "GameOver"
	case Victory:
		return "Victory"
	case Invalid:
		return "Invalid"
	default:
		return fmt.Sprintf("Result(%d)", int8(r))
	}
}

// minefield is the outcome of seeding: where the mines went and which
// click they were placed around.
type minefield struct {
	anchor Position
	mines  []int
}

/*
Board owns the grid for one game. Mines are not placed when the board is
created; the first reveal seeds the board around the clicked cell so that
the cell and all its neighbours are safe. A Board is not safe for
concurrent use.
*/
type Board struct {
	config   Config
	cells    []Cell /* row-major */
	field    *minefield
	revealed int
	rnd      *rand.Rand
}

func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// New creates an unseeded board. r is consumed once, when the mines are
// placed; a nil r is replaced with a randomly seeded source.
func New(config Config, r *rand.Rand) *Board {
	if r == nil {
		r = NewRand()
	}
	n := 0
	if config.Width > 0 && config.Height > 0 {
		n = config.CellCount()
	}
	return &Board{
		config: config,
		cells:  make([]Cell, n),
		rnd:    r,
	}
}

// seed places the mines around anchor. It does nothing once the board has
// been seeded.
func (b *Board) seed(anchor Position) error {
	if b.field != nil {
		return nil
	}

	size := b.config.Size
	mineCount := b.config.MineCount
	if mineCount < 0 {
		return fmt.Errorf("%w: %s: negative mine count", ErrInvalidConfig, b.config)
	}

	forbidden := make([]bool, len(b.cells))
	for _, p := range Adjacent(anchor, size, false) {
		forbidden[size.index(p)] = true
	}

	candidates := make([]int, 0, len(b.cells))
	for i := range b.cells {
		if !forbidden[i] {
			candidates = append(candidates, i)
		}
	}

	if len(candidates) < mineCount {
		return &PlacementError{
			Config:   b.config,
			Anchor:   anchor,
			Eligible: len(candidates),
		}
	}

	/*
	 * Pick mineCount candidates at random, swapping each pick out of
	 * the live part of the list.
	 */
	field := &minefield{anchor: anchor, mines: make([]int, 0, mineCount)}
	k := len(candidates)
	for range mineCount {
		i := b.rnd.IntN(k)
		field.mines = append(field.mines, candidates[i])
		k--
		candidates[i] = candidates[k]
	}

	for _, i := range field.mines {
		b.cells[i].Content = Mine()
	}
	for i := range b.cells {
		if b.cells[i].Content.IsMine() {
			continue
		}
		n := 0
		for _, q := range Adjacent(size.position(i), size, true) {
			if b.cells[size.index(q)].Content.IsMine() {
				n++
			}
		}
		b.cells[i].Content = Number(n)
	}

	b.field = field
	b.rnd = nil

	Log.WithFields(logrus.Fields{
		"config": b.config.String(),
		"anchor": anchor.String(),
	}).Debug("mines placed")
	if Log.IsLevelEnabled(logrus.TraceLevel) {
		Log.Trace("\n" + b.Layout())
	}

	return nil
}

/*
LeftClick reveals the cell at p. The first in-bounds click seeds the
board. An error is returned only when the mines cannot be placed around
p, in which case the board is left untouched.
*/
func (b *Board) LeftClick(p Position) (Result, error) {
	if !b.config.Contains(p) {
		return Invalid, nil
	}

	if err := b.seed(p); err != nil {
		return Invalid, err
	}

	cell := &b.cells[b.config.index(p)]
	if !cell.reveal() {
		return Invalid, nil
	}

	if cell.Content.IsMine() {
		return GameOver, nil
	}

	b.revealed++
	if cell.Content.Count() == 0 {
		b.floodFill(p)
	}

	if b.CheckVictory() {
		return Victory, nil
	}
	return Continue, nil
}

/*
floodFill opens the connected region of empty cells around start along
with the numbered cells bordering it. Flagged cells are never opened, even
when that leaves part of an empty region covered.
*/
func (b *Board) floodFill(start Position) {
	var queue deque.Deque[Position]
	queue.PushBack(start)

	for queue.Len() > 0 {
		p := queue.PopFront()
		for _, q := range Adjacent(p, b.config.Size, true) {
			cell := &b.cells[b.config.index(q)]
			if cell.State == Flagged {
				continue
			}
			if cell.Content.IsMine() || !cell.reveal() {
				continue
			}
			b.revealed++
			if cell.Content.Count() == 0 {
				queue.PushBack(q)
			}
		}
	}
}

// RightClick toggles a flag on p. It never seeds the board.
func (b *Board) RightClick(p Position) Result {
	if !b.config.Contains(p) {
		return Invalid
	}
	if !b.cells[b.config.index(p)].toggleFlag() {
		return Invalid
	}
	return Continue
}

// RevealMines opens every mine, flagged or not, for the end-of-game view.
func (b *Board) RevealMines() {
	if b.field == nil {
		return
	}
	for _, i := range b.field.mines {
		b.cells[i].State = Revealed
	}
}

func (b *Board) CheckVictory() bool {
	return b.revealed+b.config.MineCount == b.config.CellCount()
}

func (b *Board) Config() Config {
	return b.config
}

func (b *Board) MinesPlaced() bool {
	return b.field != nil
}

// Revealed is the number of safe cells the player has opened.
func (b *Board) Revealed() int {
	return b.revealed
}

func (b *Board) Flags() (count int) {
	for _, c := range b.cells {
		if c.State == Flagged {
			count++
		}
	}
	return
}

// Mines lists mine positions in row-major order, or nil before seeding.
func (b *Board) Mines() []Position {
	if b.field == nil {
		return nil
	}
	positions := make([]Position, 0, len(b.field.mines))
	for i, c := range b.cells {
		if c.Content.IsMine() {
			positions = append(positions, b.config.position(i))
		}
	}
	return positions
}

func (b *Board) Cell(p Position) (Cell, bool) {
	if !b.config.Contains(p) {
		return Cell{}, false
	}
	return b.cells[b.config.index(p)], true
}

func (b *Board) Content(p Position) CellContent {
	c, _ := b.Cell(p)
	return c.Content
}

func (b *Board) State(p Position) CellState {
	c, _ := b.Cell(p)
	return c.State
}

// Layout draws the mine map: S for the first click, * for mines.
func (b *Board) Layout() string {
	var sb strings.Builder
	for i, c := range b.cells {
		p := b.config.position(i)
		switch {
		case b.field != nil && p == b.field.anchor:
			sb.WriteString("S ")
		case c.Content.IsMine():
			sb.WriteString("* ")
		default:
			sb.WriteString("- ")
		}
		if p.Col == b.config.Width-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
