// Package autoplay plays boards without looking at hidden cells, and runs
// batches of such games to measure how often a board can be cleared.
package autoplay

import (
	"errors"
	"math/rand/v2"

	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-console/internal/mines"
)

var Log = logrus.New()

var ErrStuck = errors.New("no cell left to open")

// Player clears a board using single-cell deductions and guesses when
// stuck. It only reads the content of cells it has opened.
type Player struct {
	board        *mines.Board
	rnd          *rand.Rand
	inspectQueue deque.Deque[mines.Position]
	guesses      int
}

func NewPlayer(b *mines.Board, r *rand.Rand) *Player {
	if r == nil {
		r = mines.NewRand()
	}
	return &Player{board: b, rnd: r}
}

// Guesses is the number of moves made without a deduction to back them,
// the opening click included.
func (p *Player) Guesses() int {
	return p.guesses
}

func terminal(res mines.Result) bool {
	return res == mines.GameOver || res == mines.Victory
}

/*
Play opens the centre of the board and keeps going until the game is won
or lost. It fails when the board's mines cannot be placed.
*/
func (p *Player) Play() (mines.Result, error) {
	c := p.board.Config()
	p.guesses++
	res, err := p.board.LeftClick(mines.Position{Row: c.Height / 2, Col: c.Width / 2})
	if err != nil {
		return res, err
	}

	for !terminal(res) {
		var progress bool
		if progress, res, err = p.deduce(); err != nil {
			return res, err
		}
		if terminal(res) || progress {
			continue
		}
		if res, err = p.guess(); err != nil {
			return res, err
		}
		if res == mines.Invalid {
			return res, ErrStuck
		}
	}

	Log.WithFields(logrus.Fields{
		"board":   c.String(),
		"result":  res.String(),
		"guesses": p.guesses,
	}).Trace("game played")

	return res, nil
}

func (p *Player) neighbours(pos mines.Position) (hidden []mines.Position, flagged int) {
	for _, q := range mines.Adjacent(pos, p.board.Config().Size, true) {
		switch p.board.State(q) {
		case mines.Hidden:
			hidden = append(hidden, q)
		case mines.Flagged:
			flagged++
		}
	}
	return
}

func (p *Player) enqueueOpened() {
	c := p.board.Config()
	for row := range c.Height {
		for col := range c.Width {
			pos := mines.Position{Row: row, Col: col}
			if p.board.State(pos) == mines.Revealed {
				p.inspectQueue.PushBack(pos)
			}
		}
	}
}

/*
deduce inspects every opened cell once. A number whose flags already
account for all its mines has safe hidden neighbours, which get opened; a
number with exactly as many hidden neighbours as unflagged mines has them
all flagged.
*/
func (p *Player) deduce() (progress bool, res mines.Result, err error) {
	p.enqueueOpened()
	res = mines.Continue

	for p.inspectQueue.Len() > 0 {
		pos := p.inspectQueue.PopFront()
		if p.board.State(pos) != mines.Revealed {
			continue
		}
		hidden, flagged := p.neighbours(pos)
		if len(hidden) == 0 {
			continue
		}

		remaining := p.board.Content(pos).Count() - flagged
		switch {
		case remaining == 0:
			for _, q := range hidden {
				r, err := p.board.LeftClick(q)
				if err != nil {
					return progress, r, err
				}
				if r == mines.Invalid {
					continue
				}
				progress = true
				if terminal(r) {
					p.inspectQueue.Clear()
					return progress, r, nil
				}
			}
		case remaining == len(hidden):
			for _, q := range hidden {
				p.board.RightClick(q)
			}
			progress = true
		}
	}

	return progress, res, nil
}

func (p *Player) guess() (mines.Result, error) {
	var candidates []mines.Position
	c := p.board.Config()
	for row := range c.Height {
		for col := range c.Width {
			pos := mines.Position{Row: row, Col: col}
			if p.board.State(pos) == mines.Hidden {
				candidates = append(candidates, pos)
			}
		}
	}
	if len(candidates) == 0 {
		return mines.Invalid, nil
	}

	p.guesses++
	return p.board.LeftClick(candidates[p.rnd.IntN(len(candidates))])
}
