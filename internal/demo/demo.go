// Package demo walks through the board engine step by step: seeding on
// the first click, auto-reveal, flags, end states and rejected moves.
package demo

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-console/internal/config"
	"github.com/vancomm/minesweeper-console/internal/mines"
	"github.com/vancomm/minesweeper-console/internal/render"
)

type Demo struct {
	out    io.Writer
	lines  <-chan string
	render *render.Renderer
	rnd    *rand.Rand
	log    *logrus.Logger

	// board is shared by the parts that play on the easy preset.
	board *mines.Board
}

// New prepares a walkthrough. Each pause between parts waits for one line
// from lines; a nil channel runs straight through.
func New(out io.Writer, lines <-chan string, r *render.Renderer, rnd *rand.Rand, log *logrus.Logger) *Demo {
	return &Demo{out: out, lines: lines, render: r, rnd: rnd, log: log}
}

func (d *Demo) printf(format string, a ...any) {
	fmt.Fprintf(d.out, format, a...)
}

func (d *Demo) section(n int, title string) {
	d.printf("\n== part %d: %s\n%s\n", n, title, strings.Repeat("=", 50))
}

func (d *Demo) pause(ctx context.Context) error {
	if d.lines == nil {
		return nil
	}
	d.printf("\n(press enter to continue)\n")
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-d.lines:
		return nil
	}
}

func (d *Demo) Run(ctx context.Context) error {
	d.log.Info("demo started")

	steps := []func() error{
		d.initialBoard,
		d.firstClick,
		d.autoReveal,
		d.flags,
		d.endStates,
		d.rejectedMoves,
		d.statistics,
	}

	for i, step := range steps {
		if err := step(); err != nil {
			return fmt.Errorf("demo part %d: %w", i+1, err)
		}
		if i < len(steps)-1 {
			if err := d.pause(ctx); err != nil {
				return err
			}
		}
	}

	d.printf("\ndemo complete\n")
	d.log.Info("demo finished")
	return nil
}

func (d *Demo) initialBoard() error {
	d.section(1, "a fresh board")

	c := config.Easy.BoardConfig()
	d.board = mines.New(c, d.rnd)

	d.printf("board %dx%d with %d mines\n", c.Width, c.Height, c.MineCount)
	d.printf("mine density: %.1f%%\n", float64(c.MineCount)/float64(c.CellCount())*100)
	d.printf("no mines are placed until the first click (placed: %t)\n\n", d.board.MinesPlaced())
	d.printf("%s", d.render.Board(d.board))
	return nil
}

func (d *Demo) click(b *mines.Board, p mines.Position) (mines.Result, error) {
	res, err := b.LeftClick(p)
	if err != nil {
		return res, err
	}
	d.printf("click %s -> %s\n", p, res)
	return res, nil
}

func (d *Demo) firstClick() error {
	d.section(2, "first click places the mines")

	c := d.board.Config()
	center := mines.Position{Row: c.Height / 2, Col: c.Width / 2}
	d.printf("the first click and its neighbours never hold a mine\n")

	if _, err := d.click(d.board, center); err != nil {
		return err
	}
	d.printf("mines placed: %t\n\n%s", d.board.MinesPlaced(), d.render.Board(d.board))
	return nil
}

func (d *Demo) autoReveal() error {
	d.section(3, "auto-reveal")
	d.printf("opening an empty cell opens its whole empty region and its border\n")

	corner := mines.Position{Row: 0, Col: 0}
	before := d.board.Revealed()
	res, err := d.click(d.board, corner)
	if err != nil {
		return err
	}
	if res == mines.GameOver {
		d.board.RevealMines()
	}
	d.printf("cells opened by this click: %d\n\n%s", d.board.Revealed()-before, d.render.Board(d.board))
	return nil
}

func (d *Demo) flags() error {
	d.section(4, "flags")

	c := d.board.Config()
	p := mines.Position{Row: c.Height - 1, Col: c.Width - 1}

	d.printf("flag %s -> %s\n\n%s", p, d.board.RightClick(p), d.render.Board(d.board))
	d.printf("flag %s again -> %s (%s)\n", p, d.board.RightClick(p), d.board.State(p))
	return nil
}

func (d *Demo) endStates() error {
	d.section(5, "winning and losing")

	small := mines.New(mines.Config{
		Size:      mines.Size{Width: 3, Height: 3},
		MineCount: 1,
	}, d.rnd)

	d.printf("a 3x3 board with one mine\n")
	if _, err := d.click(small, mines.Position{Row: 0, Col: 0}); err != nil {
		return err
	}
	d.printf("%s", d.render.Board(small))
	d.printf("won: %t\n", small.CheckVictory())
	d.printf("the game is won when every safe cell is open and lost on opening a mine\n")
	return nil
}

func (d *Demo) rejectedMoves() error {
	d.section(6, "rejected moves")

	c := d.board.Config()
	center := mines.Position{Row: c.Height / 2, Col: c.Width / 2}

	d.printf("open cell clicked again:\n  ")
	if _, err := d.click(d.board, center); err != nil {
		return err
	}

	p, ok := firstHidden(d.board)
	if !ok {
		p = mines.Position{Row: 1, Col: 1}
	}
	d.printf("flagged cell clicked:\n  flag %s -> %s\n  ", p, d.board.RightClick(p))
	if _, err := d.click(d.board, p); err != nil {
		return err
	}
	d.board.RightClick(p)

	d.printf("outside the board:\n  ")
	if _, err := d.click(d.board, mines.Position{Row: c.Height, Col: 0}); err != nil {
		return err
	}
	d.printf("  flag %s -> %s\n", mines.Position{Row: -1, Col: 0}, d.board.RightClick(mines.Position{Row: -1, Col: 0}))
	return nil
}

func firstHidden(b *mines.Board) (mines.Position, bool) {
	c := b.Config()
	for row := range c.Height {
		for col := range c.Width {
			p := mines.Position{Row: row, Col: col}
			if b.State(p) == mines.Hidden {
				return p, true
			}
		}
	}
	return mines.Position{}, false
}

func (d *Demo) statistics() error {
	d.section(7, "statistics")

	c := d.board.Config()
	d.printf("cells:          %d\n", c.CellCount())
	d.printf("mines:          %d\n", c.MineCount)
	d.printf("safe cells:     %d\n", c.CellCount()-c.MineCount)
	d.printf("opened:         %d\n", d.board.Revealed())
	d.printf("flags:          %d\n", d.board.Flags())
	d.printf("left to open:   %d\n", c.CellCount()-c.MineCount-d.board.Revealed())
	return nil
}
