// Package session runs a console game: it reads commands, applies them to
// a board and prints the outcome.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-console/internal/mines"
	"github.com/vancomm/minesweeper-console/internal/render"
)

type Session struct {
	id     string
	board  *mines.Board
	out    io.Writer
	render *render.Renderer
	log    *logrus.Entry

	over, won bool
}

func New(board *mines.Board, out io.Writer, r *render.Renderer, log *logrus.Logger) *Session {
	id := uuid.NewString()
	return &Session{
		id:     id,
		board:  board,
		out:    out,
		render: r,
		log: log.WithFields(logrus.Fields{
			"game":  id,
			"board": board.Config().String(),
		}),
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Board() *mines.Board {
	return s.board
}

// Over reports whether the game has ended, by victory or by a mine.
func (s *Session) Over() bool {
	return s.over
}

func (s *Session) Won() bool {
	return s.won
}

func (s *Session) printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}

func (s *Session) printBoard() {
	s.printf("%s%s\n", s.render.Board(s.board), render.Status(s.board))
}

/*
Run plays until the game ends, the player quits, input runs out or ctx is
done. It returns ctx.Err() on cancellation and an error when the board
cannot be seeded; every other outcome returns nil.
*/
func (s *Session) Run(ctx context.Context, lines <-chan string) error {
	c := s.board.Config()
	s.log.Info("game started")
	s.printf("board %dx%d with %d mines\n%s\n\n", c.Width, c.Height, c.MineCount, helpText)
	s.printBoard()

	for !s.over {
		s.printf("> ")
		select {
		case <-ctx.Done():
			s.log.Info("game interrupted")
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				s.log.Info("input closed")
				return nil
			}
			quit, err := s.Execute(line)
			if err != nil {
				return err
			}
			if quit {
				s.log.Info("player quit")
				s.printf("bye!\n")
				return nil
			}
		}
	}

	s.finish()
	return nil
}

// Execute applies one command line. quit is set when the player asked to
// leave; err is set only for failures the game cannot recover from.
func (s *Session) Execute(line string) (quit bool, err error) {
	cmd, err := ParseCommand(line)
	switch {
	case errors.Is(err, ErrEmptyCommand):
		return false, nil
	case errors.Is(err, ErrUnknownCommand):
		s.printf("unknown command, type 'help' for the list\n")
		return false, nil
	case err != nil:
		s.printf("%s\n", err)
		return false, nil
	}

	switch cmd.Name {
	case cmdHelp:
		s.printf("%s\n", helpText)
	case cmdQuit:
		return true, nil
	case cmdClick:
		return false, s.click(cmd.Pos)
	case cmdFlag:
		s.flag(cmd.Pos)
	}
	return false, nil
}

func (s *Session) inRange(p mines.Position) bool {
	c := s.board.Config()
	if c.Contains(p) {
		return true
	}
	s.printf(
		"coordinates out of range: rows 0-%d, columns 0-%d\n",
		c.Height-1, c.Width-1,
	)
	return false
}

func (s *Session) click(p mines.Position) error {
	if s.over || !s.inRange(p) {
		return nil
	}

	res, err := s.board.LeftClick(p)
	if err != nil {
		s.log.WithError(err).Error("unable to place mines")
		return err
	}
	s.log.WithFields(logrus.Fields{
		"pos":    p.String(),
		"result": res.String(),
	}).Debug("click")

	switch res {
	case mines.Invalid:
		s.printf("cannot open %s: already open or flagged\n", p)
		return nil
	case mines.GameOver:
		s.over = true
		s.board.RevealMines()
	case mines.Victory:
		s.over = true
		s.won = true
	case mines.Continue:
		s.printBoard()
	}
	return nil
}

func (s *Session) flag(p mines.Position) {
	if s.over || !s.inRange(p) {
		return
	}

	res := s.board.RightClick(p)
	s.log.WithFields(logrus.Fields{
		"pos":    p.String(),
		"result": res.String(),
	}).Debug("flag")

	if res == mines.Invalid {
		s.printf("cannot flag %s: already open\n", p)
		return
	}
	s.printBoard()
}

func (s *Session) finish() {
	s.printBoard()
	s.log.WithFields(logrus.Fields{
		"won":      s.won,
		"revealed": s.board.Revealed(),
	}).Info("game over")

	if s.won {
		s.printf("you cleared the board, well done!\n")
	} else {
		s.printf("boom! you hit a mine. better luck next time\n")
	}
}
