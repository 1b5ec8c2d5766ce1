package session

import (
	"errors"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper-console/internal/mines"
)

const (
	cmdClick = "click"
	cmdFlag  = "flag"
	cmdHelp  = "help"
	cmdQuit  = "quit"
)

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	cmdClick: 2,
	cmdFlag:  2,
	cmdHelp:  0,
	cmdQuit:  0,
}

var aliases = map[string]string{
	"c":    cmdClick,
	"o":    cmdClick,
	"open": cmdClick,
	"f":    cmdFlag,
	"h":    cmdHelp,
	"?":    cmdHelp,
	"q":    cmdQuit,
	"exit": cmdQuit,
}

var (
	ErrEmptyCommand   = errors.New("empty command")
	ErrUnknownCommand = errors.New("unknown command")
)

type Command struct {
	Name string
	Pos  mines.Position
}

func parseRowCol(twoStrings []string) (p mines.Position, err error) {
	if p.Row, err = strconv.Atoi(twoStrings[0]); err != nil {
		return p, errors.New("row must be an integer")
	}
	if p.Col, err = strconv.Atoi(twoStrings[1]); err != nil {
		return p, errors.New("column must be an integer")
	}
	return p, nil
}

// ParseCommand reads a line such as "click 3 5" or "f 2 4". Command names
// are case-insensitive.
func ParseCommand(line string) (Command, error) {
	parts := strings.Fields(strings.ToLower(line))
	if len(parts) == 0 {
		return Command{}, ErrEmptyCommand
	}

	name := parts[0]
	if canonical, ok := aliases[name]; ok {
		name = canonical
	}
	nargs, ok := commandNargs[name]
	if !ok {
		return Command{}, ErrUnknownCommand
	}
	if nargs != len(parts)-1 {
		return Command{}, errors.New("usage: " + usage(name))
	}

	cmd := Command{Name: name}
	if nargs == 2 {
		pos, err := parseRowCol(parts[1:])
		if err != nil {
			return Command{}, err
		}
		cmd.Pos = pos
	}
	return cmd, nil
}

func usage(name string) string {
	switch name {
	case cmdClick, cmdFlag:
		return name + " <row> <col>"
	default:
		return name
	}
}

const helpText = `commands:
  click <row> <col>   reveal a cell (c, o, open)
  flag <row> <col>    place or remove a flag (f)
  help                show this message (h, ?)
  quit                leave the game (q, exit)
coordinates start at 0`
