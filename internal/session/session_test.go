package session

import (
	"bytes"
	"context"
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper-console/internal/mines"
	"github.com/vancomm/minesweeper-console/internal/render"
)

func newSession(t *testing.T, c mines.Config) (*Session, *bytes.Buffer, *test.Hook) {
	t.Helper()
	return sessionFor(mines.New(c, rand.New(rand.NewPCG(1, 2))))
}

func sessionFor(b *mines.Board) (*Session, *bytes.Buffer, *test.Hook) {
	var out bytes.Buffer
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return New(b, &out, render.New(&out, false), logger), &out, hook
}

func feed(lines ...string) <-chan string {
	ch := make(chan string, len(lines))
	for _, l := range lines {
		ch <- l
	}
	close(ch)
	return ch
}

// Five mines on 3x3 only fit around a corner click, all in known places.
var (
	tight = mines.Config{Size: mines.Size{Width: 3, Height: 3}, MineCount: 5}
	easy  = mines.Config{Size: mines.Size{Width: 9, Height: 9}, MineCount: 10}
)

func TestRunVictory(t *testing.T) {
	s, out, hook := newSession(t, tight)

	err := s.Run(context.Background(), feed("help", "flag 0 2", "click 0 0", "quit"))
	require.NoError(t, err)

	assert.True(t, s.Over())
	assert.True(t, s.Won())
	assert.Contains(t, out.String(), "well done")
	assert.Contains(t, out.String(), "commands:")

	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, "game over", last.Message)
	assert.Equal(t, true, last.Data["won"])
	assert.Equal(t, s.ID(), last.Data["game"])
}

func TestRunGameOver(t *testing.T) {
	c := mines.Config{Size: mines.Size{Width: 6, Height: 1}, MineCount: 2}

	// Some layouts clear the whole strip on the first click; keep the
	// first one that does not.
	var b *mines.Board
	for seed := uint64(0); ; seed++ {
		b = mines.New(c, rand.New(rand.NewPCG(seed, 0)))
		res, err := b.LeftClick(mines.Position{Row: 0, Col: 0})
		require.NoError(t, err)
		if res == mines.Continue {
			break
		}
	}
	s, out, _ := sessionFor(b)

	mine := s.Board().Mines()[0]
	flagged := s.Board().Mines()[1]
	_, err := s.Execute("flag 0 " + strconv.Itoa(flagged.Col))
	require.NoError(t, err)

	err = s.Run(context.Background(), feed("click 0 "+strconv.Itoa(mine.Col)))
	require.NoError(t, err)

	assert.True(t, s.Over())
	assert.False(t, s.Won())
	assert.Contains(t, out.String(), "boom!")
	for _, p := range s.Board().Mines() {
		assert.Equal(t, mines.Revealed, s.Board().State(p), "mine %s hidden after game over", p)
	}
}

func TestRunQuit(t *testing.T) {
	s, out, _ := newSession(t, tight)

	err := s.Run(context.Background(), feed("q", "click 0 0"))
	require.NoError(t, err)

	assert.False(t, s.Over())
	assert.False(t, s.Board().MinesPlaced())
	assert.Contains(t, out.String(), "bye!")
}

func TestRunInputClosed(t *testing.T) {
	s, _, hook := newSession(t, tight)

	err := s.Run(context.Background(), feed())
	require.NoError(t, err)
	assert.Equal(t, "input closed", hook.LastEntry().Message)
}

func TestRunCancelled(t *testing.T) {
	s, _, _ := newSession(t, tight)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Run(ctx, make(chan string))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunPlacementFailure(t *testing.T) {
	s, _, hook := newSession(t, mines.Config{Size: mines.Size{Width: 3, Height: 3}, MineCount: 1})

	err := s.Run(context.Background(), feed("click 1 1"))
	assert.ErrorIs(t, err, mines.ErrNotEnoughRoom)
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}

func TestExecuteRejections(t *testing.T) {
	s, out, _ := newSession(t, easy)

	tests := []struct {
		line string
		want string
	}{
		{"dance", "unknown command"},
		{"click 1", "usage: click <row> <col>"},
		{"click 9 0", "coordinates out of range: rows 0-8, columns 0-8"},
		{"flag 0 -1", "coordinates out of range"},
	}

	for _, test := range tests {
		out.Reset()
		quit, err := s.Execute(test.line)
		require.NoError(t, err)
		assert.False(t, quit)
		assert.Contains(t, out.String(), test.want, test.line)
	}
	assert.False(t, s.Board().MinesPlaced())
}

func TestExecuteInvalidMoves(t *testing.T) {
	s, out, _ := newSession(t, easy)

	_, err := s.Execute("click 4 4")
	require.NoError(t, err)

	out.Reset()
	_, err = s.Execute("click 4 4")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "cannot open (4, 4)")

	out.Reset()
	_, err = s.Execute("flag 4 4")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "cannot flag (4, 4)")
}

func TestLines(t *testing.T) {
	var got []string
	for line := range Lines(context.Background(), strings.NewReader("click 1 1\nflag 2 2\n\nquit")) {
		got = append(got, line)
	}
	assert.Equal(t, []string{"click 1 1", "flag 2 2", "", "quit"}, got)
}
