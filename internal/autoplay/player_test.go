package autoplay

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper-console/internal/mines"
)

var (
	easy = mines.Config{Size: mines.Size{Width: 9, Height: 9}, MineCount: 10}
	hard = mines.Config{Size: mines.Size{Width: 30, Height: 16}, MineCount: 99}
)

func TestPlayFinishesGame(t *testing.T) {
	for seed := range uint64(50) {
		b := mines.New(easy, rand.New(rand.NewPCG(seed, 0)))
		p := NewPlayer(b, rand.New(rand.NewPCG(seed, 1)))

		res, err := p.Play()
		require.NoError(t, err)
		require.Contains(t, []mines.Result{mines.Victory, mines.GameOver}, res)
		assert.GreaterOrEqual(t, p.Guesses(), 1)

		if res == mines.Victory {
			assert.True(t, b.CheckVictory())
		} else {
			assert.False(t, b.CheckVictory())
		}
	}
}

func TestPlayFlagsOnlyMines(t *testing.T) {
	for seed := range uint64(20) {
		b := mines.New(hard, rand.New(rand.NewPCG(seed, 0)))
		_, err := NewPlayer(b, rand.New(rand.NewPCG(seed, 1))).Play()
		require.NoError(t, err)

		for row := range hard.Height {
			for col := range hard.Width {
				pos := mines.Position{Row: row, Col: col}
				if b.State(pos) == mines.Flagged {
					assert.True(t, b.Content(pos).IsMine(), "seed %d: wrong flag at %s", seed, pos)
				}
			}
		}
	}
}

func TestPlayEmptyBoard(t *testing.T) {
	b := mines.New(mines.Config{Size: mines.Size{Width: 6, Height: 4}, MineCount: 0}, nil)
	p := NewPlayer(b, nil)

	res, err := p.Play()
	require.NoError(t, err)
	assert.Equal(t, mines.Victory, res)
	assert.Equal(t, 1, p.Guesses())
}

func TestPlayDeducesSimpleStrip(t *testing.T) {
	// The opening click on a 1x5 strip lands on column 2, leaving one
	// mine in a corner that a single number pins down.
	c := mines.Config{Size: mines.Size{Width: 5, Height: 1}, MineCount: 1}
	for seed := range uint64(10) {
		b := mines.New(c, rand.New(rand.NewPCG(seed, 0)))
		p := NewPlayer(b, rand.New(rand.NewPCG(seed, 1)))

		res, err := p.Play()
		require.NoError(t, err)
		assert.Equal(t, mines.Victory, res)
		assert.Equal(t, 1, p.Guesses())
	}
}

func TestPlayPlacementError(t *testing.T) {
	b := mines.New(mines.Config{Size: mines.Size{Width: 3, Height: 3}, MineCount: 1}, nil)

	_, err := NewPlayer(b, nil).Play()
	assert.ErrorIs(t, err, mines.ErrNotEnoughRoom)
}
