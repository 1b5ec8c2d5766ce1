package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper-console/internal/mines"
)

func TestPresets(t *testing.T) {
	tests := []struct {
		difficulty Difficulty
		width      int
		height     int
		mines      int
		cells      int
	}{
		{Easy, 9, 9, 10, 81},
		{Medium, 16, 16, 40, 256},
		{Hard, 30, 16, 99, 480},
	}

	for _, test := range tests {
		t.Run(test.difficulty.String(), func(t *testing.T) {
			c := test.difficulty.BoardConfig()
			assert.Equal(t, test.width, c.Width)
			assert.Equal(t, test.height, c.Height)
			assert.Equal(t, test.mines, c.MineCount)
			assert.Equal(t, test.cells, c.CellCount())
			assert.NoError(t, c.Validate())
			assert.LessOrEqual(t, c.MineCount, MaxMines(c.Size))
		})
	}
}

func TestUnknownDifficultyFallsBack(t *testing.T) {
	assert.Equal(t, Easy.BoardConfig(), Difficulty(42).BoardConfig())
	assert.Equal(t, "Difficulty(42)", Difficulty(42).String())
}

func TestParseDifficulty(t *testing.T) {
	for input, want := range map[string]Difficulty{
		"easy":     Easy,
		"1":        Easy,
		" Medium ": Medium,
		"2":        Medium,
		"HARD":     Hard,
		"3":        Hard,
	} {
		d, err := ParseDifficulty(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, d, input)
	}

	_, err := ParseDifficulty("impossible")
	assert.Error(t, err)
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "hard (30x16, 99 mines)", Hard.Describe())
	assert.Equal(t, []Difficulty{Easy, Medium, Hard}, Difficulties())
}

func TestParseCustom(t *testing.T) {
	c, err := ParseCustom("width=30&height=20&mines=120")
	require.NoError(t, err)
	assert.Equal(t, mines.Config{Size: mines.Size{Width: 30, Height: 20}, MineCount: 120}, c)

	c, err = ParseCustom("width=5&height=5&mines=16&colour=red")
	require.NoError(t, err)
	assert.Equal(t, 16, c.MineCount)
}

func TestParseCustomErrors(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"missing mines", "width=9&height=9"},
		{"not a number", "width=nine&height=9&mines=10"},
		{"zero width", "width=0&height=9&mines=1"},
		{"too many mines", "width=3&height=3&mines=9"},
		{"no room around first click", "width=5&height=5&mines=17"},
		{"negative mines", "width=5&height=5&mines=-1"},
		{"strip too crowded", "width=5&height=1&mines=3"},
		{"bad query", "width=%zz"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseCustom(test.query)
			assert.Error(t, err)
		})
	}
}

func TestMaxMines(t *testing.T) {
	assert.Equal(t, 72, MaxMines(mines.Size{Width: 9, Height: 9}))
	assert.Equal(t, 2, MaxMines(mines.Size{Width: 5, Height: 1}))
	assert.Equal(t, 0, MaxMines(mines.Size{Width: 2, Height: 2}))
}
