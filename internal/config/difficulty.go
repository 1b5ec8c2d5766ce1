package config

import (
	"fmt"
	"strings"

	"github.com/vancomm/minesweeper-console/internal/mines"
)

type Difficulty int

const (
	Easy Difficulty = iota + 1
	Medium
	Hard
)

var presets = map[Difficulty]mines.Config{
	Easy:   {Size: mines.Size{Width: 9, Height: 9}, MineCount: 10},
	Medium: {Size: mines.Size{Width: 16, Height: 16}, MineCount: 40},
	Hard:   {Size: mines.Size{Width: 30, Height: 16}, MineCount: 99},
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}

// BoardConfig returns the preset board for d. Unknown difficulties fall
// back to Easy.
func (d Difficulty) BoardConfig() mines.Config {
	if c, ok := presets[d]; ok {
		return c
	}
	return presets[Easy]
}

// Describe renders a menu line such as "easy (9x9, 10 mines)".
func (d Difficulty) Describe() string {
	c := d.BoardConfig()
	return fmt.Sprintf("%s (%dx%d, %d mines)", d, c.Width, c.Height, c.MineCount)
}

// ParseDifficulty accepts a difficulty name or its menu number.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "1":
		return Easy, nil
	case "medium", "2":
		return Medium, nil
	case "hard", "3":
		return Hard, nil
	}
	return 0, fmt.Errorf("unknown difficulty %q", s)
}

func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}
