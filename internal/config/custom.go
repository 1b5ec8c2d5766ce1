package config

import (
	"fmt"
	"net/url"

	"github.com/gorilla/schema"
	"github.com/vancomm/minesweeper-console/internal/mines"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

type CustomParams struct {
	Width     int `schema:"width,required"`
	Height    int `schema:"height,required"`
	MineCount int `schema:"mines,required"`
}

// MaxMines is the largest mine count that still leaves room for the safety
// zone around a first click anywhere on a board of the given size.
func MaxMines(size mines.Size) int {
	return size.CellCount() - min(3, size.Width)*min(3, size.Height)
}

/*
ParseCustom reads a custom board from a query string such as
"width=30&height=16&mines=99". The board must be valid and leave room for
the first-click safety zone wherever the first click lands.
*/
func ParseCustom(query string) (mines.Config, error) {
	values, err := url.ParseQuery(query)
	if err != nil {
		return mines.Config{}, fmt.Errorf("malformed custom board %q: %w", query, err)
	}

	var params CustomParams
	if err := decoder.Decode(&params, values); err != nil {
		return mines.Config{}, fmt.Errorf("invalid custom board %q: %w", query, err)
	}

	c := mines.Config{
		Size:      mines.Size{Width: params.Width, Height: params.Height},
		MineCount: params.MineCount,
	}
	if err := c.Validate(); err != nil {
		return mines.Config{}, err
	}
	if limit := MaxMines(c.Size); c.MineCount > limit {
		return mines.Config{}, fmt.Errorf(
			"%w: %s: at most %d mines fit around a first click",
			mines.ErrInvalidConfig, c, limit,
		)
	}
	return c, nil
}
