package autoplay

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-console/internal/mines"
	"golang.org/x/sync/errgroup"
)

type SimulateOptions struct {
	Config  mines.Config
	Games   int
	Workers int
	Seed    uint64
}

type Stats struct {
	Games   int
	Wins    int
	Losses  int
	Guesses int
}

func (s Stats) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
}

func (s Stats) Fields() logrus.Fields {
	return logrus.Fields{
		"games":    s.Games,
		"wins":     s.Wins,
		"losses":   s.Losses,
		"guesses":  s.Guesses,
		"win_rate": fmt.Sprintf("%.3f", s.WinRate()),
	}
}

/*
Simulate plays opts.Games games on fresh boards, at most opts.Workers at a
time. Game i draws its mines and its guesses from two PCG streams keyed by
opts.Seed and i, so the totals do not depend on scheduling.
*/
func Simulate(ctx context.Context, opts SimulateOptions) (Stats, error) {
	if err := opts.Config.Validate(); err != nil {
		return Stats{}, err
	}

	var wins, losses, guesses atomic.Int64

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Workers, 1))

	for i := range opts.Games {
		if gCtx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			board := mines.New(opts.Config, rand.New(rand.NewPCG(opts.Seed, 2*uint64(i))))
			player := NewPlayer(board, rand.New(rand.NewPCG(opts.Seed, 2*uint64(i)+1)))

			res, err := player.Play()
			if err != nil {
				return fmt.Errorf("game %d: %w", i, err)
			}
			guesses.Add(int64(player.Guesses()))
			if res == mines.Victory {
				wins.Add(1)
			} else {
				losses.Add(1)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Stats{}, err
	}
	if err := ctx.Err(); err != nil {
		return Stats{}, err
	}

	stats := Stats{
		Games:   int(wins.Load() + losses.Load()),
		Wins:    int(wins.Load()),
		Losses:  int(losses.Load()),
		Guesses: int(guesses.Load()),
	}
	Log.WithFields(stats.Fields()).WithField("board", opts.Config.String()).Debug("simulation done")
	return stats, nil
}
