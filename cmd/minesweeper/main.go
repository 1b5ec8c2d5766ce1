package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-console/internal/autoplay"
	"github.com/vancomm/minesweeper-console/internal/config"
	"github.com/vancomm/minesweeper-console/internal/demo"
	"github.com/vancomm/minesweeper-console/internal/mines"
	"github.com/vancomm/minesweeper-console/internal/render"
	"github.com/vancomm/minesweeper-console/internal/session"
)

var log = logrus.New()

const usage = `usage: minesweeper [-config file] [command]

commands:
  menu      pick a board from the menu (default)
  play      play the configured board
  demo      walk through the rules
  simulate  let the computer play [-games N] [-workers W]
`

type app struct {
	cfg    *config.Config
	render *render.Renderer
	rnd    *rand.Rand
	lines  <-chan string
}

func createRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return mines.NewRand()
	}
	return rand.New(rand.NewPCG(seed, seed))
}

func main() {
	configPath := flag.String("config", "", "path to a config file (json, yaml or toml)")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}
	if err := config.SetupLogging(log, cfg, os.Stderr); err != nil {
		log.WithError(err).Fatal("failed to set up logging")
	}
	mines.Log = log
	autoplay.Log = log
	log.WithFields(cfg.Fields()).Debug("config loaded")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	a := &app{
		cfg:    cfg,
		render: render.New(os.Stdout, cfg.Color),
		rnd:    createRand(cfg.Seed),
	}

	cmd, args := "menu", []string(nil)
	if flag.NArg() > 0 {
		cmd, args = flag.Arg(0), flag.Args()[1:]
	}

	switch cmd {
	case "menu":
		a.lines = session.Lines(ctx, os.Stdin)
		err = a.menu(ctx)
	case "play":
		a.lines = session.Lines(ctx, os.Stdin)
		err = a.playConfigured(ctx)
	case "demo":
		a.lines = session.Lines(ctx, os.Stdin)
		err = demo.New(os.Stdout, a.lines, a.render, a.rnd, log).Run(ctx)
	case "simulate":
		err = a.simulate(ctx, args)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", cmd, usage)
		os.Exit(2)
	}

	if errors.Is(err, context.Canceled) {
		fmt.Println()
		log.Info("interrupted")
		return
	}
	if err != nil {
		log.WithError(err).Fatal("minesweeper failed")
	}
}

func (a *app) play(ctx context.Context, c mines.Config) error {
	b := mines.New(c, a.rnd)
	return session.New(b, os.Stdout, a.render, log).Run(ctx, a.lines)
}

func (a *app) playConfigured(ctx context.Context) error {
	c, err := a.cfg.Board()
	if err != nil {
		return err
	}
	return a.play(ctx, c)
}

func (a *app) simulate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	games := fs.Int("games", 1000, "number of games to play")
	workers := fs.Int("workers", runtime.NumCPU(), "games played at once")
	if err := fs.Parse(args); err != nil {
		return err
	}

	c, err := a.cfg.Board()
	if err != nil {
		return err
	}

	stats, err := autoplay.Simulate(ctx, autoplay.SimulateOptions{
		Config:  c,
		Games:   *games,
		Workers: *workers,
		Seed:    a.rnd.Uint64(),
	})
	if err != nil {
		return err
	}

	fmt.Printf("board:    %s\n", c)
	fmt.Printf("games:    %d\n", stats.Games)
	fmt.Printf("wins:     %d\n", stats.Wins)
	fmt.Printf("losses:   %d\n", stats.Losses)
	fmt.Printf("guesses:  %d\n", stats.Guesses)
	fmt.Printf("win rate: %.1f%%\n", stats.WinRate()*100)
	return nil
}
