package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper-console/internal/config"
	"github.com/vancomm/minesweeper-console/internal/demo"
	"github.com/vancomm/minesweeper-console/internal/mines"
)

const (
	choiceDemo   = "4"
	choiceCustom = "5"
)

func printMenu() {
	fmt.Println("\nminesweeper")
	for _, d := range config.Difficulties() {
		fmt.Printf("  %d. %s\n", d, d.Describe())
	}
	fmt.Printf("  %s. demo\n", choiceDemo)
	fmt.Printf("  %s. custom board\n", choiceCustom)
	fmt.Println("  q. quit")
	fmt.Print("choose: ")
}

// readLine returns the next input line, or ok=false once input is closed.
func (a *app) readLine(ctx context.Context) (line string, ok bool, err error) {
	select {
	case <-ctx.Done():
		return "", false, ctx.Err()
	case line, ok = <-a.lines:
		return strings.TrimSpace(line), ok, nil
	}
}

func (a *app) menu(ctx context.Context) error {
	for {
		printMenu()
		choice, ok, err := a.readLine(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		switch strings.ToLower(choice) {
		case "":
			continue
		case "q", "quit", "exit":
			return nil
		case choiceDemo:
			err = demo.New(os.Stdout, a.lines, a.render, a.rnd, log).Run(ctx)
		case choiceCustom:
			var c mines.Config
			if c, ok, err = a.customBoard(ctx); err == nil && ok {
				err = a.play(ctx, c)
			}
		default:
			d, perr := config.ParseDifficulty(choice)
			if perr != nil {
				fmt.Printf("no such option %q\n", choice)
				continue
			}
			err = a.play(ctx, d.BoardConfig())
		}
		if err != nil {
			return err
		}
	}
}

/*
customBoard asks for "width height mines" until it gets a board that fits,
the player enters an empty line, or input runs out.
*/
func (a *app) customBoard(ctx context.Context) (mines.Config, bool, error) {
	for {
		fmt.Print("width height mines (empty line to go back): ")
		line, ok, err := a.readLine(ctx)
		if err != nil || !ok || line == "" {
			return mines.Config{}, false, err
		}

		c, err := parseCustomLine(line)
		if err != nil {
			fmt.Println(err)
			continue
		}
		return c, true, nil
	}
}

func parseCustomLine(line string) (mines.Config, error) {
	parts := strings.Fields(line)
	if len(parts) != 3 {
		return mines.Config{}, fmt.Errorf("expected three numbers, got %d", len(parts))
	}
	for _, p := range parts {
		if _, err := strconv.Atoi(p); err != nil {
			return mines.Config{}, fmt.Errorf("%q is not a number", p)
		}
	}
	query := url.Values{
		"width":  {parts[0]},
		"height": {parts[1]},
		"mines":  {parts[2]},
	}
	return config.ParseCustom(query.Encode())
}
