package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"marquee/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	deckPath := flag.String("deck", "", "override deck path (optional)")
	intervalMS := flag.Int("interval", 0, "auto-play interval in milliseconds (optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		DeckPath:   *deckPath,
	}
	if ms := *intervalMS; ms > 0 {
		opts.Interval = time.Duration(ms) * time.Millisecond
	}

	if err := app.Run(ctx, opts); err != nil {
		// A signal shutting the program down is a normal exit.
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return 0
		}
		fmt.Fprintf(os.Stderr, "marquee: %v\n", err)
		return 1
	}
	return 0
}
