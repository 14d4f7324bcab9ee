package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"snake-stones/game"
	"snake-stones/sound"
	"snake-stones/ui"
	"snake-stones/ui/ebitenui"
	"snake-stones/ui/raylibui"
	"snake-stones/ui/tcellui"
)

const windowTitle = "Snake"

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logFile, err := setupLogging(opts.LogPath, opts.Frontend == frontendTerminal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	g, err := game.NewGame(opts.Game, nil)
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}
	logger := log.New(log.Writer(), fmt.Sprintf("[snake %s] ", g.ID()[:8]), log.LstdFlags)

	player := newPlayer(opts.Sound, logger)
	defer player.Close()

	sess := ui.NewSession(g, player, logger)
	logger.Printf("starting %dx%d %s board, %d ticks/s, stone every %d apples",
		opts.Game.Width, opts.Game.Height, opts.Game.Boundary, opts.Game.Speed, opts.Game.StoneCadence)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := play(ctx, opts, sess); err != nil && !errors.Is(err, context.Canceled) {
		logger.Printf("exiting: %v", err)
		player.Close()
		os.Exit(1)
	}

	stats := g.Stats()
	logger.Printf("final score %d, best %d over %d games", g.Score(), stats.HighScore, stats.GamesPlayed)
	if opts.Frontend == frontendTerminal {
		fmt.Printf("Score: %d  Best: %d\n", g.Score(), stats.HighScore)
	}
}

func play(ctx context.Context, opts options, sess *ui.Session) error {
	runOpts := ui.RunOptions{Tick: opts.Game.TickInterval(), Hold: opts.Hold}

	switch opts.Frontend {
	case frontendTerminal:
		screen, err := tcellui.New(nil)
		if err != nil {
			return err
		}
		defer screen.Close()
		return ui.Run(ctx, screen, sess, runOpts)
	case frontendEbiten:
		return ebitenui.Run(sess, windowTitle, opts.Hold)
	default:
		renderer := raylibui.NewRenderer(opts.Game, windowTitle)
		defer renderer.Close()
		return ui.Run(ctx, renderer, sess, runOpts)
	}
}

// newPlayer opens the speaker, falling back to silence when there is no audio device
func newPlayer(enabled bool, logger *log.Logger) sound.Player {
	if !enabled {
		return sound.Nop{}
	}
	player, err := sound.NewSpeaker()
	if err != nil {
		logger.Printf("audio initialization failed: %v (continuing without audio)", err)
		return sound.Nop{}
	}
	return player
}
