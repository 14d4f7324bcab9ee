package main

import (
	"flag"
	"fmt"
	"io"

	"snake-stones/game"
	"snake-stones/game/types"
)

const (
	frontendRaylib   = "raylib"
	frontendTerminal = "term"
	frontendEbiten   = "ebiten"
)

type options struct {
	Game     game.Config
	Frontend string
	Hold     bool
	Sound    bool
	LogPath  string
}

func parseFlags(args []string) (options, error) {
	opts := options{Game: game.DefaultConfig()}

	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&opts.Frontend, "frontend", frontendRaylib, "Display: raylib, term or ebiten")
	fs.IntVar(&opts.Game.Width, "width", game.DefaultWidth, "Board width in cells")
	fs.IntVar(&opts.Game.Height, "height", game.DefaultHeight, "Board height in cells")
	fs.IntVar(&opts.Game.CellSize, "cell", game.DefaultCellSize, "Cell size in pixels")
	fs.IntVar(&opts.Game.Speed, "speed", game.DefaultSpeed, "Snake moves per second")
	fs.IntVar(&opts.Game.StoneCadence, "stones", game.DefaultStoneCadence, "Apples eaten between stones")
	fs.Uint64Var(&opts.Game.Seed, "seed", 0, "Random seed (0 = random)")
	walls := fs.Bool("walls", false, "Solid walls instead of wrapping around")
	fs.BoolVar(&opts.Hold, "hold", false, "Keep the board open after game over")
	fs.BoolVar(&opts.Sound, "sound", false, "Play sound effects")
	fs.StringVar(&opts.LogPath, "log", "", "Write the log to this file")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	if *walls {
		opts.Game.Boundary = types.BoundarySolid
	}

	switch opts.Frontend {
	case frontendRaylib, frontendTerminal, frontendEbiten:
	default:
		return opts, fmt.Errorf("unknown frontend %q", opts.Frontend)
	}

	return opts, opts.Game.Validate()
}
