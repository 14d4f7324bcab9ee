package ui

import (
	"context"
	"time"
)

// RunOptions controls the fixed-tick loop
type RunOptions struct {
	Tick time.Duration
	// Hold keeps the loop alive after a game over so the player can restart
	Hold bool
}

// Run polls input, advances the game, renders and waits for the next tick,
// until the player quits, the game ends or ctx is cancelled
func Run(ctx context.Context, fe Frontend, sess *Session, opts RunOptions) error {
	ticker := time.NewTicker(opts.Tick)
	defer ticker.Stop()

	g := sess.Game()
	for {
		for _, cmd := range fe.Poll() {
			if sess.Apply(cmd) {
				return nil
			}
		}

		if !g.Over() && sess.Step() && !opts.Hold {
			fe.Render(g)
			return nil
		}
		fe.Render(g)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
