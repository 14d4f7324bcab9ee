package ui

import (
	"bytes"
	"context"
	"log"
	"strings"
	"testing"
	"time"

	"snake-stones/game"
	"snake-stones/game/types"
	"snake-stones/sound"

	"golang.org/x/exp/rand"
)

type fakePlayer struct {
	played []sound.Effect
}

func (p *fakePlayer) Play(e sound.Effect) { p.played = append(p.played, e) }
func (p *fakePlayer) Close()              {}

// fakeFrontend replays one batch of commands per poll
type fakeFrontend struct {
	batches [][]Command
	polls   int
	renders int
	closed  bool
}

func (f *fakeFrontend) Poll() []Command {
	f.polls++
	if len(f.batches) == 0 {
		return nil
	}
	batch := f.batches[0]
	f.batches = f.batches[1:]
	return batch
}

func (f *fakeFrontend) Render(g *game.Game) { f.renders++ }
func (f *fakeFrontend) Close()              { f.closed = true }

func newTestSession(t *testing.T, cfg game.Config) (*Session, *fakePlayer, *bytes.Buffer) {
	t.Helper()
	g, err := game.NewGame(cfg, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	player := &fakePlayer{}
	var buf bytes.Buffer
	return NewSession(g, player, log.New(&buf, "", 0)), player, &buf
}

func TestApplySteers(t *testing.T) {
	sess, _, _ := newTestSession(t, game.DefaultConfig())

	if sess.Apply(CmdUp) {
		t.Fatal("steering should not quit")
	}
	if d, ok := sess.Game().Snake().Pending(); !ok || d != types.Up {
		t.Errorf("expected pending up, got %v", d)
	}

	sess.Apply(CmdLeft) // reversal of the current heading, ignored
	if d, _ := sess.Game().Snake().Pending(); d != types.Up {
		t.Errorf("reversal replaced pending turn: %v", d)
	}

	if !sess.Apply(CmdQuit) {
		t.Error("quit should be reported")
	}
}

func TestStepLogsGameOver(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Boundary = types.BoundarySolid
	start := types.Point{X: 0, Y: 0}
	cfg.Start = &start
	cfg.StartDirection = types.Left
	sess, player, buf := newTestSession(t, cfg)

	if !sess.Step() {
		t.Fatal("expected the game to end on the wall")
	}
	if !strings.Contains(buf.String(), "game over: the snake hit the wall") {
		t.Errorf("unexpected log: %q", buf.String())
	}
	if len(player.played) != 1 || player.played[0] != sound.EffectGameOver {
		t.Errorf("expected game over sound, got %v", player.played)
	}
}

func TestRestartCommand(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Boundary = types.BoundarySolid
	start := types.Point{X: 0, Y: 0}
	cfg.Start = &start
	cfg.StartDirection = types.Up
	sess, _, buf := newTestSession(t, cfg)

	sess.Step()
	if !sess.Game().Over() {
		t.Fatal("expected game over")
	}
	if sess.Apply(CmdRestart) {
		t.Fatal("restart should not quit")
	}
	if sess.Game().Over() {
		t.Error("game should be running again")
	}
	if !strings.Contains(buf.String(), "new game started") {
		t.Errorf("restart not logged: %q", buf.String())
	}
}

func TestRunStopsOnGameOver(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Boundary = types.BoundarySolid
	start := types.Point{X: 29, Y: 5}
	cfg.Start = &start
	sess, _, _ := newTestSession(t, cfg)
	sess.Game().Apple().MoveTo(types.Point{X: 0, Y: 0})

	fe := &fakeFrontend{}
	err := Run(context.Background(), fe, sess, RunOptions{Tick: time.Millisecond})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !sess.Game().Over() {
		t.Fatal("expected the run to end with a game over")
	}
	// (30,5), (31,5), then the wall
	if fe.renders != 3 {
		t.Errorf("expected 3 frames, got %d", fe.renders)
	}
}

func TestRunQuitCommand(t *testing.T) {
	sess, _, _ := newTestSession(t, game.DefaultConfig())
	fe := &fakeFrontend{batches: [][]Command{{CmdDown}, {CmdQuit}}}

	if err := Run(context.Background(), fe, sess, RunOptions{Tick: time.Millisecond}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if fe.polls != 2 || fe.renders != 1 {
		t.Errorf("expected 2 polls and 1 frame, got %d and %d", fe.polls, fe.renders)
	}
	if sess.Game().Snake().Direction() != types.Down {
		t.Errorf("expected the snake to have turned down, got %v", sess.Game().Snake().Direction())
	}
}

func TestRunHonoursContext(t *testing.T) {
	sess, _, _ := newTestSession(t, game.DefaultConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, &fakeFrontend{}, sess, RunOptions{Tick: time.Hour})
	if err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
