package tcellui

import (
	"strings"
	"testing"
	"time"

	"snake-stones/game"
	"snake-stones/game/types"
	"snake-stones/ui"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/exp/rand"
)

func newTestScreen(t *testing.T) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	s, err := New(sim)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	sim.SetSize(80, 30)
	t.Cleanup(s.Close)
	return s, sim
}

func pollUntil(t *testing.T, s *Screen, want int) []ui.Command {
	t.Helper()
	var cmds []ui.Command
	deadline := time.Now().Add(2 * time.Second)
	for len(cmds) < want && time.Now().Before(deadline) {
		cmds = append(cmds, s.Poll()...)
		time.Sleep(5 * time.Millisecond)
	}
	return cmds
}

func TestPollMapsKeys(t *testing.T) {
	s, sim := newTestScreen(t)

	sim.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'h', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'r', tcell.ModNone)
	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	cmds := pollUntil(t, s, 4)
	want := []ui.Command{ui.CmdUp, ui.CmdLeft, ui.CmdRestart, ui.CmdQuit}
	if len(cmds) != len(want) {
		t.Fatalf("expected %v, got %v", want, cmds)
	}
	for i := range want {
		if cmds[i] != want[i] {
			t.Errorf("command %d: got %v, want %v", i, cmds[i], want[i])
		}
	}
}

func TestPollDoesNotBlock(t *testing.T) {
	s, _ := newTestScreen(t)

	done := make(chan struct{})
	go func() {
		s.Poll()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Poll blocked with no pending events")
	}
}

func TestRenderPaintsEntities(t *testing.T) {
	s, sim := newTestScreen(t)

	cfg := game.DefaultConfig()
	cfg.Width, cfg.Height = 10, 8
	g, err := game.NewGame(cfg, rand.New(rand.NewSource(4)))
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	s.Render(g)

	head := g.Snake().GetHead()
	for _, x := range []int{2 * head.X, 2*head.X + 1} {
		_, _, style, _ := sim.GetContent(x, head.Y)
		if style != cellStyle(types.SnakeColor) {
			t.Errorf("column %d of the head is not painted as snake", x)
		}
	}

	apple := g.Apple().Position
	if _, _, style, _ := sim.GetContent(2*apple.X, apple.Y); style != cellStyle(types.AppleColor) {
		t.Error("apple is not painted")
	}

	var line strings.Builder
	for x := 0; x < 40; x++ {
		r, _, _, _ := sim.GetContent(x, cfg.Height)
		line.WriteRune(r)
	}
	if !strings.HasPrefix(line.String(), "Score: 0  Stones: 0") {
		t.Errorf("unexpected status line %q", line.String())
	}
}
