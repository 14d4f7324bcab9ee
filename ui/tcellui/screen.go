// Package tcellui plays the game in a terminal. Every grid cell is two
// columns wide so the board keeps roughly square proportions.
package tcellui

import (
	"fmt"

	"snake-stones/game"
	"snake-stones/game/types"
	"snake-stones/ui"

	"github.com/gdamore/tcell/v2"
)

const eventBuffer = 64

type Screen struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}
	text   tcell.Style
}

// New takes over the terminal. A nil screen opens the real terminal.
func New(screen tcell.Screen) (*Screen, error) {
	if screen == nil {
		var err error
		if screen, err = tcell.NewScreen(); err != nil {
			return nil, fmt.Errorf("opening terminal: %w", err)
		}
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing terminal: %w", err)
	}

	s := &Screen{
		screen: screen,
		events: make(chan tcell.Event, eventBuffer),
		done:   make(chan struct{}),
		text:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
	}
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	screen.HideCursor()
	screen.Clear()

	go s.pump()
	return s, nil
}

// pump forwards terminal events to the game loop
func (s *Screen) pump() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.done:
			return
		}
	}
}

func (s *Screen) Poll() []ui.Command {
	var cmds []ui.Command
	for {
		select {
		case ev := <-s.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if cmd := commandForKey(ev); cmd != ui.CmdNone {
					cmds = append(cmds, cmd)
				}
			case *tcell.EventResize:
				s.screen.Sync()
			}
		default:
			return cmds
		}
	}
}

func commandForKey(ev *tcell.EventKey) ui.Command {
	switch ev.Key() {
	case tcell.KeyUp:
		return ui.CmdUp
	case tcell.KeyDown:
		return ui.CmdDown
	case tcell.KeyLeft:
		return ui.CmdLeft
	case tcell.KeyRight:
		return ui.CmdRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ui.CmdQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'k':
			return ui.CmdUp
		case 's', 'j':
			return ui.CmdDown
		case 'a', 'h':
			return ui.CmdLeft
		case 'd', 'l':
			return ui.CmdRight
		case 'r':
			return ui.CmdRestart
		case 'q':
			return ui.CmdQuit
		}
	}
	return ui.CmdNone
}

func cellStyle(c types.Color) tcell.Style {
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// FillCell paints a cell. The border colour is dropped, a terminal cell is too small for it.
func (s *Screen) FillCell(p types.Point, fill, border types.Color) {
	style := cellStyle(fill)
	s.screen.SetContent(2*p.X, p.Y, ' ', nil, style)
	s.screen.SetContent(2*p.X+1, p.Y, ' ', nil, style)
}

func (s *Screen) Render(g *game.Game) {
	s.screen.Clear()

	grid := g.Grid()
	bg := cellStyle(types.BackgroundColor)
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < 2*grid.Width; x++ {
			s.screen.SetContent(x, y, ' ', nil, bg)
		}
	}

	for _, e := range g.Entities() {
		e.Draw(s)
	}

	stats := g.Stats()
	status := fmt.Sprintf("Score: %d  Stones: %d  Best: %d", g.Score(), len(g.Stones()), stats.HighScore)
	if g.Over() {
		status = fmt.Sprintf("Game over, %s. Score: %d  r: restart  q: quit", g.Cause(), g.Score())
	}
	s.drawText(0, grid.Height, status)

	s.screen.Show()
}

func (s *Screen) drawText(x, y int, text string) {
	for _, r := range text {
		s.screen.SetContent(x, y, r, nil, s.text)
		x++
	}
}

// Close restores the terminal
func (s *Screen) Close() {
	close(s.done)
	s.screen.Fini()
}
