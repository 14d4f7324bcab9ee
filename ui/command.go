package ui

import (
	"snake-stones/game"
	"snake-stones/game/types"
)

// Command is a frontend-independent player request
type Command int

const (
	CmdNone Command = iota
	CmdUp
	CmdDown
	CmdLeft
	CmdRight
	CmdRestart
	CmdQuit
)

// Direction returns the heading a steering command asks for
func (c Command) Direction() (types.Direction, bool) {
	switch c {
	case CmdUp:
		return types.Up, true
	case CmdDown:
		return types.Down, true
	case CmdLeft:
		return types.Left, true
	case CmdRight:
		return types.Right, true
	}
	return 0, false
}

// Frontend is a window or terminal the loop can read input from and draw onto
type Frontend interface {
	// Poll drains every pending input event without blocking
	Poll() []Command
	Render(g *game.Game)
	Close()
}
