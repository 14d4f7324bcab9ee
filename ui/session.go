package ui

import (
	"io"
	"log"

	"snake-stones/game"
	"snake-stones/sound"
)

// Session ties a game to its sound and logging. Every frontend drives the game through it.
type Session struct {
	game   *game.Game
	sound  sound.Player
	logger *log.Logger
}

func NewSession(g *game.Game, player sound.Player, logger *log.Logger) *Session {
	if player == nil {
		player = sound.Nop{}
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Session{game: g, sound: player, logger: logger}
}

func (s *Session) Game() *game.Game {
	return s.game
}

// Apply handles one command and reports whether the player asked to quit
func (s *Session) Apply(cmd Command) bool {
	if dir, ok := cmd.Direction(); ok {
		s.game.QueueDirection(dir)
		return false
	}

	switch cmd {
	case CmdRestart:
		if err := s.game.Restart(); err != nil {
			s.logger.Printf("restart failed: %v", err)
			return true
		}
		s.logger.Printf("new game started")
	case CmdQuit:
		return true
	}
	return false
}

// Step advances the game one tick and reports whether it ended
func (s *Session) Step() bool {
	res, err := s.game.Tick()
	if err != nil {
		s.logger.Printf("game over: %v (score %d)", err, s.game.Score())
		s.sound.Play(sound.EffectGameOver)
		return true
	}

	if res.Over {
		s.logger.Printf("game over: %s (score %d)", res.Cause, s.game.Score())
		s.sound.Play(sound.EffectGameOver)
		return true
	}

	if res.Stone != nil {
		s.logger.Printf("stone placed at %v", *res.Stone)
		s.sound.Play(sound.EffectStone)
	} else if res.Ate {
		s.sound.Play(sound.EffectEat)
	}
	return false
}
