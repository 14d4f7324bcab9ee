package manager

import (
	"snake-stones/game/types"
)

// GameStats is a snapshot of the counters kept for this process.
// Nothing is written to disk.
type GameStats struct {
	Score        int
	Ticks        int
	GamesPlayed  int
	HighScore    int
	LastCause    types.Cause
	ScoreHistory []int
}

type StateManager struct {
	score        int
	ticks        int
	gamesPlayed  int
	highScore    int
	lastCause    types.Cause
	scoreHistory []int
}

func NewStateManager() *StateManager {
	return &StateManager{
		scoreHistory: make([]int, 0),
	}
}

func (sm *StateManager) AddTick() {
	sm.ticks++
}

// AddApple counts one eaten apple and returns the new total
func (sm *StateManager) AddApple() int {
	sm.score++
	return sm.score
}

// EndGame records the finished game's score
func (sm *StateManager) EndGame(cause types.Cause) {
	sm.gamesPlayed++
	sm.lastCause = cause
	sm.scoreHistory = append(sm.scoreHistory, sm.score)
	if sm.score > sm.highScore {
		sm.highScore = sm.score
	}
}

// NewGame clears the per-game counters, keeping history and high score
func (sm *StateManager) NewGame() {
	sm.score = 0
	sm.ticks = 0
	sm.lastCause = types.NoCollision
}

func (sm *StateManager) Score() int {
	return sm.score
}

func (sm *StateManager) GetHighScore() int {
	if sm.score > sm.highScore {
		return sm.score
	}
	return sm.highScore
}

func (sm *StateManager) GetScoreHistory() []int {
	return append([]int(nil), sm.scoreHistory...)
}

func (sm *StateManager) Stats() GameStats {
	return GameStats{
		Score:        sm.score,
		Ticks:        sm.ticks,
		GamesPlayed:  sm.gamesPlayed,
		HighScore:    sm.GetHighScore(),
		LastCause:    sm.lastCause,
		ScoreHistory: sm.GetScoreHistory(),
	}
}
