package manager

import (
	"time"
)

// SessionStats is kept in memory for the lifetime of the process
type SessionStats struct {
	StartTime   time.Time
	Ticks       int
	ApplesEaten int
	Score       int
	BestScore   int
	Restarts    int
}

type StateManager struct {
	stats SessionStats
	now   func() time.Time
}

func NewStateManager() *StateManager {
	sm := &StateManager{now: time.Now}
	sm.stats.StartTime = sm.now()
	return sm
}

func (sm *StateManager) Tick() {
	sm.stats.Ticks++
}

func (sm *StateManager) AppleEaten() {
	sm.stats.ApplesEaten++
	sm.stats.Score++
	if sm.stats.Score > sm.stats.BestScore {
		sm.stats.BestScore = sm.stats.Score
	}
}

// Restart zeroes the running score but keeps the session best
func (sm *StateManager) Restart() {
	sm.stats.Score = 0
	sm.stats.Restarts++
}

func (sm *StateManager) Stats() SessionStats {
	return sm.stats
}

func (sm *StateManager) Elapsed() time.Duration {
	return sm.now().Sub(sm.stats.StartTime)
}
