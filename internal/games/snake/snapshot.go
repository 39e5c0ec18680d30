package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snapshot is an immutable copy of a session, handed to render and audio
// collaborators so they never touch the live simulation.
type Snapshot struct {
	Board     Board
	Tick      uint64
	Segments  []core.Point // Head at index 0
	Food      core.Point
	Score     int
	Direction Direction
	State     RunState
}

// Snapshot returns a copy of the current session state.
func (s *Sim) Snapshot() Snapshot {
	return Snapshot{
		Board:     s.board,
		Tick:      s.ticks,
		Segments:  s.Segments(),
		Food:      s.food,
		Score:     s.score,
		Direction: s.direction,
		State:     s.state,
	}
}

// Head returns the head position, or the origin for an empty snapshot.
func (snap Snapshot) Head() core.Point {
	if len(snap.Segments) == 0 {
		return core.Point{}
	}
	return snap.Segments[0]
}

// Len returns the snake length.
func (snap Snapshot) Len() int {
	return len(snap.Segments)
}

// GameOver reports whether the session has ended.
func (snap Snapshot) GameOver() bool {
	return snap.State == GameOver
}

// DebugString returns a compact human-readable dump of the snapshot.
func (snap Snapshot) DebugString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, State: %s\n", snap.Tick, snap.Score, snap.State)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s\n", snap.Len(), snap.Direction)
	head := snap.Head()
	fmt.Fprintf(&b, "Head: (%d, %d), Food: (%d, %d)\n", head.X, head.Y, snap.Food.X, snap.Food.Y)
	return b.String()
}
