// Package snake implements the snake simulation: a fixed-capacity body on a
// toroidal board, food spawning, scoring and the Running/GameOver state machine.
// It has no knowledge of terminals, timers or audio; the loop driver calls Tick
// and relays the returned events.
package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// RunState is the session lifecycle flag.
type RunState int

const (
	Running RunState = iota
	GameOver
)

func (s RunState) String() string {
	switch s {
	case Running:
		return "running"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// InitialBodyParts is the snake length at session start.
const InitialBodyParts = 3

// TickResult reports the state after a tick and the events it produced.
type TickResult struct {
	State RunState
	Ate   bool // Food was eaten this tick
	Died  bool // The head ran into the body this tick
}

// Sim owns the complete state of one game session.
type Sim struct {
	board Board
	rng   *rand.Rand

	// Parallel segment coordinates, head at index 0. Only indices below
	// bodyParts are live; index bodyParts is the ghost tail left by the
	// last shift and becomes live when the snake grows.
	xs, ys    []int
	bodyParts int

	direction Direction
	food      core.Point
	score     int
	state     RunState
	ticks     uint64
}

// NewSim creates a simulation on the given board and starts a session.
// A nil rng is replaced by a time-seeded source. It panics on a board without
// cells, which is a programming error.
func NewSim(board Board, rng *rand.Rand) *Sim {
	if !board.Valid() {
		panic("snake: invalid board")
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s := &Sim{
		board: board,
		rng:   rng,
		xs:    make([]int, board.Cells()+1),
		ys:    make([]int, board.Cells()+1),
	}
	s.StartSession()
	return s
}

// StartSession discards the current session and starts a new one:
// three segments stacked at the origin heading right, score zero, fresh food.
func (s *Sim) StartSession() {
	clear(s.xs)
	clear(s.ys)
	s.bodyParts = InitialBodyParts
	s.direction = DirRight
	s.score = 0
	s.ticks = 0
	s.SpawnFood()
	s.state = Running
}

// SetDirection turns the snake unless d is the reverse of the current
// direction; reversal requests are ignored. It reports whether the
// direction changed.
func (s *Sim) SetDirection(d Direction) bool {
	if d == s.direction.Opposite() || d == s.direction {
		return false
	}
	s.direction = d
	return true
}

// Tick advances the session by one step. It does nothing once the game is over.
func (s *Sim) Tick() TickResult {
	if s.state == GameOver {
		return TickResult{State: GameOver}
	}
	s.ticks++

	s.shift()

	// Food is checked before the wrap: a head that steps off the board
	// cannot eat on that tick.
	head := s.Head().Add(s.direction.Step(s.board.UnitSize))

	var res TickResult
	if s.board.cellRect(head).Intersects(s.board.cellRect(s.food)) {
		s.score++
		if s.bodyParts < s.Capacity() {
			s.bodyParts++
		}
		s.SpawnFood()
		res.Ate = true
	}

	head = s.board.Wrap(head)
	s.xs[0], s.ys[0] = head.X, head.Y

	headBox := s.board.cellRect(head)
	for i := 1; i < s.bodyParts; i++ {
		if headBox.Intersects(s.board.cellRect(s.Segment(i))) {
			s.state = GameOver
			res.Died = true
			break
		}
	}

	res.State = s.state
	return res
}

// shift moves every segment into its predecessor's slot, from the ghost
// slot down to index 1.
func (s *Sim) shift() {
	for i := s.bodyParts; i > 0; i-- {
		s.xs[i] = s.xs[i-1]
		s.ys[i] = s.ys[i-1]
	}
}

// SpawnFood places food on a uniformly random cell. Occupied cells are not excluded.
func (s *Sim) SpawnFood() {
	u := s.board.UnitSize
	s.food = core.Point{
		X: s.rng.Intn(s.board.Cols()) * u,
		Y: s.rng.Intn(s.board.Rows()) * u,
	}
}

// Board returns the board the session is played on.
func (s *Sim) Board() Board { return s.board }

// BodyParts returns the live snake length.
func (s *Sim) BodyParts() int { return s.bodyParts }

// Capacity returns the maximum snake length, one segment per cell.
func (s *Sim) Capacity() int { return s.board.Cells() }

// Head returns the head position.
func (s *Sim) Head() core.Point { return s.Segment(0) }

// Segment returns the position stored at index i, including the ghost slot.
func (s *Sim) Segment(i int) core.Point {
	return core.Point{X: s.xs[i], Y: s.ys[i]}
}

// Segments returns a copy of the live body, head first.
func (s *Sim) Segments() []core.Point {
	out := make([]core.Point, s.bodyParts)
	for i := range out {
		out[i] = s.Segment(i)
	}
	return out
}

// Food returns the food position.
func (s *Sim) Food() core.Point { return s.food }

// Score returns the number of food items eaten this session.
func (s *Sim) Score() int { return s.score }

// Direction returns the current heading.
func (s *Sim) Direction() Direction { return s.direction }

// State returns the session state.
func (s *Sim) State() RunState { return s.state }

// Ticks returns the number of ticks played this session.
func (s *Sim) Ticks() uint64 { return s.ticks }
