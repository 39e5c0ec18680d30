// Package loop drives a snake simulation at a fixed interval.
//
// The Driver owns the simulation. Input arrives as queued commands, each
// Step applies at most one effective turn and advances the simulation by one
// tick, and eat or death events are relayed to the audio effects. The driver
// does not own a clock: the caller invokes Step once per interval and stops
// doing so while the driver is disarmed.
package loop

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// QueueSize bounds the number of pending commands.
const QueueSize = 8

// CommandKind identifies a command.
type CommandKind int

const (
	CommandTurn CommandKind = iota
	CommandRestart
)

// Command is a player request waiting for the next interval.
type Command struct {
	Kind CommandKind
	Dir  snake.Direction // CommandTurn only
}

// TurnCommand asks the snake to head in d.
func TurnCommand(d snake.Direction) Command {
	return Command{Kind: CommandTurn, Dir: d}
}

// RestartCommand asks for a new session.
func RestartCommand() Command {
	return Command{Kind: CommandRestart}
}

// Frame is the outcome of one Step.
type Frame struct {
	Snapshot   snake.Snapshot
	Result     snake.TickResult
	Ticked     bool // false when the driver was disarmed
	Armed      bool
	Generation uint64
}

// Driver runs one session after another on a single simulation.
// It is not safe for concurrent use.
type Driver struct {
	sim     *snake.Sim
	effects audio.Effects
	logger  *log.Logger

	queue      []Command
	armed      bool
	generation uint64
}

// New wraps sim, which must be in a fresh session. Nil effects or logger
// are replaced by silent ones.
func New(sim *snake.Sim, effects audio.Effects, logger *log.Logger) *Driver {
	if effects == nil {
		effects = audio.Nop{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Driver{
		sim:        sim,
		effects:    effects,
		logger:     logger,
		queue:      make([]Command, 0, QueueSize),
		armed:      sim.State() == snake.Running,
		generation: 1,
	}
}

// Enqueue records a command for the next Step. Restart commands are not
// queued; they take effect immediately, as Restart does. It reports false
// when the queue is full and the command was dropped.
func (d *Driver) Enqueue(cmd Command) bool {
	if cmd.Kind == CommandRestart {
		d.Restart()
		return true
	}
	if len(d.queue) >= QueueSize {
		d.logger.Debug("input dropped", "command", cmd.Dir, "pending", len(d.queue))
		return false
	}
	d.queue = append(d.queue, cmd)
	return true
}

// Turn queues a direction change.
func (d *Driver) Turn(dir snake.Direction) bool {
	return d.Enqueue(TurnCommand(dir))
}

// Restart starts a new session whatever the current state, discards pending
// input and re-arms the driver. The returned generation identifies the new
// tick chain; ticks scheduled for older generations must be ignored.
func (d *Driver) Restart() uint64 {
	d.sim.StartSession()
	d.queue = d.queue[:0]
	d.armed = true
	d.generation++
	d.logger.Debug("session started", "generation", d.generation)
	return d.generation
}

// Step runs one interval. A disarmed driver returns the current state
// without touching the simulation.
func (d *Driver) Step() Frame {
	if !d.armed {
		return d.frame(snake.TickResult{State: d.sim.State()}, false)
	}

	d.applyTurn()

	res := d.sim.Tick()
	if res.Ate {
		d.effects.PlayEat()
	}
	if res.Died {
		d.effects.PlayGameOver()
		d.logger.Info("game over",
			"score", d.sim.Score(),
			"length", d.sim.BodyParts(),
			"ticks", d.sim.Ticks(),
		)
	}
	if res.State == snake.GameOver {
		d.armed = false
	}

	return d.frame(res, true)
}

// applyTurn consumes queued turns until one changes the direction.
// Turns that would reverse or repeat the heading are discarded.
func (d *Driver) applyTurn() {
	n := 0
	for n < len(d.queue) {
		cmd := d.queue[n]
		n++
		if d.sim.SetDirection(cmd.Dir) {
			break
		}
	}
	d.queue = append(d.queue[:0], d.queue[n:]...)
}

func (d *Driver) frame(res snake.TickResult, ticked bool) Frame {
	return Frame{
		Snapshot:   d.sim.Snapshot(),
		Result:     res,
		Ticked:     ticked,
		Armed:      d.armed,
		Generation: d.generation,
	}
}

// Armed reports whether Step advances the simulation.
func (d *Driver) Armed() bool { return d.armed }

// Generation returns the current tick chain identifier.
func (d *Driver) Generation() uint64 { return d.generation }

// Pending returns the number of queued commands.
func (d *Driver) Pending() int { return len(d.queue) }

// Snapshot returns the current simulation state.
func (d *Driver) Snapshot() snake.Snapshot { return d.sim.Snapshot() }
