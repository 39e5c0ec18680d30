package loop

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// A single column: moving right wraps the head onto the stacked body,
// so the first tick is fatal.
var deadEndBoard = snake.Board{Width: 15, Height: 45, UnitSize: 15}

type countingEffects struct {
	eat, gameOver int
}

func (c *countingEffects) PlayEat()      { c.eat++ }
func (c *countingEffects) PlayGameOver() { c.gameOver++ }

func newTestDriver(t *testing.T, b snake.Board, seed int64) (*Driver, *countingEffects) {
	t.Helper()
	fx := &countingEffects{}
	sim := snake.NewSim(b, rand.New(rand.NewSource(seed)))
	return New(sim, fx, nil), fx
}

func TestNewDriverIsArmed(t *testing.T) {
	d, _ := newTestDriver(t, snake.DefaultBoard, 1)

	if !d.Armed() {
		t.Error("new driver should be armed")
	}
	if d.Generation() != 1 {
		t.Errorf("Generation() = %d, expected 1", d.Generation())
	}
	if d.Snapshot().State != snake.Running {
		t.Errorf("state = %v, expected running", d.Snapshot().State)
	}
}

func TestStepAdvancesOneCell(t *testing.T) {
	d, _ := newTestDriver(t, snake.DefaultBoard, 1)

	f := d.Step()
	if !f.Ticked {
		t.Fatal("armed driver should tick")
	}
	if f.Snapshot.Head() != (core.Point{X: 15, Y: 0}) {
		t.Errorf("head = %+v, expected (15, 0)", f.Snapshot.Head())
	}
	if f.Snapshot.Tick != 1 {
		t.Errorf("tick = %d, expected 1", f.Snapshot.Tick)
	}
}

func TestStepAppliesOneTurnPerInterval(t *testing.T) {
	d, _ := newTestDriver(t, snake.DefaultBoard, 1)

	// Heading right: left is rejected, up applies, the second left waits
	d.Turn(snake.DirLeft)
	d.Turn(snake.DirUp)
	d.Turn(snake.DirLeft)

	f := d.Step()
	if f.Snapshot.Direction != snake.DirUp {
		t.Fatalf("direction after first step = %v, expected up", f.Snapshot.Direction)
	}
	if want := (core.Point{X: 0, Y: 285}); f.Snapshot.Head() != want {
		t.Errorf("head = %+v, expected %+v (wrapped upward)", f.Snapshot.Head(), want)
	}
	if d.Pending() != 1 {
		t.Errorf("Pending() = %d, expected 1", d.Pending())
	}

	f = d.Step()
	if f.Snapshot.Direction != snake.DirLeft {
		t.Errorf("direction after second step = %v, expected left", f.Snapshot.Direction)
	}
	if d.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", d.Pending())
	}
}

func TestQuickDoubleTurnCannotReverse(t *testing.T) {
	d, _ := newTestDriver(t, snake.DefaultBoard, 1)

	// Up then left within one interval: applying both at once would point
	// the head back into the body.
	d.Turn(snake.DirUp)
	d.Turn(snake.DirLeft)

	for range 2 {
		f := d.Step()
		if f.Result.Died {
			t.Fatalf("snake died on tick %d", f.Snapshot.Tick)
		}
	}
	if got := d.Snapshot().Direction; got != snake.DirLeft {
		t.Errorf("direction = %v, expected left", got)
	}
}

func TestRejectedTurnsAreDiscarded(t *testing.T) {
	d, _ := newTestDriver(t, snake.DefaultBoard, 1)

	d.Turn(snake.DirRight) // same heading
	d.Turn(snake.DirLeft)  // reverse

	f := d.Step()
	if f.Snapshot.Direction != snake.DirRight {
		t.Errorf("direction = %v, expected right", f.Snapshot.Direction)
	}
	if d.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", d.Pending())
	}
}

func TestQueueOverflowDropsNewest(t *testing.T) {
	var logs bytes.Buffer
	sim := snake.NewSim(snake.DefaultBoard, rand.New(rand.NewSource(1)))
	d := New(sim, nil, log.NewWithOptions(&logs, log.Options{Level: log.DebugLevel}))

	for i := range QueueSize {
		if !d.Turn(snake.DirUp) {
			t.Fatalf("Turn() #%d rejected before the queue was full", i)
		}
	}
	if d.Turn(snake.DirDown) {
		t.Error("Turn() accepted a command beyond the queue size")
	}
	if d.Pending() != QueueSize {
		t.Errorf("Pending() = %d, expected %d", d.Pending(), QueueSize)
	}
	if !strings.Contains(logs.String(), "input dropped") {
		t.Errorf("expected a debug entry for the dropped input:\n%s", logs.String())
	}
}

func TestEatIsRelayed(t *testing.T) {
	small := snake.Board{Width: 45, Height: 45, UnitSize: 15}
	d, fx := newTestDriver(t, small, 3)
	rng := rand.New(rand.NewSource(5))
	dirs := []snake.Direction{snake.DirUp, snake.DirDown, snake.DirLeft, snake.DirRight}

	// Wander until the first meal
	for i := 0; i < 5000 && fx.eat == 0; i++ {
		if !d.Armed() {
			d.Restart()
		}
		d.Turn(dirs[rng.Intn(len(dirs))])
		d.Step()
	}

	if fx.eat != 1 {
		t.Fatalf("PlayEat called %d times, expected exactly one meal", fx.eat)
	}
	if got := d.Snapshot().Score; got != 1 {
		t.Errorf("score = %d, expected 1 after the relayed meal", got)
	}
}

func TestDeathDisarms(t *testing.T) {
	d, fx := newTestDriver(t, deadEndBoard, 1)

	f := d.Step()
	if !f.Result.Died || f.Snapshot.State != snake.GameOver {
		t.Fatalf("result = %+v, expected death on the first tick", f.Result)
	}
	if f.Armed || d.Armed() {
		t.Error("driver should disarm on game over")
	}
	if fx.gameOver != 1 {
		t.Errorf("PlayGameOver called %d times, expected 1", fx.gameOver)
	}

	// Further steps are inert
	before := d.Snapshot()
	f = d.Step()
	if f.Ticked {
		t.Error("disarmed driver should not tick")
	}
	if f.Snapshot.Tick != before.Tick || fx.gameOver != 1 {
		t.Error("disarmed driver changed the session")
	}
}

func TestRestart(t *testing.T) {
	d, _ := newTestDriver(t, deadEndBoard, 1)
	d.Step()
	d.Turn(snake.DirUp)

	gen := d.Restart()
	if gen != 2 || d.Generation() != 2 {
		t.Errorf("generation = %d, expected 2", gen)
	}
	if !d.Armed() {
		t.Error("Restart() should re-arm the driver")
	}
	if d.Pending() != 0 {
		t.Errorf("Pending() = %d, expected queue cleared", d.Pending())
	}

	snap := d.Snapshot()
	if snap.State != snake.Running || snap.Score != 0 || snap.Len() != snake.InitialBodyParts {
		t.Errorf("snapshot after restart = %s", snap.DebugString())
	}
}

func TestRestartWhileRunning(t *testing.T) {
	d, _ := newTestDriver(t, snake.DefaultBoard, 1)
	for range 5 {
		d.Step()
	}

	d.Enqueue(RestartCommand())

	snap := d.Snapshot()
	if snap.Tick != 0 || snap.Head() != (core.Point{}) {
		t.Errorf("restart command should start over immediately: %s", snap.DebugString())
	}
	if d.Generation() != 2 {
		t.Errorf("Generation() = %d, expected 2", d.Generation())
	}
}

func TestRandomPlayRelaysEveryEvent(t *testing.T) {
	small := snake.Board{Width: 90, Height: 90, UnitSize: 15}
	d, fx := newTestDriver(t, small, 42)
	rng := rand.New(rand.NewSource(7))
	dirs := []snake.Direction{snake.DirUp, snake.DirDown, snake.DirLeft, snake.DirRight}

	for range 2000 {
		if !d.Armed() {
			break
		}
		if rng.Intn(3) == 0 {
			d.Turn(dirs[rng.Intn(len(dirs))])
		}
		d.Step()
	}

	snap := d.Snapshot()
	if fx.eat != snap.Score {
		t.Errorf("PlayEat called %d times, score is %d", fx.eat, snap.Score)
	}
	wantOver := 0
	if snap.GameOver() {
		wantOver = 1
	}
	if fx.gameOver != wantOver {
		t.Errorf("PlayGameOver called %d times, expected %d", fx.gameOver, wantOver)
	}
	if d.Armed() == snap.GameOver() {
		t.Errorf("Armed() = %v with state %v", d.Armed(), snap.State)
	}
}
