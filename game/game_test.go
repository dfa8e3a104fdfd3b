package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"the-snake/config"
	"the-snake/game/types"

	"golang.org/x/exp/rand"
)

type fakeBackend struct {
	frames  [][]Event // one slice per poll
	polls   int
	rects   int
	clears  int
	present int

	pollErr    error
	presentErr error
	closed     bool
}

func (b *fakeBackend) PollEvents() ([]Event, error) {
	if b.pollErr != nil {
		return nil, b.pollErr
	}
	defer func() { b.polls++ }()
	if b.polls < len(b.frames) {
		return b.frames[b.polls], nil
	}
	return []Event{Quit()}, nil
}

func (b *fakeBackend) DrawRect(types.Point, int, types.Color, *types.Color) { b.rects++ }
func (b *fakeBackend) Clear(types.Color) { b.clears++ }

func (b *fakeBackend) Present() error {
	b.present++
	return b.presentErr
}

func (b *fakeBackend) Close() error {
	b.closed = true
	return nil
}

type countingClock struct {
	ticks int
	err   error
}

func (c *countingClock) SleepUntilNextTick(context.Context) error {
	c.ticks++
	return c.err
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	return NewGame(config.Default(), rand.New(rand.NewSource(11)), nil)
}

func TestTickEatsApple(t *testing.T) {
	cfg := config.Default()
	cfg.ApplePolicy = "avoid-snake"
	g := NewGame(cfg, rand.New(rand.NewSource(11)), nil)
	head := g.Snake().HeadPosition()
	target := types.Point{X: head.X + g.Grid.Unit, Y: head.Y}
	g.foodMgr.Place(target)

	g.Tick()

	if g.Snake().Length() != 2 {
		t.Errorf("length = %d, want 2", g.Snake().Length())
	}
	if g.Apple().Position == target {
		t.Errorf("apple was not moved off the snake")
	}
	if s := g.Stats(); s.ApplesEaten != 1 || s.Score != 1 || s.Ticks != 1 {
		t.Errorf("stats = %+v", s)
	}

	// Growth happens on the next move
	g.foodMgr.Place(types.Point{X: 0, Y: 0})
	g.Tick()
	if len(g.Snake().Body) != 2 {
		t.Errorf("body = %v, want 2 segments", g.Snake().Body)
	}
}

func TestTickWithoutAppleKeepsLength(t *testing.T) {
	g := newTestGame(t)
	g.foodMgr.Place(types.Point{X: 0, Y: 0})

	for i := 0; i < 10; i++ {
		g.Tick()
	}
	if g.Snake().Length() != 1 || len(g.Snake().Body) != 1 {
		t.Errorf("snake grew without eating: %v", g.Snake().Body)
	}
	if got := g.Snake().HeadPosition(); got != (types.Point{X: 520, Y: 240}) {
		t.Errorf("head = %v, want (520,240)", got)
	}
}

func TestHandleEvents(t *testing.T) {
	g := newTestGame(t)

	quit := g.HandleEvents([]Event{KeyDown(types.Up), KeyDown(types.Left), KeyDown(types.Down)})
	if quit {
		t.Fatal("unexpected quit")
	}
	g.Snake().ApplyPendingDirection()
	if g.Snake().Direction != types.Down {
		t.Errorf("direction = %v, want down (last valid press)", g.Snake().Direction)
	}

	if !g.HandleEvents([]Event{Quit(), KeyDown(types.Left)}) {
		t.Error("quit not reported")
	}
	if g.Snake().PendingDirection() != types.NoDirection {
		t.Error("events after quit should be dropped")
	}
}

func TestRestartResetsSnake(t *testing.T) {
	g := newTestGame(t)
	g.Snake().Grow()
	g.Tick()
	g.Tick()

	g.HandleEvents([]Event{Restart()})

	s := g.Snake()
	if s.Length() != 1 || s.HeadPosition() != g.Grid.Center() || s.Direction != types.Right {
		t.Errorf("snake not reset: len %d head %v dir %v", s.Length(), s.HeadPosition(), s.Direction)
	}
	if g.Stats().Restarts != 1 {
		t.Errorf("restarts = %d", g.Stats().Restarts)
	}
}

func TestRunStopsOnQuit(t *testing.T) {
	g := newTestGame(t)
	g.foodMgr.Place(types.Point{X: 0, Y: 0})
	b := &fakeBackend{frames: [][]Event{nil, {KeyDown(types.Down)}, nil}}
	clock := &countingClock{}

	if err := g.Run(context.Background(), b, clock); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if b.present != 3 || clock.ticks != 3 || b.clears != 3 {
		t.Errorf("present = %d, clears = %d, ticks = %d, want 3 each", b.present, b.clears, clock.ticks)
	}
	// right, down, down
	if got := g.Snake().HeadPosition(); got != (types.Point{X: 340, Y: 280}) {
		t.Errorf("head = %v, want (340,280)", got)
	}
}

func TestRunPropagatesBackendErrors(t *testing.T) {
	boom := errors.New("boom")

	g := newTestGame(t)
	err := g.Run(context.Background(), &fakeBackend{pollErr: boom}, &countingClock{})
	if !errors.Is(err, boom) {
		t.Errorf("poll failure: Run() = %v", err)
	}

	g = newTestGame(t)
	err = g.Run(context.Background(), &fakeBackend{frames: [][]Event{nil}, presentErr: boom}, &countingClock{})
	if !errors.Is(err, boom) {
		t.Errorf("present failure: Run() = %v", err)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	g := newTestGame(t)
	frames := make([][]Event, 100)
	b := &fakeBackend{frames: frames}
	clock := &countingClock{err: context.Canceled}

	if err := g.Run(context.Background(), b, clock); err != nil {
		t.Fatalf("Run() = %v, cancellation is a clean exit", err)
	}
	if b.polls != 1 {
		t.Errorf("polls = %d, want 1", b.polls)
	}
}

func TestTickClockPacing(t *testing.T) {
	now := time.Unix(0, 0)
	var waits []time.Duration

	c := NewTickClock(50 * time.Millisecond)
	c.now = func() time.Time { return now }
	c.after = func(d time.Duration) <-chan time.Time {
		waits = append(waits, d)
		now = now.Add(d)
		ch := make(chan time.Time, 1)
		ch <- now
		return ch
	}

	ctx := context.Background()
	if err := c.SleepUntilNextTick(ctx); err != nil {
		t.Fatal(err)
	}
	now = now.Add(20 * time.Millisecond) // work done during the tick
	if err := c.SleepUntilNextTick(ctx); err != nil {
		t.Fatal(err)
	}
	now = now.Add(80 * time.Millisecond) // overran the budget
	if err := c.SleepUntilNextTick(ctx); err != nil {
		t.Fatal(err)
	}

	want := []time.Duration{50 * time.Millisecond, 30 * time.Millisecond}
	if len(waits) != len(want) {
		t.Fatalf("waits = %v, want %v", waits, want)
	}
	for i := range want {
		if waits[i] != want[i] {
			t.Errorf("wait %d = %v, want %v", i, waits[i], want[i])
		}
	}
}

func TestTickClockCancelled(t *testing.T) {
	c := NewTickClock(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := c.SleepUntilNextTick(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("SleepUntilNextTick() = %v, want context.Canceled", err)
	}
}
