package typewriter

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// ErrRunning is returned by Start while a run is already active.
var ErrRunning = errors.New("typewriter: run already active")

// EventKind identifies what a run just did.
type EventKind uint8

const (
	// EventStart is emitted once when a run begins, before the initial delay.
	EventStart EventKind = iota
	// EventReveal is emitted after each tick revealed one more rune.
	EventReveal
	// EventLineComplete is emitted when the active line is fully revealed.
	EventLineComplete
	// EventAdvance is emitted when the pause ends and the next line becomes active.
	EventAdvance
	// EventDone is emitted once after the last line; nothing follows it.
	EventDone
)

func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventReveal:
		return "reveal"
	case EventLineComplete:
		return "line-complete"
	case EventAdvance:
		return "advance"
	case EventDone:
		return "done"
	default:
		return fmt.Sprintf("event(%d)", uint8(k))
	}
}

// Event carries the state right after a step of a run.
type Event struct {
	Kind  EventKind
	State State
}

// Typist types a Script out one rune per tick. It owns at most one run at a
// time; the state of a run lives on the run goroutine and is only
// published as snapshots.
type Typist struct {
	opts     Options
	sleeper  Sleeper
	observer func(Event)
	logger   *zap.Logger

	mu      sync.Mutex
	state   State
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
	runs    uint64
}

// New returns an idle Typist.
func New(opts ...Option) *Typist {
	t := &Typist{
		opts:    Options{}.WithDefaults(),
		sleeper: timerSleeper{},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}
	return t
}

// Options returns the resolved options.
func (t *Typist) Options() Options { return t.opts }

// Start begins a new run of script from line 0. The run ends when the last
// line is revealed, when Cancel is called, or when ctx is done.
//
// Start while a run is active does nothing and returns ErrRunning; the active
// run is left untouched.
func (t *Typist) Start(ctx context.Context, script Script) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running {
		return ErrRunning
	}
	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	t.runs++
	t.running = true
	t.cancel = cancel
	t.done = done
	t.state = newState(script.Len())
	t.state.Phase = PhaseTyping
	go t.run(runCtx, cancel, done, script, t.runs)
	return nil
}

// Cancel stops the active run and waits for it to exit. Once Cancel returns
// no observer call is in flight and the state no longer changes; progress is
// discarded and the Typist is idle. Calling Cancel without an active run, or
// more than once, is a no-op.
//
// Cancel must not be called from the observer; cancel the context given to
// Start instead.
func (t *Typist) Cancel() {
	t.mu.Lock()
	cancel, done, running := t.cancel, t.done, t.running
	t.mu.Unlock()
	if !running {
		return
	}
	cancel()
	<-done
}

// Snapshot returns a copy of the latest published state.
func (t *Typist) Snapshot() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.clone()
}

// Running reports whether a run is active.
func (t *Typist) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// Done returns a channel closed when the latest run has ended. Before the
// first Start the channel is already closed.
func (t *Typist) Done() <-chan struct{} {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done == nil {
		closed := make(chan struct{})
		close(closed)
		return closed
	}
	return t.done
}

// Wait blocks until the latest run has ended or ctx is done.
func (t *Typist) Wait(ctx context.Context) error {
	select {
	case <-t.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (t *Typist) run(ctx context.Context, cancel context.CancelFunc, done chan struct{}, script Script, id uint64) {
	logger := t.logger.With(zap.Uint64("run", id))
	st := newState(script.Len())
	st.Phase = PhaseTyping
	completed := false
	defer func() {
		cancel()
		t.mu.Lock()
		if !completed {
			t.state = newState(script.Len())
		}
		t.running = false
		t.mu.Unlock()
		if completed {
			logger.Debug("typist.run.done")
		} else {
			logger.Debug("typist.run.cancel", zap.Int("line", st.Line), zap.Ints("revealed", st.Revealed))
		}
		close(done)
	}()

	logger.Debug("typist.run.start", zap.Int("lines", script.Len()))
	if !t.publish(ctx, st, EventStart) {
		return
	}
	if script.Len() > 0 {
		if t.sleeper.Sleep(ctx, t.opts.InitialDelay) != nil {
			return
		}
	}
	last := script.Len() - 1
	for i := 0; i <= last; i++ {
		n := script.Line(i).Len()
		for st.Revealed[i] < n {
			if t.sleeper.Sleep(ctx, t.opts.TickInterval) != nil {
				return
			}
			st.Revealed[i]++
			if !t.publish(ctx, st, EventReveal) {
				return
			}
		}
		if i < last {
			st.Phase = PhasePausing
		}
		if !t.publish(ctx, st, EventLineComplete) {
			return
		}
		if i == last {
			break
		}
		if t.sleeper.Sleep(ctx, t.opts.LinePause) != nil {
			return
		}
		st.Line = i + 1
		st.Phase = PhaseTyping
		if !t.publish(ctx, st, EventAdvance) {
			return
		}
	}
	st.Line = script.Len()
	st.Phase = PhaseDone
	completed = t.publish(ctx, st, EventDone)
}

// publish stores st as the visible state and notifies the observer. It
// reports false, without publishing, once the run has been cancelled.
func (t *Typist) publish(ctx context.Context, st State, kind EventKind) bool {
	t.mu.Lock()
	if ctx.Err() != nil {
		t.mu.Unlock()
		return false
	}
	t.state = st.clone()
	t.mu.Unlock()
	t.emit(Event{Kind: kind, State: st.clone()})
	return true
}

func (t *Typist) emit(ev Event) {
	if t.observer == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			t.logger.Error("typist.observer.panic", zap.Any("panic", r), zap.Stringer("event", ev.Kind))
		}
	}()
	t.observer(ev)
}
