package typewriter

import (
	"context"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

var gateIDs atomic.Uint64

// Gate is a one-shot activation signal. The first Signal(true) fires it;
// every later signal, visible or not, is ignored.
type Gate struct {
	id   uint64
	once sync.Once
	ch   chan struct{}
}

// NewGate returns a gate that has not fired.
func NewGate() *Gate {
	return &Gate{id: gateIDs.Add(1), ch: make(chan struct{})}
}

// MountGate returns a gate that has already fired, for components that start
// as soon as they exist.
func MountGate() *Gate {
	g := NewGate()
	g.Signal(true)
	return g
}

// ID returns the identity of the gate, stable for its lifetime.
func (g *Gate) ID() uint64 { return g.id }

// Signal reports a visibility edge. Only the first true has an effect.
func (g *Gate) Signal(visible bool) {
	if !visible {
		return
	}
	g.once.Do(func() { close(g.ch) })
}

// Fired reports whether the gate has fired.
func (g *Gate) Fired() bool {
	select {
	case <-g.ch:
		return true
	default:
		return false
	}
}

// C returns a channel closed when the gate fires.
func (g *Gate) C() <-chan struct{} { return g.ch }

// Activate starts script on t once gate fires and returns when the run has
// finished. If ctx ends first, before or after the gate fired, the run is
// cancelled and ctx's error is returned, so a gate that never fires leaves
// nothing behind. Start is called at most once per call.
func Activate(ctx context.Context, gate *Gate, t *Typist, script Script) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-gate.C():
	}
	t.logger.Debug("typist.activate", zap.Uint64("gate", gate.ID()))
	if err := t.Start(ctx, script); err != nil {
		return err
	}
	select {
	case <-t.Done():
		// A run torn down by ctx also closes Done.
		return ctx.Err()
	case <-ctx.Done():
		t.Cancel()
		return ctx.Err()
	}
}
