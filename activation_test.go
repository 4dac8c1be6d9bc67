package typewriter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGateFiresOnce(t *testing.T) {
	g := NewGate()
	require.False(t, g.Fired())

	g.Signal(false)
	require.False(t, g.Fired())

	g.Signal(true)
	require.True(t, g.Fired())
	g.Signal(false)
	g.Signal(true)
	require.True(t, g.Fired())

	select {
	case <-g.C():
	default:
		t.Fatalf("expected fired gate channel to be closed")
	}
}

func TestGateIdentityIsStable(t *testing.T) {
	a, b := NewGate(), NewGate()
	require.NotEqual(t, a.ID(), b.ID())
	id := a.ID()
	a.Signal(true)
	require.Equal(t, id, a.ID())
	require.True(t, MountGate().Fired())
}

func TestActivateStartsOnceAfterGate(t *testing.T) {
	rec := &recorder{}
	typist := New(WithSleeper(instant), WithObserver(rec.observe))
	gate := NewGate()

	result := make(chan error, 1)
	go func() {
		result <- Activate(context.Background(), gate, typist, lettersScript())
	}()

	time.Sleep(10 * time.Millisecond)
	require.Empty(t, rec.snapshot(), "typist started before the gate fired")

	gate.Signal(true)
	gate.Signal(true)
	select {
	case err := <-result:
		require.NoError(t, err)
	case <-time.After(stepTimeout):
		t.Fatalf("Activate did not return after the run finished")
	}

	starts := 0
	for _, ev := range rec.snapshot() {
		if ev.Kind == EventStart {
			starts++
		}
	}
	require.Equal(t, 1, starts)
	require.Equal(t, PhaseDone, typist.Snapshot().Phase)
}

func TestActivateTornDownBeforeGate(t *testing.T) {
	typist := New(WithSleeper(instant))
	gate := NewGate()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Activate(ctx, gate, typist, HeroScript())
	require.ErrorIs(t, err, context.Canceled)

	gate.Signal(true)
	require.False(t, typist.Running())
	require.Equal(t, PhaseIdle, typist.Snapshot().Phase)
}

func TestActivateTornDownMidRun(t *testing.T) {
	sleeper := newStepSleeper()
	rec := &recorder{}
	typist := New(WithSleeper(sleeper), WithObserver(rec.observe))
	ctx, cancel := context.WithCancel(context.Background())

	result := make(chan error, 1)
	go func() {
		result <- Activate(ctx, MountGate(), typist, HeroScript())
	}()
	sleeper.step(t, DefaultInitialDelay)
	sleeper.expect(t, DefaultTickInterval)

	cancel()
	select {
	case err := <-result:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(stepTimeout):
		t.Fatalf("Activate did not return after teardown")
	}

	require.False(t, typist.Running())
	events := len(rec.snapshot())
	time.Sleep(10 * time.Millisecond)
	require.Len(t, rec.snapshot(), events)
	require.Equal(t, []int{0, 0, 0}, typist.Snapshot().Revealed)
}

func TestActivateReportsBusyTypist(t *testing.T) {
	sleeper := newStepSleeper()
	typist := New(WithSleeper(sleeper))
	require.NoError(t, typist.Start(context.Background(), HeroScript()))
	t.Cleanup(typist.Cancel)

	err := Activate(context.Background(), MountGate(), typist, HeroScript())
	require.ErrorIs(t, err, ErrRunning)
}
