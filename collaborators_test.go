package typewriter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeClipboard struct {
	err    error
	copied []string
}

func (c *fakeClipboard) Copy(text string) error {
	if c.err != nil {
		return c.err
	}
	c.copied = append(c.copied, text)
	return nil
}

type fakeNotifier struct {
	success []string
	errors  []string
}

func (n *fakeNotifier) Success(msg string) { n.success = append(n.success, msg) }
func (n *fakeNotifier) Error(msg string)   { n.errors = append(n.errors, msg) }

func TestCopyTextSuccess(t *testing.T) {
	clip := &fakeClipboard{}
	notes := &fakeNotifier{}

	require.NoError(t, CopyText(clip, notes, InstallCommand))
	require.Equal(t, []string{"npm install zaplog"}, clip.copied)
	require.Equal(t, []string{"Code copied to clipboard"}, notes.success)
	require.Empty(t, notes.errors)
}

func TestCopyTextFailure(t *testing.T) {
	boom := errors.New("denied")
	clip := &fakeClipboard{err: boom}
	notes := &fakeNotifier{}

	err := CopyText(clip, notes, InstallCommand)
	require.ErrorIs(t, err, boom)
	require.Equal(t, []string{"Failed to copy to clipboard"}, notes.errors)
	require.Empty(t, notes.success)
}

func TestLogNotifierLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	n := LogNotifier{Logger: zap.New(core)}
	n.Success("ok")
	n.Error("bad")

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	require.Equal(t, zapcore.InfoLevel, entries[0].Level)
	require.Equal(t, "ok", entries[0].Message)
	require.Equal(t, zapcore.ErrorLevel, entries[1].Level)

	LogNotifier{}.Success("dropped")
}
