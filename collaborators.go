package typewriter

import (
	"fmt"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"
)

// Clipboard receives text copied by the user.
type Clipboard interface {
	Copy(text string) error
}

// Notifier reports the outcome of a user action.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// SystemClipboard writes to the operating system clipboard.
type SystemClipboard struct{}

// Copy implements Clipboard.
func (SystemClipboard) Copy(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("copy to clipboard: no clipboard utility available")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

// LogNotifier reports notifications through a logger.
type LogNotifier struct {
	Logger *zap.Logger
}

// Success implements Notifier.
func (n LogNotifier) Success(msg string) { n.logger().Info(msg) }

// Error implements Notifier.
func (n LogNotifier) Error(msg string) { n.logger().Error(msg) }

func (n LogNotifier) logger() *zap.Logger {
	if n.Logger == nil {
		return zap.NewNop()
	}
	return n.Logger
}

// CopyText copies text to c and reports the result to n.
func CopyText(c Clipboard, n Notifier, text string) error {
	if err := c.Copy(text); err != nil {
		n.Error("Failed to copy to clipboard")
		return err
	}
	n.Success("Code copied to clipboard")
	return nil
}
