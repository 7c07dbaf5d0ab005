package testing

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/zoobzio/histz"
)

// LogCapture collects a registry's log records as slog text lines.
type LogCapture struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// Write implements io.Writer for the text handler.
func (c *LogCapture) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.Write(p)
}

// String returns everything logged so far.
func (c *LogCapture) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.String()
}

// Empty reports whether nothing has been logged.
func (c *LogCapture) Empty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.Len() == 0
}

// Contains reports whether every fragment appears in the log.
func (c *LogCapture) Contains(fragments ...string) bool {
	out := c.String()
	for _, f := range fragments {
		if !strings.Contains(out, f) {
			return false
		}
	}
	return true
}

// NewTestRegistryWithLog creates a registry that logs at debug level into the
// returned capture, bypassing the package logger. Reset runs on cleanup.
func NewTestRegistryWithLog(t *testing.T) (*histz.Registry, *LogCapture) {
	capture := &LogCapture{}
	logger := slog.New(slog.NewTextHandler(capture, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return NewTestRegistry(t).WithLogger(logger), capture
}
