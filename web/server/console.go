package server

import (
	"fmt"
	"sync"
	"time"

	"github.com/mfcaeroc/fcaerocaso-graphics-assignment6/pkg/core"
	"github.com/mfcaeroc/fcaerocaso-graphics-assignment6/pkg/renderer"
)

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info", "warning", "error"
}

// WebLogger implements core.Logger by sending messages to a console channel
type WebLogger struct {
	streamID    string
	consoleChan chan<- ConsoleMessage
}

// NewWebLogger creates a new web logger for a specific stream
func NewWebLogger(streamID string, consoleChan chan<- ConsoleMessage) core.Logger {
	return &WebLogger{
		streamID:    streamID,
		consoleChan: consoleChan,
	}
}

// Printf implements core.Logger interface
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	if wl.consoleChan == nil {
		return
	}

	message := fmt.Sprintf(format, args...)

	// Non-blocking: a slow client loses messages rather than stalling the session
	select {
	case wl.consoleChan <- ConsoleMessage{
		Message:   message,
		Timestamp: time.Now(),
		Level:     "info",
	}:
	default:
	}
}

// consoleFanout is the session logger: it writes to stdout and forwards
// every message to the web loggers of all open streams
type consoleFanout struct {
	stdout core.Logger

	mu      sync.Mutex
	nextID  int
	loggers map[int]core.Logger
}

func newConsoleFanout() *consoleFanout {
	return &consoleFanout{
		stdout:  renderer.NewDefaultLogger(),
		loggers: make(map[int]core.Logger),
	}
}

// Printf implements core.Logger interface
func (c *consoleFanout) Printf(format string, args ...interface{}) {
	c.stdout.Printf(format, args...)

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, logger := range c.loggers {
		logger.Printf(format, args...)
	}
}

// Subscribe adds a logger and returns a function that removes it
func (c *consoleFanout) Subscribe(logger core.Logger) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++
	c.loggers[id] = logger

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.loggers, id)
	}
}

// Subscribers returns the number of attached loggers
func (c *consoleFanout) Subscribers() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.loggers)
}
