package dom

import (
	"log/slog"

	"github.com/gopherjs/gopherjs/js"
)

// consoleWriter sends log lines to the browser console.
type consoleWriter struct{}

func (consoleWriter) Write(p []byte) (int, error) {
	js.Global.Get("console").Call("log", string(p))
	return len(p), nil
}

// NewConsoleLogger returns a text logger writing to the browser console.
func NewConsoleLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(consoleWriter{}, &slog.HandlerOptions{Level: level}))
}

func defaultLogger() *slog.Logger {
	return NewConsoleLogger(slog.LevelWarn)
}
