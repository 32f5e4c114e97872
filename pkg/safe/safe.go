package safe

import (
	"log/slog"
	"runtime/debug"
)

// Run executes fn and converts a panic into an error log instead of
// tearing down the process.
func Run(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("panic recovered",
				slog.Any("recover", r),
				slog.String("stack", string(debug.Stack())),
			)
		}
	}()

	fn()
}

// RunWithComponent is Run with a component label on the log line.
func RunWithComponent(fn func(), component string) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("panic recovered",
				slog.Any("recover", r),
				slog.String("component", component),
				slog.String("stack", string(debug.Stack())),
			)
		}
	}()

	fn()
}
