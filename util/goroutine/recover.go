// Package goroutine provides panic recovery for background goroutines.
package goroutine

import (
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"
)

// stackTraceBufferSize is the buffer size for stack trace collection.
const stackTraceBufferSize = 4096

// Recover recovers from panics in goroutines and logs them.
// If logger is nil, falls back to stderr so the panic is still recorded.
//
// Usage:
//
//	go func() {
//	    defer goroutine.Recover("api-server", logger)
//	    ...
//	}()
func Recover(name string, logger *zap.SugaredLogger) {
	if r := recover(); r != nil {
		buf := make([]byte, stackTraceBufferSize)
		n := runtime.Stack(buf, false)

		if logger != nil {
			logger.Errorw("Goroutine panic recovered",
				"goroutine", name,
				"panic", r,
				"stack", string(buf[:n]))
		} else {
			fmt.Fprintf(os.Stderr, "PANIC in goroutine %s (no logger): %v\n%s\n",
				name, r, string(buf[:n]))
		}
	}
}
