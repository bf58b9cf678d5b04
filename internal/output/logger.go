package output

import (
	"fmt"
	"io"
	"sync"
)

// RequestLogger writes "[Service] - message" lines. Safe for concurrent use.
type RequestLogger struct {
	mu     sync.Mutex
	out    io.Writer
	prefix string
}

// NewRequestLogger creates a logger for service writing to out
func NewRequestLogger(out io.Writer, service string, noColor bool) *RequestLogger {
	scheme := SchemeFor(noColor)
	return &RequestLogger{
		out:    out,
		prefix: scheme.Prefix.Sprintf("[%s]", service),
	}
}

// Logf writes one line
func (l *RequestLogger) Logf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "%s - %s\n", l.prefix, msg)
}
