package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultLogPath is the export audit log, relative to the working directory.
const DefaultLogPath = "logs/meshmark.txt"

// Logger stores lines of text (export runs, anchor edits) in memory and
// appends them to a file on disk. A write failure never interrupts the
// operation being logged.
type Logger struct {
	mu    sync.Mutex
	path  string
	lines []string
}

// New returns a Logger writing to DefaultLogPath and ensures the log
// directory exists.
func New() *Logger {
	return NewAt(DefaultLogPath)
}

// NewAt returns a Logger writing to the given path.
func NewAt(path string) *Logger {
	_ = os.MkdirAll(filepath.Dir(path), 0755)
	return &Logger{path: path, lines: make([]string, 0)}
}

// Log appends a line to the logger and to the log file on disk. Each entry
// is prefixed with [timestamp] using computer time.
func (l *Logger) Log(line string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	stamped := "[" + ts + "] " + line

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	path := l.path
	l.mu.Unlock()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Logf formats and logs one line.
func (l *Logger) Logf(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...))
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
