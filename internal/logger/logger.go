package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultPath is the log file, relative to the working directory.
const DefaultPath = "logs/scene.txt"

// maxLines bounds the in-memory history shown by the console.
const maxLines = 500

// Logger writes leveled, timestamped lines to a file and a console writer and keeps recent
// lines in memory for the in-window console. Safe for concurrent use.
type Logger struct {
	mu      sync.Mutex
	debug   bool
	file    *os.File
	console io.Writer
	lines   []string
	now     func() time.Time
}

// Options configures New.
type Options struct {
	Path    string    // log file; empty disables the file sink
	Debug   bool      // emit Debugf lines
	Console io.Writer // mirror; nil means stderr
}

// New opens (appending) the log file, creating its directory.
// If the file cannot be opened the logger still works without it and the error is returned alongside.
func New(opts Options) (*Logger, error) {
	l := &Logger{debug: opts.Debug, console: opts.Console, now: time.Now}
	if l.console == nil {
		l.console = os.Stderr
	}
	if opts.Path == "" {
		return l, nil
	}
	if err := os.MkdirAll(filepath.Dir(opts.Path), 0755); err != nil {
		return l, err
	}
	f, err := os.OpenFile(opts.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return l, err
	}
	l.file = f
	return l, nil
}

// Nop returns a logger that keeps lines in memory only.
func Nop() *Logger {
	return &Logger{console: io.Discard, now: time.Now}
}

// SetDebug toggles Debugf output.
func (l *Logger) SetDebug(enabled bool) {
	l.mu.Lock()
	l.debug = enabled
	l.mu.Unlock()
}

// DebugEnabled reports whether Debugf lines are written.
func (l *Logger) DebugEnabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.debug
}

func (l *Logger) Debugf(format string, args ...any) {
	if !l.DebugEnabled() {
		return
	}
	l.write("DEBUG", format, args...)
}

func (l *Logger) Infof(format string, args ...any) {
	l.write("INFO", format, args...)
}

func (l *Logger) Warnf(format string, args ...any) {
	l.write("WARN", format, args...)
}

func (l *Logger) Errorf(format string, args ...any) {
	l.write("ERROR", format, args...)
}

// Log records a console line (user input or command output) at INFO.
func (l *Logger) Log(line string) {
	l.write("INFO", "%s", line)
}

func (l *Logger) write(level, format string, args ...any) {
	ts := l.now().Format("2006-01-02 15:04:05")
	line := fmt.Sprintf("[%s] %s: %s", ts, level, fmt.Sprintf(format, args...))

	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, line)
	if len(l.lines) > maxLines {
		l.lines = append(l.lines[:0], l.lines[len(l.lines)-maxLines:]...)
	}
	_, _ = io.WriteString(l.console, line+"\n")
	if l.file != nil {
		_, _ = l.file.WriteString(line + "\n")
	}
}

// Lines returns a copy of the recent lines, oldest first.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Close closes the log file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
