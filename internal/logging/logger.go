package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

// Level represents the severity of a log message.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a config string to a Level, defaulting to InfoLevel.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// Logger defines a minimal, printf-style logging contract. Packages depend on
// this interface so they can be exercised with a no-op logger in tests.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// Nop returns a logger that discards all output.
func Nop() Logger {
	return nopLogger{}
}

// OrNop returns logger when non-nil, otherwise a no-op logger.
func OrNop(logger Logger) Logger {
	if logger == nil {
		return Nop()
	}
	return logger
}

type sink struct {
	mu     sync.Mutex
	out    io.Writer
	file   *os.File
	level  Level
	logger *log.Logger
}

var (
	defaultSink *sink
	sinkOnce    sync.Once
)

func getSink() *sink {
	sinkOnce.Do(func() {
		defaultSink = &sink{out: os.Stderr, level: InfoLevel}
		defaultSink.logger = log.New(defaultSink.out, "", 0)
	})
	return defaultSink
}

// Configure sets the global log level and optional file sink. A relative path
// is resolved against the user's home directory.
func Configure(level Level, file string) error {
	s := getSink()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.level = level
	if file == "" {
		return nil
	}
	if !filepath.IsAbs(file) {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve log path: %w", err)
		}
		file = filepath.Join(home, file)
	}
	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	if s.file != nil {
		_ = s.file.Close()
	}
	s.file = f
	s.out = io.MultiWriter(os.Stderr, f)
	s.logger = log.New(s.out, "", 0)
	return nil
}

// Close releases the file sink, if any.
func Close() error {
	s := getSink()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file != nil {
		err := s.file.Close()
		s.file = nil
		s.out = os.Stderr
		s.logger = log.New(s.out, "", 0)
		return err
	}
	return nil
}

func (s *sink) write(level Level, component, format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if level < s.level {
		return
	}
	_, file, line, ok := runtime.Caller(3)
	caller := "???"
	if ok {
		caller = fmt.Sprintf("%s:%d", filepath.Base(file), line)
	}
	msg := fmt.Sprintf(format, args...)
	ts := time.Now().Format("2006-01-02 15:04:05.000")
	s.logger.Printf("[%s] [%s] [%s] [%s] %s", ts, level, component, caller, msg)
}

type componentLogger struct {
	component string
	sink      *sink
}

// NewComponentLogger returns the default application logger scoped to a component.
func NewComponentLogger(component string) Logger {
	return &componentLogger{component: component, sink: getSink()}
}

func (l *componentLogger) Debug(format string, args ...any) {
	l.sink.write(DebugLevel, l.component, format, args...)
}

func (l *componentLogger) Info(format string, args ...any) {
	l.sink.write(InfoLevel, l.component, format, args...)
}

func (l *componentLogger) Warn(format string, args ...any) {
	l.sink.write(WarnLevel, l.component, format, args...)
}

func (l *componentLogger) Error(format string, args ...any) {
	l.sink.write(ErrorLevel, l.component, format, args...)
}
