// SPDX-License-Identifier: MIT
// Package: sx/logging
//
// logging.go - module-scoped structured logging on top of go-kit/log.
//
// Contract:
//   - GetLogger may be called at package init, before Initialize.
//   - Every logger sits behind a SwapLogger and is rebound by Initialize and
//     Reset; levels are stored atomically so rebinding never races with a
//     goroutine that is logging.
//   - Until Initialize is called every record is discarded.
//   - Initialize succeeds once per Reset (Reset exists for tests).

// Package logging implements levelled, module-scoped structured logging
// shared by the sx packages and the sx command.
package logging

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/pflag"
)

// ErrAlreadyInitialized is returned by Initialize on a second call.
var ErrAlreadyInitialized = errors.New("logging: already initialized")

var (
	backend = newBackend()

	_ pflag.Value = (*Level)(nil)
	_ pflag.Value = (*Format)(nil)
)

// Format is a logging format.
type Format uint

const (
	// FmtLogfmt is the "logfmt" logging format.
	FmtLogfmt Format = iota
	// FmtJSON is the JSON logging format.
	FmtJSON
)

// String returns the string representation of a Format.
func (f *Format) String() string {
	switch *f {
	case FmtLogfmt:
		return "logfmt"
	case FmtJSON:
		return "JSON"
	default:
		return fmt.Sprintf("Format(%d)", uint(*f))
	}
}

// Set sets the Format to the value specified by the provided string.
func (f *Format) Set(s string) error {
	switch strings.ToUpper(s) {
	case "LOGFMT":
		*f = FmtLogfmt
	case "JSON":
		*f = FmtJSON
	default:
		return fmt.Errorf("logging: invalid log format: '%s'", s)
	}

	return nil
}

// Type returns the list of supported Formats.
func (f *Format) Type() string {
	return "[logfmt,JSON]"
}

// Level is a log level.
type Level uint

const (
	// LevelDebug is the log level for debug messages.
	LevelDebug Level = iota
	// LevelInfo is the log level for informative messages.
	LevelInfo
	// LevelWarn is the log level for warning messages.
	LevelWarn
	// LevelError is the log level for error messages.
	LevelError
)

func (l Level) toOption() level.Option {
	switch l {
	case LevelDebug:
		return level.AllowDebug()
	case LevelInfo:
		return level.AllowInfo()
	case LevelWarn:
		return level.AllowWarn()
	default:
		return level.AllowError()
	}
}

// String returns the string representation of a Level.
func (l *Level) String() string {
	switch *l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return fmt.Sprintf("Level(%d)", uint(*l))
	}
}

// Set sets the Level to the value specified by the provided string.
func (l *Level) Set(s string) error {
	switch strings.ToUpper(s) {
	case "DEBUG":
		*l = LevelDebug
	case "INFO":
		*l = LevelInfo
	case "WARN":
		*l = LevelWarn
	case "ERROR":
		*l = LevelError
	default:
		return fmt.Errorf("logging: invalid log level: '%s'", s)
	}

	return nil
}

// Type returns the list of supported Levels.
func (l *Level) Type() string {
	return "[DEBUG,INFO,WARN,ERROR]"
}

// Logger is a module-scoped logger. Its level can change when the backend is
// (re)initialized, so it is read atomically on every call.
type Logger struct {
	logger log.Logger
	level  atomic.Uint32
	module string
}

func (l *Logger) enabled(lvl Level) bool {
	return Level(l.level.Load()) <= lvl
}

func (l *Logger) log(lvl Level, msg string, keyvals []interface{}) {
	if !l.enabled(lvl) {
		return
	}
	keyvals = append([]interface{}{"msg", msg}, keyvals...)

	var leveled log.Logger
	switch lvl {
	case LevelDebug:
		leveled = level.Debug(l.logger)
	case LevelInfo:
		leveled = level.Info(l.logger)
	case LevelWarn:
		leveled = level.Warn(l.logger)
	default:
		leveled = level.Error(l.logger)
	}
	_ = leveled.Log(keyvals...)
}

// Debug logs msg and the key/value pairs at LevelDebug.
func (l *Logger) Debug(msg string, keyvals ...interface{}) {
	l.log(LevelDebug, msg, keyvals)
}

// Info logs msg and the key/value pairs at LevelInfo.
func (l *Logger) Info(msg string, keyvals ...interface{}) {
	l.log(LevelInfo, msg, keyvals)
}

// Warn logs msg and the key/value pairs at LevelWarn.
func (l *Logger) Warn(msg string, keyvals ...interface{}) {
	l.log(LevelWarn, msg, keyvals)
}

// Error logs msg and the key/value pairs at LevelError.
func (l *Logger) Error(msg string, keyvals ...interface{}) {
	l.log(LevelError, msg, keyvals)
}

// DebugEnabled reports whether debug records would be emitted. Hot paths use
// it to skip building key/value pairs.
func (l *Logger) DebugEnabled() bool {
	return l.enabled(LevelDebug)
}

// GetLogger returns a logger for module. It may be called at package init,
// before Initialize; the logger follows every later Initialize and Reset.
func GetLogger(module string) *Logger {
	return backend.getLogger(module)
}

// Initialize points every logger at w with the given format. Modules listed
// in moduleLvls (matched by longest prefix) use their own level, the rest use
// defaultLvl. A nil w discards all output. Only the first call after process
// start or Reset succeeds.
func Initialize(w io.Writer, format Format, defaultLvl Level, moduleLvls map[string]Level) error {
	backend.Lock()
	defer backend.Unlock()

	if backend.initialized {
		return ErrAlreadyInitialized
	}

	base := log.NewNopLogger()
	if w != nil {
		w = log.NewSyncWriter(w)
		switch format {
		case FmtLogfmt:
			base = log.NewLogfmtLogger(w)
		case FmtJSON:
			base = log.NewJSONLogger(w)
		default:
			return fmt.Errorf("logging: unsupported log format: %v", format)
		}
	}

	// Per-module levels are enforced by Logger; the backend filter only
	// needs to let the most verbose of them through.
	minLvl := defaultLvl
	for _, lvl := range moduleLvls {
		if lvl < minLvl {
			minLvl = lvl
		}
	}
	base = level.NewFilter(base, minLvl.toOption())
	base = log.With(base, "ts", log.DefaultTimestampUTC)

	backend.baseLogger = base
	backend.moduleLevels = moduleLvls
	backend.defaultLevel = defaultLvl
	backend.initialized = true
	backend.rebindLocked()

	return nil
}

// Reset returns the backend to its uninitialized, discarding state. Every
// logger obtained so far, including package-level ones, is rebound and will
// follow the next Initialize.
func Reset() {
	backend.Lock()
	defer backend.Unlock()

	backend.baseLogger = log.NewNopLogger()
	backend.defaultLevel = LevelError
	backend.moduleLevels = nil
	backend.initialized = false
	backend.rebindLocked()
}

type boundLogger struct {
	swap   *log.SwapLogger
	logger *Logger
}

type logBackend struct {
	sync.Mutex

	baseLogger   log.Logger
	loggers      []boundLogger
	defaultLevel Level
	moduleLevels map[string]Level

	initialized bool
}

func newBackend() *logBackend {
	return &logBackend{
		baseLogger:   log.NewNopLogger(),
		defaultLevel: LevelError,
	}
}

// levelLocked picks the longest module prefix with an explicit level,
// falling back to the default level.
func (b *logBackend) levelLocked(module string) Level {
	prefixes := make([]string, 0, len(b.moduleLevels))
	for k := range b.moduleLevels {
		prefixes = append(prefixes, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(prefixes)))

	for _, k := range prefixes {
		if strings.HasPrefix(module, k) {
			return b.moduleLevels[k]
		}
	}

	return b.defaultLevel
}

// rebindLocked swaps every logger onto the current base and level.
func (b *logBackend) rebindLocked() {
	for _, bl := range b.loggers {
		bl.swap.Swap(b.baseLogger)
		bl.logger.level.Store(uint32(b.levelLocked(bl.logger.module)))
	}
}

func (b *logBackend) getLogger(module string) *Logger {
	// Frames between the caller valuer and the user: Logger.<Level>, log.
	const callerDepth = 5

	b.Lock()
	defer b.Unlock()

	swap := &log.SwapLogger{}
	swap.Swap(b.baseLogger)

	var keyvals []interface{}
	if module != "" {
		keyvals = append(keyvals, "module", module)
	}
	keyvals = append(keyvals, "caller", log.Caller(callerDepth))
	l := &Logger{
		logger: log.WithPrefix(swap, keyvals...),
		module: module,
	}
	l.level.Store(uint32(b.levelLocked(module)))
	b.loggers = append(b.loggers, boundLogger{swap: swap, logger: l})

	return l
}
