package cmdr

import (
	"github.com/saylorsolutions/cmdr/internal/env"
	"io"
	"log/slog"
	"os"
	"strings"
)

// DefaultSuggestions is the number of similar commands mentioned when an unknown command is entered.
const DefaultSuggestions = 3

// Option configures a [Runner].
type Option func(r *Runner)

// WithLogger sets the logger used to trace the [Runner]'s decisions.
// Nothing is logged by default.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger == nil {
			return
		}
		r.log = logger
	}
}

// WithEmptyLineError makes empty lines produce [ErrEmptyLine] instead of being ignored.
// The error goes through the scope's [ErrorHandler] like any other.
// Scopes that implement [EmptyLineHandler] are not affected.
func WithEmptyLineError(enabled bool) Option {
	return func(r *Runner) {
		r.emptyLineErr = enabled
	}
}

// WithSuggestions sets how many similar commands are mentioned when an unknown command is entered.
// Zero or less turns suggestions off.
func WithSuggestions(n int) Option {
	return func(r *Runner) {
		if n < 0 {
			n = 0
		}
		r.suggestions = n
	}
}

// Environment variables read by [EnvOptions].
const (
	EnvEmptyLineError = "CMDR_EMPTY_LINE_ERROR"
	EnvSuggestions    = "CMDR_SUGGESTIONS"
	EnvLogLevel       = "CMDR_LOG_LEVEL"
)

// EnvOptions reads [Runner] configuration from the environment.
// Variables that aren't set leave the defaults alone.
//
//   - CMDR_EMPTY_LINE_ERROR: a boolean for [WithEmptyLineError].
//   - CMDR_SUGGESTIONS: an integer for [WithSuggestions].
//   - CMDR_LOG_LEVEL: one of debug, info, warn, or error to log to stderr at that level.
func EnvOptions() []Option {
	var opts []Option
	if env.IsSet(EnvEmptyLineError) {
		opts = append(opts, WithEmptyLineError(env.Bool(EnvEmptyLineError, false)))
	}
	if env.IsSet(EnvSuggestions) {
		opts = append(opts, WithSuggestions(int(env.Int(EnvSuggestions, DefaultSuggestions))))
	}
	if level, ok := ParseLogLevel(env.Val(EnvLogLevel, "")); ok {
		opts = append(opts, WithLogger(NewLogger(os.Stderr, level)))
	}
	return opts
}

// ParseLogLevel interprets a level name, ignoring case.
// False is returned if the name isn't recognized.
func ParseLogLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// NewLogger creates a text logger at the given level, suitable for [WithLogger].
func NewLogger(out io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: level,
	}))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}))
}
