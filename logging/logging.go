// Package logging builds zerolog loggers that stamp every event with the
// 31-byte logging timestamp ("YYYY-MM-DD HH:MM:SS.mmm.uuu.nnn").
//
// The timestamp is rendered by the timestamp package's cached date path, so a
// hot loop that logs does not pay for time.Time formatting.
package logging

import (
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/raul-gherman/fix44-forge-helpers/internal/options"
	"github.com/raul-gherman/fix44-forge-helpers/timestamp"
)

const (
	// TimestampField is the key of the timestamp added to every event.
	TimestampField = "ts"

	// ComponentField is the key set by WithComponent.
	ComponentField = "component"
)

type config struct {
	level     zerolog.Level
	console   bool
	noColor   bool
	component string
}

// Option configures New.
type Option = options.Option[*config]

// WithLevel sets the minimum level. The default is zerolog.InfoLevel.
func WithLevel(level zerolog.Level) Option {
	return options.NoError(func(c *config) {
		c.level = level
	})
}

// WithConsole renders human-readable lines instead of JSON.
func WithConsole(color bool) Option {
	return options.NoError(func(c *config) {
		c.console = true
		c.noColor = !color
	})
}

// WithComponent adds a component field to every event.
func WithComponent(name string) Option {
	return options.NoError(func(c *config) {
		c.component = name
	})
}

// timestampHook adds the logging timestamp to each event.
type timestampHook struct{}

func (timestampHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	var buf [timestamp.LoggingLen]byte
	timestamp.WriteCurrentLoggingTimestamp(buf[:], 0)
	e.Bytes(TimestampField, buf[:])
}

// New returns a logger writing to w.
//
// Example:
//
//	log := logging.New(os.Stderr, logging.WithComponent("gateway"), logging.WithLevel(zerolog.DebugLevel))
//	log.Info().Uint32("seq", 42).Msg("order sent")
func New(w io.Writer, opts ...Option) zerolog.Logger {
	cfg := &config{level: zerolog.InfoLevel}
	// every option in this package is infallible
	_ = options.Apply(cfg, opts...)

	if cfg.console {
		w = zerolog.ConsoleWriter{
			Out:           w,
			NoColor:       cfg.noColor,
			PartsOrder:    []string{TimestampField, zerolog.LevelFieldName, zerolog.MessageFieldName},
			FieldsExclude: []string{TimestampField},
		}
	}

	ctx := zerolog.New(w).Level(cfg.level).Hook(timestampHook{}).With()
	if cfg.component != "" {
		ctx = ctx.Str(ComponentField, cfg.component)
	}

	return ctx.Logger()
}

// ParseLevel converts a case-insensitive level name to a zerolog.Level.
// "warning" is accepted for "warn". It reports false for unknown names.
func ParseLevel(name string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "fatal":
		return zerolog.FatalLevel, true
	case "panic":
		return zerolog.PanicLevel, true
	case "disabled", "off":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}
