package journal

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/raul-gherman/fix44-forge-helpers/errs"
	"github.com/raul-gherman/fix44-forge-helpers/format"
	"github.com/raul-gherman/fix44-forge-helpers/internal/endian"
	"github.com/raul-gherman/fix44-forge-helpers/internal/options"
)

const (
	// DefaultSegmentSize is the raw size at which the active segment is sealed.
	DefaultSegmentSize = 64 * 1024

	MinSegmentSize = 1024
	MaxSegmentSize = 64 * 1024 * 1024

	// MaxMessageSize bounds a single record.
	MaxMessageSize = 16 * 1024 * 1024
)

// config holds the journal settings.
type config struct {
	compression format.CompressionType
	segmentSize int
	engine      endian.EndianEngine
	logger      zerolog.Logger
}

func newConfig() *config {
	return &config{
		compression: format.CompressionLZ4,
		segmentSize: DefaultSegmentSize,
		engine:      endian.GetLittleEndianEngine(),
		logger:      zerolog.Nop(),
	}
}

// Option configures a Journal.
type Option = options.Option[*config]

// WithCompression sets the codec used when sealing segments. The default is LZ4.
func WithCompression(c format.CompressionType) Option {
	return options.New(func(cfg *config) error {
		if !c.Valid() {
			return fmt.Errorf("%w: %s", errs.ErrInvalidCompression, c)
		}
		cfg.compression = c

		return nil
	})
}

// WithSegmentSize sets the raw size at which the active segment is sealed.
// It must be within [MinSegmentSize, MaxSegmentSize].
func WithSegmentSize(n int) Option {
	return options.New(func(cfg *config) error {
		if n < MinSegmentSize || n > MaxSegmentSize {
			return fmt.Errorf("%w: %d not in [%d, %d]", errs.ErrInvalidSegmentSize, n, MinSegmentSize, MaxSegmentSize)
		}
		cfg.segmentSize = n

		return nil
	})
}

// WithLogger sets the logger for segment lifecycle events.
func WithLogger(l zerolog.Logger) Option {
	return options.NoError(func(cfg *config) {
		cfg.logger = l
	})
}

// WithLittleEndian writes frames and headers little-endian.
// It is the default option.
func WithLittleEndian() Option {
	return options.NoError(func(cfg *config) {
		cfg.engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian writes frames and headers big-endian.
func WithBigEndian() Option {
	return options.NoError(func(cfg *config) {
		cfg.engine = endian.GetBigEndianEngine()
	})
}

// WithNativeEndian writes frames and headers in the byte order of the host.
func WithNativeEndian() Option {
	return options.NoError(func(cfg *config) {
		if endian.IsNativeLittleEndian() {
			cfg.engine = endian.GetLittleEndianEngine()
		} else {
			cfg.engine = endian.GetBigEndianEngine()
		}
	})
}
