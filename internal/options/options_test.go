package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var errZeroTag = errors.New("tag must be non-zero")

type generatorConfig struct {
	tag     uint32
	start   uint32
	applied []string
}

type generatorOption = Option[*generatorConfig]

func withTag(tag uint32) generatorOption {
	return New(func(c *generatorConfig) error {
		if tag == 0 {
			return errZeroTag
		}
		c.tag = tag
		c.applied = append(c.applied, "tag")

		return nil
	})
}

func withStart(n uint32) generatorOption {
	return NoError(func(c *generatorConfig) {
		c.start = n
		c.applied = append(c.applied, "start")
	})
}

func TestApply(t *testing.T) {
	t.Run("applies in order", func(t *testing.T) {
		cfg := &generatorConfig{}
		require.NoError(t, Apply(cfg, withStart(5), withTag(7), withStart(9)))
		require.Equal(t, uint32(7), cfg.tag)
		require.Equal(t, uint32(9), cfg.start)
		require.Equal(t, []string{"start", "tag", "start"}, cfg.applied)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &generatorConfig{}
		err := Apply(cfg, withStart(1), withTag(0), withStart(2))
		require.ErrorIs(t, err, errZeroTag)
		require.Equal(t, uint32(1), cfg.start)
		require.Equal(t, []string{"start"}, cfg.applied)
	})

	t.Run("no options", func(t *testing.T) {
		cfg := &generatorConfig{tag: 3}
		require.NoError(t, Apply(cfg))
		require.Equal(t, uint32(3), cfg.tag)
	})

	t.Run("skips nil options", func(t *testing.T) {
		cfg := &generatorConfig{}
		require.NoError(t, Apply(cfg, nil, withTag(4)))
		require.Equal(t, uint32(4), cfg.tag)
	})

	t.Run("skips typed nil func", func(t *testing.T) {
		cfg := &generatorConfig{}
		var missing *Func[*generatorConfig]
		require.NotPanics(t, func() {
			require.NoError(t, Apply[*generatorConfig](cfg, missing, withStart(3)))
		})
		require.Equal(t, uint32(3), cfg.start)
	})
}

func TestNoError(t *testing.T) {
	cfg := &generatorConfig{}
	require.NoError(t, withStart(11).apply(cfg))
	require.Equal(t, uint32(11), cfg.start)
}

func TestNew_Reuse(t *testing.T) {
	opt := withTag(8)
	a, b := &generatorConfig{}, &generatorConfig{}
	require.NoError(t, Apply(a, opt))
	require.NoError(t, Apply(b, opt))
	require.Equal(t, a.tag, b.tag)
}
