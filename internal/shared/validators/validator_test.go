package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Level   string `mapstructure:"level" validate:"required,loglevel"`
	MaxSize int    `mapstructure:"max_size,omitempty" validate:"min=1"`
	Plain   string `validate:"required"`
}

func TestNew_NamesFieldsByMapstructureKey(t *testing.T) {
	t.Parallel()

	err := New().Struct(&sample{Level: "loud"})
	require.Error(t, err)

	ve, ok := err.(ValidationErrors)
	require.True(t, ok)

	got := map[string]string{}
	for _, e := range ve {
		got[e.Namespace()] = e.Tag()
	}
	assert.Equal(t, map[string]string{
		"sample.level":    "loglevel",
		"sample.max_size": "min",
		"sample.Plain":    "required",
	}, got)
}

func TestNew_AcceptsZerologLevels(t *testing.T) {
	t.Parallel()

	for _, level := range []string{"trace", "debug", "info", "warn", "error", "disabled"} {
		assert.NoError(t, New().Struct(&sample{Level: level, MaxSize: 1, Plain: "x"}), level)
	}
}
