package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/texcalc/pkg/config"
)

func TestConfigClone(t *testing.T) {
	t.Parallel()

	t.Run("nil config returns nil", func(t *testing.T) {
		t.Parallel()

		var c *config.Config
		assert.Nil(t, c.Clone())
	})

	t.Run("copy is independent", func(t *testing.T) {
		t.Parallel()

		original := config.NewConfig()
		clone := original.Clone()
		require.NotNil(t, clone)
		assert.NotSame(t, original, clone)

		clone.Format = config.FormatJSON
		assert.Equal(t, config.FormatText, original.Format)
	})
}

func TestYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	original := &config.Config{
		Color:    config.ColorNever,
		Format:   config.FormatJSON,
		LogLevel: "debug",
		Write:    true,
		Backup:   true,
		ShowExpr: true,
		Strict:   true,
	}

	data, err := original.ToYAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "log_level: debug")

	parsed, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, original, parsed)
}

func TestToYAMLWithHeader(t *testing.T) {
	t.Parallel()

	data, err := config.NewConfig().ToYAMLWithHeader("# texcalc configuration")
	require.NoError(t, err)
	assert.Regexp(t, `^# texcalc configuration\n\ncolor: auto\n`, string(data))

	var nilCfg *config.Config
	data, err = nilCfg.ToYAML()
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestFromYAML(t *testing.T) {
	t.Parallel()

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.FromYAML(nil)
		require.NoError(t, err)
		assert.Equal(t, &config.Config{}, cfg)
	})

	t.Run("unknown key rejected", func(t *testing.T) {
		t.Parallel()

		_, err := config.FromYAML([]byte("precision: 5\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "precision")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		_, err := config.FromYAML([]byte("color: [\n"))
		require.Error(t, err)
	})
}

func TestValidEnums(t *testing.T) {
	t.Parallel()

	assert.True(t, config.FormatText.IsValid())
	assert.True(t, config.FormatJSON.IsValid())
	assert.True(t, config.FormatDiff.IsValid())
	assert.False(t, config.OutputFormat("sarif").IsValid())

	assert.True(t, config.ColorAlways.IsValid())
	assert.False(t, config.ColorMode("sometimes").IsValid())
}
