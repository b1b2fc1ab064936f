package bdphone_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bdphone/pkg/bdphone"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := bdphone.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "en", cfg.DefaultLocale)
		assert.True(t, cfg.AllowMobile)
		assert.True(t, cfg.AllowLandline)
		assert.False(t, cfg.AllowSpecial)
		assert.Equal(t, 300*time.Millisecond, cfg.DebounceDelay)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("BDPHONE_DEFAULT_LOCALE", "bn")
		t.Setenv("BDPHONE_ALLOW_LANDLINE", "false")
		t.Setenv("BDPHONE_ALLOW_SPECIAL", "true")
		t.Setenv("BDPHONE_DEBOUNCE_DELAY", "150ms")

		cfg, err := bdphone.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "bn", cfg.DefaultLocale)
		assert.False(t, cfg.AllowLandline)
		assert.True(t, cfg.AllowSpecial)
		assert.Equal(t, 150*time.Millisecond, cfg.DebounceDelay)
	})

	t.Run("malformed value", func(t *testing.T) {
		t.Setenv("BDPHONE_DEBOUNCE_DELAY", "soon")

		_, err := bdphone.LoadConfig()
		assert.ErrorIs(t, err, bdphone.ErrParsingConfig)
	})
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("category toggles applied", func(t *testing.T) {
		t.Parallel()
		v := bdphone.NewFromConfig(bdphone.Config{
			DefaultLocale: "en",
			AllowMobile:   true,
			AllowLandline: false,
		})

		assert.True(t, v.Validate("01712345678").Valid)
		res := v.Validate("0212345678")
		require.False(t, res.Valid)
		assert.Equal(t, bdphone.CodeInvalidFormat, res.Err.Code)
	})

	t.Run("bengali default locale swaps message language", func(t *testing.T) {
		t.Parallel()
		v := bdphone.NewFromConfig(bdphone.Config{
			DefaultLocale: "bn",
			AllowMobile:   true,
			AllowLandline: true,
		})

		res := v.Validate("12345")
		require.False(t, res.Valid)
		assert.Equal(t, res.Err.LocalizedMessage, res.Err.Message)
	})

	t.Run("extra options override config", func(t *testing.T) {
		t.Parallel()
		v := bdphone.NewFromConfig(
			bdphone.Config{AllowMobile: false},
			bdphone.WithDefaultValidationOptions(bdphone.DefaultValidationOptions()),
		)
		assert.True(t, v.Validate("01712345678").Valid)
	})
}
