package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestNewVariants(t *testing.T) {
	t.Run("json format logs expected fields", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, int(zerolog.InfoLevel), "json", false)

		logger.Info().Str("key", "value").Msg("json_test")

		require.Contains(t, buf.String(), `"message":"json_test"`)
		require.Contains(t, buf.String(), `"key":"value"`)
	})

	t.Run("console format logs human readable output", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, int(zerolog.InfoLevel), "console", false)

		logger.Info().Msg("console_test")

		require.Contains(t, buf.String(), "console_test")
		require.False(t, strings.HasPrefix(buf.String(), "{"))
	})

	t.Run("level filters debug", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, int(zerolog.WarnLevel), "json", false)

		logger.Info().Msg("hidden")
		logger.Warn().Msg("shown")

		require.NotContains(t, buf.String(), "hidden")
		require.Contains(t, buf.String(), "shown")
	})
}

func TestForSDK(t *testing.T) {
	var buf bytes.Buffer
	l := ForSDK(New(&buf, int(zerolog.DebugLevel), "json", false))

	l.With("module", "x/funddistributor").Info("distribution instantiated", "total_power", "100")

	require.Contains(t, buf.String(), `"module":"x/funddistributor"`)
	require.Contains(t, buf.String(), `"total_power":"100"`)
}
