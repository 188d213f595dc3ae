package integration

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unitbox/unitbox/client"
	"github.com/unitbox/unitbox/internal/infrastructure/config"
	"github.com/unitbox/unitbox/internal/infrastructure/server"
)

func startServer(t *testing.T) *client.Client {
	t.Helper()

	cfg := config.Default()
	cfg.RateLimit.Enabled = false

	srv, err := server.NewServer(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { srv.Close() })

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	return client.New(ts.URL)
}

func TestConversionRoundTrip(t *testing.T) {
	c := startServer(t)
	ctx := context.Background()

	categories, err := c.Categories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 11)

	units, err := c.Units(ctx, "length")
	require.NoError(t, err)
	require.NotEmpty(t, units)
	assert.Equal(t, "meter", units[0].ID)

	precision := 9
	result, err := c.Convert(ctx, client.ConvertRequest{
		Category:  "length",
		From:      "meter",
		To:        "foot",
		Value:     "1",
		Precision: &precision,
	})
	require.NoError(t, err)
	assert.Equal(t, "3.280839895", result.Value)
	assert.Equal(t, 9, result.Precision)

	// And back again
	back, err := c.Convert(ctx, client.ConvertRequest{
		Category:  "length",
		From:      "foot",
		To:        "meter",
		Value:     result.Value,
		Precision: &precision,
	})
	require.NoError(t, err)
	assert.Equal(t, "1", back.Value)
}

func TestSessionHistoryFlow(t *testing.T) {
	c := startServer(t)
	ctx := context.Background()

	s, err := c.CreateSession(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, s.SessionID)

	// N successful conversions produce N history records
	const n = 5
	for i := 0; i < n; i++ {
		_, err := c.Convert(ctx, client.ConvertRequest{
			Category:  "temperature",
			From:      "celsius",
			To:        "fahrenheit",
			Value:     "0",
			SessionID: &s.SessionID,
		})
		require.NoError(t, err)
	}

	// A failing conversion leaves no trace
	_, err = c.Convert(ctx, client.ConvertRequest{
		Category:  "temperature",
		From:      "celsius",
		To:        "kelvin",
		Value:     "-300",
		SessionID: &s.SessionID,
	})
	require.Error(t, err)

	records, err := c.History(ctx, s.SessionID)
	require.NoError(t, err)
	require.Len(t, records, n)
	assert.Equal(t, "32", records[0].Output)

	// CSV export: header plus one row per record
	data, contentType, err := c.Export(ctx, s.SessionID, "csv")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, n+1)
	assert.True(t, strings.HasPrefix(lines[0], "timestamp,category,source_unit"))

	// Export is a pure read
	records, err = c.History(ctx, s.SessionID)
	require.NoError(t, err)
	assert.Len(t, records, n)

	// Ending the session discards everything
	require.NoError(t, c.EndSession(ctx, s.SessionID))
	_, err = c.History(ctx, s.SessionID)
	require.Error(t, err)
}

func TestToolExecution(t *testing.T) {
	c := startServer(t)
	ctx := context.Background()

	t.Run("radix", func(t *testing.T) {
		result, err := c.Execute(ctx, "radix.convert", map[string]interface{}{
			"value": "255",
			"base":  10,
		}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, "FF", result.Data["hex"])
	})

	t.Run("digest", func(t *testing.T) {
		result, err := c.Execute(ctx, "digest.hash", map[string]interface{}{
			"algorithm": "sha256",
			"text":      "",
		}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t,
			"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
			result.Data["digest"],
		)
	})

	t.Run("codepoint", func(t *testing.T) {
		result, err := c.Execute(ctx, "codepoint.char", map[string]interface{}{
			"code": 65,
		}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, "A", result.Data["char"])
	})

	t.Run("tool failure surfaces in result", func(t *testing.T) {
		result, err := c.Execute(ctx, "encoding.decode", map[string]interface{}{
			"scheme": "base64",
			"text":   "!!!not base64!!!",
		}, nil)
		require.NoError(t, err)
		assert.False(t, result.Success)
		require.NotNil(t, result.Error)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	cfg := config.Default()
	cfg.RateLimit.Enabled = false

	srv, err := server.NewServer(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { srv.Close() })

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
