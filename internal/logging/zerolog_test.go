package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		m := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &m), line)
		out = append(out, m)
	}
	return out
}

func TestZerolog_JSONFieldsAndLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Options{Backend: BackendZerolog, Level: "info"})
	ctx := context.Background()

	log.Debug(ctx, "hidden")
	log.Info(ctx, "user registered", "user_id", "u-1")
	log.With("module", "users").Error(ctx, "db failed", "code", "UM5002E")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)

	assert.Equal(t, "info", lines[0]["level"])
	assert.Equal(t, "user registered", lines[0]["message"])
	assert.Equal(t, "u-1", lines[0]["user_id"])

	assert.Equal(t, "error", lines[1]["level"])
	assert.Equal(t, "users", lines[1]["module"])
	assert.Equal(t, "UM5002E", lines[1]["code"])
}

func TestNew_SelectsSlogBackend(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Options{Backend: "slog", Level: "debug", Format: "console"})

	_, ok := log.(*SlogLogger)
	require.True(t, ok)

	log.Debug(context.Background(), "dbg")
	assert.Contains(t, buf.String(), "level=DEBUG")
}

func TestNop_DiscardsOutput(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().With("a", 1).Error(context.TODO(), "x")
	})
}
