package commands

import (
	"testing"
	"time"

	"github.com/skylift-io/skylift-go/pkg/skylift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	t.Parallel()

	id, err := parseID("server", "42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = parseID("server", "web-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid server id 'web-1'")
}

func TestFormatLabels(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "-", formatLabels(nil))
	assert.Equal(t, "-", formatLabels(map[string]string{}))
	assert.Equal(t, "env=prod,team=infra", formatLabels(map[string]string{
		"team": "infra",
		"env":  "prod",
	}))
}

func TestStringOrDash(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "-", stringOrDash(nil))

	empty := ""
	assert.Equal(t, "-", stringOrDash(&empty))

	value := "ubuntu-24.04"
	assert.Equal(t, "ubuntu-24.04", stringOrDash(&value))
}

func TestFormatTime(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "-", formatTime(time.Time{}))

	ts := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-06-01 12:30:00", formatTime(ts))
}

func TestCollectActions(t *testing.T) {
	t.Parallel()

	primary := &skylift.Action{ID: 1, Command: "create_server"}
	next := []skylift.Action{
		{ID: 2, Command: "start_server"},
		{ID: 3, Command: "attach_volume"},
	}

	actions := collectActions(primary, next)
	require.Len(t, actions, 3)
	assert.Equal(t, int64(1), actions[0].ID)
	assert.Equal(t, int64(2), actions[1].ID)
	assert.Equal(t, int64(3), actions[2].ID)

	assert.Len(t, collectActions(nil, next), 2)
	assert.Empty(t, collectActions(nil, nil))
}
