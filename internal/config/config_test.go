package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"masterplan/internal/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "backups", cfg.Snapshots.Dir)
	assert.Equal(t, "project_snap_index.json", cfg.Snapshots.IndexFile)
	assert.Equal(t, 10*time.Minute, cfg.SnapshotInterval())
	assert.Equal(t, 50, cfg.Undo.Depth)
	assert.Equal(t, 10, cfg.Recent.Limit)
}

func TestFromYAMLOverrides(t *testing.T) {
	cfg, err := config.FromYAML([]byte("snapshots:\n  interval_minutes: 5\nundo:\n  depth: 20\n"))
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, cfg.SnapshotInterval())
	assert.Equal(t, 20, cfg.Undo.Depth)
	// untouched fields keep defaults
	assert.Equal(t, "backups", cfg.Snapshots.Dir)
}

func TestFromYAMLInvalid(t *testing.T) {
	_, err := config.FromYAML([]byte("undo:\n  depth: -1\n"))
	assert.Error(t, err)

	_, err = config.FromYAML([]byte(":::"))
	assert.Error(t, err)
}
