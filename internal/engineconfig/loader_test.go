package engineconfig

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileYieldsDefault(t *testing.T) {
	l := NewLoader(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	cfg, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadPartialOverrideMergesOverDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
graph:
  initial_capacity: 2048
validator:
  scan_max: 4096
`), 0o644))

	l := NewLoader(path, nil)
	cfg, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, uint32(2048), cfg.Graph.InitialCapacity)
	assert.Equal(t, uint32(4096), cfg.Validator.ScanMax)
	// Fields absent from the file keep the default cache settings.
	assert.Equal(t, Default().Cache.NumCounters, cfg.Cache.NumCounters)
}

func TestLoadInvalidYAMLReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("graph: [unterminated"), 0o644))

	l := NewLoader(path, nil)
	_, err := l.Load()
	assert.Error(t, err)
}

func TestCurrentReflectsLastLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yaml")
	require.NoError(t, os.WriteFile(path, []byte("graph:\n  initial_capacity: 512\n"), 0o644))

	l := NewLoader(path, nil)
	_, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, uint32(512), l.Current().Graph.InitialCapacity)
}

func TestWatchReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yaml")
	require.NoError(t, os.WriteFile(path, []byte("graph:\n  initial_capacity: 100\n"), 0o644))

	l := NewLoader(path, nil)
	_, err := l.Load()
	require.NoError(t, err)

	reloaded := make(chan Config, 1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, l.Watch(ctx, func(c Config) { reloaded <- c }))

	require.NoError(t, os.WriteFile(path, []byte("graph:\n  initial_capacity: 200\n"), 0o644))

	select {
	case c := <-reloaded:
		assert.Equal(t, uint32(200), c.Graph.InitialCapacity)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for config reload")
	}
}
