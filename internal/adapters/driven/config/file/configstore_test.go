package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStore_LoadMissing tests defaults when no file exists.
func TestStore_LoadMissing(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	cfg, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "cards", cfg.View)
	assert.Equal(t, "", cfg.Catalogue)
	assert.False(t, cfg.Watch)
}

// TestStore_SaveLoad tests a round trip.
func TestStore_SaveLoad(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	want := &Config{Catalogue: "/data/catalogue.yaml", View: "table", Watch: true}
	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// TestStore_LoadPartial tests that unset keys keep their defaults.
func TestStore_LoadPartial(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(store.Path(), []byte("catalogue = \"/c.yaml\"\n"), 0600))

	cfg, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "/c.yaml", cfg.Catalogue)
	assert.Equal(t, "cards", cfg.View)
}

// TestStore_LoadInvalid tests the parse error path.
func TestStore_LoadInvalid(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(store.Path(), []byte("view = [broken"), 0600))

	_, err = store.Load()
	assert.Error(t, err)
}

// TestNewStore_CreatesDir tests directory creation.
func TestNewStore_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "shoal")
	store, err := NewStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}
