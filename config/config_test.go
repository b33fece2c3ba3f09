package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/trema/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := config.Default()
	assert.Equal(t, "App", c.RootTag)
	assert.Equal(t, 10, c.MaxWidgetAge)
	assert.Equal(t, 100, c.MaxSubstitutions)
	assert.Equal(t, 256, c.InputBufferSize)
	assert.Equal(t, 200.0, c.DefaultWindowHeight)
	assert.Equal(t, "Error", c.TraceLevel)
	assert.Equal(t, "go", c.Schuko().GetString("tracing.adapter"))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trema.yaml")
	yaml := "root_tag: Screen\nmax_widget_age: 3\ndefault_window_height: 320\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	c, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Screen", c.RootTag)
	assert.Equal(t, 3, c.MaxWidgetAge)
	assert.Equal(t, 320.0, c.DefaultWindowHeight)
	assert.Equal(t, 256, c.InputBufferSize, "expected default for unset key")
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("TREMA_INPUT_BUFFER_SIZE", "64")
	dir := t.TempDir()
	path := filepath.Join(dir, "trema.yaml")
	require.NoError(t, os.WriteFile(path, []byte("trace_level: Debug\n"), 0o644))
	c, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 64, c.InputBufferSize)
	assert.Equal(t, "Debug", c.TraceLevel)
}

func TestLoadErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "expected explicit missing file to be an error")
	//
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_widget_age: 0\n"), 0o644))
	_, err = config.Load(path)
	assert.Error(t, err, "expected validation error")
}

func TestTracerKeys(t *testing.T) {
	assert.Contains(t, config.TracerKeys, "trema.render")
	assert.Equal(t, 5, len(config.TracerKeys))
}
