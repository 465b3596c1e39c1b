package commands_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caelum-dev/caelum/internal/config"
)

func TestInit_CreatesStructure(t *testing.T) {
	dir := t.TempDir()
	out, err := runCaelum(t, dir, "init", dir)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Initialized caelum project")

	for _, d := range []string{"import", filepath.Join("import", "processed"), "logs"} {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err, "directory %s should exist", d)
		assert.True(t, info.IsDir(), "%s should be a directory", d)
	}
}

func TestInit_Config(t *testing.T) {
	dir := t.TempDir()
	_, err := runCaelum(t, dir, "init", dir)
	require.NoError(t, err)

	cfg, err := config.Load(filepath.Join(dir, "caelum.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestInit_EnvExample(t *testing.T) {
	dir := t.TempDir()
	_, err := runCaelum(t, dir, "init", dir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, ".env.example"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "NOTION_TOKEN=")
	assert.Contains(t, string(data), "NOTION_DATABASE=")

	gitignore, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
	assert.Contains(t, string(gitignore), ".env\n")
}

func TestInit_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	_, err := runCaelum(t, dir, "init", dir)
	require.NoError(t, err)

	_, err = runCaelum(t, dir, "init", dir)
	require.Error(t, err, "second init without --force should fail")

	_, err = runCaelum(t, dir, "init", dir, "--force")
	require.NoError(t, err)
}
