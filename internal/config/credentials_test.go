package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCredentials_FromFile(t *testing.T) {
	t.Setenv(EnvNotionToken, "")
	t.Setenv(EnvNotionDatabase, "")
	os.Unsetenv(EnvNotionToken)
	os.Unsetenv(EnvNotionDatabase)

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("NOTION_TOKEN=secret_abc\nNOTION_DATABASE=db123\n"), 0o600))

	creds, err := LoadCredentials(path)
	require.NoError(t, err)
	assert.Equal(t, "secret_abc", creds.NotionToken)
	assert.Equal(t, "db123", creds.DatabaseID)
}

func TestLoadCredentials_EnvWins(t *testing.T) {
	t.Setenv(EnvNotionToken, "from_env")
	t.Setenv(EnvNotionDatabase, "db_env")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("NOTION_TOKEN=from_file\n"), 0o600))

	creds, err := LoadCredentials(path)
	require.NoError(t, err)
	assert.Equal(t, "from_env", creds.NotionToken)
	assert.Equal(t, "db_env", creds.DatabaseID)
}

func TestLoadCredentials_Missing(t *testing.T) {
	t.Setenv(EnvNotionToken, "tok")
	t.Setenv(EnvNotionDatabase, "")

	_, err := LoadCredentials(filepath.Join(t.TempDir(), ".env"))
	require.ErrorIs(t, err, ErrMissingCredential)
	assert.Contains(t, err.Error(), EnvNotionDatabase)
}
