package commands_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagsList(t *testing.T) {
	out, err := runCaelum(t, t.TempDir(), "tags", "list")
	require.NoError(t, err, out)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "1. 💵 Recurring: amazon web services"))
	assert.Contains(t, lines[3], "Games: games, game, steam")
	assert.Equal(t, "6. ⭐️ Misc: (manual only)", lines[5])
}

func TestTagsSync_MissingCredentials(t *testing.T) {
	out, err := runCaelum(t, t.TempDir(), "tags", "sync")
	require.Error(t, err)
	assert.Contains(t, out, "missing credential")
}

func TestTagsList_Category(t *testing.T) {
	out, err := runCaelum(t, t.TempDir(), "tags", "list", "Games")
	require.NoError(t, err, out)
	assert.True(t, strings.HasPrefix(out, "🎮 Games: games, game, steam"), out)

	out, err = runCaelum(t, t.TempDir(), "tags", "list", "Travel")
	require.Error(t, err)
	assert.Contains(t, out, `unknown category "Travel"`)
}
