package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command against a fresh database in a temp dir.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("KEYQUIZ_REMOTE", "")
	db := filepath.Join(t.TempDir(), "test.db")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--db", db))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestKeywordsListsSeededDeck(t *testing.T) {
	out, err := execute(t, "keywords", "--search", "고조선")
	require.NoError(t, err)
	assert.Contains(t, out, "고조선")
	assert.Contains(t, out, "KEYWORD")
}

func TestAnswerLookup(t *testing.T) {
	out, err := execute(t, "answer", "6501")
	require.NoError(t, err)
	assert.Contains(t, out, "Round 65 · Problem 1")
	assert.Contains(t, out, "Answer: 2")
}

func TestAnswerRejectsBadID(t *testing.T) {
	_, err := execute(t, "answer", "abc")
	assert.Error(t, err)
}

func TestStatsWithoutGames(t *testing.T) {
	out, err := execute(t, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "No games played yet.")
}

func TestResetRequiresConfirmation(t *testing.T) {
	out, err := execute(t, "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "--yes")
}
