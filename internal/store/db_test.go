package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndListScripts(t *testing.T) {
	s := openTestStore(t)

	first, err := s.SaveScript("session-a", "input.csv", 1, "script one")
	require.NoError(t, err)
	_, err = s.SaveScript("session-b", "other.csv", 0, "script other")
	require.NoError(t, err)
	second, err := s.SaveScript("session-a", "input.csv", 2, "script two")
	require.NoError(t, err)

	records, err := s.ListScripts("session-a")
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, first.ID, records[0].ID)
	assert.Equal(t, "script one", records[0].Script)
	assert.Equal(t, 1, records[0].StepCount)
	assert.Equal(t, second.ID, records[1].ID)
	assert.Equal(t, "input.csv", records[1].Source)
	assert.False(t, records[1].CreatedAt.IsZero())
}

func TestListScriptsUnknownSession(t *testing.T) {
	s := openTestStore(t)

	records, err := s.ListScripts("nobody")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestDeleteSession(t *testing.T) {
	s := openTestStore(t)

	_, err := s.SaveScript("session-a", "input.csv", 1, "x")
	require.NoError(t, err)
	_, err = s.SaveScript("session-b", "input.csv", 1, "y")
	require.NoError(t, err)

	require.NoError(t, s.DeleteSession("session-a"))

	records, err := s.ListScripts("session-a")
	require.NoError(t, err)
	assert.Empty(t, records)

	records, err = s.ListScripts("session-b")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestOpenDefaultsToMemory(t *testing.T) {
	s, err := Open("")
	require.NoError(t, err)
	defer s.Close()

	_, err = s.SaveScript("mem", "input.csv", 0, "x")
	assert.NoError(t, err)
}
