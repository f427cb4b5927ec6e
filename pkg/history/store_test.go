package history

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotsetgreg/veil/pkg/parser"
)

// TestStore_RoundTrip verifies a session's turns read back in order with the
// values written.
func TestStore_RoundTrip(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "veil", "history.db"))
	require.NoError(t, err)
	defer store.Close()

	sessionID, err := store.BeginSession("silas")
	require.NoError(t, err)
	require.NotEmpty(t, sessionID)

	first := parser.Interaction{
		Analysis: "The player offered help.",
		Action:   parser.Action{Type: "GRANT_ACCESS", Target: "Player", Parameter: "LEVEL", Value: "2"},
		Dialogue: "Fine. Level 2. Don't make me regret it.",
	}
	require.NoError(t, store.RecordTurn(sessionID, 1, "Trust me.", first, 0.6))

	second := parser.Interaction{
		Analysis: "The player turned hostile.",
		Action:   parser.Action{Type: "ISSUE_THREAT", Target: "Player", Parameter: "INTENSITY", Value: "High"},
		Dialogue: "Careful.",
	}
	require.NoError(t, store.RecordTurn(sessionID, 2, "You're weak.", second, 0.3))

	turns, err := store.Turns(sessionID)
	require.NoError(t, err)
	require.Len(t, turns, 2)

	assert.Equal(t, 1, turns[0].Seq)
	assert.Equal(t, "Trust me.", turns[0].PlayerInput)
	assert.Equal(t, first.Action, turns[0].Action)
	assert.Equal(t, first.Dialogue, turns[0].Dialogue)
	assert.Equal(t, 0.6, turns[0].Relationship)
	assert.False(t, turns[0].CreatedAt.IsZero())

	assert.Equal(t, 2, turns[1].Seq)
	assert.Equal(t, second.Action, turns[1].Action)
}

// TestStore_SessionsAreIsolated verifies turns do not leak across sessions.
func TestStore_SessionsAreIsolated(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer store.Close()

	a, err := store.BeginSession("silas")
	require.NoError(t, err)
	b, err := store.BeginSession("mara")
	require.NoError(t, err)

	rec := parser.Interaction{Action: parser.NoAction(), Dialogue: "..."}
	require.NoError(t, store.RecordTurn(a, 1, "hello", rec, 0.0))

	turns, err := store.Turns(b)
	require.NoError(t, err)
	assert.Empty(t, turns)
}

// TestOpen_Reopen verifies the journal survives close and reopen.
func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	store, err := Open(path)
	require.NoError(t, err)
	sessionID, err := store.BeginSession("silas")
	require.NoError(t, err)
	rec := parser.Interaction{Action: parser.NoAction(), Dialogue: "noted"}
	require.NoError(t, store.RecordTurn(sessionID, 1, "hi", rec, 0.1))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	turns, err := reopened.Turns(sessionID)
	require.NoError(t, err)
	require.Len(t, turns, 1)
	assert.Equal(t, "noted", turns[0].Dialogue)
}
