package eventlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmitAppendsNDJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "events.ndjson")
	lg := New(path, "abc123")

	lg.Emit("project_created", "adder", "")
	lg.Emit("compile_finished", "adder", "ok=true exit=0")
	lg.Emit("", "adder", "dropped")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	events, err := Read(path)
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, "project_created", events[0].Event)
	require.Equal(t, "adder", events[0].Project)
	require.Equal(t, "abc123", events[0].Session)
	require.False(t, events[0].Timestamp.IsZero())
	require.Equal(t, "compile_finished", events[1].Event)
	require.Equal(t, "ok=true exit=0", events[1].Detail)
}

func TestReadSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.ndjson")
	content := `{"ts":"2024-01-12T10:11:12Z","session":"s","event":"quit"}
not json
{"ts":"2024-01-12T10:11:13Z","session":"s","event":"view_launched","project":"adder"}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	events, err := Read(path)
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, "quit", events[0].Event)
	require.Equal(t, "view_launched", events[1].Event)
}

func TestReadMissingFile(t *testing.T) {
	events, err := Read(filepath.Join(t.TempDir(), "absent.ndjson"))
	require.NoError(t, err)
	require.Empty(t, events)
}

func TestNewSessionID(t *testing.T) {
	a := NewSessionID()
	b := NewSessionID()
	require.NotEmpty(t, a)
	require.NotEqual(t, a, b)
}
