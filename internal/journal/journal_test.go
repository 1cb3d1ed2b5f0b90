package journal

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexander-akhmetov/signdeck/internal/event"
)

type stepClock struct {
	t time.Time
}

func (c *stepClock) now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

func TestJournal(t *testing.T) {
	tmpDir := t.TempDir()
	clock := &stepClock{t: time.Date(2026, 3, 14, 9, 0, 0, 0, time.Local)}
	var live bytes.Buffer

	j, err := New(Config{
		LogsDir:  tmpDir,
		ListID:   "0190-abc",
		ListName: "Animaux de la ferme",
		Mode:     "sequential",
		Duration: 5,
		Writer:   &live,
		Now:      clock.now,
	})
	require.NoError(t, err)

	assert.Equal(t, "20260314-090001-Animaux-de-la-ferme.log", filepath.Base(j.Path()))

	h := j.Handler()
	h.Emit(event.Info(`Practicing "Animaux de la ferme"`))
	h.Emit(event.Word("chat"))
	h.Emit(event.Word("chien"))
	h.Emit(event.Info("Paused"))
	h.Emit(event.Error("The list being practiced is no longer available"))
	j.Exit("stopped", 1)
	require.NoError(t, j.Close())
	require.NoError(t, j.Close())

	data, err := os.ReadFile(j.Path())
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "# signdeck practice journal")
	assert.Contains(t, content, "List: Animaux de la ferme (0190-abc)")
	assert.Contains(t, content, "Mode: sequential, 5s per word")
	assert.Contains(t, content, "#1 chat")
	assert.Contains(t, content, "#2 chien")
	assert.Contains(t, content, "] Paused")
	assert.Contains(t, content, "ERROR: The list being practiced")
	assert.Contains(t, content, "Exit reason: stopped")
	assert.Contains(t, content, "Words shown: 2")
	assert.Contains(t, content, "Words completed: 1")
	assert.Equal(t, content, live.String())
}

func TestJournal_SameSecondDoesNotOverwrite(t *testing.T) {
	tmpDir := t.TempDir()
	fixed := func() time.Time { return time.Date(2026, 3, 14, 9, 0, 0, 0, time.Local) }

	a, err := New(Config{LogsDir: tmpDir, ListName: "L", Now: fixed})
	require.NoError(t, err)
	defer a.Close()
	b, err := New(Config{LogsDir: tmpDir, ListName: "L", Now: fixed})
	require.NoError(t, err)
	defer b.Close()

	assert.NotEqual(t, a.Path(), b.Path())
	assert.True(t, strings.HasSuffix(b.Path(), "-L-2.log"))
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Animaux", "Animaux"},
		{"has spaces here", "has-spaces-here"},
		{"a/b\\c:d", "a-b-c-d"},
		{"Couleurs (LSF)!", "Couleurs-LSF"},
		{"  --  ", "unnamed"},
		{"", "unnamed"},
		{strings.Repeat("a", 150), strings.Repeat("a", 100)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeFilename(tt.input))
		})
	}
}

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "42s", formatElapsed(42*time.Second))
	assert.Equal(t, "2m5s", formatElapsed(125*time.Second))
	assert.Equal(t, "1h0m1s", formatElapsed(time.Hour+time.Second))
}

func TestFindLogs(t *testing.T) {
	tmpDir := t.TempDir()

	files := []string{
		"20260129-120000-Animaux.log",
		"20260129-130000-Couleurs.log",
		"20260129-140000-Animaux-de-la-ferme.log",
		"notes.txt",
		"bad-name.log",
	}
	for _, f := range files {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, f), []byte("x"), 0o644))
	}

	logs, err := FindLogs(tmpDir, "")
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, "Animaux-de-la-ferme", logs[0].ListName)
	assert.Equal(t, "Couleurs", logs[1].ListName)
	assert.Equal(t, "Animaux", logs[2].ListName)

	logs, err = FindLogs(tmpDir, "animaux")
	require.NoError(t, err)
	assert.Len(t, logs, 2)

	latest, err := FindLatestLog(tmpDir, "couleurs")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "Couleurs", latest.ListName)

	none, err := FindLatestLog(tmpDir, "nourriture")
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestFindLogs_MissingDir(t *testing.T) {
	logs, err := FindLogs(filepath.Join(t.TempDir(), "nope"), "")
	require.NoError(t, err)
	assert.Empty(t, logs)
}
