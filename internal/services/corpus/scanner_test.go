package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeCorpus lays out season directories and episode files under root.
func writeCorpus(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestScanSortsSeasonsAndEpisodes(t *testing.T) {
	root := t.TempDir()
	writeCorpus(t, root, map[string]string{
		"S10/E2 - Late.txt":  "a",
		"S10/E10 - Ten.txt":  "b",
		"S2/E1 - First.txt":  "c",
		"S2/E3.txt":          "d",
		"S10/E1 - Early.txt": "e",
	})

	seasons, err := Scan(root)
	require.NoError(t, err)
	require.Len(t, seasons, 2)

	assert.Equal(t, 2, seasons[0].Number)
	assert.Equal(t, 10, seasons[1].Number)

	require.Len(t, seasons[1].Episodes, 3)
	assert.Equal(t, 1, seasons[1].Episodes[0].Number)
	assert.Equal(t, 2, seasons[1].Episodes[1].Number)
	assert.Equal(t, 10, seasons[1].Episodes[2].Number)
}

func TestScanParsesTitles(t *testing.T) {
	root := t.TempDir()
	writeCorpus(t, root, map[string]string{
		"S1/E1 - The Pilot.txt": "",
		"S1/E2.txt":             "",
	})

	seasons, err := Scan(root)
	require.NoError(t, err)
	require.Len(t, seasons, 1)
	require.Len(t, seasons[0].Episodes, 2)

	assert.Equal(t, "The Pilot", seasons[0].Episodes[0].Title)
	assert.Equal(t, "", seasons[0].Episodes[1].Title, "no separator means empty title")
}

func TestScanUnwrapsSingleWrapperDirectory(t *testing.T) {
	root := t.TempDir()
	writeCorpus(t, root, map[string]string{
		"Seasons/S1/E1 - Wrapped.txt": "",
	})

	seasons, err := Scan(root)
	require.NoError(t, err)
	require.Len(t, seasons, 1)
	assert.Equal(t, 1, seasons[0].Number)
}

func TestScanDoesNotUnwrapWhenSeasonsAtRoot(t *testing.T) {
	root := t.TempDir()
	writeCorpus(t, root, map[string]string{
		"S1/E1.txt":       "",
		"extras/notes.md": "",
	})

	seasons, err := Scan(root)
	require.NoError(t, err)
	require.Len(t, seasons, 1)
	assert.Equal(t, 1, seasons[0].Number)
}

func TestScanSkipsUnrecognizedSeasonEntries(t *testing.T) {
	root := t.TempDir()
	writeCorpus(t, root, map[string]string{
		"S1/E1.txt":        "",
		"S2/E1.txt":        "",
		"Sx-bad/E1.txt":    "",
		"README/notes.txt": "",
	})

	seasons, err := Scan(root)
	require.NoError(t, err)
	require.Len(t, seasons, 2, "malformed season entries are skipped, not fatal")
}

func TestScanRejectsMalformedEpisodeName(t *testing.T) {
	root := t.TempDir()
	writeCorpus(t, root, map[string]string{
		"S1/E1.txt":        "",
		"S1/Episodeon.txt": "",
	})

	_, err := Scan(root)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedEpisodeName)

	var classErr ClassificationError
	require.ErrorAs(t, err, &classErr)
	assert.Equal(t, "Episodeon.txt", classErr.Name)
}

func TestScanIgnoresNonEpisodeFiles(t *testing.T) {
	root := t.TempDir()
	writeCorpus(t, root, map[string]string{
		"S1/E1.txt":     "",
		"S1/notes.txt":  "",
		"S1/.gitignore": "",
	})

	seasons, err := Scan(root)
	require.NoError(t, err)
	require.Len(t, seasons[0].Episodes, 1)
}

func TestScanMissingRoot(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrImportFailed)
}

func TestParseEpisodeNumber(t *testing.T) {
	tests := []struct {
		name   string
		want   int
		wantOK bool
	}{
		{"E5 - Title.txt", 5, true},
		{"E05.txt", 5, true},
		{"E12-compact.txt", 12, true},
		{"E.txt", 0, false},
		{"Extra.txt", 0, false},
	}

	for _, tt := range tests {
		got, ok := parseEpisodeNumber(tt.name)
		assert.Equal(t, tt.wantOK, ok, tt.name)
		if tt.wantOK {
			assert.Equal(t, tt.want, got, tt.name)
		}
	}
}
