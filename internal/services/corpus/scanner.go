package corpus

import (
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Corpus naming convention: season directories are "S<digits>", episode
// files are "E<digits>[ - <title>].txt".
const (
	seasonMarker   = "S"
	episodeMarker  = "E"
	titleSeparator = " - "
	transcriptExt  = ".txt"
)

// SeasonEntry is one season directory discovered during scanning, with
// its episodes already parsed and sorted.
type SeasonEntry struct {
	Number   int
	Path     string
	Episodes []EpisodeEntry
}

// EpisodeEntry is one episode transcript file discovered during
// scanning. Title is empty when the filename has no " - " segment.
type EpisodeEntry struct {
	Number int
	Title  string
	Path   string
}

// Scan enumerates a corpus root into seasons and episodes, sorted
// ascending by number. Directory-listing order is never relied on.
//
// Season entries that carry the marker but no parsable number are
// skipped with a warning; an episode file with an unparsable numeric
// prefix aborts the scan. That asymmetry is deliberate: stray files in
// the season listing are tolerated, a broken transcript name is not.
func Scan(root string) ([]SeasonEntry, error) {
	seasonRoot, err := resolveSeasonRoot(root)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(seasonRoot)
	if err != nil {
		return nil, &ImportError{Stage: StageScan, Path: seasonRoot, Err: err}
	}

	var seasons []SeasonEntry
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, seasonMarker) {
			continue
		}
		number, err := strconv.Atoi(strings.TrimPrefix(name, seasonMarker))
		if err != nil {
			log.Printf("[WARN] skipping unrecognized season entry %q: %v", name, err)
			continue
		}
		seasons = append(seasons, SeasonEntry{
			Number: number,
			Path:   filepath.Join(seasonRoot, name),
		})
	}

	sort.Slice(seasons, func(i, j int) bool {
		return seasons[i].Number < seasons[j].Number
	})

	for i := range seasons {
		episodes, err := scanSeason(seasons[i].Path)
		if err != nil {
			return nil, err
		}
		seasons[i].Episodes = episodes
	}

	return seasons, nil
}

// resolveSeasonRoot unwraps a single archive-level wrapper directory:
// when the root holds exactly one subdirectory and no season entries of
// its own, the seasons live one level down.
func resolveSeasonRoot(root string) (string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return "", &ImportError{Stage: StageScan, Path: root, Err: err}
	}

	var dirs []string
	for _, entry := range entries {
		if isSeasonName(entry.Name()) {
			return root, nil
		}
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		}
	}

	if len(dirs) == 1 {
		return filepath.Join(root, dirs[0]), nil
	}
	return root, nil
}

func isSeasonName(name string) bool {
	return len(name) > 1 && strings.HasPrefix(name, seasonMarker) && isDigit(name[1])
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func scanSeason(seasonPath string) ([]EpisodeEntry, error) {
	entries, err := os.ReadDir(seasonPath)
	if err != nil {
		return nil, &ImportError{Stage: StageScan, Path: seasonPath, Err: err}
	}

	var episodes []EpisodeEntry
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, episodeMarker) {
			continue
		}
		number, ok := parseEpisodeNumber(name)
		if !ok {
			return nil, ClassificationError{Name: name}
		}
		episodes = append(episodes, EpisodeEntry{
			Number: number,
			Title:  parseEpisodeTitle(name),
			Path:   filepath.Join(seasonPath, name),
		})
	}

	sort.Slice(episodes, func(i, j int) bool {
		return episodes[i].Number < episodes[j].Number
	})

	return episodes, nil
}

// parseEpisodeNumber reads the digits immediately following the episode
// marker, stopping at the first non-digit.
func parseEpisodeNumber(name string) (int, bool) {
	rest := strings.TrimPrefix(name, episodeMarker)
	end := 0
	for end < len(rest) && isDigit(rest[end]) {
		end++
	}
	if end == 0 {
		return 0, false
	}
	number, err := strconv.Atoi(rest[:end])
	if err != nil {
		return 0, false
	}
	return number, true
}

// parseEpisodeTitle extracts the segment between the first " - " and
// the extension, or "" when the filename carries no title.
func parseEpisodeTitle(name string) string {
	base := strings.TrimSuffix(name, transcriptExt)
	parts := strings.Split(base, titleSeparator)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}
