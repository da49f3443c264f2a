package corpus

import (
	"bufio"
	"context"
	"log"
	"os"

	"github.com/showquotes/transcript-api/internal/models"
	"gorm.io/gorm"
)

// maxLineBytes bounds a single transcript line. Lines past this are a
// read error, not silent truncation.
const maxLineBytes = 1 << 20

// Runner is the importer as seen by handlers and commands.
type Runner interface {
	Import(ctx context.Context, db *gorm.DB, root string) (*Stats, error)
}

// Stats summarizes one committed import.
type Stats struct {
	Seasons  int `json:"seasons"`
	Episodes int `json:"episodes"`
	Lines    int `json:"lines"`
}

// Importer ingests a corpus of transcript files into one dataset.
type Importer struct{}

var _ Runner = (*Importer)(nil)

func NewImporter() *Importer {
	return &Importer{}
}

// Import scans the corpus root and commits every season, episode and
// line it finds inside a single transaction. Any failure, from a
// malformed episode name to a storage fault, rolls the whole run back
// and leaves the dataset exactly as it was. There is no partial commit
// and no per-episode checkpointing.
//
// Season, episode and speaker writes are natural-key upserts, so
// re-running an import never duplicates them. Line inserts have no
// natural key and are duplicated by a re-run; callers that want a clean
// dataset import into a fresh session instead.
func (i *Importer) Import(ctx context.Context, db *gorm.DB, root string) (*Stats, error) {
	seasons, err := Scan(root)
	if err != nil {
		return nil, err
	}

	stats := &Stats{}
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		resolver := NewResolver(tx)
		for _, season := range seasons {
			log.Printf("Importing season %d (%d episodes)", season.Number, len(season.Episodes))

			seasonID, err := resolver.ResolveSeason(season.Number)
			if err != nil {
				return err
			}

			for _, episode := range season.Episodes {
				episodeID, err := resolver.ResolveEpisode(seasonID, episode.Number, episode.Title)
				if err != nil {
					return err
				}

				count, err := importLines(tx, resolver, seasonID, episodeID, episode.Path)
				if err != nil {
					return err
				}
				stats.Lines += count
				stats.Episodes++
			}
			stats.Seasons++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Import committed: %d seasons, %d episodes, %d lines", stats.Seasons, stats.Episodes, stats.Lines)
	return stats, nil
}

// importLines streams one transcript file into Line rows. Line numbers
// start at 1 and count every raw line, blanks included, so the numbers
// within an episode are always the contiguous sequence 1..N.
func importLines(tx *gorm.DB, resolver *Resolver, seasonID, episodeID uint, path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, &ImportError{Stage: StageRead, Path: path, Err: err}
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNumber := 1
	for scanner.Scan() {
		speaker, content, hasSpeaker := SplitLine(scanner.Text())

		line := models.Line{
			SeasonID:   seasonID,
			EpisodeID:  episodeID,
			LineNumber: lineNumber,
			Content:    content,
		}
		if hasSpeaker {
			speakerID, err := resolver.ResolveSpeaker(speaker)
			if err != nil {
				return 0, err
			}
			line.SpeakerID = &speakerID
		}

		if err := tx.Create(&line).Error; err != nil {
			return 0, &ImportError{Stage: StageInsert, Path: path, Err: err}
		}
		lineNumber++
	}
	if err := scanner.Err(); err != nil {
		return 0, &ImportError{Stage: StageRead, Path: path, Err: err}
	}

	return lineNumber - 1, nil
}
