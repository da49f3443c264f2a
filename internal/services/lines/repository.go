package lines

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/showquotes/transcript-api/internal/models"
	"gorm.io/gorm"
)

// Repository composes filtered reads over the lines of one dataset.
type Repository struct {
	db *gorm.DB
}

// Ensure Repository implements the Reader interface
var _ Reader = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// joined is the shared base query: lines with the speaker display name
// surfaced through a left join, so speakerless lines still return.
func (r *Repository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Line{}).
		Select("lines.*, speakers.name AS speaker_name").
		Joins("LEFT JOIN speakers ON speakers.id = lines.speaker_id")
}

// applyFilters folds the optional criteria onto the query as equality
// predicates, always in declaration order: season, episode, speaker.
func applyFilters(query *gorm.DB, filters Filters) *gorm.DB {
	if filters.Season != nil {
		query = query.Where("lines.season_id = ?", *filters.Season)
	}
	if filters.Episode != nil {
		query = query.Where("lines.episode_id = ?", *filters.Episode)
	}
	if filters.Speaker != nil {
		query = query.Where("lines.speaker_id = ?", *filters.Speaker)
	}
	return query
}

// Random returns one uniformly-random line among those satisfying the
// filters, or ErrLineNotFound when nothing matches. With no filters it
// samples the whole dataset.
func (r *Repository) Random(ctx context.Context, filters Filters) (*LineResult, error) {
	var results []LineResult
	err := applyFilters(r.joined(ctx), filters).
		Order("RANDOM()").
		Limit(1).
		Find(&results).Error
	if err != nil {
		return nil, fmt.Errorf("sampling random line: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrLineNotFound
	}
	return &results[0], nil
}

// Search returns every line whose content contains the phrase, subject
// to the same optional filters, ordered by line id. SQLite's default
// LIKE collation makes the match case-insensitive for ASCII text; that
// behavior is deliberate and covered by tests. The phrase is always a
// literal substring: % and _ are escaped, never wildcards.
//
// When radius > 0, each match carries the lines of its own episode
// whose numbers fall in [n-radius, n+radius], ascending, the match
// included. Context lookups are independent per match: a storage fault
// fetching one window degrades that match's context to empty instead
// of failing the request.
func (r *Repository) Search(ctx context.Context, phrase string, filters Filters, radius int) ([]Match, error) {
	if phrase == "" {
		return nil, ErrEmptyPhrase
	}
	if radius < 0 {
		radius = 0
	}

	var results []LineResult
	err := applyFilters(r.joined(ctx), filters).
		Where(`lines.content LIKE ? ESCAPE '\'`, "%"+escapeLike(phrase)+"%").
		Order("lines.id ASC").
		Find(&results).Error
	if err != nil {
		return nil, fmt.Errorf("searching lines: %w", err)
	}

	matches := make([]Match, 0, len(results))
	for _, result := range results {
		match := Match{LineResult: result}
		if radius > 0 {
			window, err := r.contextWindow(ctx, result.EpisodeID, result.LineNumber, radius)
			if err != nil {
				log.Printf("[WARN] context fetch failed for line %d: %v", result.ID, err)
			} else {
				match.Context = window
			}
		}
		matches = append(matches, match)
	}
	return matches, nil
}

// escapeLike backslash-escapes LIKE wildcards so a phrase containing
// them still matches as a literal substring.
func escapeLike(phrase string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(phrase)
}

func (r *Repository) contextWindow(ctx context.Context, episodeID uint, lineNumber, radius int) ([]LineResult, error) {
	var window []LineResult
	err := r.joined(ctx).
		Where("lines.episode_id = ?", episodeID).
		Where("lines.line_number BETWEEN ? AND ?", lineNumber-radius, lineNumber+radius).
		Order("lines.line_number ASC").
		Find(&window).Error
	if err != nil {
		return nil, err
	}
	return window, nil
}

// Transcript returns a whole episode addressed by its natural numbers,
// in line order.
func (r *Repository) Transcript(ctx context.Context, seasonNumber, episodeNumber int) ([]LineResult, error) {
	var results []LineResult
	err := r.joined(ctx).
		Joins("JOIN episodes ON episodes.id = lines.episode_id").
		Joins("JOIN seasons ON seasons.id = episodes.season_id").
		Where("seasons.number = ? AND episodes.number = ?", seasonNumber, episodeNumber).
		Order("lines.line_number ASC").
		Find(&results).Error
	if err != nil {
		return nil, fmt.Errorf("fetching transcript: %w", err)
	}
	return results, nil
}
