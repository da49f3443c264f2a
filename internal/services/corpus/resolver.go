package corpus

import (
	"github.com/showquotes/transcript-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Resolver maps natural keys to surrogate ids inside one open import
// transaction, inserting on first sight and reusing thereafter.
//
// Every resolve is a single conditional write: INSERT .. ON CONFLICT ..
// RETURNING id. A separate existence check followed by an insert would
// race against a concurrent import of the same key; one statement
// cannot.
type Resolver struct {
	tx *gorm.DB
}

// NewResolver binds a resolver to the caller's active transaction.
func NewResolver(tx *gorm.DB) *Resolver {
	return &Resolver{tx: tx}
}

// ResolveSeason returns the surrogate id for a season number, creating
// the row on first sight. Existing rows are not mutated.
func (r *Resolver) ResolveSeason(number int) (uint, error) {
	season := models.Season{Number: number}
	err := r.tx.Clauses(
		clause.OnConflict{
			Columns:   []clause.Column{{Name: "number"}},
			DoUpdates: clause.AssignmentColumns([]string{"number"}),
		},
		clause.Returning{Columns: []clause.Column{{Name: "id"}}},
	).Create(&season).Error
	if err != nil {
		return 0, &ImportError{Stage: StageResolve, Err: err}
	}
	return season.ID, nil
}

// ResolveEpisode returns the surrogate id for a (season, number) pair,
// creating the row on first sight. On conflict the title is refreshed:
// the last import of a given episode wins.
func (r *Resolver) ResolveEpisode(seasonID uint, number int, title string) (uint, error) {
	episode := models.Episode{SeasonID: seasonID, Number: number, Title: title}
	err := r.tx.Clauses(
		clause.OnConflict{
			Columns:   []clause.Column{{Name: "season_id"}, {Name: "number"}},
			DoUpdates: clause.AssignmentColumns([]string{"title"}),
		},
		clause.Returning{Columns: []clause.Column{{Name: "id"}}},
	).Create(&episode).Error
	if err != nil {
		return 0, &ImportError{Stage: StageResolve, Err: err}
	}
	return episode.ID, nil
}

// ResolveSpeaker returns the surrogate id for a trimmed display name,
// creating the row on first sight. Names are matched exactly, so
// "ALICE" and "Alice" are two speakers.
func (r *Resolver) ResolveSpeaker(name string) (uint, error) {
	speaker := models.Speaker{Name: name}
	err := r.tx.Clauses(
		clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"name"}),
		},
		clause.Returning{Columns: []clause.Column{{Name: "id"}}},
	).Create(&speaker).Error
	if err != nil {
		return 0, &ImportError{Stage: StageResolve, Err: err}
	}
	return speaker.ID, nil
}
