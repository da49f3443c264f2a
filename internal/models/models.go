package models

import (
	"gorm.io/gorm"
)

// Season represents one season of the show. The season number is the
// natural key; the surrogate ID is used for all relationships.
type Season struct {
	gorm.Model
	Number   int       `json:"number" gorm:"uniqueIndex;not null"`
	Episodes []Episode `json:"episodes,omitempty" gorm:"foreignKey:SeasonID"`
}

// Episode represents one episode transcript file. (SeasonID, Number) is
// the natural key. Title may be empty when the source filename carries
// no title segment; a later import of the same episode refreshes it.
type Episode struct {
	gorm.Model
	SeasonID uint   `json:"season_id" gorm:"not null;uniqueIndex:idx_episodes_season_number"`
	Number   int    `json:"number" gorm:"not null;uniqueIndex:idx_episodes_season_number"`
	Title    string `json:"title"`
	Lines    []Line `json:"lines,omitempty" gorm:"foreignKey:EpisodeID"`
}

// Speaker is a character or cast member attributed by a transcript
// line. The trimmed display name is globally unique and case-sensitive.
type Speaker struct {
	gorm.Model
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}

// Line is a single transcript line. SpeakerID is nil for narration and
// stage directions. SeasonID is denormalized from the parent episode so
// filtered reads never need the extra join.
//
// Lines carry no natural key on purpose: re-importing a corpus into the
// same dataset inserts every line again. Seasons, episodes and speakers
// are deduplicated by their natural keys; lines are not.
type Line struct {
	gorm.Model
	SeasonID   uint   `json:"season_id" gorm:"not null;index"`
	EpisodeID  uint   `json:"episode_id" gorm:"not null;index"`
	SpeakerID  *uint  `json:"speaker_id" gorm:"index"`
	LineNumber int    `json:"line_number" gorm:"not null"`
	Content    string `json:"content"`
}

// LineMetadata holds per-line sentiment annotations. The table exists
// in the schema but nothing in the import pipeline populates it yet.
type LineMetadata struct {
	gorm.Model
	LineID         uint   `json:"line_id" gorm:"not null;uniqueIndex"`
	Sentiment      string `json:"sentiment"` // Positive, Neutral, Negative
	Tone           string `json:"tone"`
	PrimaryEmotion string `json:"primary_emotion"`
}

// All returns every model that belongs in a session dataset, in
// migration order.
func All() []any {
	return []any{
		&Season{},
		&Episode{},
		&Speaker{},
		&Line{},
		&LineMetadata{},
	}
}
