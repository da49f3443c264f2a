package lines

import (
	"context"

	"github.com/showquotes/transcript-api/internal/models"
)

// Filters are the optional criteria shared by the sampling and search
// reads. Each is independently present or absent; present filters are
// combined with logical AND in declaration order.
type Filters struct {
	Season  *uint
	Episode *uint
	Speaker *uint
}

// LineResult is a transcript line joined with its speaker's display
// name. SpeakerName is nil for narration and stage directions.
type LineResult struct {
	models.Line
	SpeakerName *string `json:"speaker_name"`
}

// Match is one search hit, optionally paired with the surrounding
// lines of the same episode.
type Match struct {
	LineResult
	Context []LineResult `json:"context,omitempty"`
}

// Reader is the query surface over one session's dataset. All reads
// are stateless and side-effect free.
type Reader interface {
	Random(ctx context.Context, filters Filters) (*LineResult, error)
	Search(ctx context.Context, phrase string, filters Filters, radius int) ([]Match, error)
	Transcript(ctx context.Context, seasonNumber, episodeNumber int) ([]LineResult, error)
}
