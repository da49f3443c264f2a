package types

import "github.com/showquotes/transcript-api/internal/services/corpus"

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse is the envelope for all error replies
type ErrorResponse struct {
	Status  string `json:"status" example:"error"`
	Message string `json:"message" example:"Season not found"`
	Details string `json:"details,omitempty"`
}

// Season is the wire shape of a season
type Season struct {
	ID     uint `json:"id" example:"1"`
	Number int  `json:"number" example:"3"`
}

// Episode is the wire shape of an episode
type Episode struct {
	ID       uint   `json:"id" example:"12"`
	SeasonID uint   `json:"season_id" example:"1"`
	Number   int    `json:"number" example:"4"`
	Title    string `json:"title" example:"The Pilot"`
}

// Speaker is the wire shape of a speaker
type Speaker struct {
	ID   uint   `json:"id" example:"7"`
	Name string `json:"name" example:"Alice"`
}

// Line is the wire shape of a transcript line. SpeakerID and
// SpeakerName are null for narration and stage directions.
type Line struct {
	ID          uint    `json:"id" example:"101"`
	SeasonID    uint    `json:"season_id" example:"1"`
	EpisodeID   uint    `json:"episode_id" example:"12"`
	SpeakerID   *uint   `json:"speaker_id"`
	SpeakerName *string `json:"speaker_name"`
	LineNumber  int     `json:"line_number" example:"42"`
	Content     string  `json:"content" example:"hello world"`
}

// SearchMatch pairs one matching line with its context window
type SearchMatch struct {
	Line    Line   `json:"line"`
	Context []Line `json:"context,omitempty"`
}

// SessionResponse for session creation
type SessionResponse struct {
	BaseResponse
	SessionID string `json:"session_id"`
}

// ImportResponse for a committed corpus import
type ImportResponse struct {
	BaseResponse
	Stats corpus.Stats `json:"stats"`
}

// SeasonsResponse for the season listing
type SeasonsResponse struct {
	BaseResponse
	Seasons []Season `json:"seasons"`
	Count   int      `json:"count"`
}

// EpisodesResponse for episodes of one season
type EpisodesResponse struct {
	BaseResponse
	Episodes []Episode `json:"episodes"`
	Count    int       `json:"count"`
}

// SpeakersResponse for the speaker listing
type SpeakersResponse struct {
	BaseResponse
	Speakers []Speaker `json:"speakers"`
	Count    int       `json:"count"`
}

// TranscriptResponse for a whole episode
type TranscriptResponse struct {
	BaseResponse
	Lines []Line `json:"lines"`
	Count int    `json:"count"`
}

// LineResponse for a single sampled line
type LineResponse struct {
	BaseResponse
	Line Line `json:"line"`
}

// SearchResponse for phrase search results
type SearchResponse struct {
	BaseResponse
	Matches []SearchMatch `json:"matches"`
	Count   int           `json:"count"`
}
