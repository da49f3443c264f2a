package types

import (
	"github.com/showquotes/transcript-api/internal/models"
	"github.com/showquotes/transcript-api/internal/services/lines"
)

// ToSeason converts a Season model to its wire shape
func ToSeason(season models.Season) Season {
	return Season{ID: season.ID, Number: season.Number}
}

// ToSeasons converts a slice of Season models
func ToSeasons(seasons []models.Season) []Season {
	out := make([]Season, 0, len(seasons))
	for _, season := range seasons {
		out = append(out, ToSeason(season))
	}
	return out
}

// ToEpisode converts an Episode model to its wire shape
func ToEpisode(episode models.Episode) Episode {
	return Episode{
		ID:       episode.ID,
		SeasonID: episode.SeasonID,
		Number:   episode.Number,
		Title:    episode.Title,
	}
}

// ToEpisodes converts a slice of Episode models
func ToEpisodes(episodes []models.Episode) []Episode {
	out := make([]Episode, 0, len(episodes))
	for _, episode := range episodes {
		out = append(out, ToEpisode(episode))
	}
	return out
}

// ToSpeaker converts a Speaker model to its wire shape
func ToSpeaker(speaker models.Speaker) Speaker {
	return Speaker{ID: speaker.ID, Name: speaker.Name}
}

// ToSpeakers converts a slice of Speaker models
func ToSpeakers(speakers []models.Speaker) []Speaker {
	out := make([]Speaker, 0, len(speakers))
	for _, speaker := range speakers {
		out = append(out, ToSpeaker(speaker))
	}
	return out
}

// ToLine converts a joined line row to its wire shape
func ToLine(result lines.LineResult) Line {
	return Line{
		ID:          result.ID,
		SeasonID:    result.SeasonID,
		EpisodeID:   result.EpisodeID,
		SpeakerID:   result.SpeakerID,
		SpeakerName: result.SpeakerName,
		LineNumber:  result.LineNumber,
		Content:     result.Content,
	}
}

// ToLines converts a slice of joined line rows
func ToLines(results []lines.LineResult) []Line {
	out := make([]Line, 0, len(results))
	for _, result := range results {
		out = append(out, ToLine(result))
	}
	return out
}

// ToSearchMatch converts a search match with its context window
func ToSearchMatch(match lines.Match) SearchMatch {
	return SearchMatch{
		Line:    ToLine(match.LineResult),
		Context: ToLines(match.Context),
	}
}

// ToSearchMatches converts a slice of search matches
func ToSearchMatches(matches []lines.Match) []SearchMatch {
	out := make([]SearchMatch, 0, len(matches))
	for _, match := range matches {
		out = append(out, ToSearchMatch(match))
	}
	return out
}
