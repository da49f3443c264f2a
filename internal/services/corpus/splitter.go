package corpus

import "strings"

// SplitLine splits one raw transcript line into an optional speaker
// label and the spoken content. The first ':' separates the two; lines
// without one are narration or stage directions and carry no speaker.
// A ':' with nothing but whitespace before it also yields no speaker,
// so an empty label never becomes a Speaker row.
func SplitLine(raw string) (speaker, content string, hasSpeaker bool) {
	before, after, found := strings.Cut(raw, ":")
	if !found {
		return "", strings.TrimSpace(raw), false
	}

	speaker = strings.TrimSpace(before)
	content = strings.TrimSpace(after)
	if speaker == "" {
		return "", content, false
	}
	return speaker, content, true
}
