package types

import (
	"github.com/showquotes/transcript-api/internal/services/corpus"
	"github.com/showquotes/transcript-api/internal/services/sessions"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	Sessions *sessions.Registry
	Importer corpus.Runner
}
