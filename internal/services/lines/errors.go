package lines

import "errors"

// Common errors
var (
	// ErrLineNotFound is the defined empty outcome of a random sample
	// that matched zero rows. It is not a storage fault.
	ErrLineNotFound = errors.New("no line matches the given filters")

	// ErrEmptyPhrase rejects a search without a phrase.
	ErrEmptyPhrase = errors.New("search phrase is required")
)
