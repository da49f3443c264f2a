package corpus

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrMalformedEpisodeName = errors.New("malformed episode filename")
	ErrImportFailed         = errors.New("import failed")
)

// Import stages, recorded on ImportError for diagnostics.
const (
	StageScan    = "scan"
	StageRead    = "read"
	StageResolve = "resolve"
	StageInsert  = "insert"
)

// ClassificationError reports an episode filename whose numeric prefix
// could not be parsed. Unlike an unrecognized season-directory entry,
// which is skipped with a warning, this aborts the whole import.
type ClassificationError struct {
	Name string
}

func (e ClassificationError) Error() string {
	return fmt.Sprintf("invalid episode file name %q", e.Name)
}

func (e ClassificationError) Is(target error) bool {
	return target == ErrMalformedEpisodeName || target == ErrImportFailed
}

// ImportError wraps a filesystem or storage fault raised while a corpus
// import was in flight. The enclosing transaction is rolled back, so an
// ImportError always means the dataset is unchanged.
type ImportError struct {
	Stage string
	Path  string
	Err   error
}

func (e *ImportError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("import %s failed for %s: %v", e.Stage, e.Path, e.Err)
	}
	return fmt.Sprintf("import %s failed: %v", e.Stage, e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

func (e *ImportError) Is(target error) bool {
	return target == ErrImportFailed
}
