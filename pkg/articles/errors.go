package articles

import (
	"errors"
	"fmt"
)

// Stage names the pipeline step an error escaped from.
type Stage string

const (
	StageFetch     Stage = "fetch"
	StageExtract   Stage = "extract"
	StageSummarize Stage = "summarize"
)

var (
	// ErrInvalidURL rejects input before any network traffic happens.
	ErrInvalidURL = errors.New("invalid url")
	// ErrNoContent means the document carried no article text of usable
	// length.
	ErrNoContent = errors.New("no article content")
	// ErrUnsupportedContent means the URL resolved to a document kind the
	// extractor cannot read.
	ErrUnsupportedContent = errors.New("unsupported content type")
)

// StageError tags a failure with the stage it escaped from so the API layer
// can pick a status code without string matching.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
