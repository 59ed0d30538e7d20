package schedulforge

import (
	"errors"
	"fmt"

	"github.com/ukaji3/schedulforge-go/pkg/schedulforge/parser"
)

// ErrInvalidSelection indicates a sheet choice outside the listed sheets.
var ErrInvalidSelection = parser.ErrInvalidSelection

// ErrGroupNotFound indicates a tutorial group absent from the header row.
var ErrGroupNotFound = parser.ErrGroupNotFound

// ErrDocumentLoad indicates the input is not a readable workbook.
var ErrDocumentLoad = errors.New("document load failure")

// Code is a stable identifier for an error category.
type Code string

const (
	CodeInvalidSelection Code = "invalid_selection"
	CodeGroupNotFound    Code = "group_not_found"
	CodeDocumentLoad     Code = "document_load_failure"
	CodeUnexpected       Code = "unexpected_failure"
)

// ExtractionError represents an error during extraction.
type ExtractionError struct {
	SheetName string
	Stage     string // "resolve", "load", "locate"
	Err       error
}

func (e *ExtractionError) Error() string {
	if e.SheetName == "" {
		return fmt.Sprintf("extraction error (%s): %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("extraction error in sheet %q (%s): %v", e.SheetName, e.Stage, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(sheetName, stage string, err error) *ExtractionError {
	return &ExtractionError{
		SheetName: sheetName,
		Stage:     stage,
		Err:       err,
	}
}

// loadError marks err as a document load failure while keeping its cause.
type loadError struct {
	err error
}

func (e *loadError) Error() string {
	return fmt.Sprintf("%v: %v", ErrDocumentLoad, e.err)
}

func (e *loadError) Unwrap() []error {
	return []error{ErrDocumentLoad, e.err}
}

// ErrorCode classifies err. Anything not anticipated is CodeUnexpected.
func ErrorCode(err error) Code {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidSelection):
		return CodeInvalidSelection
	case errors.Is(err, ErrGroupNotFound):
		return CodeGroupNotFound
	case errors.Is(err, ErrDocumentLoad):
		return CodeDocumentLoad
	default:
		return CodeUnexpected
	}
}

// GroupError names the tutorial group that could not be located.
type GroupError = parser.GroupError

// SelectionError names the rejected sheet choice.
type SelectionError = parser.SelectionError
