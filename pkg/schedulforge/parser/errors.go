package parser

import (
	"errors"
	"fmt"
)

// ErrInvalidSelection indicates a sheet choice outside the listed sheets.
var ErrInvalidSelection = errors.New("invalid sheet selection")

// ErrGroupNotFound indicates a tutorial group absent from the header row.
var ErrGroupNotFound = errors.New("tutorial group not found")

// SelectionError carries the rejected sheet choice.
type SelectionError struct {
	Choice string
	Count  int
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("invalid sheet_choice %s: choose 1..%d", e.Choice, e.Count)
}

func (e *SelectionError) Unwrap() error {
	return ErrInvalidSelection
}

// GroupError carries the tutorial group that could not be located.
type GroupError struct {
	Group     string
	SheetName string
	HeaderRow int
}

func (e *GroupError) Error() string {
	return fmt.Sprintf("tutorial group %q not found in row %d of sheet %q", e.Group, e.HeaderRow, e.SheetName)
}

func (e *GroupError) Unwrap() error {
	return ErrGroupNotFound
}
