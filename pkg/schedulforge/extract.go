package schedulforge

import (
	"io"

	"github.com/ukaji3/schedulforge-go/pkg/schedulforge/document"
	"github.com/ukaji3/schedulforge-go/pkg/schedulforge/models"
	"github.com/ukaji3/schedulforge-go/pkg/schedulforge/parser"
)

// Selection identifies the sheet and tutorial group to extract.
type Selection struct {
	// SheetChoice is the 1-based index from ListSheets.
	SheetChoice int
	// SheetName selects by name when SheetChoice is zero.
	SheetName string
	// TutorialGroup is the header label of the group column.
	TutorialGroup string
}

// Load opens a workbook from disk. Failures match ErrDocumentLoad.
func Load(path string) (document.Document, error) {
	doc, err := document.Open(path)
	if err != nil {
		return nil, &loadError{err: err}
	}
	return doc, nil
}

// LoadReader opens a workbook from r; filename selects the format.
func LoadReader(r io.Reader, filename string) (document.Document, error) {
	doc, err := document.OpenReader(r, filename)
	if err != nil {
		return nil, &loadError{err: err}
	}
	return doc, nil
}

// ListSheets returns the selectable sheets of doc.
func ListSheets(doc document.Document) []models.SheetEntry {
	return parser.ListSheets(doc.SheetNames())
}

// ListTutorialGroups returns the group labels of the chosen sheet.
func ListTutorialGroups(doc document.Document, sel Selection, opts Options) (*models.GroupList, error) {
	entry, sheet, layout, err := resolve(doc, sel, opts)
	if err != nil {
		return nil, err
	}
	return &models.GroupList{
		SheetName:      entry.Name,
		TutorialGroups: parser.ListTutorialGroups(sheet, layout.HeaderRow),
	}, nil
}

// Extract builds the weekly timetable of one tutorial group. It either
// succeeds for the whole week or returns an error.
func Extract(doc document.Document, sel Selection, opts Options) (*models.Timetable, error) {
	entry, sheet, layout, err := resolve(doc, sel, opts)
	if err != nil {
		return nil, err
	}

	// Locate the group column in the header row
	col, err := parser.LocateGroupColumn(sheet, layout.HeaderRow, sel.TutorialGroup)
	if err != nil {
		return nil, NewExtractionError(entry.Name, "locate", err)
	}

	// Map cells onto the week grid
	grid := parser.ExtractGrid(sheet, layout, col, sel.TutorialGroup, opts.labels())

	schedule := grid.Schedule
	if !opts.Raw {
		schedule = parser.CompactSchedule(schedule)
	}

	return &models.Timetable{
		SheetName:     entry.Name,
		TutorialGroup: sel.TutorialGroup,
		TimeSlots:     append([]string(nil), models.TimeSlots...),
		Timetable:     schedule,
		Flagged:       grid.Flagged,
	}, nil
}

// ExtractFile loads path and extracts one timetable from it.
func ExtractFile(path string, sel Selection, opts Options) (*models.Timetable, error) {
	doc, err := Load(path)
	if err != nil {
		return nil, err
	}
	defer doc.Close()
	return Extract(doc, sel, opts)
}

func resolve(doc document.Document, sel Selection, opts Options) (models.SheetEntry, document.Sheet, models.Layout, error) {
	var (
		entry models.SheetEntry
		err   error
	)
	if sel.SheetChoice == 0 && sel.SheetName != "" {
		entry, err = parser.ResolveSheetByName(doc.SheetNames(), sel.SheetName)
	} else {
		entry, err = parser.ResolveSheet(doc.SheetNames(), sel.SheetChoice)
	}
	if err != nil {
		return entry, nil, models.Layout{}, NewExtractionError("", "resolve", err)
	}

	sheet, err := doc.Sheet(entry.Source)
	if err != nil {
		return entry, nil, models.Layout{}, NewExtractionError(entry.Name, "load", err)
	}

	return entry, sheet, opts.layouts().Lookup(entry.Canonical), nil
}
