// Package models defines data structures for timetable extraction.
package models

// SheetEntry describes one selectable timetable sheet.
type SheetEntry struct {
	// Index is the 1-based position after filtering and de-duplication.
	Index int `json:"index"`
	// Name is the sheet name with surrounding whitespace removed.
	Name string `json:"name"`
	// Canonical is the trimmed, uppercased name used for layout lookup.
	Canonical string `json:"-"`
	// Source is the raw sheet name as stored in the workbook.
	Source string `json:"-"`
}

// SheetList is the response body of a sheet listing.
type SheetList struct {
	Sheets []SheetEntry `json:"sheets"`
}

// GroupList is the response body of a tutorial group listing.
type GroupList struct {
	SheetName      string   `json:"sheet_name"`
	TutorialGroups []string `json:"tutorial_groups"`
}
