package parser

import (
	"strconv"
	"strings"

	"github.com/ukaji3/schedulforge-go/pkg/schedulforge/models"
)

// ExcludedSheetPrefix marks postgraduate timetables, which are not served.
const ExcludedSheetPrefix = "PG TIME"

// ListSheets returns the selectable sheets: names starting with
// ExcludedSheetPrefix are skipped and repeated canonical names keep only
// their first occurrence. Indices are 1-based over the result.
func ListSheets(names []string) []models.SheetEntry {
	seen := make(map[string]bool, len(names))
	sheets := make([]models.SheetEntry, 0, len(names))
	for _, name := range names {
		canonical := Canonical(name)
		if strings.HasPrefix(canonical, ExcludedSheetPrefix) || seen[canonical] {
			continue
		}
		seen[canonical] = true
		sheets = append(sheets, models.SheetEntry{
			Index:     len(sheets) + 1,
			Name:      CleanText(name),
			Canonical: canonical,
			Source:    name,
		})
	}
	return sheets
}

// ResolveSheet returns the sheet at the 1-based choice.
func ResolveSheet(names []string, choice int) (models.SheetEntry, error) {
	sheets := ListSheets(names)
	if choice < 1 || choice > len(sheets) {
		return models.SheetEntry{}, &SelectionError{Choice: strconv.Itoa(choice), Count: len(sheets)}
	}
	return sheets[choice-1], nil
}

// ResolveSheetByName returns the sheet whose canonical name matches name.
func ResolveSheetByName(names []string, name string) (models.SheetEntry, error) {
	sheets := ListSheets(names)
	want := Canonical(name)
	for _, s := range sheets {
		if s.Canonical == want {
			return s, nil
		}
	}
	return models.SheetEntry{}, &SelectionError{Choice: strconv.Quote(name), Count: len(sheets)}
}
