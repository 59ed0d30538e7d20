package parser

import "github.com/ukaji3/schedulforge-go/pkg/schedulforge/document"

// dayLabel is the header of the column listing weekdays.
const dayLabel = "DAY"

// LocateGroupColumn returns the first column whose cleaned header-row cell
// equals group. The comparison is case-sensitive.
func LocateGroupColumn(sheet document.Sheet, headerRow int, group string) (int, error) {
	want := CleanText(group)
	if want != "" {
		for col := 1; col <= sheet.MaxColumn(); col++ {
			if CleanText(sheet.Cell(headerRow, col)) == want {
				return col, nil
			}
		}
	}
	return 0, &GroupError{Group: group, SheetName: sheet.Name(), HeaderRow: headerRow}
}

// ListTutorialGroups returns the cleaned non-empty header labels in column
// order, excluding the day column label.
func ListTutorialGroups(sheet document.Sheet, headerRow int) []string {
	groups := []string{}
	for col := 1; col <= sheet.MaxColumn(); col++ {
		label := CleanText(sheet.Cell(headerRow, col))
		if label == "" || label == dayLabel {
			continue
		}
		groups = append(groups, label)
	}
	return groups
}
