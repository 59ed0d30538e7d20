package parser

import (
	"sort"

	"github.com/ukaji3/schedulforge-go/pkg/schedulforge/document"
	"github.com/ukaji3/schedulforge-go/pkg/schedulforge/models"
)

// WindowRows is the number of physical rows covering the week.
var WindowRows = models.RowsPerDay * len(models.Weekdays)

// SlotAt maps a physical row to its (day, slot) grid position. Only the
// first row of a slot's band maps.
func SlotAt(startRow, row int) (day, slot int, ok bool) {
	offset := row - startRow
	if offset < 0 || offset >= WindowRows {
		return 0, 0, false
	}
	within := offset % models.RowsPerDay
	if within%models.RowsPerSlot != 0 {
		return 0, 0, false
	}
	slot = within / models.RowsPerSlot
	if slot >= len(models.TimeSlots) {
		return 0, 0, false
	}
	return offset / models.RowsPerDay, slot, true
}

// RowFor returns the physical row where (day, slot) begins.
func RowFor(startRow, day, slot int) int {
	return startRow + day*models.RowsPerDay + slot*models.RowsPerSlot
}

// Subject is the content attributed to one row of the group column.
type Subject struct {
	Row     int
	Content string
}

// ResolveSubjects collects the group column's contents within the week
// window. Rows covered by a merged region are attributed to the region's
// anchor row and read from the anchor cell, once per region, whatever the
// scan order. Results are sorted by row.
func ResolveSubjects(sheet document.Sheet, col, startRow int) []Subject {
	endRow := startRow + WindowRows - 1
	regions := sheet.MergedRegions()

	covering := make(map[int]int)
	for i, region := range regions {
		for row := max(region.R1, startRow); row <= min(region.R2, endRow); row++ {
			if !region.Contains(row, col) {
				break
			}
			if _, taken := covering[row]; !taken {
				covering[row] = i
			}
		}
	}

	contents := make(map[int]string)
	resolved := make(map[int]bool)
	for row := startRow; row <= endRow; row++ {
		i, merged := covering[row]
		if !merged {
			if v := sheet.Cell(row, col); !isBlank(v) {
				contents[row] = v
			}
			continue
		}
		if resolved[i] {
			continue
		}
		resolved[i] = true
		anchorRow, anchorCol := regions[i].Anchor()
		if v := sheet.Cell(anchorRow, anchorCol); !isBlank(v) {
			contents[anchorRow] = v
		}
	}

	subjects := make([]Subject, 0, len(contents))
	for row, content := range contents {
		subjects = append(subjects, Subject{Row: row, Content: content})
	}
	sort.Slice(subjects, func(i, j int) bool { return subjects[i].Row < subjects[j].Row })
	return subjects
}

// GridResult is the raw per-slot schedule of one group column.
type GridResult struct {
	Schedule models.Schedule
	Flagged  []models.FlaggedEntry
}

// ExtractGrid builds the uncompacted schedule of the group in column col.
// Subjects whose row is not the first row of a slot inside the week
// window are dropped.
func ExtractGrid(sheet document.Sheet, layout models.Layout, col int, group string, rules LabelRules) GridResult {
	result := GridResult{Schedule: models.NewSchedule()}

	for _, subject := range ResolveSubjects(sheet, col, layout.StartRow) {
		entry, kind := ClassifyCell(subject.Content, group, rules)
		if kind == EntrySkip {
			continue
		}
		day, slot, ok := SlotAt(layout.StartRow, subject.Row)
		if !ok {
			continue
		}

		dayName, slotName := models.Weekdays[day], models.TimeSlots[slot]
		result.Schedule.Set(dayName, slotName, entry)
		if kind == EntryUnrecognized {
			result.Flagged = append(result.Flagged, models.FlaggedEntry{
				Day:     dayName,
				Time:    slotName,
				Row:     subject.Row,
				Content: entry,
			})
		}
	}

	return result
}
