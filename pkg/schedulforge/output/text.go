package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ukaji3/schedulforge-go/pkg/schedulforge/models"
	"github.com/ukaji3/schedulforge-go/pkg/schedulforge/parser"
)

// WriteText renders a timetable as a slot-by-day table followed by a
// per-day course listing.
func WriteText(w io.Writer, tt *models.Timetable) error {
	if _, err := fmt.Fprintf(w, "Timetable for Tutorial Group: %s (%s)\n\n", tt.TutorialGroup, tt.SheetName); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Time\t%s\n", strings.Join(models.Weekdays, "\t"))
	for _, slot := range tt.TimeSlots {
		cells := make([]string, len(models.Weekdays))
		empty := true
		for i, day := range models.Weekdays {
			if entry, ok := tt.Timetable.Get(day, slot); ok {
				cells[i] = entry
				empty = false
			} else {
				cells[i] = "-"
			}
		}
		if empty {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\n", slot, strings.Join(cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	for _, day := range models.Weekdays {
		fmt.Fprintf(w, "%s:\n", day)
		for _, slot := range tt.TimeSlots {
			entry, ok := tt.Timetable.Get(day, slot)
			if !ok {
				continue
			}
			if kind := parser.ClassType(entry); kind != "" {
				fmt.Fprintf(w, "  %s  %s [%s]\n", slot, entry, kind)
			} else {
				fmt.Fprintf(w, "  %s  %s\n", slot, entry)
			}
		}
	}

	if len(tt.Flagged) > 0 {
		fmt.Fprintln(w, "\nUnrecognized entries (please review):")
		for _, f := range tt.Flagged {
			fmt.Fprintf(w, "  %s %s row %d: %s\n", f.Day, f.Time, f.Row, f.Content)
		}
	}
	return nil
}

// WriteSheets renders a numbered sheet list.
func WriteSheets(w io.Writer, sheets []models.SheetEntry) error {
	for _, s := range sheets {
		if _, err := fmt.Fprintf(w, "%d. %s\n", s.Index, s.Name); err != nil {
			return err
		}
	}
	return nil
}
