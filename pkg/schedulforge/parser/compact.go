package parser

import (
	"fmt"

	"github.com/ukaji3/schedulforge-go/pkg/schedulforge/models"
)

// CompactSchedule collapses runs of identical consecutive entries within
// each day into the run's first slot, annotated "ENTRY (N slots)". An
// empty slot ends a run. The input is not modified.
func CompactSchedule(s models.Schedule) models.Schedule {
	out := models.NewSchedule()
	for _, day := range models.Weekdays {
		slots := s[day]

		runStart, prev, length := "", "", 0
		flush := func() {
			if length == 0 {
				return
			}
			if length > 1 {
				out.Set(day, runStart, fmt.Sprintf("%s (%d slots)", prev, length))
			} else {
				out.Set(day, runStart, prev)
			}
			runStart, prev, length = "", "", 0
		}

		for _, slot := range models.TimeSlots {
			entry, ok := slots[slot]
			if !ok {
				flush()
				continue
			}
			if length > 0 && entry == prev {
				length++
				continue
			}
			flush()
			runStart, prev, length = slot, entry, 1
		}
		flush()
	}
	return out
}
