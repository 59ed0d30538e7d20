package models

import (
	"bytes"
	"encoding/json"
)

// Weekdays lists the schedule days in grid order.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// TimeSlots lists the 50-minute periods of a day in grid order.
var TimeSlots = []string{
	"08:00 AM", "08:50 AM", "09:40 AM", "10:30 AM", "11:20 AM", "12:10 PM",
	"01:00 PM", "01:50 PM", "02:40 PM", "03:30 PM", "04:20 PM", "05:10 PM",
	"06:00 PM", "06:50 PM",
}

const (
	// RowsPerSlot is the number of physical rows a time slot occupies.
	RowsPerSlot = 2
	// RowsPerDay is the number of physical rows a day occupies.
	RowsPerDay = 28
)

// Schedule maps day name to time slot label to entry.
// Days and slots without entries are absent.
type Schedule map[string]map[string]string

// NewSchedule returns a schedule with every weekday present and empty.
func NewSchedule() Schedule {
	s := make(Schedule, len(Weekdays))
	for _, day := range Weekdays {
		s[day] = make(map[string]string)
	}
	return s
}

// Set records entry at (day, slot), replacing any previous value.
func (s Schedule) Set(day, slot, entry string) {
	if s[day] == nil {
		s[day] = make(map[string]string)
	}
	s[day][slot] = entry
}

// Get returns the entry at (day, slot).
func (s Schedule) Get(day, slot string) (string, bool) {
	entry, ok := s[day][slot]
	return entry, ok
}

// Len returns the number of occupied slots.
func (s Schedule) Len() int {
	n := 0
	for _, slots := range s {
		n += len(slots)
	}
	return n
}

// MarshalJSON writes days and slots in grid order rather than sorted
// key order. Unknown keys are ignored.
func (s Schedule) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, day := range Weekdays {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeKey(&buf, day); err != nil {
			return nil, err
		}
		buf.WriteByte('{')
		first := true
		for _, slot := range TimeSlots {
			entry, ok := s[day][slot]
			if !ok {
				continue
			}
			if !first {
				buf.WriteByte(',')
			}
			first = false
			if err := writeKey(&buf, slot); err != nil {
				return nil, err
			}
			v, err := json.Marshal(entry)
			if err != nil {
				return nil, err
			}
			buf.Write(v)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeKey(buf *bytes.Buffer, key string) error {
	k, err := json.Marshal(key)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteByte(':')
	return nil
}

// FlaggedEntry is cell content kept as an entry without a recognizable
// course code.
type FlaggedEntry struct {
	Day     string `json:"day"`
	Time    string `json:"time"`
	Row     int    `json:"row"`
	Content string `json:"content"`
}

// Timetable is the extraction result for one tutorial group.
type Timetable struct {
	// SheetName is the resolved sheet's display name.
	SheetName string `json:"sheet_name"`
	// TutorialGroup is the requested group label.
	TutorialGroup string `json:"tutorial_group"`
	// TimeSlots is the ordered list of slot labels.
	TimeSlots []string `json:"time_slots"`
	// Timetable maps day to slot to entry.
	Timetable Schedule `json:"timetable"`
	// Flagged lists entries that need human review.
	Flagged []FlaggedEntry `json:"flagged,omitempty"`
}
