package parser

import (
	"reflect"
	"testing"

	"github.com/ukaji3/schedulforge-go/pkg/schedulforge/models"
)

func scheduleOf(day string, entries map[int]string) models.Schedule {
	s := models.NewSchedule()
	for slot, entry := range entries {
		s.Set(day, models.TimeSlots[slot], entry)
	}
	return s
}

func TestCompactSchedule(t *testing.T) {
	tests := []struct {
		name     string
		input    map[int]string
		expected map[int]string
	}{
		{
			name:     "run then change",
			input:    map[int]string{0: "A", 1: "A", 2: "A", 3: "B"},
			expected: map[int]string{0: "A (3 slots)", 3: "B"},
		},
		{
			name:     "run ends at last slot",
			input:    map[int]string{11: "B", 12: "C", 13: "C"},
			expected: map[int]string{11: "B", 12: "C (2 slots)"},
		},
		{
			name:     "gap breaks run",
			input:    map[int]string{0: "A", 2: "A"},
			expected: map[int]string{0: "A", 2: "A"},
		},
		{
			name:     "alternating",
			input:    map[int]string{4: "A", 5: "B", 6: "A"},
			expected: map[int]string{4: "A", 5: "B", 6: "A"},
		},
		{
			name:     "whole day",
			input:    map[int]string{0: "X", 1: "X", 2: "X", 3: "X", 4: "X", 5: "X", 6: "X", 7: "X", 8: "X", 9: "X", 10: "X", 11: "X", 12: "X", 13: "X"},
			expected: map[int]string{0: "X (14 slots)"},
		},
		{
			name:     "empty",
			input:    map[int]string{},
			expected: map[int]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := scheduleOf("Wednesday", tt.input)
			got := CompactSchedule(input)
			want := scheduleOf("Wednesday", tt.expected)
			if !reflect.DeepEqual(got, want) {
				t.Errorf("CompactSchedule = %v, expected %v", got, want)
			}
			if !reflect.DeepEqual(input, scheduleOf("Wednesday", tt.input)) {
				t.Errorf("CompactSchedule modified its input")
			}
		})
	}
}

func TestCompactScheduleDaysIndependent(t *testing.T) {
	s := models.NewSchedule()
	s.Set("Monday", "06:50 PM", "A")
	s.Set("Tuesday", "08:00 AM", "A")

	got := CompactSchedule(s)
	if !reflect.DeepEqual(got, s) {
		t.Errorf("Runs must not cross days: got %v", got)
	}
}
