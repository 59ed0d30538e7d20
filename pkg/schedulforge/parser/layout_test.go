package parser

import (
	"testing"

	"github.com/ukaji3/schedulforge-go/pkg/schedulforge/models"
)

func TestLayoutLookup(t *testing.T) {
	table := DefaultLayouts()

	tests := []struct {
		name     string
		expected models.Layout
	}{
		{"1ST YEAR A", models.Layout{HeaderRow: 4, StartRow: 7}},
		{"1ST YEAR B", models.Layout{HeaderRow: 6, StartRow: 9}},
		{"4TH YEAR A", models.Layout{HeaderRow: 5, StartRow: 7}},
		{"4TH YEAR B", models.Layout{HeaderRow: 6, StartRow: 8}},
		{"2ND YEAR", models.Layout{HeaderRow: 5, StartRow: 8}},
		{"1st year a", models.Layout{HeaderRow: 5, StartRow: 8}}, // exact match only
	}

	for _, tt := range tests {
		if got := table.Lookup(tt.name); got != tt.expected {
			t.Errorf("Lookup(%q) = %+v, expected %+v", tt.name, got, tt.expected)
		}
	}
}

func TestLayoutWith(t *testing.T) {
	base := DefaultLayouts()
	table := base.With(map[string]models.Layout{
		" 3rd year c": {HeaderRow: 3, StartRow: 6},
		"1ST YEAR A":  {HeaderRow: 2, StartRow: 5},
	})

	if got := table.Lookup("3RD YEAR C"); got != (models.Layout{HeaderRow: 3, StartRow: 6}) {
		t.Errorf("Expected added layout, got %+v", got)
	}
	if got := table.Lookup("1ST YEAR A"); got.HeaderRow != 2 {
		t.Errorf("Expected overridden layout, got %+v", got)
	}
	if got := base.Lookup("1ST YEAR A"); got.HeaderRow != 4 {
		t.Errorf("With modified the receiver: %+v", got)
	}
}
