package parser

import (
	"regexp"
	"strings"
)

// coursePattern matches codes like "UEC301 L": letters, digits and a
// lecture/tutorial/practical marker.
var coursePattern = regexp.MustCompile(`[A-Z]{2,4}\d{2,4}\s*[LTP]`)

var spaceRun = regexp.MustCompile(`\s+`)

// LabelRules decides what to do with cell text that carries no course code.
type LabelRules struct {
	// Excluded lists labels that never denote a class.
	Excluded []string
	// MinLength is the shortest text kept as an unrecognized entry.
	MinLength int
}

// DefaultLabelRules returns the labels observed in batch sheets.
func DefaultLabelRules() LabelRules {
	return LabelRules{
		Excluded:  []string{"VK", "LAB", "LAB-2"},
		MinLength: 4,
	}
}

func (r LabelRules) excluded(label string) bool {
	for _, e := range r.Excluded {
		if Canonical(e) == label {
			return true
		}
	}
	return false
}

// EntryKind classifies cell content.
type EntryKind int

const (
	// EntrySkip is content that contributes nothing.
	EntrySkip EntryKind = iota
	// EntryCourse is content carrying a course code.
	EntryCourse
	// EntryUnrecognized is content kept verbatim for review.
	EntryUnrecognized
)

// ClassifyCell turns raw cell text into a schedule entry. The group label
// and the day column header are treated as header bleed-through.
func ClassifyCell(raw, group string, rules LabelRules) (string, EntryKind) {
	content := Canonical(raw)
	if content == "" || content == Canonical(group) || content == dayLabel {
		return "", EntrySkip
	}

	if code := coursePattern.FindString(content); code != "" {
		return spaceRun.ReplaceAllString(code, " "), EntryCourse
	}

	if rules.excluded(content) || len([]rune(content)) < rules.MinLength {
		return "", EntrySkip
	}
	return content, EntryUnrecognized
}

// CourseCode extracts the course code from free text, or "".
func CourseCode(text string) string {
	return spaceRun.ReplaceAllString(coursePattern.FindString(Canonical(text)), " ")
}

// ClassType names the kind of class a course entry denotes by its
// trailing marker.
func ClassType(entry string) string {
	code := CourseCode(entry)
	if code == "" {
		return ""
	}
	switch code[len(code)-1] {
	case 'L':
		return "lecture"
	case 'T':
		return "tutorial"
	case 'P':
		return "practical"
	}
	return ""
}

// isBlank reports whether s holds only whitespace.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
