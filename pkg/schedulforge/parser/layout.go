package parser

import "github.com/ukaji3/schedulforge-go/pkg/schedulforge/models"

// LayoutTable maps canonical sheet names to their layout.
type LayoutTable struct {
	Default models.Layout
	Known   map[string]models.Layout
}

// DefaultLayouts returns the layouts of the known batch sheets.
func DefaultLayouts() LayoutTable {
	return LayoutTable{
		Default: models.Layout{HeaderRow: 5, StartRow: 8},
		Known: map[string]models.Layout{
			"1ST YEAR A": {HeaderRow: 4, StartRow: 7},
			"1ST YEAR B": {HeaderRow: 6, StartRow: 9},
			"4TH YEAR A": {HeaderRow: 5, StartRow: 7},
			"4TH YEAR B": {HeaderRow: 6, StartRow: 8},
		},
	}
}

// Lookup returns the layout for a canonical sheet name. Matching is exact;
// unknown names get the default.
func (t LayoutTable) Lookup(canonical string) models.Layout {
	if l, ok := t.Known[canonical]; ok {
		return l
	}
	return t.Default
}

// With returns a copy of t with extra entries added or replaced. Keys are
// canonicalized.
func (t LayoutTable) With(extra map[string]models.Layout) LayoutTable {
	known := make(map[string]models.Layout, len(t.Known)+len(extra))
	for k, v := range t.Known {
		known[k] = v
	}
	for k, v := range extra {
		known[Canonical(k)] = v
	}
	return LayoutTable{Default: t.Default, Known: known}
}
