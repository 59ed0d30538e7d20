// Package schedulforge extracts per-group weekly timetables from batch
// timetable workbooks.
package schedulforge

import "github.com/ukaji3/schedulforge-go/pkg/schedulforge/parser"

// Options configures extraction behavior.
type Options struct {
	// Layouts maps sheet names to header and start rows.
	Layouts parser.LayoutTable
	// Labels decides what happens to cells without a course code.
	Labels parser.LabelRules
	// Raw disables slot compaction.
	Raw bool
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Layouts: parser.DefaultLayouts(),
		Labels:  parser.DefaultLabelRules(),
	}
}

func (o Options) layouts() parser.LayoutTable {
	if o.Layouts.Default.StartRow == 0 {
		return parser.DefaultLayouts().With(o.Layouts.Known)
	}
	return o.Layouts
}

func (o Options) labels() parser.LabelRules {
	if o.Labels.Excluded == nil && o.Labels.MinLength == 0 {
		return parser.DefaultLabelRules()
	}
	return o.Labels
}
