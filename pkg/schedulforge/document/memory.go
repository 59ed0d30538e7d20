package document

import (
	"github.com/pkg/errors"
	"github.com/ukaji3/schedulforge-go/pkg/schedulforge/models"
)

// MemorySheet is an in-memory sheet description.
type MemorySheet struct {
	Name string
	// Cells maps A1-style references to values.
	Cells map[string]string
	// Merges lists A1-style ranges such as "B7:B10".
	Merges []string
}

type memoryDocument struct {
	names  []string
	sheets map[string]*grid
}

// NewMemory builds a document from in-memory sheets, in order.
func NewMemory(sheets ...MemorySheet) (Document, error) {
	doc := &memoryDocument{sheets: make(map[string]*grid)}
	for _, s := range sheets {
		var rows [][]string
		for ref, value := range s.Cells {
			region, err := parseRange(ref)
			if err != nil {
				return nil, errors.Wrapf(err, "sheet %q", s.Name)
			}
			for len(rows) < region.R1 {
				rows = append(rows, nil)
			}
			row := rows[region.R1-1]
			for len(row) < region.C1 {
				row = append(row, "")
			}
			row[region.C1-1] = value
			rows[region.R1-1] = row
		}

		regions := make([]models.MergedRegion, 0, len(s.Merges))
		for _, ref := range s.Merges {
			region, err := parseRange(ref)
			if err != nil {
				return nil, errors.Wrapf(err, "sheet %q", s.Name)
			}
			regions = append(regions, region)
		}

		if _, dup := doc.sheets[s.Name]; !dup {
			doc.names = append(doc.names, s.Name)
		}
		doc.sheets[s.Name] = newGrid(s.Name, rows, regions)
	}
	return doc, nil
}

func (d *memoryDocument) SheetNames() []string {
	return append([]string(nil), d.names...)
}

func (d *memoryDocument) Sheet(name string) (Sheet, error) {
	g, ok := d.sheets[name]
	if !ok {
		return nil, errors.Wrapf(ErrSheetNotFound, "%q", name)
	}
	return g, nil
}

func (d *memoryDocument) Close() error {
	return nil
}
