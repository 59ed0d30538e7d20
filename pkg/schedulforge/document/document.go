// Package document provides read-only access to timetable workbooks.
package document

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/ukaji3/schedulforge-go/pkg/schedulforge/models"
)

// ErrUnsupportedFormat indicates a file extension no reader handles.
var ErrUnsupportedFormat = errors.New("unsupported workbook format")

// ErrSheetNotFound indicates a sheet name absent from the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// Sheet is a single worksheet. Rows and columns are 1-based.
type Sheet interface {
	Name() string
	// MaxColumn returns the widest populated column.
	MaxColumn() int
	// Cell returns the cell text, or "" for empty or missing cells.
	Cell(row, col int) string
	MergedRegions() []models.MergedRegion
}

// Document is a loaded workbook.
type Document interface {
	// SheetNames returns sheet names in workbook order.
	SheetNames() []string
	Sheet(name string) (Sheet, error)
	Close() error
}

// Open loads the workbook at path.
func Open(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()
	return OpenReader(f, filepath.Base(path))
}

// OpenReader loads a workbook from r. The filename extension selects the
// reader; anything other than .xls is treated as OOXML.
func OpenReader(r io.Reader, filename string) (Document, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xls":
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, errors.Wrap(err, "read xls")
		}
		doc, err := openXLS(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		return doc, nil
	case ".xlsx", ".xlsm", ".xltx", ".xltm", "":
		doc, err := openXLSX(r)
		if err != nil {
			return nil, err
		}
		return doc, nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%q", filename)
	}
}

// grid is a row-major cell store shared by the readers.
type grid struct {
	name    string
	rows    [][]string
	maxCol  int
	regions []models.MergedRegion
}

func newGrid(name string, rows [][]string, regions []models.MergedRegion) *grid {
	g := &grid{name: name, rows: rows, regions: regions}
	for _, row := range rows {
		if len(row) > g.maxCol {
			g.maxCol = len(row)
		}
	}
	return g
}

func (g *grid) Name() string { return g.name }

func (g *grid) MaxColumn() int { return g.maxCol }

func (g *grid) Cell(row, col int) string {
	if row < 1 || col < 1 || row > len(g.rows) {
		return ""
	}
	r := g.rows[row-1]
	if col > len(r) {
		return ""
	}
	return r[col-1]
}

func (g *grid) MergedRegions() []models.MergedRegion { return g.regions }
