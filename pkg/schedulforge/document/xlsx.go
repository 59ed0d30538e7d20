package document

import (
	"io"

	"github.com/pkg/errors"
	"github.com/ukaji3/schedulforge-go/pkg/schedulforge/models"
	"github.com/xuri/excelize/v2"
)

type xlsxDocument struct {
	f      *excelize.File
	sheets map[string]*grid
}

func openXLSX(r io.Reader) (*xlsxDocument, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "open xlsx")
	}
	return &xlsxDocument{f: f, sheets: make(map[string]*grid)}, nil
}

func (d *xlsxDocument) SheetNames() []string {
	return d.f.GetSheetList()
}

func (d *xlsxDocument) Sheet(name string) (Sheet, error) {
	if g, ok := d.sheets[name]; ok {
		return g, nil
	}
	if idx, err := d.f.GetSheetIndex(name); err != nil || idx < 0 {
		return nil, errors.Wrapf(ErrSheetNotFound, "%q", name)
	}

	rows, err := d.f.GetRows(name)
	if err != nil {
		return nil, errors.Wrapf(err, "read rows of %q", name)
	}
	regions, err := extractMergedRegions(d.f, name)
	if err != nil {
		return nil, err
	}

	g := newGrid(name, rows, regions)
	d.sheets[name] = g
	return g, nil
}

func (d *xlsxDocument) Close() error {
	return d.f.Close()
}

// extractMergedRegions reads the merge list of a sheet.
func extractMergedRegions(f *excelize.File, sheetName string) ([]models.MergedRegion, error) {
	merges, err := f.GetMergeCells(sheetName)
	if err != nil {
		return nil, errors.Wrapf(err, "read merged cells of %q", sheetName)
	}

	regions := make([]models.MergedRegion, 0, len(merges))
	for _, mc := range merges {
		region, err := parseRange(mc.GetStartAxis() + ":" + mc.GetEndAxis())
		if err != nil {
			return nil, errors.Wrapf(err, "merged range in %q", sheetName)
		}
		regions = append(regions, region)
	}
	return regions, nil
}
