package document

import (
	"io"

	"github.com/extrame/xls"
	"github.com/pkg/errors"
)

// xlsCharset is used for legacy string records without a code page.
const xlsCharset = "utf-8"

// xlsDocument reads BIFF workbooks. The reader does not expose merge
// records, so sheets report no merged regions; merged content still sits
// in the anchor cell.
type xlsDocument struct {
	wb     *xls.WorkBook
	names  []string
	index  map[string]int
	sheets map[string]*grid
}

func openXLS(r io.ReadSeeker) (doc *xlsDocument, err error) {
	// the BIFF decoder panics on some truncated streams
	defer func() {
		if p := recover(); p != nil {
			doc, err = nil, errors.Errorf("open xls: corrupt workbook: %v", p)
		}
	}()

	wb, err := xls.OpenReader(r, xlsCharset)
	if err != nil {
		return nil, errors.Wrap(err, "open xls")
	}

	doc = &xlsDocument{
		wb:     wb,
		index:  make(map[string]int),
		sheets: make(map[string]*grid),
	}
	for i := 0; i < wb.NumSheets(); i++ {
		sheet := wb.GetSheet(i)
		if sheet == nil {
			continue
		}
		if _, dup := doc.index[sheet.Name]; dup {
			continue
		}
		doc.names = append(doc.names, sheet.Name)
		doc.index[sheet.Name] = i
	}
	return doc, nil
}

func (d *xlsDocument) SheetNames() []string {
	return append([]string(nil), d.names...)
}

func (d *xlsDocument) Sheet(name string) (Sheet, error) {
	if g, ok := d.sheets[name]; ok {
		return g, nil
	}
	idx, ok := d.index[name]
	if !ok {
		return nil, errors.Wrapf(ErrSheetNotFound, "%q", name)
	}
	sheet := d.wb.GetSheet(idx)
	if sheet == nil {
		return nil, errors.Wrapf(ErrSheetNotFound, "%q", name)
	}

	rows := make([][]string, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			continue
		}
		cols := make([]string, row.LastCol())
		for j := 0; j < row.LastCol(); j++ {
			cols[j] = row.Col(j)
		}
		rows[i] = cols
	}

	g := newGrid(name, rows, nil)
	d.sheets[name] = g
	return g, nil
}

func (d *xlsDocument) Close() error {
	return nil
}
