package document

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/ukaji3/schedulforge-go/pkg/schedulforge/models"
	"github.com/xuri/excelize/v2"
)

// parseRange parses a range string like $A$1:$D$10 or B7:B10 into a
// region. A single cell reference yields a one-cell region. Reversed
// corners are normalized.
func parseRange(ref string) (models.MergedRegion, error) {
	ref = strings.ReplaceAll(strings.TrimSpace(ref), "$", "")
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		ref = ref[idx+1:]
	}

	parts := strings.Split(ref, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return models.MergedRegion{}, errors.Errorf("malformed range %q", ref)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.MergedRegion{}, errors.Wrapf(err, "range %q", ref)
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.MergedRegion{}, errors.Wrapf(err, "range %q", ref)
	}

	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}

	return models.MergedRegion{
		R1: startRow,
		C1: startCol,
		R2: endRow,
		C2: endCol,
	}, nil
}
