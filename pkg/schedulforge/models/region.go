package models

// MergedRegion represents the cell bounds of a merged range.
type MergedRegion struct {
	// R1 is the anchor row (1-based).
	R1 int `json:"r1"`
	// C1 is the anchor column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// Contains reports whether (row, col) lies inside the region.
func (m MergedRegion) Contains(row, col int) bool {
	return row >= m.R1 && row <= m.R2 && col >= m.C1 && col <= m.C2
}

// Anchor returns the top-left cell holding the region's content.
func (m MergedRegion) Anchor() (row, col int) {
	return m.R1, m.C1
}
