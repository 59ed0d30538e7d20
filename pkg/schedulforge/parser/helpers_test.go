package parser

import (
	"testing"

	"github.com/ukaji3/schedulforge-go/pkg/schedulforge/document"
)

// memorySheet builds a single in-memory sheet for tests.
func memorySheet(t *testing.T, cells map[string]string, merges ...string) document.Sheet {
	t.Helper()
	doc, err := document.NewMemory(document.MemorySheet{
		Name:   "1ST YEAR A",
		Cells:  cells,
		Merges: merges,
	})
	if err != nil {
		t.Fatalf("NewMemory failed: %v", err)
	}
	sheet, err := doc.Sheet("1ST YEAR A")
	if err != nil {
		t.Fatalf("Sheet failed: %v", err)
	}
	return sheet
}
