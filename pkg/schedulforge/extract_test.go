package schedulforge

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/schedulforge-go/pkg/schedulforge/models"
	"github.com/xuri/excelize/v2"
)

// buildWorkbook writes a workbook with a first-year sheet, a postgraduate
// sheet, a duplicate and a default-layout sheet.
func buildWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	first := "1ST YEAR A"
	require.NoError(t, f.SetSheetName("Sheet1", first))
	for _, name := range []string{"PG TIME TABLE", " 1st year a", "2ND YEAR"} {
		_, err := f.NewSheet(name)
		require.NoError(t, err)
	}

	// 1ST YEAR A: header row 4, data from row 7
	set := func(sheet, cell string, value any) {
		require.NoError(t, f.SetCellValue(sheet, cell, value))
	}
	set(first, "A4", "DAY")
	set(first, "B4", "2O31")
	set(first, "C4", "2O34 ")
	set(first, "D4", "2O35")

	// Monday 09:40 AM through 11:20 AM, then 12:10 PM
	set(first, "C11", "UEC301 L\nLT-101\nDr. Rao")
	set(first, "C13", "UEC301 L LT-101")
	set(first, "C15", "UEC301 L LT-102")
	set(first, "C17", "UMA003 T E-204")
	// Tuesday 08:00 AM, shared across groups
	set(first, "B35", "UPH004 L shared lecture")
	// Wednesday 08:00 AM, three slots
	set(first, "C63", "UES013 P Workshop")
	// Friday first and last slots
	set(first, "C119", "Capstone Review")
	set(first, "C145", "UHU005 L")
	set(first, "C9", "VK")

	require.NoError(t, f.MergeCell(first, "B35", "D36"))
	require.NoError(t, f.MergeCell(first, "C63", "C68"))

	// 2ND YEAR: default layout, header row 5, data from row 8
	second := "2ND YEAR"
	set(second, "B5", "3C11")
	set(second, "B36", "UCS301 L")

	path := filepath.Join(t.TempDir(), "timetable.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestListSheets(t *testing.T) {
	doc, err := Load(buildWorkbook(t))
	require.NoError(t, err)
	defer doc.Close()

	sheets := ListSheets(doc)
	require.Len(t, sheets, 2)
	assert.Equal(t, 1, sheets[0].Index)
	assert.Equal(t, "1ST YEAR A", sheets[0].Name)
	assert.Equal(t, 2, sheets[1].Index)
	assert.Equal(t, "2ND YEAR", sheets[1].Name)
}

func TestListTutorialGroups(t *testing.T) {
	doc, err := Load(buildWorkbook(t))
	require.NoError(t, err)
	defer doc.Close()

	groups, err := ListTutorialGroups(doc, Selection{SheetChoice: 1}, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "1ST YEAR A", groups.SheetName)
	assert.Equal(t, []string{"2O31", "2O34", "2O35"}, groups.TutorialGroups)

	_, err = ListTutorialGroups(doc, Selection{SheetChoice: 3}, DefaultOptions())
	assert.ErrorIs(t, err, ErrInvalidSelection)
}

func TestExtract(t *testing.T) {
	doc, err := Load(buildWorkbook(t))
	require.NoError(t, err)
	defer doc.Close()

	tt, err := Extract(doc, Selection{SheetChoice: 1, TutorialGroup: "2O34"}, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "1ST YEAR A", tt.SheetName)
	assert.Equal(t, "2O34", tt.TutorialGroup)
	assert.Equal(t, models.TimeSlots, tt.TimeSlots)

	expected := models.NewSchedule()
	expected.Set("Monday", "09:40 AM", "UEC301 L (3 slots)")
	expected.Set("Monday", "12:10 PM", "UMA003 T")
	expected.Set("Tuesday", "08:00 AM", "UPH004 L")
	expected.Set("Wednesday", "08:00 AM", "UES013 P")
	expected.Set("Friday", "08:00 AM", "CAPSTONE REVIEW")
	expected.Set("Friday", "06:50 PM", "UHU005 L")
	assert.Equal(t, expected, tt.Timetable)

	require.Len(t, tt.Flagged, 1)
	assert.Equal(t, "CAPSTONE REVIEW", tt.Flagged[0].Content)
	assert.Equal(t, 119, tt.Flagged[0].Row)
}

func TestExtractRaw(t *testing.T) {
	doc, err := Load(buildWorkbook(t))
	require.NoError(t, err)
	defer doc.Close()

	opts := DefaultOptions()
	opts.Raw = true
	tt, err := Extract(doc, Selection{SheetChoice: 1, TutorialGroup: "2O34"}, opts)
	require.NoError(t, err)

	for _, slot := range []string{"09:40 AM", "10:30 AM", "11:20 AM"} {
		entry, ok := tt.Timetable.Get("Monday", slot)
		assert.True(t, ok, slot)
		assert.Equal(t, "UEC301 L", entry)
	}
}

func TestExtractProperties(t *testing.T) {
	doc, err := Load(buildWorkbook(t))
	require.NoError(t, err)
	defer doc.Close()

	sel := Selection{SheetChoice: 1, TutorialGroup: "2O34"}
	first, err := Extract(doc, sel, DefaultOptions())
	require.NoError(t, err)
	second, err := Extract(doc, sel, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, first, second)

	days := map[string]bool{}
	for _, d := range models.Weekdays {
		days[d] = true
	}
	slots := map[string]bool{}
	for _, s := range models.TimeSlots {
		slots[s] = true
	}
	for day, entries := range first.Timetable {
		assert.True(t, days[day], day)
		for slot := range entries {
			assert.True(t, slots[slot], slot)
		}
	}
}

func TestExtractDefaultLayoutAndName(t *testing.T) {
	doc, err := Load(buildWorkbook(t))
	require.NoError(t, err)
	defer doc.Close()

	tt, err := Extract(doc, Selection{SheetName: "2nd year", TutorialGroup: "3C11"}, DefaultOptions())
	require.NoError(t, err)

	entry, ok := tt.Timetable.Get("Tuesday", "08:00 AM")
	assert.True(t, ok)
	assert.Equal(t, "UCS301 L", entry)
}

func TestExtractLayoutOverride(t *testing.T) {
	doc, err := Load(buildWorkbook(t))
	require.NoError(t, err)
	defer doc.Close()

	opts := DefaultOptions()
	opts.Layouts = opts.Layouts.With(map[string]models.Layout{"2ND YEAR": {HeaderRow: 5, StartRow: 36}})

	tt, err := Extract(doc, Selection{SheetChoice: 2, TutorialGroup: "3C11"}, opts)
	require.NoError(t, err)

	entry, _ := tt.Timetable.Get("Monday", "08:00 AM")
	assert.Equal(t, "UCS301 L", entry)
}

func TestExtractErrors(t *testing.T) {
	doc, err := Load(buildWorkbook(t))
	require.NoError(t, err)
	defer doc.Close()

	for _, choice := range []int{0, 3} {
		tt, err := Extract(doc, Selection{SheetChoice: choice, TutorialGroup: "2O34"}, DefaultOptions())
		assert.Nil(t, tt)
		assert.ErrorIs(t, err, ErrInvalidSelection)
		assert.Equal(t, CodeInvalidSelection, ErrorCode(err))
	}

	tt, err := Extract(doc, Selection{SheetChoice: 1, TutorialGroup: "9Z99"}, DefaultOptions())
	assert.Nil(t, tt)
	assert.ErrorIs(t, err, ErrGroupNotFound)
	assert.Equal(t, CodeGroupNotFound, ErrorCode(err))
	assert.Contains(t, err.Error(), "9Z99")

	var ee *ExtractionError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, "locate", ee.Stage)
	assert.Equal(t, "1ST YEAR A", ee.SheetName)
}

func TestLoadReaderFailure(t *testing.T) {
	_, err := LoadReader(bytes.NewReader([]byte("definitely not a zip")), "upload.xlsx")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDocumentLoad)
	assert.Equal(t, CodeDocumentLoad, ErrorCode(err))

	_, err = ExtractFile(filepath.Join(t.TempDir(), "missing.xlsx"), Selection{SheetChoice: 1}, DefaultOptions())
	assert.Equal(t, CodeDocumentLoad, ErrorCode(err))
}

func TestExtractFileJSON(t *testing.T) {
	tt, err := ExtractFile(buildWorkbook(t), Selection{SheetChoice: 1, TutorialGroup: "2O31"}, Options{})
	require.NoError(t, err)

	data, err := json.Marshal(tt)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"sheet_name": "1ST YEAR A",
		"tutorial_group": "2O31",
		"time_slots": ["08:00 AM","08:50 AM","09:40 AM","10:30 AM","11:20 AM","12:10 PM",
			"01:00 PM","01:50 PM","02:40 PM","03:30 PM","04:20 PM","05:10 PM","06:00 PM","06:50 PM"],
		"timetable": {
			"Monday": {},
			"Tuesday": {"08:00 AM": "UPH004 L"},
			"Wednesday": {},
			"Thursday": {},
			"Friday": {}
		}
	}`, string(data))
}

func TestErrorCodeUnexpected(t *testing.T) {
	assert.Equal(t, Code(""), ErrorCode(nil))
	assert.Equal(t, CodeUnexpected, ErrorCode(errors.New("boom")))
}
