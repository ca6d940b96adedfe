package catalog

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// writeWorkbook builds a minimal xlsx file with the given rows on the
// default sheet
func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}

	path := filepath.Join(t.TempDir(), "slogans.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

func TestReadWorkbook(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"id", "slogan"},
		{1, "first slogan"},
		{2, "second slogan"},
		{"", ""}, // blank row is skipped
		{3, "third slogan"},
	})

	slogans, err := ReadWorkbook(path, DefaultIDHeader, DefaultTextHeader)
	if err != nil {
		t.Fatalf("ReadWorkbook failed: %v", err)
	}
	if len(slogans) != 3 {
		t.Fatalf("expected 3 slogans, got %d", len(slogans))
	}
	if slogans[0].ID != 1 || slogans[0].Text != "first slogan" {
		t.Errorf("unexpected first slogan: %+v", slogans[0])
	}
	if slogans[2].ID != 3 {
		t.Errorf("unexpected third slogan: %+v", slogans[2])
	}
}

func TestReadWorkbookExtraColumns(t *testing.T) {
	// Columns may appear in any order with extras in between
	path := writeWorkbook(t, [][]interface{}{
		{"notes", "slogan", "id"},
		{"ignored", "the text", 7},
	})

	slogans, err := ReadWorkbook(path, DefaultIDHeader, DefaultTextHeader)
	if err != nil {
		t.Fatalf("ReadWorkbook failed: %v", err)
	}
	if len(slogans) != 1 || slogans[0].ID != 7 || slogans[0].Text != "the text" {
		t.Errorf("unexpected slogans: %+v", slogans)
	}
}

func TestReadWorkbookErrors(t *testing.T) {
	tests := []struct {
		name string
		rows [][]interface{}
	}{
		{
			name: "missing id column",
			rows: [][]interface{}{{"slogan"}, {"text only"}},
		},
		{
			name: "missing text column",
			rows: [][]interface{}{{"id"}, {1}},
		},
		{
			name: "non-integer id",
			rows: [][]interface{}{{"id", "slogan"}, {"seven", "text"}},
		},
		{
			name: "non-positive id",
			rows: [][]interface{}{{"id", "slogan"}, {-1, "text"}},
		},
		{
			name: "empty text with id present",
			rows: [][]interface{}{{"id", "slogan"}, {1, ""}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeWorkbook(t, tt.rows)
			if _, err := ReadWorkbook(path, DefaultIDHeader, DefaultTextHeader); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestReadWorkbookMissingFile(t *testing.T) {
	if _, err := ReadWorkbook(filepath.Join(t.TempDir(), "nope.xlsx"), DefaultIDHeader, DefaultTextHeader); err == nil {
		t.Error("expected error for missing file")
	}
}
