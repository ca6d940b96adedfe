// Copyright (c) 2026 cadyjko.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/cadyjko/slogan-vote/models"
)

// Default header names of the slogan workbook columns.
const (
	DefaultIDHeader   = "id"
	DefaultTextHeader = "slogan"
)

// ReadWorkbook parses slogans from the first sheet of an XLSX file.
// The header row must contain both named columns; a missing required
// column is a fatal load error, not a partial load. Blank rows are
// skipped.
func ReadWorkbook(path, idHeader, textHeader string) ([]models.Slogan, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("workbook %s: sheet %s is empty", path, sheets[0])
	}

	idCol, textCol := -1, -1
	for i, header := range rows[0] {
		switch strings.TrimSpace(header) {
		case idHeader:
			idCol = i
		case textHeader:
			textCol = i
		}
	}
	if idCol < 0 {
		return nil, fmt.Errorf("workbook %s: required column %q not found", path, idHeader)
	}
	if textCol < 0 {
		return nil, fmt.Errorf("workbook %s: required column %q not found", path, textHeader)
	}

	slogans := []models.Slogan{}
	for rowNum, row := range rows[1:] {
		id, text := cell(row, idCol), strings.TrimSpace(cell(row, textCol))
		if id == "" && text == "" {
			continue
		}

		n, err := strconv.Atoi(strings.TrimSpace(id))
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("workbook %s row %d: %q is not a positive integer id", path, rowNum+2, id)
		}
		if text == "" {
			return nil, fmt.Errorf("workbook %s row %d: slogan text is empty", path, rowNum+2)
		}

		slogans = append(slogans, models.Slogan{ID: n, Text: text})
	}

	return slogans, nil
}

func cell(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return row[col]
}
