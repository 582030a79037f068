// Package output writes folder reports as Excel workbooks.
package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"ris2xlsx/internal/report"
	"ris2xlsx/internal/ris"
)

// Final column order on both sheets.
var Columns = []string{"Title", "Year", "Index", "DOI", "Author Name", "Author Surname"}

const (
	GroupedSheet = "grouped_results"
	RawSheet     = "raw_results"
)

// WorkbookName is the output filename for a source folder.
func WorkbookName(folder string) string {
	return fmt.Sprintf("results_%s_grouped.xlsx", folder)
}

// WriteWorkbook renders a folder result into a two-sheet workbook:
// grouped_results shows each group under a header row with a blank separator
// after it, raw_results is the flat record list in processing order.
func WriteWorkbook(path string, res *report.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", GroupedSheet); err != nil {
		return fmt.Errorf("naming grouped sheet: %w", err)
	}
	if err := writeGrouped(f, res); err != nil {
		return err
	}

	if _, err := f.NewSheet(RawSheet); err != nil {
		return fmt.Errorf("creating raw sheet: %w", err)
	}
	if err := writeRaw(f, res); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("writing workbook %s: %w", path, err)
	}
	return nil
}

func writeGrouped(f *excelize.File, res *report.Result) error {
	row := 1
	if err := setRow(f, GroupedSheet, row, headerCells()); err != nil {
		return err
	}
	row++

	for _, g := range res.Groups {
		// Group header occupies the Title column; remaining cells stay blank.
		if err := setRow(f, GroupedSheet, row, []interface{}{g.Key}); err != nil {
			return err
		}
		row++

		for _, rec := range g.Members {
			if err := setRow(f, GroupedSheet, row, recordCells(rec)); err != nil {
				return err
			}
			row++
		}

		// Blank separator row.
		row++
	}
	return nil
}

func writeRaw(f *excelize.File, res *report.Result) error {
	if err := setRow(f, RawSheet, 1, headerCells()); err != nil {
		return err
	}
	for i, r := range res.Flat {
		if err := setRow(f, RawSheet, i+2, recordCells(r.Rec)); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, cells []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("writing %s row %d: %w", sheet, row, err)
	}
	return nil
}

func headerCells() []interface{} {
	cells := make([]interface{}, len(Columns))
	for i, c := range Columns {
		cells[i] = c
	}
	return cells
}

func recordCells(rec ris.Record) []interface{} {
	var year interface{} = ""
	if rec.Year != 0 {
		year = rec.Year
	}
	return []interface{}{rec.Title, year, rec.Index, rec.DOI, rec.AuthorName, rec.AuthorSurname}
}
