package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const NamesSheet = "Employees"

// WriteNamesXLSX writes a one-column sheet: header "name" in A1, then one
// row per employee.
func WriteNamesXLSX(path string, names []string) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(NamesSheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	// sheet bawaan tidak dipakai
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	if err := f.SetCellValue(NamesSheet, "A1", "name"); err != nil {
		return err
	}
	for i, name := range names {
		if err := f.SetCellValue(NamesSheet, fmt.Sprintf("A%d", i+2), name); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}
