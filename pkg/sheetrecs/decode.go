// Package sheetrecs decodes spreadsheet workbooks into header-keyed records
// grouped by sheet, without a spreadsheet engine dependency.
package sheetrecs

import (
	"github.com/sheetrecs/sheetrecs-go/pkg/sheetrecs/models"
	"github.com/sheetrecs/sheetrecs-go/pkg/sheetrecs/parser"
)

// Decode opens the workbook archive at path and decodes every declared sheet.
func Decode(path string) (*models.Workbook, error) {
	a, err := parser.OpenArchive(path)
	if err != nil {
		return nil, err
	}
	defer a.Close()

	return decodeArchive(a)
}

// DecodeBytes decodes a workbook archive held in memory.
func DecodeBytes(data []byte) (*models.Workbook, error) {
	a, err := parser.NewArchive(data)
	if err != nil {
		return nil, err
	}
	return decodeArchive(a)
}

func decodeArchive(a *parser.Archive) (*models.Workbook, error) {
	shared, err := parser.LoadSharedStrings(a)
	if err != nil {
		return nil, err
	}
	dateStyles, err := parser.LoadDateStyles(a)
	if err != nil {
		return nil, err
	}
	refs, err := parser.LoadSheetReferences(a)
	if err != nil {
		return nil, err
	}

	wb := models.NewWorkbook()
	for _, ref := range refs {
		records, err := parser.ExtractRecords(a, ref, shared, dateStyles)
		if err != nil {
			return nil, err
		}
		wb.Add(ref.Name, records)
	}
	return wb, nil
}
