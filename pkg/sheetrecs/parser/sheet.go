package parser

import (
	"encoding/xml"
	"strings"

	"github.com/sheetrecs/sheetrecs-go/pkg/sheetrecs/models"
)

type xmlWorksheet struct {
	Rows []xmlRow `xml:"sheetData>row"`
}

type xmlRow struct {
	Cells []xmlCell `xml:"c"`
}

// headerColumn binds a retained header text to the column ordinal it was
// declared at, so data rows keep their alignment even when empty headers are
// dropped from the key set.
type headerColumn struct {
	name string
	col  int
}

// ExtractRecords decodes one worksheet part into header-keyed records. The
// first row provides the headers; every later row with at least one
// non-empty value becomes a record. A reference whose part is absent from
// the archive yields no records and no error.
func ExtractRecords(a *Archive, ref SheetReference, shared []string, dateStyles map[int]bool) ([]models.Record, error) {
	if !a.Has(ref.Path) {
		return nil, nil
	}
	data, err := a.ReadEntry(ref.Path)
	if err != nil {
		return nil, err
	}

	var ws xmlWorksheet
	if err := xml.Unmarshal(data, &ws); err != nil {
		return nil, &ManifestError{Part: ref.Path, Err: err}
	}
	if len(ws.Rows) == 0 {
		return nil, nil
	}

	var headers []headerColumn
	for col, c := range ws.Rows[0].Cells {
		name := strings.TrimSpace(resolveCellValue(c, shared, dateStyles))
		if name == "" {
			continue
		}
		headers = append(headers, headerColumn{name: name, col: col})
	}

	var records []models.Record
	for _, row := range ws.Rows[1:] {
		values := make([]string, len(row.Cells))
		empty := true
		for i, c := range row.Cells {
			v := strings.TrimSpace(resolveCellValue(c, shared, dateStyles))
			values[i] = v
			if v != "" {
				empty = false
			}
		}
		if empty {
			continue
		}

		record := make(models.Record, len(headers))
		for _, h := range headers {
			if h.col < len(values) {
				record[h.name] = values[h.col]
			} else {
				record[h.name] = ""
			}
		}
		records = append(records, record)
	}
	return records, nil
}
