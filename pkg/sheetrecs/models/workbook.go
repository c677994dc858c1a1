package models

import (
	"bytes"
	"encoding/json"
)

// Workbook maps sheet names to their decoded records while remembering the
// order sheets were declared in. JSON output must list sheets in declaration
// order, which a plain map cannot guarantee.
type Workbook struct {
	names  []string
	sheets map[string][]Record
}

// NewWorkbook returns an empty workbook result.
func NewWorkbook() *Workbook {
	return &Workbook{sheets: make(map[string][]Record)}
}

// Add stores the records for a sheet. A name seen for the first time is
// appended to the declaration order; adding an existing name replaces its
// records in place.
func (w *Workbook) Add(name string, records []Record) {
	if _, ok := w.sheets[name]; !ok {
		w.names = append(w.names, name)
	}
	w.sheets[name] = records
}

// Names returns the sheet names in declaration order.
func (w *Workbook) Names() []string {
	out := make([]string, len(w.names))
	copy(out, w.names)
	return out
}

// Sheet returns the records for a sheet and whether the sheet exists.
func (w *Workbook) Sheet(name string) ([]Record, bool) {
	records, ok := w.sheets[name]
	return records, ok
}

// Len returns the number of sheets.
func (w *Workbook) Len() int {
	return len(w.names)
}

// MarshalJSON emits the sheets as a JSON object keyed by sheet name, in
// declaration order. Sheets without records marshal as empty arrays, not
// null.
func (w *Workbook) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range w.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		records := w.sheets[name]
		if records == nil {
			records = []Record{}
		}
		value, err := json.Marshal(records)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
