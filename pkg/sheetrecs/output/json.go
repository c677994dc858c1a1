// Package output serializes decoded workbook documents to JSON.
package output

import (
	"encoding/json"

	"github.com/sheetrecs/sheetrecs-go/pkg/sheetrecs"
	"github.com/sheetrecs/sheetrecs-go/pkg/sheetrecs/models"
)

// ToJSON serializes a full document, optionally indented.
func ToJSON(doc *sheetrecs.Document, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(doc, "", "  ")
	}
	return json.Marshal(doc)
}

// SheetToJSON serializes a single sheet's records, optionally indented. A
// sheet without records serializes as an empty array.
func SheetToJSON(records []models.Record, pretty bool) ([]byte, error) {
	if records == nil {
		records = []models.Record{}
	}
	if pretty {
		return json.MarshalIndent(records, "", "  ")
	}
	return json.Marshal(records)
}
