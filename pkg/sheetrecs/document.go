package sheetrecs

import (
	"time"

	"github.com/sheetrecs/sheetrecs-go/pkg/sheetrecs/models"
)

// Document is the caller-facing envelope around a decoded workbook: the
// provenance fields are supplied here, not by the decoder.
type Document struct {
	// Source identifies the decoded input, typically its file path.
	Source string `json:"source"`
	// GeneratedAt is the UTC decode timestamp in RFC 3339 form.
	GeneratedAt string `json:"generatedAt"`
	// Sheets holds the decoded records keyed by sheet name.
	Sheets *models.Workbook `json:"sheets"`
}

// NewDocument wraps a decoded workbook with provenance metadata, stamping
// the current time.
func NewDocument(source string, wb *models.Workbook) Document {
	return newDocumentAt(source, wb, time.Now())
}

func newDocumentAt(source string, wb *models.Workbook, now time.Time) Document {
	return Document{
		Source:      source,
		GeneratedAt: now.UTC().Format(time.RFC3339),
		Sheets:      wb,
	}
}
