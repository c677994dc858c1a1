// Package parser decodes the raw OOXML parts of a spreadsheet archive.
package parser

import (
	"encoding/xml"
	"path"
	"strings"
)

// Well-known part paths inside the archive.
const (
	workbookPart      = "xl/workbook.xml"
	workbookRelsPart  = "xl/_rels/workbook.xml.rels"
	sharedStringsPart = "xl/sharedStrings.xml"
	stylesPart        = "xl/styles.xml"
)

// SheetReference pairs a declared sheet name with the archive path of its
// worksheet part.
type SheetReference struct {
	Name string
	Path string
}

type xmlWorkbook struct {
	Sheets []xmlWorkbookSheet `xml:"sheets>sheet"`
}

type xmlWorkbookSheet struct {
	Name  string `xml:"name,attr"`
	RelID string `xml:"id,attr"`
}

type xmlRelationships struct {
	Relationships []xmlRelationship `xml:"Relationship"`
}

type xmlRelationship struct {
	ID     string `xml:"Id,attr"`
	Target string `xml:"Target,attr"`
}

// LoadSheetReferences resolves the workbook manifest against its relationship
// part and returns the declared sheets in document order. A sheet whose
// relationship id has no matching target is dropped; that leniency matches
// real-world workbooks repaired by third-party writers.
func LoadSheetReferences(a *Archive) ([]SheetReference, error) {
	wbData, err := a.ReadEntry(workbookPart)
	if err != nil {
		return nil, &ManifestError{Part: workbookPart, Err: err}
	}
	var wb xmlWorkbook
	if err := xml.Unmarshal(wbData, &wb); err != nil {
		return nil, &ManifestError{Part: workbookPart, Err: err}
	}

	relsData, err := a.ReadEntry(workbookRelsPart)
	if err != nil {
		return nil, &ManifestError{Part: workbookRelsPart, Err: err}
	}
	var rels xmlRelationships
	if err := xml.Unmarshal(relsData, &rels); err != nil {
		return nil, &ManifestError{Part: workbookRelsPart, Err: err}
	}

	targets := make(map[string]string, len(rels.Relationships))
	for _, rel := range rels.Relationships {
		targets[rel.ID] = rel.Target
	}

	var refs []SheetReference
	for _, sheet := range wb.Sheets {
		target := targets[sheet.RelID]
		if target == "" {
			continue
		}
		refs = append(refs, SheetReference{
			Name: sheet.Name,
			Path: normalizeTarget(target),
		})
	}
	return refs, nil
}

// normalizeTarget resolves a relationship target into an absolute in-archive
// path. Relative targets are resolved against the workbook directory.
func normalizeTarget(target string) string {
	if strings.HasPrefix(target, "/") {
		return path.Clean(strings.TrimPrefix(target, "/"))
	}
	return path.Join("xl", target)
}
