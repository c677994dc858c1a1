package parser

import (
	"encoding/xml"
	"strings"
)

type xmlSharedStrings struct {
	Items []xmlStringItem `xml:"si"`
}

// xmlStringItem covers both shared-string items and inline-string nodes:
// plain items carry a single direct t element, rich-text items split their
// content across r>t runs, and the two can interleave.
type xmlStringItem struct {
	segments []string
}

// UnmarshalXML walks the item's children and collects the text of every t
// element in document order, so interleaved plain text and rich runs keep
// their original sequence.
func (si *xmlStringItem) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	si.segments = nil
	var buf strings.Builder
	inText := false
	depth := 1
	for depth > 0 {
		token, err := d.Token()
		if err != nil {
			return err
		}
		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "t" {
				inText = true
				buf.Reset()
			}
		case xml.EndElement:
			depth--
			if inText && t.Name.Local == "t" {
				inText = false
				si.segments = append(si.segments, buf.String())
			}
		case xml.CharData:
			if inText {
				buf.Write(t)
			}
		}
	}
	return nil
}

// text concatenates every collected text node, no separator.
func (si *xmlStringItem) text() string {
	var b strings.Builder
	for _, s := range si.segments {
		b.WriteString(s)
	}
	return b.String()
}

// LoadSharedStrings decodes the shared-strings part into an ordered table.
// Cells of string type reference entries by 0-based position. An archive
// without the part yields an empty table.
func LoadSharedStrings(a *Archive) ([]string, error) {
	if !a.Has(sharedStringsPart) {
		return nil, nil
	}
	data, err := a.ReadEntry(sharedStringsPart)
	if err != nil {
		return nil, err
	}

	var sst xmlSharedStrings
	if err := xml.Unmarshal(data, &sst); err != nil {
		return nil, &ManifestError{Part: sharedStringsPart, Err: err}
	}

	table := make([]string, 0, len(sst.Items))
	for i := range sst.Items {
		table = append(table, sst.Items[i].text())
	}
	return table, nil
}
