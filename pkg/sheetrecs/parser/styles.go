package parser

import (
	"encoding/xml"
	"strings"
)

// builtinDateFormats lists the numbering-format ids that Excel reserves for
// date and time display.
var builtinDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true, 19: true,
	20: true, 21: true, 22: true, 45: true, 46: true, 47: true,
}

type xmlStyleSheet struct {
	NumFmts []xmlNumFmt `xml:"numFmts>numFmt"`
	CellXfs []xmlCellXf `xml:"cellXfs>xf"`
}

type xmlNumFmt struct {
	ID   int    `xml:"numFmtId,attr"`
	Code string `xml:"formatCode,attr"`
}

type xmlCellXf struct {
	NumFmtID int `xml:"numFmtId,attr"`
}

// LoadDateStyles classifies the styles part into the set of style indexes
// that render as dates or times. The style index is the position of each xf
// record within cellXfs, not any id attribute. An archive without the part
// yields an empty set.
func LoadDateStyles(a *Archive) (map[int]bool, error) {
	dateStyles := make(map[int]bool)
	if !a.Has(stylesPart) {
		return dateStyles, nil
	}
	data, err := a.ReadEntry(stylesPart)
	if err != nil {
		return nil, err
	}

	var styles xmlStyleSheet
	if err := xml.Unmarshal(data, &styles); err != nil {
		return nil, &ManifestError{Part: stylesPart, Err: err}
	}

	customFormats := make(map[int]string, len(styles.NumFmts))
	for _, nf := range styles.NumFmts {
		customFormats[nf.ID] = nf.Code
	}

	for idx, xf := range styles.CellXfs {
		if builtinDateFormats[xf.NumFmtID] {
			dateStyles[idx] = true
			continue
		}
		if code, ok := customFormats[xf.NumFmtID]; ok && looksLikeDateFormat(code) {
			dateStyles[idx] = true
		}
	}
	return dateStyles, nil
}

// looksLikeDateFormat reports whether a custom format code contains date or
// time tokens. The scan is a plain substring check over the lowercased code
// and does not skip quoted literals, trading precision for compatibility
// with the broad heuristic most converters apply.
func looksLikeDateFormat(code string) bool {
	return strings.ContainsAny(strings.ToLower(code), "ymdhs")
}
