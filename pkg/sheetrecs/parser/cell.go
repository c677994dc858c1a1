package parser

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// serialEpoch is the day-zero of the serial date system. Excel's 1900 mode
// counts from 1899-12-30 to compensate for its phantom 1900-02-29, and every
// workbook in the wild depends on that offset.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

type xmlCell struct {
	Type   string         `xml:"t,attr"`
	Style  int            `xml:"s,attr"`
	Value  string         `xml:"v"`
	Inline *xmlStringItem `xml:"is"`
}

// resolveCellValue computes the textual value of a single cell. Anomalies a
// malformed-but-openable workbook commonly exhibits (dangling shared-string
// index, unparsable serial, missing inline node) degrade to a safe default
// instead of failing the decode. Trimming is left to the caller.
func resolveCellValue(c xmlCell, shared []string, dateStyles map[int]bool) string {
	if c.Type == "inlineStr" {
		if c.Inline == nil {
			return ""
		}
		return c.Inline.text()
	}

	if c.Value == "" {
		return ""
	}

	if c.Type == "s" {
		idx, err := strconv.Atoi(strings.TrimSpace(c.Value))
		if err != nil || idx < 0 || idx >= len(shared) {
			return ""
		}
		return shared[idx]
	}

	if dateStyles[c.Style] {
		if formatted, ok := formatSerialDate(c.Value); ok {
			return formatted
		}
	}
	return c.Value
}

// formatSerialDate converts a serial day count into a calendar form:
// YYYY-MM-DD when the time of day is exactly midnight, a full date-time
// otherwise. Returns false when raw is not a number.
func formatSerialDate(raw string) (string, bool) {
	serial, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return "", false
	}

	// Whole days go through AddDate: a Duration holding the full serial in
	// nanoseconds overflows for dates a few centuries out. The sub-day part
	// rounds to whole seconds so binary fractions like a third of a day
	// come out as 08:00:00 rather than 07:59:59.
	days := int(math.Floor(serial))
	seconds := int64(math.Round((serial - float64(days)) * 86400))
	if seconds == 86400 {
		days++
		seconds = 0
	}

	ts := serialEpoch.AddDate(0, 0, days).Add(time.Duration(seconds) * time.Second)
	if ts.Hour() == 0 && ts.Minute() == 0 && ts.Second() == 0 {
		return ts.Format("2006-01-02"), true
	}
	return ts.Format("2006-01-02 15:04:05"), true
}
