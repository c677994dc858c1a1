package parser

import (
	"errors"
	"testing"
)

func inlineCell(text string) string {
	return `<c t="inlineStr"><is><t>` + text + `</t></is></c>`
}

func sheetXML(rows ...string) string {
	body := ""
	for _, r := range rows {
		body += "<row>" + r + "</row>"
	}
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<worksheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main"><sheetData>` +
		body + `</sheetData></worksheet>`
}

func extractTestRecords(t *testing.T, sheet string) []map[string]string {
	t.Helper()

	ref := SheetReference{Name: "Data", Path: "xl/worksheets/sheet1.xml"}
	a := buildArchive(t, map[string]string{ref.Path: sheet})

	records, err := ExtractRecords(a, ref, nil, nil)
	if err != nil {
		t.Fatalf("ExtractRecords failed: %v", err)
	}

	out := make([]map[string]string, len(records))
	for i, r := range records {
		out[i] = map[string]string(r)
	}
	return out
}

func TestExtractRecords(t *testing.T) {
	sheet := sheetXML(
		inlineCell("Name")+inlineCell("Age"),
		inlineCell("Alice")+`<c><v>30</v></c>`,
		inlineCell("Bob")+`<c><v>25</v></c>`,
	)

	records := extractTestRecords(t, sheet)
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d: %v", len(records), records)
	}
	if records[0]["Name"] != "Alice" || records[0]["Age"] != "30" {
		t.Errorf("Record 0 = %v", records[0])
	}
	if records[1]["Name"] != "Bob" || records[1]["Age"] != "25" {
		t.Errorf("Record 1 = %v", records[1])
	}
}

func TestExtractRecordsEmptyHeaderKeepsColumnPosition(t *testing.T) {
	// The middle header is empty: it contributes no key, but the third
	// column still pairs with the "Age" header.
	sheet := sheetXML(
		inlineCell("Name")+inlineCell("")+inlineCell("Age"),
		inlineCell("Alice")+inlineCell("skip")+inlineCell("30"),
	)

	records := extractTestRecords(t, sheet)
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	rec := records[0]
	if len(rec) != 2 {
		t.Errorf("Expected 2 keys, got %d: %v", len(rec), rec)
	}
	if rec["Name"] != "Alice" || rec["Age"] != "30" {
		t.Errorf("Record = %v, expected Name=Alice Age=30", rec)
	}
}

func TestExtractRecordsSkipsAllEmptyRows(t *testing.T) {
	sheet := sheetXML(
		inlineCell("A")+inlineCell("B"),
		inlineCell("")+inlineCell("  "),
		inlineCell("")+inlineCell("x"),
	)

	records := extractTestRecords(t, sheet)
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d: %v", len(records), records)
	}
	if records[0]["A"] != "" || records[0]["B"] != "x" {
		t.Errorf("Record = %v, expected A empty and B=x", records[0])
	}
}

func TestExtractRecordsShortRowPadsEmpty(t *testing.T) {
	sheet := sheetXML(
		inlineCell("A")+inlineCell("B")+inlineCell("C"),
		inlineCell("1"),
	)

	records := extractTestRecords(t, sheet)
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	rec := records[0]
	if rec["A"] != "1" || rec["B"] != "" || rec["C"] != "" {
		t.Errorf("Record = %v, expected trailing columns empty", rec)
	}
}

func TestExtractRecordsTrimsValues(t *testing.T) {
	sheet := sheetXML(
		inlineCell(" Name "),
		inlineCell("  Alice  "),
	)

	records := extractTestRecords(t, sheet)
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	if records[0]["Name"] != "Alice" {
		t.Errorf("Record = %v, expected trimmed header and value", records[0])
	}
}

func TestExtractRecordsNoRows(t *testing.T) {
	records := extractTestRecords(t, sheetXML())
	if len(records) != 0 {
		t.Errorf("Expected no records for empty sheet, got %v", records)
	}
}

func TestExtractRecordsMissingPart(t *testing.T) {
	a := buildArchive(t, map[string]string{
		"xl/workbook.xml": testWorkbookXML,
	})

	records, err := ExtractRecords(a, SheetReference{Name: "Gone", Path: "xl/worksheets/sheet9.xml"}, nil, nil)
	if err != nil {
		t.Fatalf("Expected no error for missing part, got %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Expected no records for missing part, got %v", records)
	}
}

func TestExtractRecordsCorruptPart(t *testing.T) {
	ref := SheetReference{Name: "Bad", Path: "xl/worksheets/sheet1.xml"}
	a := buildArchive(t, map[string]string{ref.Path: "<worksheet><sheetData>"})

	_, err := ExtractRecords(a, ref, nil, nil)
	var manifestErr *ManifestError
	if !errors.As(err, &manifestErr) {
		t.Fatalf("Expected *ManifestError, got %T: %v", err, err)
	}
	if manifestErr.Part != ref.Path {
		t.Errorf("Expected failing part %q, got %q", ref.Path, manifestErr.Part)
	}
}
