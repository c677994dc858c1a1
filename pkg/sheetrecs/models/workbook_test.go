package models

import (
	"encoding/json"
	"testing"
)

func TestWorkbookKeepsDeclarationOrder(t *testing.T) {
	wb := NewWorkbook()
	wb.Add("Zeta", []Record{{"A": "1"}})
	wb.Add("Alpha", nil)
	wb.Add("Zeta", []Record{{"A": "2"}})

	names := wb.Names()
	if len(names) != 2 || names[0] != "Zeta" || names[1] != "Alpha" {
		t.Fatalf("Expected [Zeta Alpha], got %v", names)
	}

	records, ok := wb.Sheet("Zeta")
	if !ok || len(records) != 1 || records[0]["A"] != "2" {
		t.Errorf("Expected re-added records for Zeta, got %v", records)
	}
}

func TestWorkbookMarshalJSON(t *testing.T) {
	wb := NewWorkbook()
	wb.Add("Second", nil)
	wb.Add("First", []Record{{"Name": "Alice"}})

	data, err := json.Marshal(wb)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	expected := `{"Second":[],"First":[{"Name":"Alice"}]}`
	if string(data) != expected {
		t.Errorf("Marshal = %s, expected %s", data, expected)
	}
}

func TestWorkbookMarshalJSONEscapesNames(t *testing.T) {
	wb := NewWorkbook()
	wb.Add(`Sales "Q1"`, nil)

	data, err := json.Marshal(wb)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded map[string][]Record
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if _, ok := decoded[`Sales "Q1"`]; !ok {
		t.Errorf("Expected escaped sheet name key, got %s", data)
	}
}

func TestWorkbookEmpty(t *testing.T) {
	wb := NewWorkbook()
	if wb.Len() != 0 {
		t.Errorf("Expected empty workbook, got %d sheets", wb.Len())
	}

	data, err := json.Marshal(wb)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("Marshal = %s, expected {}", data)
	}

	if _, ok := wb.Sheet("nope"); ok {
		t.Error("Expected lookup miss for unknown sheet")
	}
}
