package input

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ukaji3/xlsxgen-go/pkg/xlsxgen/models"
	"github.com/ukaji3/xlsxgen-go/pkg/xlsxgen/protect"
)

const sampleYAML = `
options:
  core:
    creator: alice
    dateCreated: 2024-01-02T03:04:05Z
sheets:
  - name: Summary
    order: 2
    cells:
      - ref: a1
        value: total
      - ref: $B$1
        value: 42
      - ref: C1
        text: "007"
      - ref: D1
        date: "2024-03-14"
        style:
          format:
            builtIn: 14
  - name: Data
    order: 1
    page:
      printArea: A1:B2
      margins:
        left: 0.5
    cells:
      - ref: A1
        number: 1.5
        style:
          fill: 0xFFFF0000
          wrapText: true
`

const sampleJSON = `{
  "sheets": [
    {"name": "Only", "cells": [
      {"ref": "A1", "value": 12.5},
      {"ref": "A2", "value": "12.5"},
      {"ref": "A3", "value": "hello"}
    ]}
  ]
}`

func TestDecodeYAML(t *testing.T) {
	def, err := Decode(strings.NewReader(sampleYAML), YAML())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(def.Sheets) != 2 {
		t.Fatalf("Expected 2 sheets, got %d", len(def.Sheets))
	}
	if def.Options == nil || def.Options.Core == nil || def.Options.Core.Creator != "alice" {
		t.Errorf("Unexpected options %+v", def.Options)
	}
	if def.Options.Core.DateCreated == nil || def.Options.Core.DateCreated.Year() != 2024 {
		t.Errorf("Unexpected dateCreated %v", def.Options.Core.DateCreated)
	}
	data := def.Sheets[1]
	if data.Page == nil || data.Page.PrintArea != "A1:B2" || data.Page.Margins == nil || *data.Page.Margins.Left != 0.5 {
		t.Errorf("Unexpected page %+v", data.Page)
	}
	style := data.Cells[0].Style
	if style == nil || style.Fill == nil || *style.Fill != models.ARGB(0xFFFF0000) || !style.WrapText {
		t.Errorf("Unexpected style %+v", style)
	}
}

func TestBuild(t *testing.T) {
	def, err := Decode(strings.NewReader(sampleYAML), YAML())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	wb, err := Build(context.Background(), def, Options{IDs: &models.IDCounter{}})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	sheets := wb.Sheets()
	if len(sheets) != 2 || sheets[0].Name() != "Data" || sheets[1].Name() != "Summary" {
		t.Fatalf("Unexpected sheet order %v", sheets)
	}
	if wb.Options().Core.Creator != "alice" {
		t.Errorf("Expected creator alice, got %q", wb.Options().Core.Creator)
	}

	summary := sheets[1]
	tests := []struct {
		pos      string
		kind     models.ValueKind
		expected string
	}{
		{"A1", models.KindText, "total"},
		{"B1", models.KindNumber, "42"},
		{"C1", models.KindText, "007"},
		{"D1", models.KindDate, "45364"},
	}
	for _, tt := range tests {
		c, ok := summary.Cell(tt.pos)
		if !ok {
			t.Errorf("Cell %s not found", tt.pos)
			continue
		}
		if c.Value().Kind() != tt.kind || c.AbsoluteValue() != tt.expected {
			t.Errorf("%s = %v %q, expected %v %q", tt.pos, c.Value().Kind(), c.AbsoluteValue(), tt.kind, tt.expected)
		}
	}
	d1, _ := summary.Cell("D1")
	if f := d1.Attributes().Format; f == nil || f.BuiltIn == nil || *f.BuiltIn != models.FormatDate1 {
		t.Errorf("Unexpected D1 format %+v", f)
	}
	if sheets[0].Page().PrintArea != "A1:B2" {
		t.Errorf("Expected print area A1:B2, got %q", sheets[0].Page().PrintArea)
	}
	if wb.Protection() != nil || summary.Protection() != nil {
		t.Error("Expected no protection without passwords")
	}
}

func TestBuild_JSON(t *testing.T) {
	def, err := Decode(strings.NewReader(sampleJSON), JSON())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	wb, err := Build(context.Background(), def, Options{IDs: &models.IDCounter{}})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	sheet := wb.Sheets()[0]
	for pos, expected := range map[string]models.ValueKind{
		"A1": models.KindNumber,
		"A2": models.KindNumber,
		"A3": models.KindText,
	} {
		c, _ := sheet.Cell(pos)
		if c.Value().Kind() != expected {
			t.Errorf("%s kind = %v, expected %v", pos, c.Value().Kind(), expected)
		}
	}
}

func TestBuild_Policy(t *testing.T) {
	def := &Definition{Sheets: []SheetDefinition{{
		Name:  "S",
		Cells: []CellDefinition{{Ref: "1A", Text: ptr("x")}},
	}}}

	wb, err := Build(context.Background(), def, Options{IDs: &models.IDCounter{}})
	if err != nil {
		t.Fatalf("Build with fallback failed: %v", err)
	}
	if _, ok := wb.Sheets()[0].Cell("A1"); !ok {
		t.Error("Expected a malformed reference to fall back to A1")
	}

	_, err = Build(context.Background(), def, Options{Policy: models.PolicyStrict, IDs: &models.IDCounter{}})
	if !errors.Is(err, models.ErrInvalidCoordinate) {
		t.Fatalf("Expected ErrInvalidCoordinate, got %v", err)
	}
	var defErr *DefinitionError
	if !errors.As(err, &defErr) || defErr.Sheet != "S" || defErr.Cell != "1A" {
		t.Errorf("Unexpected error %v", err)
	}
}

func TestBuild_InvalidDefinitions(t *testing.T) {
	tests := []struct {
		name     string
		def      *Definition
		expected error
	}{
		{"nil", nil, ErrEmptyDefinition},
		{"no sheets", &Definition{}, ErrEmptyDefinition},
		{"no value", &Definition{Sheets: []SheetDefinition{{
			Name: "S", Cells: []CellDefinition{{Ref: "A1"}},
		}}}, ErrInvalidValue},
		{"two values", &Definition{Sheets: []SheetDefinition{{
			Name: "S", Cells: []CellDefinition{{Ref: "A1", Text: ptr("a"), Number: ptr(1.0)}},
		}}}, ErrInvalidValue},
		{"bad date", &Definition{Sheets: []SheetDefinition{{
			Name: "S", Cells: []CellDefinition{{Ref: "A1", Date: "14/03/2024"}},
		}}}, ErrInvalidValue},
		{"infinite number", &Definition{Sheets: []SheetDefinition{{
			Name: "S", Cells: []CellDefinition{{Ref: "A1", Number: ptr(math.Inf(-1))}},
		}}}, ErrInvalidValue},
		{"NaN number", &Definition{Sheets: []SheetDefinition{{
			Name: "S", Cells: []CellDefinition{{Ref: "A1", Number: ptr(math.NaN())}},
		}}}, ErrInvalidValue},
	}
	for _, tt := range tests {
		_, err := Build(context.Background(), tt.def, Options{IDs: &models.IDCounter{}})
		if !errors.Is(err, tt.expected) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.expected, err)
		}
	}

	_, err := Build(context.Background(), &Definition{Sheets: []SheetDefinition{{}}}, Options{})
	var defErr *DefinitionError
	if !errors.As(err, &defErr) || defErr.Sheet != "#1" {
		t.Errorf("Expected a DefinitionError for an unnamed sheet, got %v", err)
	}
}

func TestBuild_YAMLInfinity(t *testing.T) {
	def, err := Decode(strings.NewReader("sheets:\n  - name: S\n    cells:\n      - ref: B2\n        number: .inf\n"), YAML())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	_, err = Build(context.Background(), def, Options{IDs: &models.IDCounter{}})
	if !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("Expected ErrInvalidValue, got %v", err)
	}
	var defErr *DefinitionError
	if !errors.As(err, &defErr) || defErr.Sheet != "S" {
		t.Errorf("Expected a DefinitionError for sheet S, got %v", err)
	}
}

func TestBuild_Passwords(t *testing.T) {
	def := &Definition{
		Password: "book",
		Sheets: []SheetDefinition{
			{Name: "Locked", Password: "sheet", Cells: []CellDefinition{{Ref: "A1", Text: ptr("x")}}},
			{Name: "Open"},
		},
	}
	wb, err := Build(context.Background(), def, Options{IDs: &models.IDCounter{}})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	sheets := wb.Sheets()
	if err := protect.Verify("sheet", sheets[0].Protection()); err != nil {
		t.Errorf("Expected the sheet password to verify, got %v", err)
	}
	if sheets[1].Protection() != nil {
		t.Error("Expected Open to stay unprotected")
	}
	if err := protect.Verify("book", wb.Protection()); err != nil {
		t.Errorf("Expected the workbook password to verify, got %v", err)
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		kind     models.ValueKind
		expected string
	}{
		{"123", models.KindNumber, "123"},
		{"123.45", models.KindNumber, "123.45"},
		{"-100", models.KindNumber, "-100"},
		{"1e3", models.KindNumber, "1000"},
		{"hello", models.KindText, "hello"},
		{"NaN", models.KindText, "NaN"},
		{"Inf", models.KindText, "Inf"},
		{"", models.KindText, ""},
	}

	for _, tt := range tests {
		v := parseValue(tt.input)
		if v.Kind() != tt.kind || v.Serialize() != tt.expected {
			t.Errorf("parseValue(%q) = %v %q, expected %v %q",
				tt.input, v.Kind(), v.Serialize(), tt.kind, tt.expected)
		}
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "book.YML")
	if err := os.WriteFile(yamlPath, []byte(sampleYAML), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	def, err := LoadFile(yamlPath)
	if err != nil {
		t.Fatalf("LoadFile(yaml) failed: %v", err)
	}
	if len(def.Sheets) != 2 {
		t.Errorf("Expected 2 sheets, got %d", len(def.Sheets))
	}

	jsonPath := filepath.Join(dir, "book.json")
	if err := os.WriteFile(jsonPath, []byte(sampleJSON), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := LoadFile(jsonPath); err != nil {
		t.Errorf("LoadFile(json) failed: %v", err)
	}

	if _, err := LoadFile(filepath.Join(dir, "book.toml")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist, got %v", err)
	}
}

func TestDecode_RejectsNonScalarValue(t *testing.T) {
	doc := "sheets:\n  - name: S\n    cells:\n      - ref: A1\n        value: [1, 2]\n"
	if _, err := Decode(strings.NewReader(doc), YAML()); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("Expected ErrInvalidValue, got %v", err)
	}
}

func ptr[T any](v T) *T { return &v }
