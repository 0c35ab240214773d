package parser

import (
	"errors"
	"testing"

	"github.com/radargen/radargen/pkg/radar/models"
)

func TestAssemble(t *testing.T) {
	records := []Record{
		{Name: "Terraform", Ring: "Adopt", Quadrant: "tools", IsNew: false, Description: "Infrastructure as code."},
		{Name: "Pulumi", Ring: "Trial", Quadrant: "tools", IsNew: true, Description: "Programmable infra."},
		{Name: "Go", Ring: "Adopt", Quadrant: "languages", IsNew: false, Description: "A language."},
	}

	r, err := Assemble(records, "Infra Radar", "Sheet1", []string{"Sheet1", "2025"})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	if r.Title != "Infra Radar" {
		t.Errorf("Title = %q, expected %q", r.Title, "Infra Radar")
	}
	if r.CurrentSheetName != "Sheet1" {
		t.Errorf("CurrentSheetName = %q, expected %q", r.CurrentSheetName, "Sheet1")
	}
	if len(r.AlternativeSheetNames) != 2 {
		t.Errorf("Expected 2 alternative sheet names, got %d", len(r.AlternativeSheetNames))
	}

	// Quadrants appear in first-seen order with capitalized names.
	if len(r.Quadrants) != 2 {
		t.Fatalf("Expected 2 quadrants, got %d", len(r.Quadrants))
	}
	if r.Quadrants[0].Name != "Tools" {
		t.Errorf("Quadrant 0 name = %q, expected %q", r.Quadrants[0].Name, "Tools")
	}
	if r.Quadrants[1].Name != "Languages" {
		t.Errorf("Quadrant 1 name = %q, expected %q", r.Quadrants[1].Name, "Languages")
	}
	if len(r.Quadrants[0].Entries) != 2 {
		t.Errorf("Expected 2 entries in first quadrant, got %d", len(r.Quadrants[0].Entries))
	}

	// Entries keep their source order and record fields.
	e := r.Quadrants[0].Entries[1]
	if e.Name != "Pulumi" || !e.IsNew || e.Description != "Programmable infra." {
		t.Errorf("Entry = %+v, expected Pulumi/new/description preserved", e)
	}

	// Rings are ordered by first appearance, not alphabetically.
	if len(r.Rings) != 2 {
		t.Fatalf("Expected 2 rings, got %d", len(r.Rings))
	}
	if r.Rings[0].Name != "Adopt" || r.Rings[0].Order != 0 {
		t.Errorf("Ring 0 = %+v, expected Adopt at order 0", r.Rings[0])
	}
	if r.Rings[1].Name != "Trial" || r.Rings[1].Order != 1 {
		t.Errorf("Ring 1 = %+v, expected Trial at order 1", r.Rings[1])
	}
}

func TestAssembleSharesRingInstances(t *testing.T) {
	records := []Record{
		{Name: "A", Ring: "Hold", Quadrant: "tools"},
		{Name: "B", Ring: "Hold", Quadrant: "platforms"},
	}
	r, err := Assemble(records, "t", "s", nil)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	first := r.Quadrants[0].Entries[0].Ring
	second := r.Quadrants[1].Entries[0].Ring
	if first != second {
		t.Errorf("Entries in the same ring got distinct Ring instances: %p vs %p", first, second)
	}
	if first != r.Rings[0] {
		t.Errorf("Entry ring %p is not the radar-owned instance %p", first, r.Rings[0])
	}
}

func TestAssembleRingCap(t *testing.T) {
	records := []Record{
		{Name: "A", Ring: "One", Quadrant: "q"},
		{Name: "B", Ring: "Two", Quadrant: "q"},
		{Name: "C", Ring: "Three", Quadrant: "q"},
		{Name: "D", Ring: "Four", Quadrant: "q"},
		{Name: "E", Ring: "Five", Quadrant: "q"},
	}
	_, err := Assemble(records, "t", "s", nil)
	if err == nil {
		t.Fatalf("Assemble with 5 rings = nil error, expected MalformedDataError")
	}
	var malformed *models.MalformedDataError
	if !errors.As(err, &malformed) {
		t.Errorf("Assemble returned %T, expected *MalformedDataError", err)
	}

	// Exactly MaxRings distinct rings is still fine, however often repeated.
	ok := []Record{
		{Name: "A", Ring: "One", Quadrant: "q"},
		{Name: "B", Ring: "Two", Quadrant: "q"},
		{Name: "C", Ring: "Three", Quadrant: "q"},
		{Name: "D", Ring: "Four", Quadrant: "q"},
		{Name: "E", Ring: "Four", Quadrant: "q"},
	}
	if _, err := Assemble(ok, "t", "s", nil); err != nil {
		t.Errorf("Assemble with %d rings = %v, expected nil", MaxRings, err)
	}
}

func TestAssembleDistinctQuadrantValues(t *testing.T) {
	// Quadrant identity is the raw value; capitalization only affects the
	// display name.
	records := []Record{
		{Name: "A", Ring: "Adopt", Quadrant: "tools"},
		{Name: "B", Ring: "Adopt", Quadrant: "Tools"},
	}
	r, err := Assemble(records, "t", "s", nil)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	if len(r.Quadrants) != 2 {
		t.Fatalf("Expected 2 quadrants for distinct raw values, got %d", len(r.Quadrants))
	}
	if r.Quadrants[0].Name != "Tools" || r.Quadrants[1].Name != "Tools" {
		t.Errorf("Quadrant names = %q, %q, expected both %q",
			r.Quadrants[0].Name, r.Quadrants[1].Name, "Tools")
	}
}

func TestAssembleNeverNilSlices(t *testing.T) {
	r, err := Assemble(nil, "t", "s", nil)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	if r.AlternativeSheetNames == nil {
		t.Errorf("AlternativeSheetNames is nil, expected empty slice")
	}
	if r.Quadrants == nil {
		t.Errorf("Quadrants is nil, expected empty slice")
	}
	if r.Rings == nil {
		t.Errorf("Rings is nil, expected empty slice")
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"tools", "Tools"},
		{"Tools", "Tools"},
		{"languages & frameworks", "Languages & frameworks"},
		{"éclair", "Éclair"},
		{"", ""},
		{"t", "T"},
	}

	for _, tt := range tests {
		result := capitalize(tt.input)
		if result != tt.expected {
			t.Errorf("capitalize(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}
