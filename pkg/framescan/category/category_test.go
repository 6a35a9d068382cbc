package category

import (
	"errors"
	"testing"

	"github.com/Eden-Eldith/framescan/pkg/framescan/internalerr"
)

func TestTableOrderPreserved(t *testing.T) {
	table, err := NewTable([]Spec{
		{Label: "B", Terms: []string{"beta"}},
		{Label: "A", Terms: []string{"alpha"}},
		{Label: "C", Terms: []string{"gamma"}},
	})
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}

	labels := table.Labels()
	want := []string{"B", "A", "C"}
	for i, l := range want {
		if labels[i] != l {
			t.Errorf("labels[%d] = %q, want %q", i, labels[i], l)
		}
	}
}

func TestDuplicateLabel(t *testing.T) {
	_, err := NewTable([]Spec{
		{Label: "A", Terms: []string{"alpha"}},
		{Label: "A", Terms: []string{"also alpha"}},
	})
	if !errors.Is(err, internalerr.ErrDuplicateLabel) {
		t.Fatalf("expected ErrDuplicateLabel, got %v", err)
	}
}

func TestMalformedRule(t *testing.T) {
	_, err := NewTable([]Spec{
		{Label: "Broken", Pattern: `(?i)\b(?:unclosed`},
	})
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestEmptyRule(t *testing.T) {
	_, err := NewTable([]Spec{{Label: "Nothing"}})
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for spec without terms or pattern, got %v", err)
	}
}

func TestWordBoundaryMatching(t *testing.T) {
	table, err := NewTable([]Spec{
		{Label: "Pain", Terms: []string{"pain"}},
	})
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	rule := table.Categories()[0].Rule

	cases := []struct {
		text string
		want bool
	}{
		{"living with chronic pain", true},
		{"PAIN clinic reopens", true},
		{"Spain wins the cup", false},
		{"painters wanted", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := rule.Matches(tc.text); got != tc.want {
			t.Errorf("Matches(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestExclusionClause(t *testing.T) {
	table, err := NewTable([]Spec{
		{Label: "Special School", Terms: []string{"special school"}, ExcludeAfter: []string{"of thought"}},
	})
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	rule := table.Categories()[0].Rule

	if rule.Matches("he is a special school of thought graduate") {
		t.Error("idiomatic use should not match")
	}
	if !rule.Matches("new special school for autistic children") {
		t.Error("literal use should match")
	}
}

func TestExclusionOnlySuppressesItsOwnCandidate(t *testing.T) {
	table, err := NewTable([]Spec{
		{Label: "School", Terms: []string{"school"}, ExcludeAfter: []string{"of thought"}},
	})
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	rule := table.Categories()[0].Rule

	// The first occurrence is excluded, the second is not.
	if !rule.Matches("one school of thought says the school should expand") {
		t.Error("later clean occurrence should still match")
	}
}

func TestBuiltinTable(t *testing.T) {
	table := Builtin()
	if table.Len() != 18 {
		t.Fatalf("builtin table has %d categories, want 18", table.Len())
	}

	labels := table.Labels()
	if labels[0] != "SEND/Special Schools" {
		t.Errorf("first category = %q, want SEND/Special Schools", labels[0])
	}
	if labels[len(labels)-1] != "General 'Disability' Keyword" {
		t.Errorf("last category = %q, want the general catch-all", labels[len(labels)-1])
	}

	send := table.Categories()[0].Rule
	if !send.Matches("New special school opens in Leeds") {
		t.Error("SEND rule should match a special school headline")
	}
	if send.Matches("he is a special school of thought graduate") {
		t.Error("SEND rule should not match the idiom")
	}
}
