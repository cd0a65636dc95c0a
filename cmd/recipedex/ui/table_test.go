package ui

import (
	"strings"
	"testing"
)

func TestTable(t *testing.T) {
	table := NewTable("Results", []string{"Name", "Cuisine"})
	table.AddRow("Shakshuka", "Middle Eastern")
	table.AddRow("Omelette", "European")

	view := table.View(DefaultStyles())

	if !strings.Contains(view, "Results") {
		t.Error("View missing title")
	}
	if !strings.Contains(view, "Shakshuka") {
		t.Error("View missing cell content")
	}
	if !strings.Contains(view, "Cuisine") {
		t.Error("View missing header")
	}
}

func TestTableEmpty(t *testing.T) {
	table := NewTable("Empty", []string{"A"})
	if view := table.View(DefaultStyles()); view != "" {
		t.Errorf("Empty table should render nothing, got %q", view)
	}
}

func TestTableShortRow(t *testing.T) {
	table := NewTable("", []string{"A", "B", "C"})
	table.AddRow("only", "two")

	// Must not panic on rows shorter than the header.
	view := table.View(DefaultStyles())
	if !strings.Contains(view, "only") {
		t.Error("View missing cell content")
	}
}
