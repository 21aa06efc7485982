package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/MrSnakeDoc/hookhub/internal/catalog"
	"github.com/MrSnakeDoc/hookhub/internal/domain"
)

func TestWriteTable(t *testing.T) {
	hooks := domain.Filter(catalog.Default(), domain.Only(domain.CategorySecurity))

	var buf bytes.Buffer
	if err := writeTable(&buf, hooks); err != nil {
		t.Fatalf("writeTable() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"NAME", "Git Commit Guardian", "File Protection", "Showing 2 hooks"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Slack Notifier") {
		t.Errorf("output contains a hook outside the category:\n%s", out)
	}
}

func TestWriteTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := writeTable(&buf, nil); err != nil {
		t.Fatalf("writeTable() error = %v", err)
	}
	want := "Showing 0 hooks\n" + domain.EmptyStateMessage + "\n"
	if buf.String() != want {
		t.Errorf("writeTable(nil) = %q, want %q", buf.String(), want)
	}
}

func TestWriteJSON(t *testing.T) {
	sel := domain.Only(domain.CategoryMultiAgent)
	hooks := domain.Filter(catalog.Default(), sel)

	var buf bytes.Buffer
	if err := writeJSON(&buf, sel, hooks); err != nil {
		t.Fatalf("writeJSON() error = %v", err)
	}

	var got struct {
		Selected string `json:"selected"`
		Count    int    `json:"count"`
		Summary  string `json:"summary"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got.Selected != "Multi-Agent" || got.Count != 1 || got.Summary != "Showing 1 hook" {
		t.Errorf("writeJSON() = %+v", got)
	}
}

func TestSelectionLabels(t *testing.T) {
	labels := selectionLabels()
	if len(labels) != 10 || labels[0] != "All" || labels[9] != "General" {
		t.Errorf("selectionLabels() = %v", labels)
	}
}

func TestSeedHooksDefault(t *testing.T) {
	hooks, err := seedHooks(context.Background(), "")
	if err != nil {
		t.Fatalf("seedHooks() error = %v", err)
	}
	if len(hooks) != 12 {
		t.Errorf("seedHooks() returned %d hooks, want 12", len(hooks))
	}
}
