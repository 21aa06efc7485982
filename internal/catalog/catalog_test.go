package catalog

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MrSnakeDoc/hookhub/internal/domain"
)

func TestDefaultIsValid(t *testing.T) {
	hooks := Default()
	if len(hooks) != 12 {
		t.Fatalf("Default() returned %d hooks, want 12", len(hooks))
	}
	if err := Validate(hooks); err != nil {
		t.Fatalf("Validate(Default()) error = %v", err)
	}
}

func TestDefaultReturnsCopy(t *testing.T) {
	first := Default()
	first[0].Name = "changed"
	first[0].HookTypes[0] = domain.EventSessionStart
	*first[0].GitHubStars = 1000

	second := Default()
	if second[0].Name == "changed" {
		t.Error("Default() shares entries between calls")
	}
	if second[0].HookTypes[0] == domain.EventSessionStart {
		t.Error("Default() shares hookTypes between calls")
	}
	if *second[0].GitHubStars == 1000 {
		t.Error("Default() shares star counts between calls")
	}
}

func TestDefaultScenario(t *testing.T) {
	hooks := Default()

	tests := []struct {
		label     string
		wantCount int
		wantNames []string
	}{
		{label: "Security", wantCount: 2, wantNames: []string{"Git Commit Guardian", "File Protection"}},
		{label: "Multi-Agent", wantCount: 1, wantNames: []string{"Multi-Agent Observability"}},
		{label: "All", wantCount: 12},
		{label: "Notifications", wantCount: 2, wantNames: []string{"Slack Notifier", "Custom Notifications"}},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			sel, ok := domain.ParseSelection(tt.label)
			if !ok {
				t.Fatalf("ParseSelection(%q) failed", tt.label)
			}
			result := domain.Filter(hooks, sel)
			if len(result) != tt.wantCount {
				t.Fatalf("Filter(%s) returned %d, want %d", tt.label, len(result), tt.wantCount)
			}
			for i, name := range tt.wantNames {
				if result[i].Name != name {
					t.Errorf("result[%d] = %q, want %q", i, result[i].Name, name)
				}
			}
		})
	}
}

func TestBuiltinSource(t *testing.T) {
	src := NewBuiltin()
	if src.Name() != SourceBuiltin {
		t.Errorf("Name() = %q, want %q", src.Name(), SourceBuiltin)
	}
	hooks, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(hooks) != 12 {
		t.Errorf("Load() returned %d hooks, want 12", len(hooks))
	}
}

func TestValidate(t *testing.T) {
	valid := func() domain.Hook {
		return domain.Hook{
			ID:          "ok",
			Name:        "OK",
			Description: "Does things.",
			Category:    domain.CategoryLogging,
			RepoURL:     "https://github.com/example/ok",
			Author:      "example",
			HookTypes:   []domain.EventType{domain.EventStop},
		}
	}

	tests := []struct {
		name    string
		mutate  func([]domain.Hook) []domain.Hook
		wantErr string
	}{
		{
			name:   "valid entry",
			mutate: func(h []domain.Hook) []domain.Hook { return h },
		},
		{
			name: "duplicate id",
			mutate: func(h []domain.Hook) []domain.Hook {
				return append(h, h[0])
			},
			wantErr: "duplicate id",
		},
		{
			name: "invalid category",
			mutate: func(h []domain.Hook) []domain.Hook {
				h[0].Category = 0
				return h
			},
			wantErr: "invalid category",
		},
		{
			name: "negative stars",
			mutate: func(h []domain.Hook) []domain.Hook {
				h[0].GitHubStars = domain.Stars(-1)
				return h
			},
			wantErr: "githubStars",
		},
		{
			name: "zero stars allowed",
			mutate: func(h []domain.Hook) []domain.Hook {
				h[0].GitHubStars = domain.Stars(0)
				return h
			},
		},
		{
			name: "no hook types",
			mutate: func(h []domain.Hook) []domain.Hook {
				h[0].HookTypes = nil
				return h
			},
			wantErr: "hookTypes is empty",
		},
		{
			name: "unknown hook type",
			mutate: func(h []domain.Hook) []domain.Hook {
				h[0].HookTypes = []domain.EventType{"OnSave"}
				return h
			},
			wantErr: "unknown hook type",
		},
		{
			name: "bad repo url",
			mutate: func(h []domain.Hook) []domain.Hook {
				h[0].RepoURL = "ftp://example.com/repo"
				return h
			},
			wantErr: "repoUrl",
		},
		{
			name: "missing name",
			mutate: func(h []domain.Hook) []domain.Hook {
				h[0].Name = " "
				return h
			},
			wantErr: "name is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.mutate([]domain.Hook{valid()}))
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateEmpty(t *testing.T) {
	if err := Validate(nil); !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("Validate(nil) error = %v, want ErrEmptyCatalog", err)
	}
}
