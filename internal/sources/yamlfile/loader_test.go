package yamlfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MrSnakeDoc/hookhub/internal/catalog"
	"github.com/MrSnakeDoc/hookhub/internal/domain"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to create test YAML file: %v", err)
	}
	return path
}

func TestLoaderLoad(t *testing.T) {
	path := writeFile(t, `hooks:
  - id: git-commit-guardian
    name: Git Commit Guardian
    description: Prevent accidental commits to main.
    category: Security
    repoUrl: https://github.com/EvanL1/claude-code-hooks
    author: EvanL1
    githubStars: 0
    hookTypes: [PreToolUse]
  - id: slack-notifier
    name: Slack Notifier
    description: Send Slack notifications.
    category: Notifications
    repoUrl: https://github.com/community/slack-notifier-hook
    author: Community
    hookTypes: [Stop, SessionEnd]
    tags: [slack]
`)

	hooks, err := NewLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(hooks) != 2 {
		t.Fatalf("Load() returned %d hooks, want 2", len(hooks))
	}

	first := hooks[0]
	if first.Category != domain.CategorySecurity {
		t.Errorf("category = %v, want Security", first.Category)
	}
	if first.GitHubStars == nil || *first.GitHubStars != 0 {
		t.Errorf("githubStars = %v, want explicit 0", first.GitHubStars)
	}

	second := hooks[1]
	if second.GitHubStars != nil {
		t.Errorf("githubStars = %v, want absent", *second.GitHubStars)
	}
	if len(second.HookTypes) != 2 || second.HookTypes[1] != domain.EventSessionEnd {
		t.Errorf("hookTypes = %v, want [Stop SessionEnd]", second.HookTypes)
	}
}

func TestLoaderLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "empty file",
			content: "hooks: []\n",
			wantErr: "no hooks",
		},
		{
			name: "unknown category",
			content: `hooks:
  - id: x
    name: X
    description: d
    category: Games
    repoUrl: https://github.com/x/x
    author: x
    hookTypes: [Stop]
`,
			wantErr: "unknown category",
		},
		{
			name: "unknown field",
			content: `hooks:
  - id: x
    stars: 3
`,
			wantErr: "parse",
		},
		{
			name: "duplicate ids",
			content: `hooks:
  - id: x
    name: X
    description: d
    category: Testing
    repoUrl: https://github.com/x/x
    author: x
    hookTypes: [Stop]
  - id: x
    name: X again
    description: d
    category: Testing
    repoUrl: https://github.com/x/y
    author: x
    hookTypes: [Stop]
`,
			wantErr: "duplicate id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoader(writeFile(t, tt.content)).Load(context.Background())
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoaderLoadFileNotFound(t *testing.T) {
	_, err := NewLoader("/nonexistent/path/catalog.yaml").Load(context.Background())
	if err == nil {
		t.Error("Load() with non-existent file should return error")
	}
}

func TestWriteThenLoadDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := Write(path, catalog.Default()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	hooks, err := NewLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := catalog.Default()
	if len(hooks) != len(want) {
		t.Fatalf("Load() returned %d hooks, want %d", len(hooks), len(want))
	}
	for i := range want {
		if hooks[i].ID != want[i].ID || hooks[i].Category != want[i].Category {
			t.Errorf("hooks[%d] = %s/%s, want %s/%s", i, hooks[i].ID, hooks[i].Category, want[i].ID, want[i].Category)
		}
	}
}

func TestLoaderName(t *testing.T) {
	if got := NewLoader("x").Name(); got != catalog.SourceFile {
		t.Errorf("Name() = %q, want %q", got, catalog.SourceFile)
	}
}
