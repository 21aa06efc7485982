package catalog

import "github.com/MrSnakeDoc/hookhub/internal/domain"

// builtin is the curated data set shipped with the binary, in display order.
var builtin = []domain.Hook{
	{
		ID:          "multi-agent-observability",
		Name:        "Multi-Agent Observability",
		Description: "Real-time monitoring for Claude Code agents through simple hook event tracking. Visualize agent workflows, debug issues, and track performance.",
		Category:    domain.CategoryMultiAgent,
		RepoURL:     "https://github.com/disler/claude-code-hooks-multi-agent-observability",
		Author:      "disler",
		GitHubStars: domain.Stars(45),
		HookTypes:   []domain.EventType{domain.EventPreToolUse, domain.EventPostToolUse, domain.EventStop},
		Tags:        []string{"monitoring", "debugging", "visualization"},
	},
	{
		ID:          "code-quality-enforcer",
		Name:        "Code Quality Enforcer",
		Description: "Comprehensive hooks to enforce clean code practices with automatic validation and quality checks using Python-based lightweight system.",
		Category:    domain.CategoryCodeQuality,
		RepoURL:     "https://github.com/decider/claude-hooks",
		Author:      "decider",
		GitHubStars: domain.Stars(32),
		HookTypes:   []domain.EventType{domain.EventPostToolUse, domain.EventPreToolUse},
		Tags:        []string{"validation", "quality", "python"},
	},
	{
		ID:          "auto-format-guard",
		Name:        "Auto-Format Guard",
		Description: "Automatically format code with Prettier, gofmt, or Black before commits. Ensures consistent code style across your entire project.",
		Category:    domain.CategoryAutomation,
		RepoURL:     "https://github.com/EvanL1/claude-code-hooks",
		Author:      "EvanL1",
		GitHubStars: domain.Stars(28),
		HookTypes:   []domain.EventType{domain.EventPostToolUse},
		Tags:        []string{"formatting", "prettier", "automation"},
	},
	{
		ID:          "claudekit-toolkit",
		Name:        "ClaudeKit Toolkit",
		Description: "Complete CLI toolkit with auto-save checkpointing, code quality hooks, specification generation, and 20+ specialized subagents.",
		Category:    domain.CategoryGeneral,
		RepoURL:     "https://github.com/carlrannaberg/claudekit",
		Author:      "carlrannaberg",
		GitHubStars: domain.Stars(67),
		HookTypes:   []domain.EventType{domain.EventSessionEnd, domain.EventStop, domain.EventPreToolUse},
		Tags:        []string{"cli", "toolkit", "subagents"},
	},
	{
		ID:          "hooks-mastery-guide",
		Name:        "Hooks Mastery Guide",
		Description: "Comprehensive guide to mastering Claude Code hooks with all 8 lifecycle events captured with their JSON payloads and usage examples.",
		Category:    domain.CategoryDocumentation,
		RepoURL:     "https://github.com/disler/claude-code-hooks-mastery",
		Author:      "disler",
		GitHubStars: domain.Stars(89),
		HookTypes: []domain.EventType{
			domain.EventPreToolUse, domain.EventPostToolUse, domain.EventUserPromptSubmit,
			domain.EventNotification, domain.EventStop, domain.EventSubagentStop,
			domain.EventPreCompact, domain.EventSessionStart, domain.EventSessionEnd,
		},
		Tags: []string{"guide", "documentation", "examples"},
	},
	{
		ID:          "typescript-hooks",
		Name:        "TypeScript Hooks",
		Description: "TypeScript-powered hook system with full type safety, auto-completion, and access to strongly-typed payloads for safer hook development.",
		Category:    domain.CategoryAutomation,
		RepoURL:     "https://github.com/johnlindquist/claude-hooks",
		Author:      "johnlindquist",
		GitHubStars: domain.Stars(54),
		HookTypes:   []domain.EventType{domain.EventPreToolUse, domain.EventPostToolUse, domain.EventUserPromptSubmit},
		Tags:        []string{"typescript", "type-safety", "developer-experience"},
	},
	{
		ID:          "git-commit-guardian",
		Name:        "Git Commit Guardian",
		Description: "Prevent accidental commits to main/master branches, scan for secrets, and enforce commit message conventions automatically.",
		Category:    domain.CategorySecurity,
		RepoURL:     "https://github.com/EvanL1/claude-code-hooks",
		Author:      "EvanL1",
		GitHubStars: domain.Stars(28),
		HookTypes:   []domain.EventType{domain.EventPreToolUse},
		Tags:        []string{"git", "security", "secrets-scanning"},
	},
	{
		ID:          "slack-notifier",
		Name:        "Slack Notifier",
		Description: "Send Slack notifications when Claude Code completes tasks, encounters errors, or requires user input. Stay informed on long-running operations.",
		Category:    domain.CategoryNotifications,
		RepoURL:     "https://github.com/community/slack-notifier-hook",
		Author:      "Community",
		GitHubStars: domain.Stars(15),
		HookTypes:   []domain.EventType{domain.EventStop, domain.EventSessionEnd},
		Tags:        []string{"slack", "notifications", "alerts"},
	},
	{
		ID:          "test-runner-hook",
		Name:        "Test Runner Hook",
		Description: "Automatically run test suites after code changes to catch regressions early. Supports Jest, Pytest, Go test, and more.",
		Category:    domain.CategoryTesting,
		RepoURL:     "https://github.com/community/test-runner-hook",
		Author:      "Community",
		GitHubStars: domain.Stars(22),
		HookTypes:   []domain.EventType{domain.EventPostToolUse},
		Tags:        []string{"testing", "jest", "pytest"},
	},
	{
		ID:          "command-logger",
		Name:        "Command Logger",
		Description: "Track and log all Claude Code commands for compliance, debugging, and workflow analysis. Export logs to JSON or CSV.",
		Category:    domain.CategoryLogging,
		RepoURL:     "https://github.com/community/command-logger-hook",
		Author:      "Community",
		GitHubStars: domain.Stars(18),
		HookTypes:   []domain.EventType{domain.EventPreToolUse, domain.EventPostToolUse},
		Tags:        []string{"logging", "compliance", "debugging"},
	},
	{
		ID:          "file-protection",
		Name:        "File Protection",
		Description: "Block modifications to production files, sensitive directories, or configuration files. Prevent accidental changes to critical code.",
		Category:    domain.CategorySecurity,
		RepoURL:     "https://github.com/decider/claude-hooks",
		Author:      "decider",
		GitHubStars: domain.Stars(32),
		HookTypes:   []domain.EventType{domain.EventPreToolUse},
		Tags:        []string{"security", "file-protection", "safety"},
	},
	{
		ID:          "custom-notifications",
		Name:        "Custom Notifications",
		Description: "Desktop notifications for key events with customizable sounds and messages. Never miss important Claude Code updates.",
		Category:    domain.CategoryNotifications,
		RepoURL:     "https://github.com/EvanL1/claude-code-hooks",
		Author:      "EvanL1",
		GitHubStars: domain.Stars(28),
		HookTypes:   []domain.EventType{domain.EventNotification, domain.EventStop},
		Tags:        []string{"notifications", "desktop", "alerts"},
	},
}

// Default returns a fresh copy of the built-in catalog.
func Default() []domain.Hook {
	out := make([]domain.Hook, len(builtin))
	for i, h := range builtin {
		out[i] = h.Clone()
	}
	return out
}
