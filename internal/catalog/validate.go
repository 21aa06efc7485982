package catalog

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MrSnakeDoc/hookhub/internal/domain"
)

// ErrEmptyCatalog is returned when a source yields no entries.
var ErrEmptyCatalog = errors.New("catalog is empty")

// Validate checks externally supplied entries against the catalog invariants.
// All problems are reported together.
func Validate(hooks []domain.Hook) error {
	if len(hooks) == 0 {
		return ErrEmptyCatalog
	}

	var errs []error
	seen := make(map[string]bool, len(hooks))

	for i, h := range hooks {
		ref := fmt.Sprintf("entry %d (%s)", i, h.ID)

		if strings.TrimSpace(h.ID) == "" {
			errs = append(errs, fmt.Errorf("entry %d: id is empty", i))
		} else if seen[h.ID] {
			errs = append(errs, fmt.Errorf("%s: duplicate id", ref))
		}
		seen[h.ID] = true

		if strings.TrimSpace(h.Name) == "" {
			errs = append(errs, fmt.Errorf("%s: name is empty", ref))
		}
		if strings.TrimSpace(h.Description) == "" {
			errs = append(errs, fmt.Errorf("%s: description is empty", ref))
		}
		if strings.TrimSpace(h.Author) == "" {
			errs = append(errs, fmt.Errorf("%s: author is empty", ref))
		}
		if !h.Category.IsValid() {
			errs = append(errs, fmt.Errorf("%s: invalid category", ref))
		}
		if err := validateRepoURL(h.RepoURL); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", ref, err))
		}
		if h.GitHubStars != nil && *h.GitHubStars < 0 {
			errs = append(errs, fmt.Errorf("%s: githubStars must be >= 0, got %d", ref, *h.GitHubStars))
		}
		if len(h.HookTypes) == 0 {
			errs = append(errs, fmt.Errorf("%s: hookTypes is empty", ref))
		}
		for _, e := range h.HookTypes {
			if !e.IsValid() {
				errs = append(errs, fmt.Errorf("%s: unknown hook type %q", ref, e))
			}
		}
	}

	return errors.Join(errs...)
}

func validateRepoURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid repoUrl: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("repoUrl must be http(s), got %q", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("repoUrl has no host: %q", raw)
	}
	return nil
}
