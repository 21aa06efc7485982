package yamlfile

import (
	"errors"
	"fmt"

	"github.com/MrSnakeDoc/hookhub/internal/domain"
)

// Mapper converts catalog file entries to domain.Hook values
type Mapper struct{}

// NewMapper creates a new mapper instance
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapHooks converts a CatalogFile to domain hooks, keeping file order.
// Unknown category or hook type labels are reported per entry.
func (m *Mapper) MapHooks(file CatalogFile) ([]domain.Hook, error) {
	if len(file.Hooks) == 0 {
		return nil, fmt.Errorf("no hooks found in catalog file")
	}

	hooks := make([]domain.Hook, 0, len(file.Hooks))
	var errs []error

	for i, entry := range file.Hooks {
		category, ok := domain.ParseCategory(entry.Category)
		if !ok {
			errs = append(errs, fmt.Errorf("entry %d (%s): unknown category %q", i, entry.ID, entry.Category))
			continue
		}

		hookTypes := make([]domain.EventType, 0, len(entry.HookTypes))
		for _, name := range entry.HookTypes {
			e, ok := domain.ParseEventType(name)
			if !ok {
				errs = append(errs, fmt.Errorf("entry %d (%s): unknown hook type %q", i, entry.ID, name))
				continue
			}
			hookTypes = append(hookTypes, e)
		}

		hooks = append(hooks, domain.Hook{
			ID:          entry.ID,
			Name:        entry.Name,
			Description: entry.Description,
			Category:    category,
			RepoURL:     entry.RepoURL,
			Author:      entry.Author,
			GitHubStars: entry.GitHubStars,
			HookTypes:   hookTypes,
			Tags:        entry.Tags,
		})
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return hooks, nil
}

// ToFile is the inverse of MapHooks.
func (m *Mapper) ToFile(hooks []domain.Hook) CatalogFile {
	file := CatalogFile{Hooks: make([]HookEntry, 0, len(hooks))}
	for _, h := range hooks {
		hookTypes := make([]string, 0, len(h.HookTypes))
		for _, e := range h.HookTypes {
			hookTypes = append(hookTypes, e.String())
		}
		file.Hooks = append(file.Hooks, HookEntry{
			ID:          h.ID,
			Name:        h.Name,
			Description: h.Description,
			Category:    h.Category.String(),
			RepoURL:     h.RepoURL,
			Author:      h.Author,
			GitHubStars: h.GitHubStars,
			HookTypes:   hookTypes,
			Tags:        h.Tags,
		})
	}
	return file
}
