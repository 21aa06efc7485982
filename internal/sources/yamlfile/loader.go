package yamlfile

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MrSnakeDoc/hookhub/internal/catalog"
	"github.com/MrSnakeDoc/hookhub/internal/domain"
)

// Loader reads a catalog from a YAML file.
type Loader struct {
	filePath string
	mapper   *Mapper
}

// NewLoader creates a new catalog file loader
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
		mapper:   NewMapper(),
	}
}

func (l *Loader) Name() string { return catalog.SourceFile }

// Load reads, parses, maps and validates the catalog file.
func (l *Loader) Load(_ context.Context) ([]domain.Hook, error) {
	file, err := l.Parse()
	if err != nil {
		return nil, err
	}

	hooks, err := l.mapper.MapHooks(file)
	if err != nil {
		return nil, fmt.Errorf("failed to map catalog file: %w", err)
	}

	if err := catalog.Validate(hooks); err != nil {
		return nil, fmt.Errorf("invalid catalog file %s: %w", l.filePath, err)
	}

	return hooks, nil
}

// Parse reads the raw YAML structure without mapping it.
func (l *Loader) Parse() (CatalogFile, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return CatalogFile{}, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var file CatalogFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return CatalogFile{}, fmt.Errorf("failed to parse catalog yaml: %w", err)
	}

	return file, nil
}

// Write serialises hooks to path in the catalog file format.
func Write(path string, hooks []domain.Hook) error {
	data, err := Marshal(hooks)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write catalog file: %w", err)
	}
	return nil
}

// Marshal renders hooks in the catalog file format.
func Marshal(hooks []domain.Hook) ([]byte, error) {
	data, err := yaml.Marshal(NewMapper().ToFile(hooks))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal catalog yaml: %w", err)
	}
	return data, nil
}
