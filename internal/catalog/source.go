package catalog

import (
	"context"

	"github.com/MrSnakeDoc/hookhub/internal/domain"
)

// Source names of the supported catalog providers.
const (
	SourceBuiltin = "builtin"
	SourceFile    = "file"
	SourceRedis   = "redis"
)

// Source produces the catalog once, before the first page is rendered.
type Source interface {
	Name() string
	Load(ctx context.Context) ([]domain.Hook, error)
}

// Builtin serves the data set compiled into the binary.
type Builtin struct{}

// NewBuiltin creates the built-in source.
func NewBuiltin() *Builtin { return &Builtin{} }

func (Builtin) Name() string { return SourceBuiltin }

func (Builtin) Load(_ context.Context) ([]domain.Hook, error) {
	return Default(), nil
}
