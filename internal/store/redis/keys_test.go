package redis

import (
	"testing"
	"time"
)

func TestHookKey(t *testing.T) {
	if got := HookKey("file-protection"); got != "hookhub:hook:file-protection" {
		t.Errorf("HookKey() = %v", got)
	}
}

func TestCatalogKeys(t *testing.T) {
	if got := CatalogOrderKey(); got != "hookhub:catalog:order" {
		t.Errorf("CatalogOrderKey() = %v", got)
	}
	if got := CatalogMetaKey(); got != "hookhub:catalog:meta" {
		t.Errorf("CatalogMetaKey() = %v", got)
	}
}

func TestParseMeta(t *testing.T) {
	m, err := parseMeta(map[string]string{
		"count":      "12",
		"updated_at": "2025-10-01T12:00:00Z",
	})
	if err != nil {
		t.Fatalf("parseMeta() error = %v", err)
	}
	if m.Count != 12 {
		t.Errorf("Count = %v, want 12", m.Count)
	}
	if !m.UpdatedAt.Equal(time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)) {
		t.Errorf("UpdatedAt = %v", m.UpdatedAt)
	}

	empty, err := parseMeta(map[string]string{})
	if err != nil || empty.Count != 0 || !empty.UpdatedAt.IsZero() {
		t.Errorf("parseMeta(empty) = %+v, %v", empty, err)
	}

	if _, err := parseMeta(map[string]string{"count": "many"}); err == nil {
		t.Error("parseMeta() with bad count should fail")
	}
}
