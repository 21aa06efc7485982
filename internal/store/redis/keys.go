package redis

const (
	// KeyPrefixHook is the prefix for hook keys
	KeyPrefixHook = "hookhub:hook:"
	// KeyCatalogOrder is the list of hook IDs in display order
	KeyCatalogOrder = "hookhub:catalog:order"
	// KeyCatalogMeta is the hash holding catalog metadata (updated_at, count)
	KeyCatalogMeta = "hookhub:catalog:meta"
)

// HookKey returns the Redis key for a hook by ID
func HookKey(id string) string {
	return KeyPrefixHook + id
}

// CatalogOrderKey returns the key for the ordered list of hook IDs
func CatalogOrderKey() string {
	return KeyCatalogOrder
}

// CatalogMetaKey returns the key for the catalog metadata hash
func CatalogMetaKey() string {
	return KeyCatalogMeta
}
