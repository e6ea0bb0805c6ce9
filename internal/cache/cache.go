// Package cache provides the read-through response cache used by the
// usecases. Entries are JSON-serialized responses keyed by logical endpoint
// plus its parameters; writes invalidate whole key prefixes so that derived
// counts on parent entities never outlive a child mutation.
package cache

import "context"

// Cache is deliberately fault-silent: a backend error behaves like a miss on
// reads and a no-op on writes, so a cache outage never fails a request.
type Cache interface {
	// Get unmarshals the entry for key into dest and reports whether a
	// usable entry existed.
	Get(ctx context.Context, key string, dest any) bool
	// Set stores value under key with the cache's fixed TTL.
	Set(ctx context.Context, key string, value any)
	// Invalidate removes every entry whose key starts with one of the
	// given prefixes.
	Invalidate(ctx context.Context, prefixes ...string)
}

const (
	PrefixMenus    = "menus:"
	PrefixSubMenus = "submenus:"
	PrefixDishes   = "dishes:"
)

// Write scopes: which prefixes a committed write must flush. A child write
// flushes its ancestors because their submenus_count/dishes_count are baked
// into cached responses.

func MenuWriteScope() []string {
	return []string{PrefixMenus}
}

func SubMenuWriteScope() []string {
	return []string{PrefixSubMenus, PrefixMenus}
}

func DishWriteScope() []string {
	return []string{PrefixDishes, PrefixSubMenus, PrefixMenus}
}
