package querycache

// GetAs returns the cached value of key as a T.
func GetAs[T any](c *Cache, key Key) (T, bool) {
	var zero T
	v, ok := c.Get(key)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}

// ApplyAs is Apply for entries holding a T. Entries of another type are left as is.
func ApplyAs[T any](c *Cache, key Key, fn func(T) T) bool {
	applied := false
	c.Apply(key, func(current any) any {
		t, ok := current.(T)
		if !ok {
			return current
		}
		applied = true
		return fn(t)
	})
	return applied
}
