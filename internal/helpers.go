package internal

// ContextValue reads a typed value stored with Context.Set.
// Returns the zero value when the key is missing or has another type.
func ContextValue[T any](c Context, key any) T {
	if v, ok := c.Get(key).(T); ok {
		return v
	}
	var zero T
	return zero
}
