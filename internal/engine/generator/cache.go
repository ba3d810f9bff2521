package generator

// Cache memoizes the derived values of one invocation.
// An entry is computed at most once and never invalidated. A Cache must not
// be shared between invocations or goroutines.
type Cache struct {
	destination      *string
	buildPath        *string
	resultBundlePath *string
}

// NewCache creates an empty cache for a single invocation.
func NewCache() *Cache {
	return &Cache{}
}

func memo(slot **string, compute func() (string, error)) (string, error) {
	if *slot != nil {
		return **slot, nil
	}
	v, err := compute()
	if err != nil {
		return "", err
	}
	*slot = &v
	return v, nil
}
