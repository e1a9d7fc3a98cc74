package i

import "context"

// LayoutCache stores generated wall layouts under a deterministic key.
type LayoutCache interface {
	// Get returns the cached masks and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores masks under key.
	Set(ctx context.Context, key string, masks []byte) error

	// Lock acquires an exclusive lock on key and returns the function releasing it.
	Lock(ctx context.Context, key string) (func(), error)
}
