package core

import "context"

// Source produces a Collection from some backing store.
// The filesystem adapter is the default implementation.
type Source interface {
	// Scan performs one full pass and returns the resulting collection.
	// Only failures that prevent the scan as a whole are returned.
	Scan(ctx context.Context) (*Collection, error)
}
