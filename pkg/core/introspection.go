package core

import (
	"github.com/aretw0/introspection"
)

// CollectionState exposes a summary of a collection for observability.
type CollectionState struct {
	Root  string `json:"root"`
	Notes int    `json:"notes"`
	Tags  int    `json:"tags"`
	Links int    `json:"links"`
}

// State implements introspection.Introspectable.
func (c *Collection) State() any {
	links := 0
	for _, n := range c.notes {
		links += len(n.Tags) - 1
	}
	return CollectionState{
		Root:  c.root,
		Notes: len(c.notes),
		Tags:  len(c.Tags()),
		Links: links,
	}
}

// ComponentType implements introspection.Component.
func (c *Collection) ComponentType() string {
	return "collection"
}

var _ introspection.Introspectable = (*Collection)(nil)
var _ introspection.Component = (*Collection)(nil)
