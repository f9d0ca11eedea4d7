package core

import (
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Collection is the result of scanning a root directory.
// It is immutable; accessors hand out copies.
type Collection struct {
	root   string
	notes  []Note
	byPath map[string][]int
}

// NewCollection builds a collection over notes, taking ownership of the slice.
// root is kept as supplied by the caller.
func NewCollection(root string, notes []Note) *Collection {
	c := &Collection{
		root:   root,
		notes:  notes,
		byPath: make(map[string][]int, len(notes)),
	}
	for i, n := range notes {
		c.byPath[n.Path] = append(c.byPath[n.Path], i)
	}
	return c
}

// Root returns the root directory as it was supplied, not canonicalized.
func (c *Collection) Root() string {
	return c.root
}

// Len returns the number of notes.
func (c *Collection) Len() int {
	return len(c.notes)
}

// Notes returns the notes in discovery order.
func (c *Collection) Notes() []Note {
	out := make([]Note, len(c.notes))
	for i, n := range c.notes {
		out[i] = n.clone()
	}
	return out
}

// Get returns the note stored under a canonical path.
func (c *Collection) Get(path string) (Note, bool) {
	idx, ok := c.byPath[path]
	if !ok {
		return Note{}, false
	}
	return c.notes[idx[0]].clone(), true
}

// Tags returns every distinct tag, sorted.
func (c *Collection) Tags() []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, n := range c.notes {
		for _, t := range n.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			tags = append(tags, t)
		}
	}
	slices.Sort(tags)
	return tags
}

// TagCounts returns how many notes carry each tag.
func (c *Collection) TagCounts() map[string]int {
	counts := make(map[string]int)
	for _, n := range c.notes {
		seen := make(map[string]bool, len(n.Tags))
		for _, t := range n.Tags {
			if seen[t] {
				continue
			}
			seen[t] = true
			counts[t]++
		}
	}
	return counts
}

// WithTag returns the notes carrying tag, in discovery order.
func (c *Collection) WithTag(tag string) []Note {
	var out []Note
	for _, n := range c.notes {
		if n.HasTag(tag) {
			out = append(out, n.clone())
		}
	}
	return out
}

// Find returns notes whose title fuzzily matches query, best match first.
func (c *Collection) Find(query string) []Note {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	titles := make([]string, len(c.notes))
	for i, n := range c.notes {
		titles[i] = n.Title
	}
	matches := fuzzy.Find(query, titles)
	out := make([]Note, 0, len(matches))
	for _, m := range matches {
		out = append(out, c.notes[m.Index].clone())
	}
	return out
}

// Sorted returns the notes ordered by canonical path.
// Useful when comparing scans of trees whose walk order may differ.
func (c *Collection) Sorted() []Note {
	out := c.Notes()
	slices.SortStableFunc(out, func(a, b Note) int {
		return strings.Compare(a.Path, b.Path)
	})
	return out
}
