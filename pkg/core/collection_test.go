package core_test

import (
	"testing"

	"github.com/aretw0/strata/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCollection() *core.Collection {
	return core.NewCollection("./notes/", []core.Note{
		{Title: "Weekly Review", Path: "/r/work/review.md", Tags: []string{"work", "inbox"}},
		{Title: "Grocery List", Path: "/r/home/groceries.md", Tags: []string{"home"}},
		{Title: "Root Note", Path: "/r/index.md", Tags: []string{""}},
	})
}

func TestCollection_Accessors(t *testing.T) {
	c := sampleCollection()

	assert.Equal(t, "./notes/", c.Root())
	assert.Equal(t, 3, c.Len())

	n, ok := c.Get("/r/home/groceries.md")
	require.True(t, ok)
	assert.Equal(t, "Grocery List", n.Title)

	_, ok = c.Get("/r/missing.md")
	assert.False(t, ok)
}

func TestCollection_Immutable(t *testing.T) {
	c := sampleCollection()

	notes := c.Notes()
	notes[0].Title = "changed"
	notes[0].Tags[0] = "changed"

	n, ok := c.Get("/r/work/review.md")
	require.True(t, ok)
	assert.Equal(t, "Weekly Review", n.Title)
	assert.Equal(t, []string{"work", "inbox"}, n.Tags)
}

func TestCollection_Tags(t *testing.T) {
	c := sampleCollection()

	assert.Equal(t, []string{"", "home", "inbox", "work"}, c.Tags())
	assert.Equal(t, map[string]int{"": 1, "home": 1, "inbox": 1, "work": 1}, c.TagCounts())

	work := c.WithTag("inbox")
	require.Len(t, work, 1)
	assert.Equal(t, "Weekly Review", work[0].Title)

	assert.Empty(t, c.WithTag("nope"))
}

func TestCollection_TagCountsIgnoresRepeats(t *testing.T) {
	c := core.NewCollection("r", []core.Note{
		{Title: "A", Path: "/r/a/a.md", Tags: []string{"a", "b", "b"}},
	})
	assert.Equal(t, map[string]int{"a": 1, "b": 1}, c.TagCounts())
}

func TestCollection_Find(t *testing.T) {
	c := sampleCollection()

	found := c.Find("grcry")
	require.NotEmpty(t, found)
	assert.Equal(t, "Grocery List", found[0].Title)

	assert.Empty(t, c.Find("zzzz"))
	assert.Empty(t, c.Find("  "))
}

func TestCollection_Sorted(t *testing.T) {
	c := sampleCollection()

	sorted := c.Sorted()
	require.Len(t, sorted, 3)
	assert.Equal(t, "/r/home/groceries.md", sorted[0].Path)
	assert.Equal(t, "/r/index.md", sorted[1].Path)
	assert.Equal(t, "/r/work/review.md", sorted[2].Path)

	// Discovery order is untouched.
	assert.Equal(t, "/r/work/review.md", c.Notes()[0].Path)
}

func TestCollection_State(t *testing.T) {
	c := sampleCollection()

	state, ok := c.State().(core.CollectionState)
	require.True(t, ok)
	assert.Equal(t, core.CollectionState{Root: "./notes/", Notes: 3, Tags: 4, Links: 1}, state)
	assert.Equal(t, "collection", c.ComponentType())
}
