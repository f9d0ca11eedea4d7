package fs_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/aretw0/strata/pkg/adapters/fs"
	"github.com/aretw0/strata/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteFromFile(t *testing.T) {
	t.Run("Derives Title And Tag", func(t *testing.T) {
		root := t.TempDir()
		path := writeNote(t, root, "a/b/note.md", "Foo\n---\nbody\n")

		note, err := fs.NoteFromFile(path, root)
		require.NoError(t, err)

		assert.Equal(t, "Foo", note.Title)
		assert.Equal(t, []string{"a/b"}, note.Tags)
		assert.Equal(t, canonical(t, path), note.Path)
	})

	t.Run("Trailing Separator On Root", func(t *testing.T) {
		root := t.TempDir()
		path := writeNote(t, root, "a/b/note.md", "Foo\n---\n")

		plain, err := fs.NoteFromFile(path, root)
		require.NoError(t, err)
		slashed, err := fs.NoteFromFile(path, root+string(os.PathSeparator))
		require.NoError(t, err)

		assert.Equal(t, plain.Tags, slashed.Tags)
	})

	t.Run("Relative Paths", func(t *testing.T) {
		root := t.TempDir()
		writeNote(t, root, "tests/notes/test-note.md", "Test note\n---------\n")
		t.Chdir(root)

		note, err := fs.NoteFromFile("./tests/notes/test-note.md", ".")
		require.NoError(t, err)

		assert.Equal(t, "Test note", note.Title)
		assert.Equal(t, []string{"tests/notes"}, note.Tags)
		assert.True(t, filepath.IsAbs(note.Path))
	})

	t.Run("Note In Root Has Empty Tag", func(t *testing.T) {
		root := t.TempDir()
		path := writeNote(t, root, "index.md", "Index\n-----\n")

		note, err := fs.NoteFromFile(path, root)
		require.NoError(t, err)
		assert.Equal(t, []string{""}, note.Tags)
	})

	t.Run("Title After Prefix Is Missing", func(t *testing.T) {
		root := t.TempDir()
		content := strings.Repeat("x", core.TitlePrefixLen) + "\nLate\n---\n"
		path := writeNote(t, root, "late.md", content)

		_, err := fs.NoteFromFile(path, root)
		assert.ErrorIs(t, err, core.ErrTitleMissing)
	})

	t.Run("Title Within Prefix Of Large File", func(t *testing.T) {
		root := t.TempDir()
		content := "Big\n---\n" + strings.Repeat("y", 4096)
		path := writeNote(t, root, "big.md", content)

		note, err := fs.NoteFromFile(path, root)
		require.NoError(t, err)
		assert.Equal(t, "Big", note.Title)
	})

	t.Run("Missing Title", func(t *testing.T) {
		root := t.TempDir()
		path := writeNote(t, root, "plain.txt", "just some text\n")

		_, err := fs.NoteFromFile(path, root)
		assert.ErrorIs(t, err, core.ErrTitleMissing)

		var ne *core.NoteError
		require.ErrorAs(t, err, &ne)
		assert.Equal(t, path, ne.Path)
	})

	t.Run("Binary Content", func(t *testing.T) {
		root := t.TempDir()
		path := writeNote(t, root, "doc.pdf", "%PDF-1.4\n\xff\xfe\xfd\x00")

		_, err := fs.NoteFromFile(path, root)
		assert.ErrorIs(t, err, core.ErrNotText)
	})

	t.Run("Missing File", func(t *testing.T) {
		root := t.TempDir()

		_, err := fs.NoteFromFile(filepath.Join(root, "nope.md"), root)
		assert.ErrorIs(t, err, core.ErrFileUnreadable)
	})

	t.Run("Directory Is Unreadable As Note", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(root, "dir"), 0755))

		_, err := fs.NoteFromFile(filepath.Join(root, "dir"), root)
		assert.ErrorIs(t, err, core.ErrFileUnreadable)
	})

	t.Run("Outside Root", func(t *testing.T) {
		base := t.TempDir()
		root := filepath.Join(base, "notes")
		require.NoError(t, os.Mkdir(root, 0755))
		path := writeNote(t, base, "notes-old/a.md", "Old\n---\n")

		_, err := fs.NoteFromFile(path, root)
		assert.ErrorIs(t, err, core.ErrTagPrefixMismatch)
	})

	t.Run("Missing Root", func(t *testing.T) {
		root := t.TempDir()
		path := writeNote(t, root, "a.md", "A\n-\n")

		_, err := fs.NoteFromFile(path, filepath.Join(root, "missing"))
		assert.ErrorIs(t, err, core.ErrRootUnresolvable)
	})
}

func TestNoteFromFile_ThroughSymlink(t *testing.T) {
	skipWithoutSymlinks(t)

	root := t.TempDir()
	target := writeNote(t, root, "a/note.md", "Foo\n---\n")
	link := symlink(t, root, "b/link.md", target)

	// The tag follows the canonical directory of the link's parent, while the
	// path is the fully resolved target.
	note, err := fs.NoteFromFile(link, root)
	require.NoError(t, err)
	assert.Equal(t, canonical(t, target), note.Path)
	assert.Equal(t, []string{"b"}, note.Tags)
}

func TestNoteFromFile_NonUTF8Directory(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("only linux accepts arbitrary bytes in names")
	}

	root := t.TempDir()
	path := writeNote(t, root, "notes/\xfe\xff/note.md", "Foo\n---\n")

	_, err := fs.NoteFromFile(path, root)

	assert.ErrorIs(t, err, core.ErrPathNotText)
	var noteErr *core.NoteError
	require.ErrorAs(t, err, &noteErr)
	assert.Equal(t, path, noteErr.Path)
}
