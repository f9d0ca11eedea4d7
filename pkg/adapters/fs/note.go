package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/aretw0/strata/pkg/core"
)

// NoteFromFile builds a note from the file at path, discovered under scanRoot.
// The returned note carries exactly one tag: the file's directory relative to
// the canonical scan root. Errors are *core.NoteError wrapping a core kind.
func NoteFromFile(path, scanRoot string) (core.Note, error) {
	root, err := canonicalize(scanRoot)
	if err != nil {
		return core.Note{}, &core.NoteError{
			Path: path,
			Err:  fmt.Errorf("%w: %v", core.ErrRootUnresolvable, err),
		}
	}
	return noteFromFile(path, root)
}

// noteFromFile is NoteFromFile with an already canonical root.
func noteFromFile(path, root string) (core.Note, error) {
	fail := func(kind error, cause error) (core.Note, error) {
		if cause != nil {
			kind = fmt.Errorf("%w: %v", kind, cause)
		}
		return core.Note{}, &core.NoteError{Path: path, Err: kind}
	}

	content, err := readContent(path)
	if err != nil {
		return fail(core.ErrFileUnreadable, err)
	}

	prefix, err := core.TruncatePrefix(content)
	if err != nil {
		return fail(err, nil)
	}

	title, err := core.TitleFromText(string(prefix))
	if err != nil {
		return fail(err, nil)
	}

	dir, err := canonicalize(filepath.Dir(path))
	if err != nil {
		return fail(core.ErrFileUnreadable, err)
	}
	if !utf8.ValidString(dir) {
		return fail(core.ErrPathNotText, nil)
	}

	tag, err := RelativeTag(root, dir)
	if err != nil {
		return fail(err, nil)
	}

	canonical, err := canonicalize(path)
	if err != nil {
		return fail(core.ErrFileUnreadable, err)
	}

	return core.Note{
		Title: title,
		Path:  canonical,
		Tags:  []string{tag},
	}, nil
}

// readContent reads a whole regular file.
func readContent(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("not a regular file (%s)", info.Mode().Type())
	}
	return os.ReadFile(path)
}
