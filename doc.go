// Package strata indexes a directory tree of plain-text notes.
//
// Each note is a file whose content starts with a title line underlined by
// hyphens:
//
//	Weekly Review
//	-------------
//
// A note's tags are derived from where it lives: the first tag is the note's
// own directory relative to the scan root, and every symlink in the tree that
// resolves to the note contributes the symlink's directory as a further tag.
// The same physical note can therefore be filed under several tag paths.
//
// Architecture:
//
//   - pkg/core holds the domain (Note, Collection, error kinds) and never
//     touches the filesystem.
//   - pkg/adapters/fs walks the tree, builds notes and reconciles symlinks.
//   - pkg/export encodes a collection for output outside the core.
//
// A scan is a single synchronous pass. Files that are not notes (no title
// marker, unreadable, binary) are left out silently; only an unresolvable root
// fails the scan.
//
// Usage:
//
//	notes, err := strata.FromDir("./notes")
//	if err != nil {
//		return err
//	}
//	for _, n := range notes.WithTag("work/meetings") {
//		fmt.Println(n.Title)
//	}
package strata
