package core

import (
	"fmt"
	"regexp"
	"slices"
	"unicode/utf8"
)

// TitlePrefixLen is the number of leading bytes of a file examined for a title.
const TitlePrefixLen = 512

// titlePattern matches a title line followed by an underline of hyphens.
var titlePattern = regexp.MustCompile(`^([A-Za-z0-9 _:-]+)\n-+\n`)

// Note is a discovered note file.
// Path is the canonical location of the file and identifies the note.
// Tags are root-relative directories, the note's own directory first.
type Note struct {
	Title string   `json:"title" yaml:"title"`
	Path  string   `json:"path" yaml:"path"`
	Tags  []string `json:"tags" yaml:"tags"`
}

// Equal reports whether both notes refer to the same file.
func (n Note) Equal(other Note) bool {
	return n.Path == other.Path
}

// HasTag reports whether the note carries tag.
func (n Note) HasTag(tag string) bool {
	return slices.Contains(n.Tags, tag)
}

// String returns a single-line representation.
func (n Note) String() string {
	return fmt.Sprintf("%s (%s) %v", n.Title, n.Path, n.Tags)
}

func (n Note) clone() Note {
	n.Tags = slices.Clone(n.Tags)
	return n
}

// TitleFromText extracts the title from the start of content.
// The title line must be the very first line and be followed by a line of hyphens.
func TitleFromText(content string) (string, error) {
	m := titlePattern.FindStringSubmatch(content)
	if m == nil {
		return "", ErrTitleMissing
	}
	return m[1], nil
}

// TruncatePrefix returns at most TitlePrefixLen bytes of data.
// A cut inside a multi-byte sequence backs off to the previous rune boundary.
func TruncatePrefix(data []byte) ([]byte, error) {
	if len(data) > TitlePrefixLen {
		cut := TitlePrefixLen
		// Back off at most utf8.UTFMax-1 continuation bytes.
		for i := 0; i < utf8.UTFMax-1 && cut > 0 && !utf8.RuneStart(data[cut]); i++ {
			cut--
		}
		data = data[:cut]
	}
	if !utf8.Valid(data) {
		return nil, ErrNotText
	}
	return data, nil
}
