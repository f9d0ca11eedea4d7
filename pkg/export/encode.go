// Package export renders notes for output or storage outside the core.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/strata/pkg/core"
)

// Format selects an encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a name (or file extension) to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "", "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown format %q", name)
}

// Index is the serialized form of a collection.
type Index struct {
	Root  string      `json:"root" yaml:"root"`
	Notes []core.Note `json:"notes" yaml:"notes"`
}

// NewIndex captures notes under root for encoding.
func NewIndex(root string, notes []core.Note) Index {
	if notes == nil {
		notes = []core.Note{}
	}
	return Index{Root: root, Notes: notes}
}

// Encode writes idx to w in the given format.
func Encode(w io.Writer, idx Index, format Format) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(idx)
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(idx); err != nil {
			return err
		}
		return encoder.Close()
	case FormatText:
		return encodeText(w, idx.Notes)
	}
	return fmt.Errorf("unknown format %q", format)
}

// encodeText prints one aligned line per note: path, title, tags.
func encodeText(w io.Writer, notes []core.Note) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, n := range notes {
		fmt.Fprintf(tw, "%s\t%s\t[%s]\n", n.Path, n.Title, strings.Join(displayTags(n.Tags), ", "))
	}
	return tw.Flush()
}

// displayTags renders the root tag visibly.
func displayTags(tags []string) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		if t == "" {
			t = "."
		}
		out[i] = t
	}
	return out
}
