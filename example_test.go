package strata_test

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/aretw0/strata"
)

// Example_basic builds a small tree, links one note into a second directory
// and scans it.
func Example_basic() {
	tmpDir, err := os.MkdirTemp("", "strata-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	write := func(rel, content string) string {
		path := filepath.Join(tmpDir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			log.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			log.Fatal(err)
		}
		return path
	}

	review := write("work/meetings/review.md", "Weekly Review\n-------------\n\nAgenda...\n")
	write("home/groceries.md", "Groceries\n---------\n")
	write("home/scan.pdf", "%PDF-1.7 not a note")

	if err := os.MkdirAll(filepath.Join(tmpDir, "inbox"), 0755); err != nil {
		log.Fatal(err)
	}
	if err := os.Symlink(review, filepath.Join(tmpDir, "inbox", "review.md")); err != nil {
		log.Fatal(err)
	}

	notes, err := strata.FromDir(tmpDir)
	if err != nil {
		log.Fatal(err)
	}

	for _, n := range notes.Notes() {
		fmt.Printf("%s %v\n", n.Title, n.Tags)
	}

	// Output:
	// Groceries [home]
	// Weekly Review [work/meetings inbox]
}

// ExampleTitleFromText shows the title marker format.
func ExampleTitleFromText() {
	title, err := strata.TitleFromText("Release Notes: v2\n------------------\nbody")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(title)

	_, err = strata.TitleFromText("# Markdown heading\n")
	fmt.Println(err)

	// Output:
	// Release Notes: v2
	// title marker not found
}
