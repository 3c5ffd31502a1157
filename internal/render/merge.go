package render

import (
	"fmt"
	"strings"
)

// Sentinel markers delimit the region of the document this tool owns.
// Everything strictly between them is overwritten on every run; bytes
// outside them are never touched.
const (
	StartMarker = "<!-- HASHNODE_BLOG:START -->"
	EndMarker   = "<!-- HASHNODE_BLOG:END -->"
)

// Merge splices the rendered block into existing. When the document
// contains a well-formed marked region, that region is replaced; when it
// does not, a fresh section is appended. Merging the same block twice
// reproduces byte-identical output.
//
// The owned region is the first end marker that has a start marker in
// front of it, closed against the nearest such start marker. A dangling
// start or end marker on its own never forms a region, so bytes around
// it are left alone and append mode kicks in.
func Merge(existing, block, sectionTitle string) string {
	section := buildSection(block, sectionTitle)

	searchFrom := 0
	for {
		rel := strings.Index(existing[searchFrom:], EndMarker)
		if rel < 0 {
			break
		}
		end := searchFrom + rel
		if start := strings.LastIndex(existing[:end], StartMarker); start >= 0 {
			return existing[:start] + section + existing[end+len(EndMarker):]
		}
		searchFrom = end + len(EndMarker)
	}

	return existing + "\n\n" + section + "\n"
}

func buildSection(block, sectionTitle string) string {
	var b strings.Builder
	b.WriteString(StartMarker)
	b.WriteString("\n")
	if sectionTitle != "" {
		fmt.Fprintf(&b, "## %s\n\n", sectionTitle)
	}
	b.WriteString(block)
	b.WriteString("\n")
	b.WriteString(EndMarker)
	return b.String()
}
