package hwp_extractor

import "strings"

// Document is the result of extracting text from one HWP family document.
// Sections is the canonical shape: one entry per enumerated section, in
// container order, with an empty string standing in for a section that
// yielded no text. Sections are never dropped, only emptied.
type Document struct {
	Version  Version
	Sections []string

	// Notice describes a degraded but non-fatal outcome, such as a ZIP
	// package holding none of the known section paths. Empty when the
	// extraction was healthy.
	Notice string
}

func NewDocument(version Version) *Document {
	return &Document{Version: version}
}

// Text returns all section texts concatenated, the legacy single-string
// call shape. Every non-empty section contributes a trailing newline so
// section boundaries survive concatenation. Sections remains the
// preferred result.
func (d *Document) Text() string {
	var b strings.Builder
	for _, s := range d.Sections {
		b.WriteString(s)
		if s != "" && !strings.HasSuffix(s, "\n") {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Degraded reports whether the document carries a degraded-outcome notice.
func (d *Document) Degraded() bool {
	return d.Notice != ""
}
