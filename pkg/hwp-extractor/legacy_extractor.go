package hwp_extractor

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/korean"
)

// legacyHeaderSize is the fixed header region that precedes body text in
// an HWP 3.x file.
const legacyHeaderSize = 128

// extractHWP3 handles the legacy fixed-layout binary variant: no container,
// no compression, no section boundaries. The body is everything past the
// fixed header, decoded with the single pre-Unicode Korean encoding the
// format was written in (no fallback chain — the multi-encoding ambiguity
// postdates this variant).
func (e *HwpExtractor) extractHWP3(reader io.ReadSeeker) (*Document, error) {
	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek legacy document: %w", err)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read legacy document: %w", err)
	}

	var body []byte
	if len(data) > legacyHeaderSize {
		body = data[legacyHeaderSize:]
	}

	// Replacement-mode decode: with no fallback chain to defer to, bad
	// spans degrade to replacement runes, stripped below.
	decoded, err := korean.EUCKR.NewDecoder().Bytes(body)
	if err != nil {
		decoded = nil
	}
	text := strings.ReplaceAll(string(decoded), "�", "")

	doc := NewDocument(VersionHWP3)
	doc.Sections = []string{sanitizeText(text)}
	return doc, nil
}
