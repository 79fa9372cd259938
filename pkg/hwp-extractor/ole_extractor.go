package hwp_extractor

import (
	"context"
	"errors"
	"io"
	"sort"
	"strconv"
	"strings"
)

const (
	fileHeaderStream  = "FileHeader"
	bodyTextStorage   = "BodyText"
	sectionNamePrefix = "Section"
	binDataStorage    = "BinData"

	// FileHeader layout: version DWORD at offset 32 (major in the high
	// byte), attribute flags DWORD at offset 36 with bit 0 = compressed.
	headerMajorVersionOffset = 35
	headerFlagsOffset        = 36
)

// extractHWP5 opens the compound container and hands off to the section
// loop. A container that fails to open per the CFB format rules is retried
// as a legacy HWP 3.x file; that retry edge exists only here, never for a
// missing stream inside a successfully opened container.
func (e *HwpExtractor) extractHWP5(ctx context.Context, reader io.ReadSeeker) (*Document, error) {
	ra, ok := reader.(io.ReaderAt)
	if !ok {
		return nil, &InvalidContainerError{Container: "compound file", Err: errors.New("byte source does not support random access")}
	}
	cont, err := openOLEContainer(ra)
	if err != nil {
		e.cfg.Logger.Warn("compound container open failed, retrying as HWP 3.x", "error", err)
		return e.extractHWP3(reader)
	}
	return e.extractFromContainer(ctx, cont)
}

// extractFromContainer runs the compound-binary section loop against the
// container collaborator boundary.
func (e *HwpExtractor) extractFromContainer(ctx context.Context, cont Container) (*Document, error) {
	header, err := cont.ReadStream(fileHeaderStream)
	if err != nil {
		return nil, &MissingSectionError{Missing: fileHeaderStream}
	}
	if len(header) > headerMajorVersionOffset {
		if major := header[headerMajorVersionOffset]; major != 5 {
			e.cfg.Logger.Debug("unexpected major version in FileHeader", "major", major)
		}
	}
	// The compression flag is global to the document; it is read once here
	// and applied to every body-text section.
	compressed := len(header) > headerFlagsOffset && header[headerFlagsOffset]&1 == 1

	type numberedSection struct {
		num  int
		name string
	}
	var sections []numberedSection
	for _, entry := range cont.Entries() {
		if len(entry.Segments) != 2 || entry.Segments[0] != bodyTextStorage {
			continue
		}
		suffix := strings.TrimPrefix(entry.Segments[1], sectionNamePrefix)
		if suffix == entry.Segments[1] {
			continue
		}
		num, err := strconv.Atoi(suffix)
		if err != nil {
			continue
		}
		sections = append(sections, numberedSection{num: num, name: entry.Name})
	}
	if len(sections) == 0 {
		return nil, &MissingSectionError{Missing: bodyTextStorage}
	}
	sort.Slice(sections, func(i, j int) bool { return sections[i].num < sections[j].num })

	doc := NewDocument(VersionHWP5)
	for i, sec := range sections {
		data, err := cont.ReadStream(sec.name)
		if err != nil {
			e.cfg.Logger.Warn("body-text stream unreadable", "section", sec.name, "error", err)
			doc.Sections = append(doc.Sections, "")
			continue
		}
		text := e.sectionText(decompress(data, compressed))

		// Embedded images live under a document-level BinData storage with
		// no per-section mapping; their transcriptions attach to the first
		// section.
		if i == 0 {
			for _, t := range transcribeAll(ctx, e.cfg.Logger, e.cfg.Transcriber, e.binDataImages(cont)) {
				text += t + "\n"
			}
		}
		doc.Sections = append(doc.Sections, text)
	}
	return doc, nil
}

// sectionText scans one decompressed body-text buffer and assembles the
// decoded, sanitized paragraph texts, newline separated with a trailing
// newline. A buffer that yields no paragraph records produces "".
func (e *HwpExtractor) sectionText(buf []byte) string {
	scanner := NewRecordScanner(buf)
	var parts []string
	for rec, ok := scanner.Next(); ok; rec, ok = scanner.Next() {
		parts = append(parts, sanitizeText(decodeText(rec.Payload)))
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "\n") + "\n"
}

// binDataImages collects the raw bytes of every BinData stream. Returns
// nil when no transcriber is configured, so documents without image
// handling pay nothing.
func (e *HwpExtractor) binDataImages(cont Container) [][]byte {
	if e.cfg.Transcriber == nil {
		return nil
	}
	var images [][]byte
	for _, entry := range cont.Entries() {
		if len(entry.Segments) != 2 || entry.Segments[0] != binDataStorage {
			continue
		}
		data, err := cont.ReadStream(entry.Name)
		if err != nil || len(data) == 0 {
			continue
		}
		images = append(images, data)
	}
	return images
}
