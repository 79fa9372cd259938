package hwp_extractor

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"io"
	"sort"
	"strconv"
	"strings"
)

// hwpxTextNamespaces are the OWPML paragraph namespaces whose p/run/t
// elements carry body text. The package declares many more namespaces
// (section, head, app, core, master-page, chart...), but none of them hold
// text runs.
var hwpxTextNamespaces = map[string]bool{
	"http://www.hancom.co.kr/hwpml/2011/paragraph": true,
	"http://www.hancom.co.kr/hwpml/2016/paragraph": true,
}

// hwpxSectionPaths is the fixed priority order for locating section 0's
// markup; later entries are legacy layouts.
var hwpxSectionPaths = []string{
	"Contents/section0.xml",
	"BodyText/section0.xml",
	"Contents/content.hpf",
}

// hwpxBinDataDir holds embedded images referenced from section markup.
const hwpxBinDataDir = "bindata/"

// extractHWPX handles the ZIP-packaged XML variant.
func (e *HwpExtractor) extractHWPX(ctx context.Context, reader io.ReadSeeker) (*Document, error) {
	size, err := reader.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, &InvalidContainerError{Container: "zip package", Err: err}
	}
	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return nil, &InvalidContainerError{Container: "zip package", Err: err}
	}
	ra, ok := reader.(io.ReaderAt)
	if !ok {
		return nil, &InvalidContainerError{Container: "zip package", Err: errors.New("byte source does not support random access")}
	}
	cont, err := openZipContainer(ra, size)
	if err != nil {
		return nil, &InvalidContainerError{Container: "zip package", Err: err}
	}

	doc := NewDocument(VersionHWPX)

	var primary string
	for _, p := range hwpxSectionPaths {
		if cont.Exists(p) {
			primary = p
			break
		}
	}
	if primary == "" {
		doc.Notice = unsupportedPackageNotice(hwpxSectionPaths)
		e.cfg.Logger.Warn("package holds no known section path", "notice", doc.Notice)
		return doc, nil
	}

	for _, member := range sectionMembers(cont, primary) {
		data, err := cont.ReadStream(member)
		if err != nil {
			e.cfg.Logger.Warn("section member unreadable", "member", member, "error", err)
			doc.Sections = append(doc.Sections, "")
			continue
		}
		// Members are usually stored plain inside the ZIP, but some
		// producers deflate them a second time.
		text, imageIDs := parseSectionXML(inflateWhole(data))

		if e.cfg.Transcriber != nil {
			for _, t := range transcribeAll(ctx, e.cfg.Logger, e.cfg.Transcriber, e.packageImages(cont, imageIDs)) {
				if text != "" {
					text += "\n"
				}
				text += t
			}
		}
		doc.Sections = append(doc.Sections, text)
	}
	return doc, nil
}

// sectionMembers expands the chosen primary path to the full ordered
// section list: sibling members sharing its "section<N>.xml" shape, sorted
// by numeric suffix. A non-section primary (content.hpf) stands alone.
func sectionMembers(cont Container, primary string) []string {
	const tail = "0.xml"
	if !strings.HasSuffix(primary, "section"+tail) {
		return []string{primary}
	}
	base := strings.TrimSuffix(primary, tail)

	type numbered struct {
		num  int
		name string
	}
	var members []numbered
	for _, entry := range cont.Entries() {
		rest, ok := strings.CutPrefix(entry.Name, base)
		if !ok || !strings.HasSuffix(rest, ".xml") {
			continue
		}
		num, err := strconv.Atoi(strings.TrimSuffix(rest, ".xml"))
		if err != nil {
			continue
		}
		members = append(members, numbered{num: num, name: entry.Name})
	}
	sort.Slice(members, func(i, j int) bool { return members[i].num < members[j].num })

	names := make([]string, len(members))
	for i, m := range members {
		names[i] = m.name
	}
	return names
}

// parseSectionXML token-streams one section's markup, collecting the
// sanitized text runs and any embedded-image references. Runs within one
// paragraph join with a single space; paragraphs join with newlines.
func parseSectionXML(data []byte) (string, []string) {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	var paragraphs []string
	var runs []string
	var current strings.Builder
	pDepth := 0
	inText := false
	var imageIDs []string

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		switch t := token.(type) {
		case xml.StartElement:
			if id := imageReference(t); id != "" {
				imageIDs = append(imageIDs, id)
			}
			if !hwpxTextNamespaces[t.Name.Space] {
				continue
			}
			switch t.Name.Local {
			case "p":
				if pDepth == 0 {
					runs = runs[:0]
				}
				pDepth++
			case "t":
				if pDepth > 0 {
					inText = true
					current.Reset()
				}
			}

		case xml.CharData:
			if inText {
				current.Write(t)
			}

		case xml.EndElement:
			if !hwpxTextNamespaces[t.Name.Space] {
				continue
			}
			switch t.Name.Local {
			case "t":
				if inText {
					inText = false
					if run := sanitizeText(current.String()); run != "" {
						runs = append(runs, run)
					}
				}
			case "p":
				if pDepth > 0 {
					pDepth--
					if pDepth == 0 {
						paragraphs = append(paragraphs, strings.Join(runs, " "))
					}
				}
			}
		}
	}
	return strings.Join(paragraphs, "\n"), imageIDs
}

// imageReference pulls the binary-item id off picture/image elements.
func imageReference(se xml.StartElement) string {
	local := strings.ToLower(se.Name.Local)
	if !strings.Contains(local, "pic") && !strings.Contains(local, "img") {
		return ""
	}
	for _, attr := range se.Attr {
		switch attr.Name.Local {
		case "BinItemID", "binaryItemIDRef", "href":
			if attr.Value != "" {
				return attr.Value
			}
		}
	}
	return ""
}

// packageImages reads the referenced bindata members, dropping the ids
// that resolve to nothing.
func (e *HwpExtractor) packageImages(cont Container, imageIDs []string) [][]byte {
	var images [][]byte
	for _, id := range imageIDs {
		name := hwpxBinDataDir + id
		if !cont.Exists(name) {
			continue
		}
		data, err := cont.ReadStream(name)
		if err != nil || len(data) == 0 {
			continue
		}
		images = append(images, data)
	}
	return images
}
