package hwp_extractor

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
)

// Version identifies one of the known HWP container/encoding variants.
type Version string

const (
	// VersionHWP3 is the legacy fixed-layout binary format (HWP 3.x).
	VersionHWP3 Version = "hwp3"
	// VersionHWP5 is the compound-file binary format with record streams (HWP 5.x).
	VersionHWP5 Version = "hwp5"
	// VersionHWPX is the ZIP-packaged OWPML format.
	VersionHWPX Version = "hwpx"
	// VersionUnknown means the signature matched no known variant.
	VersionUnknown Version = "unknown"
)

// compoundFileMagic is the 8-byte compound-file (CFB) signature.
var compoundFileMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

// legacySignature is the 16-byte ASCII prefix that opens an HWP 3.x file
// ("HWP Document File 3.00 ..." in full).
var legacySignature = []byte("HWP Document Fil")

// DetectVersion classifies a document byte source as one of the known
// variants. An .hwpx extension wins without any byte inspection; otherwise
// the first 32 bytes are matched against the compound-file magic and the
// legacy ASCII signature. Detection is a pure function of its inputs and
// leaves the reader positioned at the start.
func DetectVersion(r io.ReadSeeker, filename string) Version {
	if strings.EqualFold(filepath.Ext(filename), ".hwpx") {
		return VersionHWPX
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return VersionUnknown
	}
	head := make([]byte, 32)
	n, _ := io.ReadFull(r, head)
	head = head[:n]
	r.Seek(0, io.SeekStart)

	switch {
	case bytes.HasPrefix(head, compoundFileMagic):
		return VersionHWP5
	case bytes.HasPrefix(head, legacySignature):
		return VersionHWP3
	default:
		return VersionUnknown
	}
}
