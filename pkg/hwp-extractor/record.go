package hwp_extractor

import "encoding/binary"

const (
	recordHeaderSize = 4

	// tagParaText marks a record whose payload is paragraph text.
	tagParaText = 67
	// tagCtrlData marks an administrative record the extractor skips
	// outright; its payload is never text.
	tagCtrlData = 51

	// sizeExtended is the 12-bit size field's sentinel meaning the true
	// 32-bit size follows the header.
	sizeExtended = 0xFFF
)

// Record is one decoded unit of a packed body-text stream. Payload is
// borrowed from the scanned buffer and must not outlive it.
type Record struct {
	Tag     uint16
	Level   uint16
	Size    uint32
	Payload []byte
}

// RecordScanner walks a decompressed body-text buffer and yields the
// paragraph-text records. Scanning the same buffer with a fresh scanner
// is idempotent and side-effect free.
type RecordScanner struct {
	buf []byte
	pos int
}

func NewRecordScanner(buf []byte) *RecordScanner {
	return &RecordScanner{buf: buf}
}

// Next returns the next paragraph-text record. It reports false at a clean
// end of buffer and on a truncated trailing record; truncation is
// best-effort, not an error.
func (s *RecordScanner) Next() (Record, bool) {
	for {
		if len(s.buf)-s.pos < recordHeaderSize {
			return Record{}, false
		}
		h := binary.LittleEndian.Uint32(s.buf[s.pos:])
		tag := uint16(h & 0x3FF)
		level := uint16((h >> 10) & 0x3FF)
		size := (h >> 20) & 0xFFF

		next := s.pos + recordHeaderSize
		if size == sizeExtended {
			if len(s.buf)-next < 4 {
				return Record{}, false
			}
			size = binary.LittleEndian.Uint32(s.buf[next:])
			next += 4
		}
		if int64(next)+int64(size) > int64(len(s.buf)) {
			return Record{}, false
		}

		start := next
		s.pos = next + int(size)

		if tag == tagCtrlData {
			continue
		}
		if tag != tagParaText {
			continue
		}
		return Record{Tag: tag, Level: level, Size: size, Payload: s.buf[start:s.pos]}, true
	}
}
