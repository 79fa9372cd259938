package hwp_extractor

import (
	"bytes"
	"encoding/binary"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding/korean"
)

// decodeCandidate is one entry of the ordered encoding try-chain.
type decodeCandidate struct {
	name   string
	decode func([]byte) (string, bool)
}

// textDecodeChain is evaluated in order and the first success wins.
// UTF-16LE comes first because the compound-binary variant stores text
// natively in it; the narrower Korean encodings would otherwise produce
// false-positive decodes. The x/text EUC-KR tables are the Windows-949
// superset, so the cp949 and euc-kr candidates share one codec.
var textDecodeChain = []decodeCandidate{
	{"utf-16le", decodeUTF16LE},
	{"utf-8", decodeUTF8},
	{"cp949", decodeEUCKR},
	{"euc-kr", decodeEUCKR},
}

// decodeText recovers a string from a byte span in an unknown one of the
// chain's encodings. When every candidate fails it returns "" — a failed
// record must not abort the enclosing section.
func decodeText(data []byte) string {
	for _, c := range textDecodeChain {
		if s, ok := c.decode(data); ok {
			return s
		}
	}
	return ""
}

func decodeUTF16LE(data []byte) (string, bool) {
	if len(data)%2 != 0 {
		return "", false
	}
	units := make([]uint16, len(data)/2)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(data[2*i:])
	}
	runes := utf16.Decode(units)
	for _, r := range runes {
		// utf16.Decode substitutes U+FFFD for lone surrogates.
		if r == utf8.RuneError {
			return "", false
		}
	}
	return string(runes), true
}

func decodeUTF8(data []byte) (string, bool) {
	if !utf8.Valid(data) {
		return "", false
	}
	return string(data), true
}

func decodeEUCKR(data []byte) (string, bool) {
	out, err := korean.EUCKR.NewDecoder().Bytes(data)
	if err != nil {
		return "", false
	}
	// The decoder substitutes U+FFFD rather than failing on bad input.
	if bytes.ContainsRune(out, utf8.RuneError) {
		return "", false
	}
	return string(out), true
}
