package hwp_extractor

import (
	"strings"
	"unicode"
)

// sanitizeText strips the CJK Unified Ideographs block (decoding noise for
// this format's output, not wanted text) and every rune in a control
// category, including unassigned code points. Whitespace and punctuation
// survive. Idempotent.
func sanitizeText(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 0x4E00 && r <= 0x9FFF {
			return -1
		}
		if unicode.Is(unicode.C, r) {
			return -1
		}
		// unicode.C covers Cc/Cf/Co/Cs; unassigned (Cn) runes are
		// neither graphic nor white space.
		if !unicode.IsGraphic(r) && !unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
