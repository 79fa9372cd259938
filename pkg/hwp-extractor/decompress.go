package hwp_extractor

import (
	"bytes"
	"compress/flate"
	"io"
)

// decompress inflates a raw-deflate buffer (no zlib/gzip framing). On a
// mid-stream error it keeps whatever bytes inflated cleanly before the
// error; if nothing inflated at all the input is returned unchanged, since
// a stream that was never compressed is the common cause. When compressed
// is false the input passes through untouched. Never fails.
func decompress(data []byte, compressed bool) []byte {
	if !compressed {
		return data
	}

	fr := flate.NewReader(bytes.NewReader(data))
	defer fr.Close()

	var out bytes.Buffer
	if _, err := io.Copy(&out, fr); err != nil {
		if out.Len() == 0 {
			return data
		}
		return out.Bytes()
	}
	return out.Bytes()
}

// inflateWhole inflates only when the input is one clean raw-deflate
// stream; anything else passes through unchanged. Package members get this
// instead of the partial path because a truncated prefix of markup cannot
// be parsed anyway.
func inflateWhole(data []byte) []byte {
	fr := flate.NewReader(bytes.NewReader(data))
	defer fr.Close()
	out, err := io.ReadAll(fr)
	if err != nil {
		return data
	}
	return out
}
