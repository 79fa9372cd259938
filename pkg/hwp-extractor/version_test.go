package hwp_extractor

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectVersion(t *testing.T) {
	t.Run("should classify by extension without byte inspection", func(t *testing.T) {
		garbage := bytes.NewReader([]byte("definitely not a zip"))
		assert.Equal(t, VersionHWPX, DetectVersion(garbage, "document.hwpx"))
		assert.Equal(t, VersionHWPX, DetectVersion(garbage, "DOCUMENT.HWPX"))
	})

	t.Run("should classify the compound-file magic", func(t *testing.T) {
		data := append(append([]byte{}, compoundFileMagic...), make([]byte, 24)...)
		assert.Equal(t, VersionHWP5, DetectVersion(bytes.NewReader(data), "document.hwp"))
	})

	t.Run("should classify the legacy ASCII signature", func(t *testing.T) {
		data := []byte("HWP Document File V3.00 \x1a\x01\x02\x03\x04\x05")
		assert.Equal(t, VersionHWP3, DetectVersion(bytes.NewReader(data), "document.hwp"))
	})

	t.Run("should match the legacy signature on its first 16 bytes", func(t *testing.T) {
		assert.Len(t, legacySignature, 16)
		data := []byte("HWP Document Fil")
		assert.Equal(t, VersionHWP3, DetectVersion(bytes.NewReader(data), "document.hwp"))
	})

	t.Run("should classify everything else as unknown", func(t *testing.T) {
		assert.Equal(t, VersionUnknown, DetectVersion(bytes.NewReader([]byte("PK\x03\x04junk")), "document.hwp"))
		assert.Equal(t, VersionUnknown, DetectVersion(bytes.NewReader(nil), "document.hwp"))
	})

	t.Run("should leave the reader at the start", func(t *testing.T) {
		r := bytes.NewReader(append(append([]byte{}, compoundFileMagic...), make([]byte, 24)...))
		DetectVersion(r, "document.hwp")
		head := make([]byte, 8)
		_, err := r.Read(head)
		require.NoError(t, err)
		assert.Equal(t, compoundFileMagic, head)
	})
}

func TestExtractUnknownVersion(t *testing.T) {
	extractor := NewHwpExtractor()
	_, err := extractor.Extract([]byte("not any known signature, definitely"))
	require.Error(t, err)

	var unknownErr *UnknownVersionError
	assert.True(t, errors.As(err, &unknownErr))
}

func TestExtractSourceHandling(t *testing.T) {
	t.Run("should reject unsupported source types", func(t *testing.T) {
		extractor := NewHwpExtractor()
		_, err := extractor.Extract(42)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "source must be either a filename string or byte slice")
	})

	t.Run("should report a missing file", func(t *testing.T) {
		extractor := NewHwpExtractor()
		_, err := extractor.Extract("does/not/exist.hwp")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to open file")
	})
}
