// Package hwp_extractor extracts plain text from HWP family documents.
//
// Three container/encoding variants are supported: the legacy fixed-layout
// binary format (HWP 3.x), the compound-file binary format with compressed
// record streams (HWP 5.x), and the ZIP-packaged OWPML format (HWPX). The
// version is detected once per call and the matching orchestrator assembles
// ordered, sanitized per-section text.
package hwp_extractor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Config configures an HwpExtractor.
type Config struct {
	// MaxFileSize is the largest file Extract will open from a path
	// (default: 100 MB).
	MaxFileSize int64

	// Logger for debug/warn messages.
	Logger *slog.Logger

	// Transcriber, when set, turns embedded images and tables into extra
	// section text. Nil disables image handling entirely.
	Transcriber Transcriber
}

func (c *Config) defaults() {
	if c.MaxFileSize <= 0 {
		c.MaxFileSize = 100 * 1024 * 1024
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// HwpExtractor extracts text from HWP family documents. It holds no
// per-document state; a single instance may extract documents in parallel.
type HwpExtractor struct {
	cfg Config
}

func NewHwpExtractor() *HwpExtractor {
	return NewHwpExtractorWithConfig(Config{})
}

func NewHwpExtractorWithConfig(cfg Config) *HwpExtractor {
	cfg.defaults()
	return &HwpExtractor{cfg: cfg}
}

// Extract processes the given source (either a filename or a byte slice)
// and returns the per-section text. Note that version detection for the
// HWPX variant relies on the file extension, so byte-slice sources can
// only resolve to the two binary variants.
func (e *HwpExtractor) Extract(source interface{}) (*Document, error) {
	return e.ExtractContext(context.Background(), source)
}

// ExtractContext is Extract with a caller context; the context bounds only
// collaborator calls (image transcription), never the parse itself.
func (e *HwpExtractor) ExtractContext(ctx context.Context, source interface{}) (*Document, error) {
	var reader io.ReadSeeker
	var filename string

	switch s := source.(type) {
	case []byte:
		reader = bytes.NewReader(s)
	case string:
		absPath, err := filepath.Abs(s)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve path: %w", err)
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open file: %w", err)
		}
		if info.Size() > e.cfg.MaxFileSize {
			return nil, fmt.Errorf("file too large: %d bytes (max %d)", info.Size(), e.cfg.MaxFileSize)
		}
		file, err := os.OpenFile(absPath, os.O_RDONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open file: %w", err)
		}
		defer file.Close()
		reader = file
		filename = s
	default:
		return nil, errors.New("source must be either a filename string or byte slice")
	}

	version := DetectVersion(reader, filename)
	e.cfg.Logger.Debug("detected document version", "version", version, "file", filename)

	switch version {
	case VersionHWPX:
		return e.extractHWPX(ctx, reader)
	case VersionHWP5:
		return e.extractHWP5(ctx, reader)
	case VersionHWP3:
		return e.extractHWP3(reader)
	default:
		return nil, &UnknownVersionError{Filename: filename}
	}
}
