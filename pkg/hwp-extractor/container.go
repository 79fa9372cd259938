package hwp_extractor

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/richardlehane/mscfb"
)

// ContainerEntry names one stream inside a document container.
type ContainerEntry struct {
	// Name is the full slash-joined path, e.g. "BodyText/Section0".
	Name string
	// Segments is the same path split into components.
	Segments []string
}

// Container abstracts the container collaborator for both binary and
// packaged variants: a flat directory of named streams that can be
// enumerated, read, and tested for existence.
type Container interface {
	Entries() []ContainerEntry
	ReadStream(name string) ([]byte, error)
	Exists(name string) bool
}

// oleContainer backs Container with a compound (CFB) file. The directory
// is walked once up front; HWP streams are small enough to hold.
type oleContainer struct {
	entries []ContainerEntry
	streams map[string][]byte
}

func openOLEContainer(ra io.ReaderAt) (*oleContainer, error) {
	cfb, err := mscfb.New(ra)
	if err != nil {
		return nil, err
	}

	c := &oleContainer{streams: make(map[string][]byte)}
	for entry, err := cfb.Next(); err == nil; entry, err = cfb.Next() {
		segments := append(append([]string{}, entry.Path...), entry.Name)
		name := strings.Join(segments, "/")

		buf := new(bytes.Buffer)
		if _, err := buf.ReadFrom(cfb); err != nil {
			continue
		}
		c.entries = append(c.entries, ContainerEntry{Name: name, Segments: segments})
		c.streams[name] = buf.Bytes()
	}
	return c, nil
}

func (c *oleContainer) Entries() []ContainerEntry { return c.entries }

func (c *oleContainer) ReadStream(name string) ([]byte, error) {
	data, ok := c.streams[name]
	if !ok {
		return nil, fmt.Errorf("stream not found: %s", name)
	}
	return data, nil
}

func (c *oleContainer) Exists(name string) bool {
	_, ok := c.streams[name]
	return ok
}

// zipContainer backs Container with a ZIP-family archive.
type zipContainer struct {
	zr *zip.Reader
}

func openZipContainer(ra io.ReaderAt, size int64) (*zipContainer, error) {
	zr, err := zip.NewReader(ra, size)
	if err != nil {
		return nil, err
	}
	return &zipContainer{zr: zr}, nil
}

func (c *zipContainer) Entries() []ContainerEntry {
	entries := make([]ContainerEntry, 0, len(c.zr.File))
	for _, f := range c.zr.File {
		entries = append(entries, ContainerEntry{
			Name:     f.Name,
			Segments: strings.Split(f.Name, "/"),
		})
	}
	return entries
}

func (c *zipContainer) ReadStream(name string) ([]byte, error) {
	for _, f := range c.zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("member not found: %s", name)
}

func (c *zipContainer) Exists(name string) bool {
	for _, f := range c.zr.File {
		if f.Name == name {
			return true
		}
	}
	return false
}
