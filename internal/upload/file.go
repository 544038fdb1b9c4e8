package upload

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// File is something that can be uploaded: a path on disk, an in-memory
// buffer, a multipart part.
type File interface {
	Name() string
	Size() int64
	Open() (io.ReadCloser, error)
}

type diskFile struct {
	path string
	size int64
}

// OpenPath stats path and returns it as a File.
func OpenPath(path string) (File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	return &diskFile{path: path, size: info.Size()}, nil
}

func (f *diskFile) Name() string                 { return filepath.Base(f.path) }
func (f *diskFile) Size() int64                  { return f.size }
func (f *diskFile) Open() (io.ReadCloser, error) { return os.Open(f.path) }

type memFile struct {
	name string
	data []byte
}

// NewBytesFile wraps data as a File named name.
func NewBytesFile(name string, data []byte) File {
	return &memFile{name: name, data: data}
}

func (f *memFile) Name() string { return f.name }
func (f *memFile) Size() int64  { return int64(len(f.data)) }
func (f *memFile) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(f.data)), nil
}

// DetectMIME sniffs the content type of f. When the content is not
// recognised the file extension decides.
func DetectMIME(f File) (string, error) {
	rc, err := f.Open()
	if err != nil {
		return "", fmt.Errorf("open %s: %w", f.Name(), err)
	}
	defer rc.Close()
	mt, err := mimetype.DetectReader(rc)
	if err != nil {
		return "", fmt.Errorf("detect type of %s: %w", f.Name(), err)
	}
	if ct := baseType(mt.String()); ct != "application/octet-stream" && ct != "text/plain" {
		return ct, nil
	}
	if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(f.Name()))); byExt != "" {
		return baseType(byExt), nil
	}
	return baseType(mt.String()), nil
}

func baseType(ct string) string {
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	return strings.TrimSpace(ct)
}
