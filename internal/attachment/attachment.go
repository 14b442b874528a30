package attachment

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var allowed = map[string]bool{"pdf": true, "jpg": true, "jpeg": true, "png": true}

// Allowed reports whether name carries one of the accepted extensions.
func Allowed(name string) bool {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	return allowed[strings.ToLower(ext)]
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// Sanitize reduces name to a flat, path-free filename that keeps its extension.
// A stem with nothing usable left becomes "attachment"; "" is returned only when
// neither stem nor extension survive.
func Sanitize(name string) string {
	name = strings.NewReplacer("/", " ", "\\", " ").Replace(name)
	ext := filepath.Ext(name)
	stem := strings.Trim(clean(name[:len(name)-len(ext)]), "._")
	ext = clean(ext)
	if ext == "." {
		ext = ""
	}
	if stem == "" {
		if ext == "" {
			return ""
		}
		stem = "attachment"
	}
	return stem + ext
}

func clean(s string) string {
	s = strings.Join(strings.Fields(s), "_")
	return unsafeChars.ReplaceAllString(s, "")
}

type file interface {
	io.Writer
	Close() error
	Name() string
}

var create = func(path string) (file, error) {
	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
}

// DiskStore writes attachments into a single upload directory.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("upload dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

// Store writes data under a unique name derived from name and returns that name.
func (d *DiskStore) Store(_ context.Context, name string, data []byte) (string, error) {
	clean := Sanitize(name)
	if clean == "" {
		return "", fmt.Errorf("unusable filename %q", name)
	}
	stored := uuid.New().String()[:8] + "_" + clean
	f, err := create(filepath.Join(d.dir, stored))
	if err != nil {
		return "", err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return stored, nil
}

func (d *DiskStore) Remove(_ context.Context, stored string) error {
	return os.Remove(filepath.Join(d.dir, filepath.Base(stored)))
}

// Path returns the on-disk location of a stored attachment.
func (d *DiskStore) Path(stored string) string {
	return filepath.Join(d.dir, filepath.Base(stored))
}
