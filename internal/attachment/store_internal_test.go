package attachment

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingClose struct{ *os.File }

func (f failingClose) Close() error {
	f.File.Close()
	return errors.New("disk quota exceeded")
}

func TestStoreCloseFailureRemovesFile(t *testing.T) {
	orig := create
	t.Cleanup(func() { create = orig })
	create = func(path string) (file, error) {
		f, err := orig(path)
		if err != nil {
			return nil, err
		}
		return failingClose{f.(*os.File)}, nil
	}

	dir := t.TempDir()
	ds, err := NewDiskStore(dir)
	require.NoError(t, err)

	stored, err := ds.Store(context.Background(), "photo.jpg", []byte("jpeg-bytes"))
	assert.Error(t, err)
	assert.Empty(t, stored)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
