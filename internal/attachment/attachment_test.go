package attachment_test

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fir-portal/internal/attachment"
)

func TestAllowed(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"report.pdf", true},
		{"photo.JPG", true},
		{"scan.jpeg", true},
		{"shot.png", true},
		{"script.exe", false},
		{"archive.tar.gz", false},
		{"noext", false},
		{"pdf", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, attachment.Allowed(tt.name))
		})
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"photo.jpg", "photo.jpg"},
		{"../../etc/passwd.png", "etc_passwd.png"},
		{`C:\Users\x\evidence.pdf`, "C_Users_x_evidence.pdf"},
		{"my stolen bike.jpg", "my_stolen_bike.jpg"},
		{"..", ""},
		{"..pdf", "attachment.pdf"},
		{"фото.jpg", "attachment.jpg"},
		{"evidence .PNG", "evidence.PNG"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, attachment.Sanitize(tt.in))
		})
	}
}

func TestSanitizeKeepsAcceptedExtension(t *testing.T) {
	for _, name := range []string{"..pdf", "фото.jpg", "../.png", "скан документа.jpeg"} {
		t.Run(name, func(t *testing.T) {
			assert.True(t, attachment.Allowed(attachment.Sanitize(name)), attachment.Sanitize(name))
		})
	}
}

func TestDiskStore(t *testing.T) {
	ds, err := attachment.NewDiskStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	stored, err := ds.Store(ctx, "../photo.jpg", []byte("jpeg-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(stored, "_photo.jpg"))
	assert.NotContains(t, stored, "/")

	b, err := os.ReadFile(ds.Path(stored))
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(b))

	other, err := ds.Store(ctx, "photo.jpg", []byte("second"))
	require.NoError(t, err)
	assert.NotEqual(t, stored, other)

	unicode, err := ds.Store(ctx, "фото.jpg", []byte("third"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(unicode, "_attachment.jpg"))

	require.NoError(t, ds.Remove(ctx, stored))
	_, err = os.Stat(ds.Path(stored))
	assert.True(t, os.IsNotExist(err))
}
