package render

import (
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sheet.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

// waitSheet polls l the way the update loop does until it finishes.
func waitSheet(t *testing.T, l *SheetLoader) (image.Image, error) {
	t.Helper()
	require.Eventually(t, func() bool {
		_, done, _ := l.Poll()
		return done
	}, 5*time.Second, time.Millisecond)

	img, _, err := l.Poll()
	return img, err
}

func TestLoadSheetPlaceholder(t *testing.T) {
	l := LoadSheet(context.Background(), "")
	defer l.Close()

	img, err := waitSheet(t, l)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 1300, 450), img.Bounds())
}

func TestLoadSheetFile(t *testing.T) {
	path := writePNG(t, PlaceholderSheet())
	l := LoadSheet(context.Background(), path)
	defer l.Close()

	img, err := waitSheet(t, l)
	require.NoError(t, err)
	assert.Equal(t, 1300, img.Bounds().Dx())

	again, done, err := l.Poll()
	assert.True(t, done)
	assert.NoError(t, err)
	assert.Same(t, img, again)
}

func TestLoadSheetErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		l := LoadSheet(context.Background(), filepath.Join(t.TempDir(), "nope.png"))
		_, err := waitSheet(t, l)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("not an image", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sheet.png")
		require.NoError(t, os.WriteFile(path, []byte("not a png"), 0o644))
		_, err := waitSheet(t, LoadSheet(context.Background(), path))
		assert.ErrorContains(t, err, "decode sprite sheet")
	})

	t.Run("too small", func(t *testing.T) {
		path := writePNG(t, image.NewRGBA(image.Rect(0, 0, 260, 450)))
		_, err := waitSheet(t, LoadSheet(context.Background(), path))
		assert.ErrorContains(t, err, "want at least")
	})
}

func TestPollWhileLoading(t *testing.T) {
	l := &SheetLoader{result: make(chan loadResult, 1), cancel: func() {}}

	img, done, err := l.Poll()
	assert.Nil(t, img)
	assert.False(t, done)
	assert.NoError(t, err)

	l.result <- loadResult{err: os.ErrNotExist}
	_, done, err = l.Poll()
	assert.True(t, done)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
