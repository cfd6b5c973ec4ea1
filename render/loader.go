package render

import (
	"context"
	"fmt"
	"image"
	_ "image/png"
	"os"
)

// SheetLoader decodes the sprite sheet on a background goroutine. The update
// loop polls it once per frame until it reports done.
type SheetLoader struct {
	result chan loadResult
	cancel context.CancelFunc

	img  image.Image
	err  error
	done bool
}

type loadResult struct {
	img image.Image
	err error
}

// LoadSheet starts loading path. An empty path loads the placeholder sheet.
func LoadSheet(ctx context.Context, path string) *SheetLoader {
	ctx, cancel := context.WithCancel(ctx)
	l := &SheetLoader{
		result: make(chan loadResult, 1),
		cancel: cancel,
	}

	go func() {
		img, err := decodeSheet(path)
		select {
		case l.result <- loadResult{img: img, err: err}:
		case <-ctx.Done():
		}
	}()

	return l
}

func decodeSheet(path string) (image.Image, error) {
	if path == "" {
		return PlaceholderSheet(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sprite sheet: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode sprite sheet %s: %w", path, err)
	}
	if err := CheckSheet(img); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// Poll returns the loaded sheet without blocking. done stays false until the
// goroutine has finished; after that the same result is returned every call.
func (l *SheetLoader) Poll() (img image.Image, done bool, err error) {
	if l.done {
		return l.img, true, l.err
	}
	select {
	case r := <-l.result:
		l.img, l.err, l.done = r.img, r.err, true
		l.cancel()
	default:
	}
	return l.img, l.done, l.err
}

// Close abandons a load still in flight.
func (l *SheetLoader) Close() {
	l.cancel()
}
