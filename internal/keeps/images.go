package keeps

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/sync/errgroup"

	"github.com/noanitzan/my-keeps/internal/model"
)

// MaxImportBytes caps a single imported file; data URLs live inside the
// collection's stored JSON.
const MaxImportBytes = 5 << 20

// ImportResult is the outcome for one path.
type ImportResult struct {
	Path  string
	Image model.Image
	Err   error
}

// ImportImages reads paths concurrently and appends each image to col as
// soon as its read completes, so results arrive in completion order. A
// failing file does not stop the others.
func ImportImages(ctx context.Context, col *ImageCollection, paths []string, folder string) []ImportResult {
	results := make(chan ImportResult, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, p := range paths {
		g.Go(func() error {
			res := ImportResult{Path: p}
			url, err := readDataURL(ctx, p)
			if err != nil {
				res.Err = err
				results <- res
				return nil
			}
			res.Image, res.Err = col.AddItem(model.Image{Name: filepath.Base(p), URL: url}, folder)
			results <- res
			return nil
		})
	}
	_ = g.Wait()
	close(results)

	out := make([]ImportResult, 0, len(paths))
	for r := range results {
		out = append(out, r)
	}
	return out
}

func readDataURL(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fi, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat: %w", err)
	}
	if fi.Size() > MaxImportBytes {
		return "", fmt.Errorf("%s: %w: larger than %d bytes", path, ErrRejected, MaxImportBytes)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	mt := mimetype.Detect(b)
	if !strings.HasPrefix(mt.String(), "image/") {
		return "", fmt.Errorf("%s: %w: not an image (%s)", path, ErrRejected, mt.String())
	}
	mime, _, _ := strings.Cut(mt.String(), ";")
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(b), nil
}
