package keeps

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noanitzan/my-keeps/internal/model"
	"github.com/noanitzan/my-keeps/internal/store"
	"github.com/noanitzan/my-keeps/internal/store/memstore"
)

// smallest valid PNG: 1x1 transparent pixel
var onePixelPNG = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0a, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

func TestImportImages(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"a.png", "b.png", "c.png"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, onePixelPNG, 0o644))
		paths = append(paths, p)
	}
	notes := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(notes, []byte("just text"), 0o644))
	paths = append(paths, notes, filepath.Join(dir, "missing.png"))

	c := NewCollection[model.Image](Images, store.NewAdapter(memstore.New(0), nil))
	c.Initialize()
	f, err := c.CreateFolder("Scans")
	require.NoError(t, err)

	results := ImportImages(context.Background(), c, paths, f.ID)
	require.Len(t, results, len(paths))

	var failed []string
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, filepath.Base(r.Path))
		}
	}
	assert.ElementsMatch(t, []string{"notes.txt", "missing.png"}, failed)

	imported := c.ListView(f.ID).Items
	require.Len(t, imported, 3)
	var names []string
	for _, img := range imported {
		names = append(names, img.Name)
		assert.True(t, strings.HasPrefix(img.URL, "data:image/png;base64,"), img.URL)
	}
	assert.ElementsMatch(t, []string{"a.png", "b.png", "c.png"}, names)
}

func TestImportImagesCancelled(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "a.png")
	require.NoError(t, os.WriteFile(p, onePixelPNG, 0o644))

	c := NewCollection[model.Image](Images, store.NewAdapter(memstore.New(0), nil))
	c.Initialize()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results := ImportImages(ctx, c, []string{p}, "")
	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, context.Canceled)
	assert.Empty(t, c.Items())
}
