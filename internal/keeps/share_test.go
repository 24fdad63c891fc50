package keeps

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeClipboard struct {
	got []string
	err error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.got = append(f.got, text)
	return nil
}

func TestShareLink(t *testing.T) {
	tests := []struct {
		origin, domain, id, want string
	}{
		{"http://localhost:3000", "images", "abc", "http://localhost:3000/images/abc"},
		{"https://keeps.example/", "movies", "42", "https://keeps.example/movies/42"},
		{"", "poems", "p", "/poems/p"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ShareLink(tt.origin, tt.domain, tt.id))
	}
}

func TestSharerCopies(t *testing.T) {
	cb := &fakeClipboard{}
	s := Sharer{Origin: "http://localhost:3000", Clipboard: cb}

	link, copied := s.Share("quotes", "q1")
	assert.True(t, copied)
	assert.Equal(t, "http://localhost:3000/quotes/q1", link)
	assert.Equal(t, []string{link}, cb.got)
}

func TestSharerClipboardFailure(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s := Sharer{Origin: "o", Clipboard: &fakeClipboard{err: errors.New("no display")}, Log: zap.New(core)}

	link, copied := s.Share("galleries", "g")
	assert.False(t, copied)
	assert.Equal(t, "o/galleries/g", link)
	assert.Equal(t, 1, logs.FilterMessage("clipboard write failed").Len())

	link, copied = Sharer{Origin: "o"}.Share("galleries", "g")
	assert.False(t, copied)
	assert.Equal(t, "o/galleries/g", link)
}
