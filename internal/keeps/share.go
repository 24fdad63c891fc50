package keeps

import (
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"
)

// ShareFlash is how long views show the "shared" notice.
const ShareFlash = 2 * time.Second

// ShareLink builds <origin>/<domain>/<id>. Nothing is published; the link
// only means something to whoever runs the same data locally.
func ShareLink(origin, domain, id string) string {
	return strings.TrimRight(origin, "/") + "/" + domain + "/" + id
}

// Clipboard is the write side of a system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// SystemClipboard writes to the OS clipboard.
func SystemClipboard() Clipboard { return systemClipboard{} }

// Sharer copies share links to a clipboard.
type Sharer struct {
	Origin    string
	Clipboard Clipboard
	Log       *zap.Logger
}

// Share returns the link for id in domain and copies it. Clipboard failures
// are logged only; copied reports whether the write went through.
func (s Sharer) Share(domain, id string) (link string, copied bool) {
	link = ShareLink(s.Origin, domain, id)
	if s.Clipboard == nil {
		return link, false
	}
	if err := s.Clipboard.WriteAll(link); err != nil {
		if s.Log != nil {
			s.Log.Warn("clipboard write failed", zap.String("link", link), zap.Error(err))
		}
		return link, false
	}
	return link, true
}
