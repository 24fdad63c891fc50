// Package store persists collections as JSON text under string keys of a
// key-value storage medium.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/noanitzan/my-keeps/internal/store/jsonstore"
	"github.com/noanitzan/my-keeps/internal/store/memstore"
	"github.com/noanitzan/my-keeps/internal/store/sqlitestore"
)

// Medium is a synchronous key-value store holding text values. Capacity may
// be finite, so Set can fail.
type Medium interface {
	Get(key string) (value string, found bool, err error)
	Set(key, value string) error
}

// Adapter reads and writes JSON arrays on a Medium. Reads fail soft.
type Adapter struct {
	medium Medium
	log    *zap.Logger
}

func NewAdapter(m Medium, log *zap.Logger) *Adapter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Adapter{medium: m, log: log}
}

// Load returns the sequence stored under key. A missing key, a failed read
// or malformed content all yield an empty sequence; the latter two are logged.
func Load[T any](a *Adapter, key string) []T {
	raw, found, err := a.medium.Get(key)
	if err != nil {
		a.log.Warn("read failed, starting empty", zap.String("key", key), zap.Error(err))
		return []T{}
	}
	if !found || strings.TrimSpace(raw) == "" {
		return []T{}
	}
	var out []T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		a.log.Warn("malformed content, starting empty", zap.String("key", key), zap.Error(err))
		return []T{}
	}
	if out == nil {
		// stored literal null
		return []T{}
	}
	return out
}

// Save serializes values and writes them under key. On failure the error is
// logged and returned; whatever was stored before stays in place.
func Save[T any](a *Adapter, key string, values []T) error {
	if values == nil {
		values = []T{}
	}
	b, err := json.Marshal(values)
	if err != nil {
		a.log.Error("marshal failed", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := a.medium.Set(key, string(b)); err != nil {
		a.log.Error("write failed, storage may be full", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// Backend names accepted by Open.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Open builds the medium for backend rooted at dir. The returned close
// function is never nil.
func Open(backend, dir string) (Medium, func() error, error) {
	noop := func() error { return nil }
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendJSON:
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, noop, fmt.Errorf("mkdir: %w", err)
		}
		return jsonstore.New(dir), noop, nil
	case BackendSQLite:
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, noop, fmt.Errorf("mkdir: %w", err)
		}
		s, err := sqlitestore.Open(sqlitestore.DefaultPath(dir))
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil
	case BackendMemory:
		return memstore.New(0), noop, nil
	}
	return nil, noop, fmt.Errorf("unknown backend %q (want json, sqlite or memory)", backend)
}
