// Package keeps holds the per-domain collections of items and flat folders
// and keeps them in step with a storage medium.
package keeps

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noanitzan/my-keeps/internal/model"
	"github.com/noanitzan/my-keeps/internal/store"
)

// IDFunc produces fresh, unique ids for items and folders.
type IDFunc func() string

// Option configures a Collection.
type Option func(*options)

type options struct {
	newID IDFunc
	log   *zap.Logger
}

func WithIDFunc(f IDFunc) Option {
	return func(o *options) { o.newID = f }
}

func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.log = l }
}

// View is what one level of a domain shows: items of the level and, at the
// root only, the folders.
type View[T any] struct {
	Items   []T
	Folders []model.Folder
}

// Collection is the in-memory state of one domain. Until Initialize runs,
// mutations stay in memory and are not written, so empty defaults can never
// clobber stored data.
type Collection[T any, P model.Record[T]] struct {
	domain  Domain
	adapter *store.Adapter
	newID   IDFunc
	log     *zap.Logger

	mu       sync.Mutex
	items    []T
	folders  []model.Folder
	hydrated bool
}

func NewCollection[T any, P model.Record[T]](d Domain, a *store.Adapter, opts ...Option) *Collection[T, P] {
	o := options{newID: uuid.NewString}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = zap.NewNop()
	}
	return &Collection[T, P]{
		domain:  d,
		adapter: a,
		newID:   o.newID,
		log:     o.log.With(zap.String("domain", d.Name)),
		items:   []T{},
		folders: []model.Folder{},
	}
}

func (c *Collection[T, P]) Domain() Domain { return c.domain }

// Initialize hydrates items and folders from storage. Only the first call
// loads; later calls do nothing.
func (c *Collection[T, P]) Initialize() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.hydrated {
		return
	}
	c.items = store.Load[T](c.adapter, c.domain.ItemsKey)
	for i := range c.items {
		// stored "folderId" may carry stray whitespace
		meta := P(&c.items[i]).Base()
		meta.FolderID = strings.TrimSpace(meta.FolderID)
	}
	c.folders = store.Load[model.Folder](c.adapter, c.domain.FoldersKey)
	c.hydrated = true
	c.log.Debug("hydrated", zap.Int("items", len(c.items)), zap.Int("folders", len(c.folders)))
}

func (c *Collection[T, P]) Hydrated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hydrated
}

// AddItem validates draft and appends it with a fresh id, inside
// currentFolder when that is not "". A rejected draft returns ErrRejected
// and changes nothing.
func (c *Collection[T, P]) AddItem(draft T, currentFolder string) (T, error) {
	item := draft
	P(&item).Normalize()
	if err := validateDraft(&item); err != nil {
		var zero T
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	meta := P(&item).Base()
	meta.ID = c.newID()
	meta.FolderID = strings.TrimSpace(currentFolder)
	c.items = append(c.items, item)
	c.persistItems()
	return detach[T, P](item), nil
}

// CreateFolder appends a folder named name. Blank names are rejected.
func (c *Collection[T, P]) CreateFolder(name string) (model.Folder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Folder{}, fmt.Errorf("%w: name cannot be empty", ErrRejected)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	f := model.Folder{ID: c.newID(), Name: name}
	c.folders = append(c.folders, f)
	c.persistFolders()
	return f, nil
}

// DeleteItem removes the item with id. Unknown ids are fine.
func (c *Collection[T, P]) DeleteItem(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = slices.DeleteFunc(c.items, func(it T) bool {
		return P(&it).Base().ID == id
	})
	c.persistItems()
}

// DeleteFolder removes the folder and every item filed under it. The two
// collections are written one after the other, not atomically.
func (c *Collection[T, P]) DeleteFolder(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.folders = slices.DeleteFunc(c.folders, func(f model.Folder) bool {
		return f.ID == id
	})
	c.items = slices.DeleteFunc(c.items, func(it T) bool {
		return P(&it).Base().InFolder(id) && id != ""
	})
	c.persistFolders()
	c.persistItems()
}

// ListView returns the items of currentFolder ("" for root) in insertion
// order. Folders are only listed at the root.
func (c *Collection[T, P]) ListView(currentFolder string) View[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	v := View[T]{Items: []T{}, Folders: []model.Folder{}}
	for _, it := range c.items {
		if P(&it).Base().InFolder(currentFolder) {
			v.Items = append(v.Items, detach[T, P](it))
		}
	}
	if currentFolder == "" {
		v.Folders = append(v.Folders, c.folders...)
	}
	return v
}

func (c *Collection[T, P]) Item(id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, it := range c.items {
		if P(&it).Base().ID == id {
			return detach[T, P](it), true
		}
	}
	var zero T
	return zero, false
}

func (c *Collection[T, P]) Folder(id string) (model.Folder, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, f := range c.folders {
		if f.ID == id {
			return f, true
		}
	}
	return model.Folder{}, false
}

func (c *Collection[T, P]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	for i, it := range c.items {
		out[i] = detach[T, P](it)
	}
	return out
}

func (c *Collection[T, P]) Folders() []model.Folder {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.folders)
}

// Orphans are items whose folder no longer exists. They stay stored but
// no view reaches them.
func (c *Collection[T, P]) Orphans() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	known := make(map[string]bool, len(c.folders))
	for _, f := range c.folders {
		known[f.ID] = true
	}
	var out []T
	for _, it := range c.items {
		if fid := P(&it).Base().FolderID; fid != "" && !known[fid] {
			out = append(out, detach[T, P](it))
		}
	}
	return out
}

// detach copies it so callers cannot reach the collection's pointers.
func detach[T any, P model.Record[T]](it T) T {
	P(&it).Detach()
	return it
}

// callers hold c.mu
func (c *Collection[T, P]) persistItems() {
	if !c.hydrated {
		c.log.Debug("not hydrated, skipping write", zap.String("key", c.domain.ItemsKey))
		return
	}
	_ = store.Save(c.adapter, c.domain.ItemsKey, c.items)
}

func (c *Collection[T, P]) persistFolders() {
	if !c.hydrated {
		c.log.Debug("not hydrated, skipping write", zap.String("key", c.domain.FoldersKey))
		return
	}
	_ = store.Save(c.adapter, c.domain.FoldersKey, c.folders)
}
