package model

import "strings"

// Meta is embedded in every stored item. An empty FolderID places the
// item at the root view, whether the key was absent or stored as "".
type Meta struct {
	ID       string `json:"id"`
	FolderID string `json:"folderId,omitempty"`
}

// Base gives generic code access to the shared fields.
func (m *Meta) Base() *Meta { return m }

// InFolder reports whether the item belongs to folder (root when folder is "").
func (m *Meta) InFolder(folder string) bool {
	return m.FolderID == folder
}

// Record is satisfied by pointers to the domain item types.
type Record[T any] interface {
	*T
	Base() *Meta
	// Normalize trims text and drops blank optional fields.
	Normalize()
	// Label is the line shown in lists.
	Label() string
	// Detach gives pointer fields their own storage so the value shares
	// nothing with the copy it came from.
	Detach()
}

// Folder is a flat, named grouping of items within one domain.
type Folder struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Optional returns nil for blank input so absence survives serialization.
func Optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func trimOptional(p **string) {
	if *p == nil {
		return
	}
	*p = Optional(**p)
}

// Deref is the display value of an optional field.
func Deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func clonePtr[V any](p *V) *V {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
