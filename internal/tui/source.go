package tui

import (
	"github.com/charmbracelet/bubbles/list"

	"github.com/noanitzan/my-keeps/internal/keeps"
	"github.com/noanitzan/my-keeps/internal/model"
)

// source is one domain as the browser sees it, hiding the item type.
type source interface {
	Domain() keeps.Domain
	Fields() []keeps.Field
	Rows(folder string) []list.Item
	FolderName(id string) (string, bool)
	Count() int

	Add(v keeps.Values, folder string) error
	CreateFolder(name string) error
	DeleteItem(id string)
	DeleteFolder(id string)
}

type collectionSource[T any, P model.Record[T]] struct {
	col  *keeps.Collection[T, P]
	form keeps.Form[T]
}

func newSource[T any, P model.Record[T]](c *keeps.Collection[T, P], f keeps.Form[T]) source {
	return collectionSource[T, P]{col: c, form: f}
}

// Sources lists every domain of l in home-screen order.
func Sources(l *keeps.Library) []source {
	return []source{
		newSource(l.Images, keeps.ImageForm),
		newSource(l.Quotes, keeps.QuoteForm),
		newSource(l.Poems, keeps.PoemForm),
		newSource(l.Galleries, keeps.GalleryForm),
		newSource(l.Movies, keeps.MovieForm),
	}
}

func (s collectionSource[T, P]) Domain() keeps.Domain  { return s.col.Domain() }
func (s collectionSource[T, P]) Fields() []keeps.Field { return s.form.Fields }
func (s collectionSource[T, P]) Count() int            { return len(s.col.Items()) }

func (s collectionSource[T, P]) Rows(folder string) []list.Item {
	v := s.col.ListView(folder)
	rows := make([]list.Item, 0, len(v.Folders)+len(v.Items))
	for _, f := range v.Folders {
		rows = append(rows, row{id: f.ID, text: f.Name, folder: true})
	}
	for _, it := range v.Items {
		p := P(&it)
		rows = append(rows, row{id: p.Base().ID, text: p.Label()})
	}
	return rows
}

func (s collectionSource[T, P]) FolderName(id string) (string, bool) {
	f, ok := s.col.Folder(id)
	return f.Name, ok
}

func (s collectionSource[T, P]) Add(v keeps.Values, folder string) error {
	_, err := keeps.Submit(s.col, s.form, v, folder)
	return err
}

func (s collectionSource[T, P]) CreateFolder(name string) error {
	_, err := s.col.CreateFolder(name)
	return err
}

func (s collectionSource[T, P]) DeleteItem(id string)   { s.col.DeleteItem(id) }
func (s collectionSource[T, P]) DeleteFolder(id string) { s.col.DeleteFolder(id) }
