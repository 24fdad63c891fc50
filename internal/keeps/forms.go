package keeps

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/noanitzan/my-keeps/internal/model"
)

// Field describes one input of an add form. Name doubles as the CLI flag.
type Field struct {
	Name     string
	Label    string
	Required bool
}

// Values are raw form inputs keyed by Field.Name.
type Values map[string]string

// Form turns raw inputs into a draft for one domain.
type Form[T any] struct {
	Fields []Field
	Build  func(Values) (T, error)
}

// DefaultImageName labels images added from a link without a name.
const DefaultImageName = "Image from URL"

var ImageForm = Form[model.Image]{
	Fields: []Field{
		{Name: "url", Label: "Image URL", Required: true},
		{Name: "name", Label: "Name"},
	},
	Build: func(v Values) (model.Image, error) {
		name := strings.TrimSpace(v["name"])
		if name == "" {
			name = DefaultImageName
		}
		return model.Image{Name: name, URL: v["url"]}, nil
	},
}

var QuoteForm = Form[model.Quote]{
	Fields: []Field{
		{Name: "text", Label: "Quote", Required: true},
		{Name: "author", Label: "Author"},
		{Name: "source", Label: "Source"},
	},
	Build: func(v Values) (model.Quote, error) {
		return model.Quote{
			Text:   v["text"],
			Author: model.Optional(v["author"]),
			Source: model.Optional(v["source"]),
		}, nil
	},
}

var PoemForm = Form[model.Poem]{
	Fields: []Field{
		{Name: "title", Label: "Title", Required: true},
		{Name: "content", Label: "Poem", Required: true},
		{Name: "author", Label: "Author"},
	},
	Build: func(v Values) (model.Poem, error) {
		return model.Poem{
			Title:   v["title"],
			Content: v["content"],
			Author:  model.Optional(v["author"]),
		}, nil
	},
}

var GalleryForm = Form[model.Gallery]{
	Fields: []Field{
		{Name: "name", Label: "Exhibition", Required: true},
		{Name: "location", Label: "Location"},
		{Name: "date", Label: "Date"},
		{Name: "notes", Label: "Notes"},
	},
	Build: func(v Values) (model.Gallery, error) {
		return model.Gallery{
			Name:     v["name"],
			Location: model.Optional(v["location"]),
			Date:     model.Optional(v["date"]),
			Notes:    model.Optional(v["notes"]),
		}, nil
	},
}

var MovieForm = Form[model.Movie]{
	Fields: []Field{
		{Name: "title", Label: "Title", Required: true},
		{Name: "year", Label: "Year"},
		{Name: "director", Label: "Director"},
		{Name: "rating", Label: "Rating (1-5)"},
		{Name: "notes", Label: "Notes"},
	},
	Build: func(v Values) (model.Movie, error) {
		m := model.Movie{
			Title:    v["title"],
			Year:     model.Optional(v["year"]),
			Director: model.Optional(v["director"]),
			Notes:    model.Optional(v["notes"]),
		}
		if r := strings.TrimSpace(v["rating"]); r != "" {
			n, err := strconv.Atoi(r)
			if err != nil {
				return model.Movie{}, fmt.Errorf("%w: rating must be a number from 1 to 5", ErrRejected)
			}
			m.Rating = &n
		}
		return m, nil
	},
}

// Submit builds a draft from values and adds it to c.
func Submit[T any, P model.Record[T]](c *Collection[T, P], f Form[T], v Values, folder string) (T, error) {
	draft, err := f.Build(v)
	if err != nil {
		var zero T
		return zero, err
	}
	return c.AddItem(draft, folder)
}
