package keeps

import (
	"fmt"
	"strings"

	"github.com/noanitzan/my-keeps/internal/model"
	"github.com/noanitzan/my-keeps/internal/store"
)

// Domain names one independent collection and the storage keys it uses.
type Domain struct {
	Name       string // url segment and CLI command
	Title      string
	Blurb      string
	ItemsKey   string
	FoldersKey string
}

var (
	Images = Domain{
		Name: "images", Title: "Images", Blurb: "Upload and organize your favorite images",
		// images predate the per-domain folder keys
		ItemsKey: "little-joys-images", FoldersKey: "little-joys-folders",
	}
	Quotes = Domain{
		Name: "quotes", Title: "Quotes", Blurb: "Save and share inspiring quotes",
		ItemsKey: "little-joys-quotes", FoldersKey: "little-joys-quotes-folders",
	}
	Poems = Domain{
		Name: "poems", Title: "Poems", Blurb: "Collect beautiful poems and verses",
		ItemsKey: "little-joys-poems", FoldersKey: "little-joys-poems-folders",
	}
	Galleries = Domain{
		Name: "galleries", Title: "Galleries & Exhibitions", Blurb: "Track art shows and exhibitions you love",
		ItemsKey: "little-joys-galleries", FoldersKey: "little-joys-galleries-folders",
	}
	Movies = Domain{
		Name: "movies", Title: "Movies", Blurb: "Keep track of your favorite films",
		ItemsKey: "little-joys-movies", FoldersKey: "little-joys-movies-folders",
	}
)

// Domains in home-screen order.
func Domains() []Domain {
	return []Domain{Images, Quotes, Poems, Galleries, Movies}
}

func DomainByName(name string) (Domain, error) {
	for _, d := range Domains() {
		if strings.EqualFold(d.Name, name) {
			return d, nil
		}
	}
	return Domain{}, fmt.Errorf("unknown domain %q", name)
}

type (
	ImageCollection   = Collection[model.Image, *model.Image]
	QuoteCollection   = Collection[model.Quote, *model.Quote]
	PoemCollection    = Collection[model.Poem, *model.Poem]
	GalleryCollection = Collection[model.Gallery, *model.Gallery]
	MovieCollection   = Collection[model.Movie, *model.Movie]
)

// Library bundles the five collections over one storage adapter.
type Library struct {
	Images    *ImageCollection
	Quotes    *QuoteCollection
	Poems     *PoemCollection
	Galleries *GalleryCollection
	Movies    *MovieCollection
}

func NewLibrary(a *store.Adapter, opts ...Option) *Library {
	return &Library{
		Images:    NewCollection[model.Image](Images, a, opts...),
		Quotes:    NewCollection[model.Quote](Quotes, a, opts...),
		Poems:     NewCollection[model.Poem](Poems, a, opts...),
		Galleries: NewCollection[model.Gallery](Galleries, a, opts...),
		Movies:    NewCollection[model.Movie](Movies, a, opts...),
	}
}

// Initialize hydrates every collection.
func (l *Library) Initialize() {
	l.Images.Initialize()
	l.Quotes.Initialize()
	l.Poems.Initialize()
	l.Galleries.Initialize()
	l.Movies.Initialize()
}

// Summary counts one domain's contents.
type Summary struct {
	Domain  Domain
	Items   int
	Folders int
	Orphans int
}

func summarize[T any, P model.Record[T]](c *Collection[T, P]) Summary {
	return Summary{
		Domain:  c.Domain(),
		Items:   len(c.Items()),
		Folders: len(c.Folders()),
		Orphans: len(c.Orphans()),
	}
}

// Summaries reports every domain in home-screen order.
func (l *Library) Summaries() []Summary {
	return []Summary{
		summarize(l.Images),
		summarize(l.Quotes),
		summarize(l.Poems),
		summarize(l.Galleries),
		summarize(l.Movies),
	}
}
