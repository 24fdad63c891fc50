package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional(t *testing.T) {
	assert.Nil(t, Optional(""))
	assert.Nil(t, Optional(" \t\n"))
	p := Optional("  Rumi ")
	require.NotNil(t, p)
	assert.Equal(t, "Rumi", *p)
	assert.Equal(t, "", Deref(nil))
	assert.Equal(t, "Rumi", Deref(p))
}

func TestInFolder(t *testing.T) {
	root := Meta{ID: "a"}
	assert.True(t, root.InFolder(""))
	assert.False(t, root.InFolder("f1"))

	in := Meta{ID: "b", FolderID: "f1"}
	assert.False(t, in.InFolder(""))
	assert.True(t, in.InFolder("f1"))
	assert.False(t, in.InFolder("f2"))
}

func TestNormalizeDropsBlankOptionals(t *testing.T) {
	blank := "   "
	q := Quote{Text: "  hello ", Author: &blank, Source: Optional("Book")}
	q.Normalize()
	assert.Equal(t, "hello", q.Text)
	assert.Nil(t, q.Author)
	require.NotNil(t, q.Source)

	zero := 0
	m := Movie{Title: " Heat ", Rating: &zero, Notes: &blank}
	m.Normalize()
	assert.Equal(t, "Heat", m.Title)
	assert.Nil(t, m.Rating)
	assert.Nil(t, m.Notes)
}

func TestLabels(t *testing.T) {
	four := 4
	cases := []struct {
		name string
		rec  interface{ Label() string }
		want string
	}{
		{"image", &Image{Name: "Sunset"}, "Sunset"},
		{"quote", &Quote{Text: "Be here now"}, "“Be here now”"},
		{"quote with author", &Quote{Text: "Be here now", Author: Optional("Ram Dass")}, "“Be here now” — Ram Dass"},
		{"poem", &Poem{Title: "Ozymandias", Author: Optional("Shelley")}, "Ozymandias by Shelley"},
		{"gallery", &Gallery{Name: "Tate", Date: Optional("May")}, "Tate · May"},
		{"movie", &Movie{Title: "Heat", Year: Optional("1995"), Rating: &four}, "Heat (1995) ★★★★☆"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.rec.Label())
		})
	}
}

func TestStarsClamps(t *testing.T) {
	assert.Equal(t, "☆☆☆☆☆", Stars(-2))
	assert.Equal(t, "★★★★★", Stars(9))
}

func TestStoredShape(t *testing.T) {
	m := Movie{Meta: Meta{ID: "m1", FolderID: "f1"}, Title: "Heat"}
	b, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"m1","folderId":"f1","title":"Heat"}`, string(b))

	var back Image
	require.NoError(t, json.Unmarshal([]byte(`{"id":"i1","name":"a","url":"data:image/png;base64,AA=="}`), &back))
	assert.Empty(t, back.FolderID)
	assert.Equal(t, "i1", back.ID)

	root := Movie{Meta: Meta{ID: "m2"}, Title: "Heat"}
	b, err = json.Marshal(root)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"m2","title":"Heat"}`, string(b))
}

func TestEmptyFolderIDIsRoot(t *testing.T) {
	var m Movie
	require.NoError(t, json.Unmarshal([]byte(`{"id":"1","title":"Legacy","folderId":""}`), &m))
	assert.True(t, m.InFolder(""))
	assert.False(t, m.InFolder("f1"))
}

func TestDetachCopiesPointers(t *testing.T) {
	four := 4
	orig := Movie{Title: "Heat", Director: Optional("Mann"), Rating: &four}
	cp := orig
	cp.Detach()
	*cp.Director = "Scott"
	*cp.Rating = 1
	assert.Equal(t, "Mann", *orig.Director)
	assert.Equal(t, 4, *orig.Rating)

	q := Quote{Text: "hi", Author: Optional("Anon")}
	qc := q
	qc.Detach()
	*qc.Author = "Someone"
	assert.Equal(t, "Anon", *q.Author)
}
