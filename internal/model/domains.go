package model

import (
	"fmt"
	"strings"
)

// Image is a picture kept either as a link or as an inline data URL.
type Image struct {
	Meta
	Name string `json:"name" validate:"notblank"`
	URL  string `json:"url" validate:"notblank"`
}

func (i *Image) Normalize() {
	i.Name = strings.TrimSpace(i.Name)
	i.URL = strings.TrimSpace(i.URL)
}

func (i *Image) Label() string { return i.Name }

func (i *Image) Detach() {}

type Quote struct {
	Meta
	Text   string  `json:"text" validate:"notblank"`
	Author *string `json:"author,omitempty"`
	Source *string `json:"source,omitempty"`
}

func (q *Quote) Normalize() {
	q.Text = strings.TrimSpace(q.Text)
	trimOptional(&q.Author)
	trimOptional(&q.Source)
}

func (q *Quote) Detach() {
	q.Author = clonePtr(q.Author)
	q.Source = clonePtr(q.Source)
}

func (q *Quote) Label() string {
	if q.Author != nil {
		return fmt.Sprintf("“%s” — %s", q.Text, *q.Author)
	}
	return fmt.Sprintf("“%s”", q.Text)
}

type Poem struct {
	Meta
	Title   string  `json:"title" validate:"notblank"`
	Content string  `json:"content" validate:"notblank"`
	Author  *string `json:"author,omitempty"`
}

func (p *Poem) Normalize() {
	p.Title = strings.TrimSpace(p.Title)
	p.Content = strings.TrimSpace(p.Content)
	trimOptional(&p.Author)
}

func (p *Poem) Detach() { p.Author = clonePtr(p.Author) }

func (p *Poem) Label() string {
	if p.Author != nil {
		return p.Title + " by " + *p.Author
	}
	return p.Title
}

// Gallery is an art show or exhibition worth remembering.
type Gallery struct {
	Meta
	Name     string  `json:"name" validate:"notblank"`
	Location *string `json:"location,omitempty"`
	Date     *string `json:"date,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

func (g *Gallery) Normalize() {
	g.Name = strings.TrimSpace(g.Name)
	trimOptional(&g.Location)
	trimOptional(&g.Date)
	trimOptional(&g.Notes)
}

func (g *Gallery) Detach() {
	g.Location = clonePtr(g.Location)
	g.Date = clonePtr(g.Date)
	g.Notes = clonePtr(g.Notes)
}

func (g *Gallery) Label() string {
	parts := []string{g.Name}
	if g.Location != nil {
		parts = append(parts, *g.Location)
	}
	if g.Date != nil {
		parts = append(parts, *g.Date)
	}
	return strings.Join(parts, " · ")
}

type Movie struct {
	Meta
	Title    string  `json:"title" validate:"notblank"`
	Year     *string `json:"year,omitempty"`
	Director *string `json:"director,omitempty"`
	Rating   *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Notes    *string `json:"notes,omitempty"`
}

func (m *Movie) Normalize() {
	m.Title = strings.TrimSpace(m.Title)
	trimOptional(&m.Year)
	trimOptional(&m.Director)
	trimOptional(&m.Notes)
	// zero is how an unset star rating arrives from forms
	if m.Rating != nil && *m.Rating == 0 {
		m.Rating = nil
	}
}

func (m *Movie) Detach() {
	m.Year = clonePtr(m.Year)
	m.Director = clonePtr(m.Director)
	m.Rating = clonePtr(m.Rating)
	m.Notes = clonePtr(m.Notes)
}

func (m *Movie) Label() string {
	label := m.Title
	if m.Year != nil {
		label += " (" + *m.Year + ")"
	}
	if m.Rating != nil {
		label += " " + Stars(*m.Rating)
	}
	return label
}

// Stars renders a 1..5 rating as filled and empty stars.
func Stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}
