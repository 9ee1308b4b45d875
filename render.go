// render.go - read-only rendered views over a Collection.
//
// A Rendered view holds a reference to a collection and a renderer. It never
// caches: each traversal walks the collection as it is at that moment, so
// adding, removing or clearing between traversals is reflected.
package errcollect

import (
	"encoding/json"
	"iter"
)

// Renderer turns one error into display text. attribute is the error's
// bucket (Generic for generic errors) and c the collection being rendered.
type Renderer interface {
	Render(err *Error, attribute string, c *Collection) string
}

// RenderFunc adapts a function to Renderer.
type RenderFunc func(err *Error, attribute string, c *Collection) string

// Render calls f.
func (f RenderFunc) Render(err *Error, attribute string, c *Collection) string {
	return f(err, attribute, c)
}

// PlainText renders an error with its own formatter.
var PlainText Renderer = RenderFunc(func(err *Error, _ string, _ *Collection) string {
	return err.String()
})

// Rendered is a live, rendered projection of a Collection.
type Rendered struct {
	c      *Collection
	render Renderer
}

// RenderedGroup is one attribute and its rendered messages.
type RenderedGroup struct {
	Attribute string
	Messages  []string
}

// NewRendered returns a view over c. A nil render means PlainText and a nil
// c an empty collection.
func NewRendered(c *Collection, render RenderFunc) *Rendered {
	if render == nil {
		return RenderWith(c, PlainText)
	}
	return RenderWith(c, render)
}

// RenderWith is NewRendered for any Renderer implementation. A nil r means
// PlainText and a nil c an empty collection.
func RenderWith(c *Collection, r Renderer) *Rendered {
	if r == nil {
		r = PlainText
	}
	if c == nil {
		c = New()
	}
	return &Rendered{c: c, render: r}
}

// Collection returns the underlying collection.
func (v *Rendered) Collection() *Collection { return v.c }

// All iterates (attribute, rendered message) pairs in the collection's
// iteration order. Messages are rendered one at a time as they are yielded.
func (v *Rendered) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for attribute, e := range v.c.All() {
			if !yield(attribute, v.render.Render(e, attribute, v.c)) {
				return
			}
		}
	}
}

// Groups renders the whole collection, grouped by attribute.
func (v *Rendered) Groups() []RenderedGroup {
	var out []RenderedGroup
	for attribute, msg := range v.All() {
		if n := len(out); n > 0 && out[n-1].Attribute == attribute {
			out[n-1].Messages = append(out[n-1].Messages, msg)
			continue
		}
		out = append(out, RenderedGroup{Attribute: attribute, Messages: []string{msg}})
	}
	return out
}

// MarshalJSON encodes the rendered messages as an ordered object, the same
// shape as Collection.MarshalJSON but through this view's renderer.
func (v *Rendered) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, 64)
	buf = append(buf, '{')
	for i, g := range v.Groups() {
		if i > 0 {
			buf = append(buf, ',')
		}
		key, err := json.Marshal(g.Attribute)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(g.Messages)
		if err != nil {
			return nil, err
		}
		buf = append(buf, key...)
		buf = append(buf, ':')
		buf = append(buf, val...)
	}
	buf = append(buf, '}')
	return buf, nil
}
