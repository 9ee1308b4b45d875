// collection.go - errors grouped by attribute, in deterministic order.
//
// Ordering:
//   • The Generic bucket is always visited first.
//   • Other attributes follow in the order each was FIRST inserted. Removing
//     an attribute forgets its position; adding to it again appends it last.
//   • Within an attribute, errors keep insertion order.
//
// A Collection is an unsynchronized mutable value. Concurrent readers are
// fine while nobody mutates it; mutation needs external locking.
//
// A nil *Collection reads as empty: Has, Get, Count, All, Groups and the
// exports work on it. Mutating methods need a non-nil receiver.
package errcollect

import (
	"encoding/json"
	"iter"
	"slices"
)

// Generic is the reserved attribute for errors not tied to any attribute.
// The empty attribute "" is treated as Generic by every method.
const Generic = "__generic__"

// Collection maps attribute names to ordered sequences of errors.
// The zero value is an empty collection ready to use.
type Collection struct {
	order  []string
	groups map[string][]*Error
	fm     Formatter
}

// Group is one attribute and its errors, as returned by Groups.
type Group struct {
	Attribute string
	Errors    []*Error
}

// Option configures a Collection.
type Option func(*Collection)

// WithFormatter binds f to every Error the collection builds from a format
// string, true or a Go error. Errors added as *Error keep their own formatter.
func WithFormatter(f Formatter) Option {
	return func(c *Collection) { c.fm = f }
}

// New returns an empty Collection.
func New(opts ...Option) *Collection {
	c := &Collection{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func normalize(attribute string) string {
	if attribute == "" {
		return Generic
	}
	return attribute
}

// Add appends an error to attribute. value may be an *Error (used as-is,
// args ignored), a format string, the literal true (empty format) or any Go
// error (its Error() text becomes the format). Any other value fails with
// CodeInvalidArgument and leaves the collection untouched.
//
// Example:
//
//	_ = errs.Add("password", "{field} is too short", errcollect.ArgsOf("field", "password"))
func (c *Collection) Add(attribute string, value any, args Args) error {
	in, err := InputOf(value)
	if err != nil {
		return err
	}
	c.Put(attribute, in, args)
	return nil
}

// AddGeneric is Add(Generic, value, args).
func (c *Collection) AddGeneric(value any, args Args) error {
	return c.Add(Generic, value, args)
}

// Put is the statically typed form of Add. It never fails and returns c for
// chaining. A nil Input behaves like EmptyFormat.
func (c *Collection) Put(attribute string, in Input, args Args) *Collection {
	c.push(normalize(attribute), resolve(in, args, c))
	return c
}

// PutGeneric is Put(Generic, in, args).
func (c *Collection) PutGeneric(in Input, args Args) *Collection {
	return c.Put(Generic, in, args)
}

func (c *Collection) push(attribute string, e *Error) {
	if c.groups == nil {
		c.groups = make(map[string][]*Error)
	}
	if _, ok := c.groups[attribute]; !ok {
		c.order = append(c.order, attribute)
	}
	c.groups[attribute] = append(c.groups[attribute], e)
}

// Has reports whether attribute currently has an entry.
func (c *Collection) Has(attribute string) bool {
	if c == nil {
		return false
	}
	_, ok := c.groups[normalize(attribute)]
	return ok
}

// Get returns a copy of the errors for attribute. It returns an empty,
// non-nil slice when there are none.
func (c *Collection) Get(attribute string) []*Error {
	if c == nil {
		return []*Error{}
	}
	errs := c.groups[normalize(attribute)]
	out := make([]*Error, len(errs))
	copy(out, errs)
	return out
}

// Remove deletes attribute and all of its errors.
func (c *Collection) Remove(attribute string) {
	attribute = normalize(attribute)
	if _, ok := c.groups[attribute]; !ok {
		return
	}
	delete(c.groups, attribute)
	if i := slices.Index(c.order, attribute); i >= 0 {
		c.order = slices.Delete(c.order, i, i+1)
	}
}

// Clear removes every attribute, Generic included.
func (c *Collection) Clear() *Collection {
	c.order = nil
	c.groups = nil
	return c
}

// Merge appends every (attribute, error) pair of other, in other's
// iteration order. Nothing is deduplicated. Merging c into itself appends
// one copy of each entry.
func (c *Collection) Merge(other *Collection) *Collection {
	if other == nil {
		return c
	}
	for attribute, e := range other.All() {
		c.push(attribute, e)
	}
	return c
}

// Count returns the total number of errors across all attributes.
func (c *Collection) Count() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, errs := range c.groups {
		n += len(errs)
	}
	return n
}

// All iterates (attribute, error) pairs. Each traversal snapshots the
// collection when it starts, so mutating c from inside the loop does not
// affect the pairs already scheduled.
func (c *Collection) All() iter.Seq2[string, *Error] {
	return func(yield func(string, *Error) bool) {
		for _, g := range c.Groups() {
			for _, e := range g.Errors {
				if !yield(g.Attribute, e) {
					return
				}
			}
		}
	}
}

// ForEach calls fn for every error in iteration order.
func (c *Collection) ForEach(fn func(err *Error, attribute string, c *Collection)) {
	for attribute, e := range c.All() {
		fn(e, attribute, c)
	}
}

// Groups returns a snapshot of the non-empty attributes in iteration order.
func (c *Collection) Groups() []Group {
	if c == nil || len(c.order) == 0 {
		return nil
	}
	out := make([]Group, 0, len(c.order))
	if errs := c.groups[Generic]; len(errs) > 0 {
		out = append(out, Group{Attribute: Generic, Errors: slices.Clone(errs)})
	}
	for _, attribute := range c.order {
		if attribute == Generic {
			continue
		}
		if errs := c.groups[attribute]; len(errs) > 0 {
			out = append(out, Group{Attribute: attribute, Errors: slices.Clone(errs)})
		}
	}
	return out
}

// Attributes returns the non-empty attributes in iteration order.
func (c *Collection) Attributes() []string {
	groups := c.Groups()
	out := make([]string, len(groups))
	for i, g := range groups {
		out[i] = g.Attribute
	}
	return out
}

// Map returns the same content as Groups as an unordered map.
func (c *Collection) Map() map[string][]*Error {
	groups := c.Groups()
	out := make(map[string][]*Error, len(groups))
	for _, g := range groups {
		out[g.Attribute] = g.Errors
	}
	return out
}

// MarshalJSON encodes the collection as an object keyed by attribute in
// iteration order, each value an array of rendered messages. Empty
// attributes are omitted; an empty collection encodes as {}.
func (c *Collection) MarshalJSON() ([]byte, error) {
	groups := c.Groups()
	buf := make([]byte, 0, 64)
	buf = append(buf, '{')
	for i, g := range groups {
		if i > 0 {
			buf = append(buf, ',')
		}
		key, err := json.Marshal(g.Attribute)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(g.Errors)
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

var _ json.Marshaler = (*Collection)(nil)
