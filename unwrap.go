// unwrap.go - splitting joined Go errors into collection entries.
//
// Only multi-error nodes (Unwrap() []error, as built by errors.Join and
// multi-%w fmt.Errorf) are expanded. A singly wrapped error is kept whole so
// its wrapping text survives as the message. *Error and *Collection values
// are leaves even though they implement Unwrap.
package errcollect

import "reflect"

// maxSplitDepth bounds recursion on pathological or cyclic join graphs.
const maxSplitDepth = 1 << 10

// Split returns the leaves of err's join tree, depth-first and left to right.
// A nil err yields nil; an error that is not a join yields itself. Nodes
// reachable along several paths are visited once.
func Split(err error) []error {
	if err == nil {
		return nil
	}
	s := splitter{seen: make(map[error]bool)}
	s.walk(err, 0)
	return s.out
}

type splitter struct {
	seen map[error]bool
	out  []error
}

func (s *splitter) walk(err error, depth int) {
	if err == nil || depth > maxSplitDepth {
		return
	}
	// Non-comparable dynamic types would panic as map keys; they are
	// walked without dedup and the depth bound still applies.
	if reflect.TypeOf(err).Comparable() {
		if s.seen[err] {
			return
		}
		s.seen[err] = true
	}
	m, ok := err.(interface{ Unwrap() []error })
	if !ok || isLeaf(err) {
		s.out = append(s.out, err)
		return
	}
	for _, child := range m.Unwrap() {
		s.walk(child, depth+1)
	}
}

func isLeaf(err error) bool {
	switch err.(type) {
	case *Error, *Collection:
		return true
	}
	return false
}

// AddLeaves splits err with Split and appends one entry per leaf under
// attribute: *Error leaves as-is, other errors as Cause. A *Collection leaf
// is merged with its own attributes preserved. A nil err is a no-op.
func (c *Collection) AddLeaves(attribute string, err error) *Collection {
	for _, leaf := range Split(err) {
		switch x := leaf.(type) {
		case *Collection:
			c.Merge(x)
		case *Error:
			c.Put(attribute, ErrorValue{Err: x}, nil)
		default:
			c.Put(attribute, Cause{Err: x}, nil)
		}
	}
	return c
}
