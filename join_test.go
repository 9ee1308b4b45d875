package errcollect

import (
	"errors"
	"fmt"
	"testing"
)

func TestCollection_ErrNilWhenEmpty(t *testing.T) {
	t.Parallel()

	if err := New().Err(); err != nil {
		t.Fatalf("empty collection Err() = %v, want nil", err)
	}
	var nilColl *Collection
	if err := nilColl.Err(); err != nil {
		t.Fatalf("nil collection Err() = %v, want nil", err)
	}
	c := New().Put("a", EmptyFormat{}, nil)
	if c.Err() == nil {
		t.Fatalf("populated collection Err() should be non-nil")
	}
	if c.Clear().Err() != nil {
		t.Fatalf("cleared collection Err() should be nil")
	}
}

func TestCollection_ErrorString(t *testing.T) {
	t.Parallel()

	c := New().
		Put("email", FormatString("{v} is not an email"), ArgsOf("v", "bob")).
		PutGeneric(FormatString("form expired"), nil).
		Put("email", FormatString("required"), nil)

	want := "form expired\nemail: bob is not an email\nemail: required"
	if got := c.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	if got := New().Error(); got != "" {
		t.Fatalf("empty Error() = %q, want empty", got)
	}
}

func TestCollection_IsAsTraverseEntries(t *testing.T) {
	t.Parallel()

	cause := errors.New("timeout")
	e := NewError("bad")
	c := New().Put("a", ErrorValue{Err: e}, nil).PutGeneric(Cause{Err: cause}, nil)
	err := fmt.Errorf("validate: %w", c.Err())

	if !errors.Is(err, e) {
		t.Fatalf("errors.Is should find a stored *Error")
	}
	if !errors.Is(err, cause) {
		t.Fatalf("errors.Is should reach the cause of a stored entry")
	}
	var coll *Collection
	if !errors.As(err, &coll) || coll != c {
		t.Fatalf("errors.As should recover the collection")
	}

	joined := errors.Join(errors.New("other"), c)
	if !errors.Is(joined, e) {
		t.Fatalf("errors.Join of a collection should still expose its entries")
	}
}

func TestCollection_UnwrapOrder(t *testing.T) {
	t.Parallel()

	e1, e2, e3 := NewError("1"), NewError("2"), NewError("3")
	c := New().Put("b", ErrorValue{e2}, nil).PutGeneric(ErrorValue{e1}, nil).Put("c", ErrorValue{e3}, nil)

	got := c.Unwrap()
	if len(got) != 3 || got[0] != e1 || got[1] != e2 || got[2] != e3 {
		t.Fatalf("Unwrap order = %v", got)
	}
}
