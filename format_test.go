package errcollect

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// containsInOrder reports whether all needles appear in haystack in order.
func containsInOrder(haystack string, needles ...string) bool {
	pos := 0
	for _, n := range needles {
		i := strings.Index(haystack[pos:], n)
		if i < 0 {
			return false
		}
		pos += i + len(n)
	}
	return true
}

func TestErrorFormatting_ConciseAndVerbose(t *testing.T) {
	e := NewError("error: {arg}", "arg", "X", "n", 2)

	if got := fmt.Sprintf("%v", e); got != "error: X" {
		t.Fatalf("%%v = %q", got)
	}
	if got := fmt.Sprintf("%s", e); got != "error: X" {
		t.Fatalf("%%s = %q", got)
	}
	if got := fmt.Sprintf("%q", e); got != `"error: X"` {
		t.Fatalf("%%q = %q", got)
	}

	want := "msg=\"error: X\" format=\"error: {arg}\"\nargs: arg=X n=2"
	if got := fmt.Sprintf("%+v", e); got != want {
		t.Fatalf("%%+v = %q, want %q", got, want)
	}
}

func TestErrorFormatting_VerboseIncludesCause(t *testing.T) {
	c := New().Put("a", Cause{Err: errors.New("boom")}, nil)
	got := fmt.Sprintf("%+v", c.Get("a")[0])
	want := "msg=\"boom\" format=\"boom\"\ncause: boom"
	if got != want {
		t.Fatalf("%%+v = %q, want %q", got, want)
	}
}

func TestFailureFormatting(t *testing.T) {
	_, err := InputOf(42)
	if got := fmt.Sprintf("%v", err); got != "invalid_argument: expected *Error, string, true or error, got int" {
		t.Fatalf("%%v = %q", got)
	}
	verbose := fmt.Sprintf("%+v", err)
	if !containsInOrder(verbose, "code=invalid_argument", `msg="expected`, "\nctx:", " type=int") {
		t.Fatalf("%%+v missing fragments:\n%s", verbose)
	}
}

func TestCollectionFormatting(t *testing.T) {
	c := New().
		Put("name", FormatString("required"), nil).
		PutGeneric(FormatString("expired"), nil)

	if got := fmt.Sprintf("%v", c); got != "expired\nname: required" {
		t.Fatalf("%%v = %q", got)
	}
	if got := fmt.Sprintf("%q", c); got != `"expired\nname: required"` {
		t.Fatalf("%%q = %q", got)
	}

	verbose := fmt.Sprintf("%+v", c)
	want := "[__generic__] msg=\"expired\" format=\"expired\"\n[name] msg=\"required\" format=\"required\""
	if verbose != want {
		t.Fatalf("%%+v = %q, want %q", verbose, want)
	}
}
