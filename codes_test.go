package errcollect

import (
	"regexp"
	"testing"
)

var codeShape = regexp.MustCompile(`^[a-z]+(_[a-z]+)*$`)

func TestBuiltinCodes_ShapeAndUniqueness(t *testing.T) {
	t.Parallel()

	seen := map[Code]bool{}
	for _, c := range BuiltinCodes() {
		if !codeShape.MatchString(string(c)) {
			t.Errorf("code %q is not lowercase snake_case", c)
		}
		if seen[c] {
			t.Errorf("duplicate code %q", c)
		}
		seen[c] = true
		if !c.IsBuiltin() {
			t.Errorf("%q.IsBuiltin() = false", c)
		}
	}
	if len(seen) != len(builtinCodeSet) {
		t.Fatalf("BuiltinCodes has %d entries, set has %d", len(seen), len(builtinCodeSet))
	}
}

func TestBuiltinCodes_ReturnsCopy(t *testing.T) {
	t.Parallel()

	codes := BuiltinCodes()
	codes[0] = "mutated"
	if BuiltinCodes()[0] != CodeInvalidArgument {
		t.Fatalf("BuiltinCodes exposed its backing array")
	}
	if Code("mutated").IsBuiltin() {
		t.Fatalf("unknown code reported as builtin")
	}
}
