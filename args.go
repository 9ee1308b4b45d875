// args.go - ordered, immutable placeholder arguments for error templates.
//
// Design:
//   • Internal representation: append-only []Arg (deterministic order).
//   • Builders are non-mutating: they return NEW slices (no aliasing).
//   • Public map view is copy-on-read.
//
// Positional placeholders ("{0}", "{1}") are ordinary args whose keys are the
// decimal index; ArgsOf does not assign them, PositionalArgs does.
package errcollect

import "strconv"

// Arg is a single placeholder binding. Key is the placeholder name without
// braces.
type Arg struct {
	Key string
	Val any
}

// Args is the ordered list of placeholder bindings carried by an Error.
// Treat it as append-only; never modify elements in place once published.
type Args []Arg

// noArgs is the canonical empty argument list.
var noArgs = make(Args, 0)

// ArgsOf parses a variadic list of key-value pairs into Args.
//
// Rules:
//   • Pairs are read left-to-right as (key, value).
//   • A non-string key drops the ENTIRE pair (key and its following value)
//     so later pairs stay aligned.
//   • A trailing key with no value becomes (key, nil).
func ArgsOf(kv ...any) Args {
	if len(kv) == 0 {
		return noArgs
	}
	out := make(Args, 0, len(kv)/2+1)
	for i := 0; i < len(kv); {
		k, ok := kv[i].(string)
		if !ok {
			if i+1 < len(kv) {
				i += 2
			} else {
				i++
			}
			continue
		}
		var v any
		if i+1 < len(kv) {
			v = kv[i+1]
			i += 2
		} else {
			i++
		}
		out = append(out, Arg{Key: k, Val: v})
	}
	if len(out) == 0 {
		return noArgs
	}
	return out
}

// PositionalArgs binds vals to the placeholders "{0}", "{1}", ... in order.
func PositionalArgs(vals ...any) Args {
	if len(vals) == 0 {
		return noArgs
	}
	out := make(Args, len(vals))
	for i, v := range vals {
		out[i] = Arg{Key: strconv.Itoa(i), Val: v}
	}
	return out
}

// ArgsFromMap converts an unordered map into Args. Map iteration order is
// unspecified, so the resulting order is too; use ArgsOf when order matters.
func ArgsFromMap(m map[string]any) Args {
	if len(m) == 0 {
		return noArgs
	}
	out := make(Args, 0, len(m))
	for k, v := range m {
		out = append(out, Arg{Key: k, Val: v})
	}
	return out
}

// Lookup returns the value bound to key. Later duplicates win.
func (a Args) Lookup(key string) (any, bool) {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i].Key == key {
			return a[i].Val, true
		}
	}
	return nil, false
}

// Map returns a NEW map of the args (copy-on-read, last write wins).
// It returns nil when there are no args.
func (a Args) Map() map[string]any {
	if len(a) == 0 {
		return nil
	}
	m := make(map[string]any, len(a))
	for _, f := range a {
		m[f.Key] = f.Val
	}
	return m
}

// clone returns a detached copy so callers cannot alias stored args.
func (a Args) clone() Args {
	if len(a) == 0 {
		return noArgs
	}
	out := make(Args, len(a))
	copy(out, a)
	return out
}

// cloneAppend returns a NEW slice with a's contents followed by add.
func (a Args) cloneAppend(add ...Arg) Args {
	n, m := len(a), len(add)
	if n+m == 0 {
		return noArgs
	}
	out := make(Args, n+m)
	copy(out, a)
	copy(out[n:], add)
	return out
}
