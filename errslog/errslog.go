// Package errslog adapts errcollect errors and collections to log/slog.
//
// Errors are logged by template and args rather than by rendered text, so a
// handler built with ReplaceAttr (or NewHandler) can redact sensitive args
// such as a rejected password before they reach the output:
//
//	logger := slog.New(errslog.NewHandler(os.Stderr, nil))
//	logger.Warn("signup rejected",
//	    slog.String("operation", "Signup"),
//	    errslog.Collection("errors", errs),
//	)
package errslog

import (
	"io"
	"log/slog"
	"strconv"

	"github.com/m-mizutani/masq"

	errcollect "github.com/xgx-io/xgx-errcollect"
)

// DefaultSensitiveArgs are the arg names always redacted by ReplaceAttr.
var DefaultSensitiveArgs = []string{"password", "secret", "token"}

// Error returns an attr that logs e as a group.
func Error(key string, e *errcollect.Error) slog.Attr {
	return slog.Any(key, ErrorValue(e))
}

// Collection returns an attr that logs c as a group keyed by attribute.
func Collection(key string, c *errcollect.Collection) slog.Attr {
	return slog.Any(key, CollectionValue(c))
}

// ErrorValue wraps e in a slog.LogValuer. The group holds "template", an
// "args" group when there are args, and "cause" when e wraps a Go error.
func ErrorValue(e *errcollect.Error) slog.LogValuer { return errorValuer{e: e} }

// CollectionValue wraps c in a slog.LogValuer. The group holds "count" and
// one sub-group per attribute whose members are the errors keyed "0", "1", …
// in iteration order.
func CollectionValue(c *errcollect.Collection) slog.LogValuer { return collectionValuer{c: c} }

type errorValuer struct{ e *errcollect.Error }

func (v errorValuer) LogValue() slog.Value {
	if v.e == nil {
		return slog.StringValue("<nil>")
	}
	attrs := []slog.Attr{slog.String("template", v.e.Template())}
	if args := v.e.Args(); len(args) > 0 {
		as := make([]slog.Attr, 0, len(args))
		for _, a := range args {
			as = append(as, slog.Any(a.Key, a.Val))
		}
		attrs = append(attrs, slog.Attr{Key: "args", Value: slog.GroupValue(as...)})
	}
	if cause := v.e.Unwrap(); cause != nil {
		attrs = append(attrs, slog.String("cause", cause.Error()))
	}
	return slog.GroupValue(attrs...)
}

type collectionValuer struct{ c *errcollect.Collection }

func (v collectionValuer) LogValue() slog.Value {
	if v.c == nil {
		return slog.GroupValue(slog.Int("count", 0))
	}
	groups := v.c.Groups()
	attrs := make([]slog.Attr, 0, len(groups)+1)
	attrs = append(attrs, slog.Int("count", v.c.Count()))
	for _, g := range groups {
		members := make([]slog.Attr, len(g.Errors))
		for i, e := range g.Errors {
			members[i] = slog.Attr{Key: strconv.Itoa(i), Value: slog.AnyValue(ErrorValue(e))}
		}
		attrs = append(attrs, slog.Attr{Key: g.Attribute, Value: slog.GroupValue(members...)})
	}
	return slog.GroupValue(attrs...)
}

// ReplaceAttr returns a masq-backed slog ReplaceAttr func that redacts any
// attr named in DefaultSensitiveArgs or extra, at any group depth.
func ReplaceAttr(extra ...string) func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(DefaultSensitiveArgs)+len(extra))
	for _, name := range DefaultSensitiveArgs {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range extra {
		opts = append(opts, masq.WithFieldName(name))
	}
	return masq.New(opts...)
}

// NewHandler returns a JSON handler writing to w that redacts sensitive
// args. opts may be nil; a ReplaceAttr already in opts runs after redaction.
func NewHandler(w io.Writer, opts *slog.HandlerOptions, extra ...string) slog.Handler {
	var o slog.HandlerOptions
	if opts != nil {
		o = *opts
	}
	redact := ReplaceAttr(extra...)
	if next := o.ReplaceAttr; next != nil {
		o.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
			return next(groups, redact(groups, a))
		}
	} else {
		o.ReplaceAttr = redact
	}
	return slog.NewJSONHandler(w, &o)
}
