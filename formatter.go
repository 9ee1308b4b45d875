// formatter.go - pluggable template expansion.
//
// The formatter is a collaborator, not part of the Error value: Errors hold a
// template and args, and a Formatter turns them into text when asked. It is
// injected per Error (WithFormatter) or per Collection (the WithFormatter
// option); there is no package-level mutable formatter.
package errcollect

import (
	"fmt"
	"strings"
)

// Formatter expands a template with named args into final text.
type Formatter interface {
	Format(template string, args Args) (string, error)
}

// FormatterFunc adapts a plain function to Formatter.
type FormatterFunc func(template string, args Args) (string, error)

// Format calls f(template, args).
func (f FormatterFunc) Format(template string, args Args) (string, error) {
	return f(template, args)
}

// DefaultFormatter is the lenient placeholder formatter used when an Error
// has no formatter bound.
var DefaultFormatter Formatter = Placeholders{}

// Placeholders replaces "{name}" with fmt.Sprint of the matching arg.
// "{{" and "}}" produce literal braces.
//
// In lenient mode (the zero value) unknown placeholders and an unterminated
// "{" are copied through verbatim. With Strict set they fail with
// CodeMissingArgument and CodeMalformedTemplate respectively.
type Placeholders struct {
	Strict bool
}

// Format implements Formatter.
func (p Placeholders) Format(template string, args Args) (string, error) {
	if !strings.ContainsAny(template, "{}") {
		return template, nil
	}
	var sb strings.Builder
	sb.Grow(len(template))
	for i := 0; i < len(template); {
		c := template[i]
		switch {
		case c == '{' && i+1 < len(template) && template[i+1] == '{':
			sb.WriteByte('{')
			i += 2
		case c == '}' && i+1 < len(template) && template[i+1] == '}':
			sb.WriteByte('}')
			i += 2
		case c == '{':
			end := strings.IndexByte(template[i+1:], '}')
			if end < 0 {
				if p.Strict {
					return "", malformedTemplate(template, i)
				}
				sb.WriteString(template[i:])
				i = len(template)
				continue
			}
			name := template[i+1 : i+1+end]
			if v, ok := args.Lookup(name); ok {
				sb.WriteString(fmt.Sprint(v))
			} else if p.Strict {
				return "", missingArgument(template, name)
			} else {
				sb.WriteString(template[i : i+end+2])
			}
			i += end + 2
		default:
			sb.WriteByte(c)
			i++
		}
	}
	return sb.String(), nil
}
