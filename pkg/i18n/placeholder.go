package i18n

import (
	"fmt"
	"maps"
	"strings"
)

// M holds placeholder values for message templates.
type M map[string]any

// Expand substitutes {{name}} placeholders in template with values from args.
// Unknown placeholders are left untouched. Substituted values are never
// expanded again, so a value containing "{{x}}" is written literally.
//
//	Expand("{{count}} days ago", M{"count": 3}) // "3 days ago"
func Expand(template string, args M) string {
	if len(args) == 0 || !strings.Contains(template, "{{") {
		return template
	}

	var b strings.Builder
	b.Grow(len(template))

	for {
		start := strings.Index(template, "{{")
		if start < 0 {
			break
		}
		end := strings.Index(template[start+2:], "}}")
		if end < 0 {
			break
		}
		end += start + 2

		name := strings.TrimSpace(template[start+2 : end])
		b.WriteString(template[:start])
		if v, ok := args[name]; ok {
			fmt.Fprint(&b, v)
		} else {
			b.WriteString(template[start : end+2])
		}
		template = template[end+2:]
	}

	b.WriteString(template)
	return b.String()
}

func merge(base M, extra []M) M {
	if len(extra) == 0 {
		return base
	}
	out := maps.Clone(base)
	if out == nil {
		out = make(M)
	}
	for _, m := range extra {
		maps.Copy(out, m)
	}
	return out
}
