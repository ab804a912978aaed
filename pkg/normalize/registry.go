package normalize

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrymomot/textkit/pkg/slug"
)

// Options carries the parameters of the pipelines that take any. Each
// pipeline reads only the fields it needs. The zero value gives every
// pipeline its default behaviour.
type Options struct {
	Slug          []slug.Option
	NoExtendShort bool // initials: keep a single initial as is
	AllowSpaces   bool // fileName
	Length        int  // shorten
	RTL           bool // shorten
}

// PipelineFunc is the uniform shape of a named pipeline.
type PipelineFunc func(v Value, opts Options) (string, bool, error)

func plain(fn func(Value) (string, bool)) PipelineFunc {
	return func(v Value, _ Options) (string, bool, error) {
		s, ok := fn(v)
		return s, ok, nil
	}
}

var pipelines = map[string]PipelineFunc{
	"slug": func(v Value, o Options) (string, bool, error) {
		s, ok := Slug(v, o.Slug...)
		return s, ok, nil
	},
	"pathSlug": func(v Value, o Options) (string, bool, error) {
		s, ok := PathSlug(v, o.Slug...)
		return s, ok, nil
	},
	"actionSlug":         plain(ActionSlug),
	"id":                 plain(ID),
	"camel":              plain(Camel),
	"constant":           plain(Constant),
	"label":              plain(Label),
	"name":               plain(Name),
	"firstName":          plain(FirstName),
	"initialsAndSurname": plain(InitialsAndSurname),
	"initialMiddleNames": plain(InitialMiddleNames),
	"consonants":         plain(Consonants),
	"numericToAlpha":     plain(NumericToAlpha),
	"initials": func(v Value, o Options) (string, bool, error) {
		s, ok := Initials(v, !o.NoExtendShort)
		return s, ok, nil
	},
	"fileName": func(v Value, o Options) (string, bool, error) {
		s, ok := FileName(v, o.AllowSpaces)
		return s, ok, nil
	},
	"shorten": func(v Value, o Options) (string, bool, error) {
		s, ok := Shorten(v, o.Length, o.RTL)
		return s, ok, nil
	},
	"alphaToNumeric": func(v Value, _ Options) (string, bool, error) {
		n, ok, err := AlphaToNumeric(v)
		if err != nil || !ok {
			return "", false, err
		}
		return strconv.FormatInt(n, 10), true, nil
	},
}

// foldName makes "path-slug", "path_slug" and "PathSlug" equivalent.
func foldName(name string) string {
	return strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(name))
}

var pipelineIndex = func() map[string]string {
	idx := make(map[string]string, len(pipelines))
	for name := range pipelines {
		idx[foldName(name)] = name
	}
	return idx
}()

// Lookup finds a pipeline by name. Case, dashes and underscores are
// ignored, so "path-slug" finds pathSlug.
func Lookup(name string) (PipelineFunc, bool) {
	canonical, ok := pipelineIndex[foldName(name)]
	if !ok {
		return nil, false
	}
	return pipelines[canonical], true
}

// Run applies the named pipeline to v.
func Run(name string, v Value, opts Options) (string, bool, error) {
	fn, ok := Lookup(name)
	if !ok {
		return "", false, fmt.Errorf("%w: %q", ErrUnknownPipeline, name)
	}
	return fn(v, opts)
}

// Pipelines lists the pipeline names in sorted order.
func Pipelines() []string {
	names := make([]string, 0, len(pipelines))
	for name := range pipelines {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
