package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/textkit/internal/render"
	"github.com/dmitrymomot/textkit/pkg/basen"
	"github.com/dmitrymomot/textkit/pkg/logger"
	"github.com/dmitrymomot/textkit/pkg/normalize"
	"github.com/dmitrymomot/textkit/pkg/slug"
	"github.com/dmitrymomot/textkit/pkg/text"
	"github.com/dmitrymomot/textkit/pkg/translit"
)

// localeOf prefers an explicit body field over the negotiated locale.
func localeOf(r *http.Request, explicit string) string {
	if explicit != "" {
		return explicit
	}
	return logger.Locale(r.Context())
}

func (s *Server) handleLocales(w http.ResponseWriter, r *http.Request) error {
	writeJSON(w, http.StatusOK, map[string]any{
		"default":         s.locales.Locale(""),
		"formats":         s.available,
		"transliteration": translit.Languages(),
	})
	return nil
}

func (s *Server) handlePipelines(w http.ResponseWriter, r *http.Request) error {
	writeJSON(w, http.StatusOK, map[string]any{"pipelines": normalize.Pipelines()})
	return nil
}

type normalizeRequest struct {
	Value   any              `json:"value"`
	Options normalizeOptions `json:"options"`
}

type normalizeOptions struct {
	Separator    *string `json:"separator"`
	Lowercase    *bool   `json:"lowercase"`
	AllowedChars string  `json:"allowed_chars"`
	Language     string  `json:"language"`
	MaxLength    int     `json:"max_length"`
	ExtendShort  *bool   `json:"extend_short"`
	AllowSpaces  bool    `json:"allow_spaces"`
	Length       int     `json:"length"`
	RTL          bool    `json:"rtl"`
}

func (o normalizeOptions) build() normalize.Options {
	var opts []slug.Option
	if o.Separator != nil {
		opts = append(opts, slug.Separator(*o.Separator))
	}
	if o.Lowercase != nil {
		opts = append(opts, slug.Lowercase(*o.Lowercase))
	}
	if o.AllowedChars != "" {
		opts = append(opts, slug.AllowedChars(o.AllowedChars))
	}
	if o.Language != "" {
		opts = append(opts, slug.Language(o.Language))
	}
	if o.MaxLength > 0 {
		opts = append(opts, slug.MaxLength(o.MaxLength))
	}
	return normalize.Options{
		Slug:          opts,
		NoExtendShort: o.ExtendShort != nil && !*o.ExtendShort,
		AllowSpaces:   o.AllowSpaces,
		Length:        o.Length,
		RTL:           o.RTL,
	}
}

// jsonValue turns a decoded JSON scalar into a pipeline input.
func jsonValue(v any) (normalize.Value, error) {
	if n, ok := v.(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			return normalize.Int(i), nil
		}
		f, err := n.Float64()
		if err != nil {
			return normalize.Value{}, badRequest("value is not a number", err)
		}
		return normalize.Float(f), nil
	}
	return normalize.Of(v)
}

func (s *Server) handleNormalize(w http.ResponseWriter, r *http.Request) error {
	var req normalizeRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}
	v, err := jsonValue(req.Value)
	if err != nil {
		return err
	}

	out, ok, err := normalize.Run(chi.URLParam(r, "pipeline"), v, req.Options.build())
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, nullable(out, ok))
	return nil
}

type convertBaseRequest struct {
	Input string `json:"input"`
	From  int    `json:"from"`
	To    int    `json:"to"`
	Pad   int    `json:"pad"`
}

func (s *Server) handleConvertBase(w http.ResponseWriter, r *http.Request) error {
	var req convertBaseRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}
	out, err := basen.Convert(req.Input, req.From, req.To, req.Pad)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, nullable(out, true))
	return nil
}

type convertAlphaRequest struct {
	Number *int64  `json:"number"`
	Alpha  *string `json:"alpha"`
}

type convertAlphaResponse struct {
	Number int64  `json:"number"`
	Alpha  string `json:"alpha"`
}

func (s *Server) handleConvertAlpha(w http.ResponseWriter, r *http.Request) error {
	var req convertAlphaRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}

	var resp convertAlphaResponse
	switch {
	case req.Number != nil && req.Alpha != nil:
		return badRequest(`set either "number" or "alpha", not both`, nil)
	case req.Number != nil:
		alpha, err := basen.NumericToAlpha(*req.Number)
		if err != nil {
			return err
		}
		resp = convertAlphaResponse{Number: *req.Number, Alpha: alpha}
	case req.Alpha != nil:
		n, err := basen.AlphaToNumeric(*req.Alpha)
		if err != nil {
			return err
		}
		resp = convertAlphaResponse{Number: n, Alpha: *req.Alpha}
	default:
		return badRequest(`one of "number" or "alpha" is required`, nil)
	}
	writeJSON(w, http.StatusOK, resp)
	return nil
}

type translitRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
	// KeepUnsupported leaves characters without an ASCII form in place.
	KeepUnsupported bool `json:"keep_unsupported"`
}

func (s *Server) handleTranslit(w http.ResponseWriter, r *http.Request) error {
	var req translitRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, nullable(translit.ToASCII(req.Text, req.Language, !req.KeepUnsupported), true))
	return nil
}

type regexRequest struct {
	Text        string `json:"text"`
	Pattern     string `json:"pattern"`
	Replacement string `json:"replacement"`
	Limit       int    `json:"limit"`
	IgnoreCase  bool   `json:"ignore_case"`
	Multiline   bool   `json:"multiline"`
}

func (req regexRequest) options() []text.RegexOption {
	var opts []text.RegexOption
	if req.IgnoreCase {
		opts = append(opts, text.IgnoreCase())
	}
	if req.Multiline {
		opts = append(opts, text.Multiline())
	}
	return opts
}

func (s *Server) handleTextReplace(w http.ResponseWriter, r *http.Request) error {
	var req regexRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}
	out, err := text.New(req.Text).RegexReplace(req.Pattern, req.Replacement, req.options()...)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, nullable(out.String(), true))
	return nil
}

type match struct {
	Named  map[string]string `json:"named,omitempty"`
	Value  string            `json:"value"`
	Groups []string          `json:"groups,omitempty"`
	Index  int               `json:"index"`
	Length int               `json:"length"`
}

type matchResponse struct {
	Matches []match `json:"matches"`
	Matched bool    `json:"matched"`
}

func (s *Server) handleTextMatch(w http.ResponseWriter, r *http.Request) error {
	var req regexRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}
	found, err := text.New(req.Text).SearchAll(req.Pattern, req.Limit, req.options()...)
	if err != nil {
		return err
	}

	resp := matchResponse{Matches: make([]match, 0, len(found)), Matched: len(found) > 0}
	for _, m := range found {
		resp.Matches = append(resp.Matches, match{
			Value:  m.Value,
			Index:  m.Index,
			Length: m.Length,
			Groups: m.Groups,
			Named:  m.Named,
		})
	}
	writeJSON(w, http.StatusOK, resp)
	return nil
}

func (s *Server) handleFormatNumber(w http.ResponseWriter, r *http.Request) error {
	var req render.NumberRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}
	out, err := s.render.Number(req, localeOf(r, req.Locale))
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, nullable(out, true))
	return nil
}

func (s *Server) handleFormatTime(w http.ResponseWriter, r *http.Request) error {
	var req render.TimeRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}
	out, err := s.render.Time(req, localeOf(r, req.Locale))
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, nullable(out, true))
	return nil
}
