package i18n

import "golang.org/x/text/language"

// maxAcceptLanguageLength bounds the header size handed to the parser.
const maxAcceptLanguageLength = 4096

// Negotiate picks the entry of available that best serves header, which may
// be a single tag ("de-AT") or a full Accept-Language value
// ("en-US,en;q=0.9,pl;q=0.8"). Quality values and base-language matches are
// honored. With nothing usable it returns available[0], or "" when available
// is empty.
func Negotiate(header string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return available[0]
	}

	supported := make([]language.Tag, 0, len(available))
	for _, a := range available {
		tag, err := language.Parse(a)
		if err != nil {
			tag = language.Und
		}
		supported = append(supported, tag)
	}

	_, idx, conf := language.NewMatcher(supported).Match(desired...)
	if conf == language.No {
		return available[0]
	}
	return available[idx]
}
