package i18n

import (
	"sync"

	"golang.org/x/text/language"
)

// FormatEnUS returns the US English conventions.
func FormatEnUS() *LocaleFormat {
	return NewLocaleFormat(language.AmericanEnglish)
}

// FormatEnGB returns the British English conventions.
func FormatEnGB() *LocaleFormat {
	return NewLocaleFormat(language.BritishEnglish,
		WithDateLayouts("02/01/2006", "2 Jan 2006", "2 January 2006", "Monday 2 January 2006"),
		WithTimeLayouts("15:04", "15:04:05", "15:04:05 MST", "15:04:05 MST"),
	)
}

// FormatDeDE returns the German conventions.
func FormatDeDE() *LocaleFormat {
	return NewLocaleFormat(language.MustParse("de-DE"),
		WithSeparators(",", "."),
		WithCurrencyPattern("#\u00a0¤"),
		WithPercentPattern("#\u00a0%"),
		WithDateLayouts("02.01.06", "02.01.2006", "2. January 2006", "Monday, 2. January 2006"),
		WithTimeLayouts("15:04", "15:04:05", "15:04:05 MST", "15:04:05 MST"),
		WithMonthNames(
			[12]string{"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"},
			[12]string{"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni", "Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez."},
		),
		WithDayNames(
			[7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
			[7]string{"So.", "Mo.", "Di.", "Mi.", "Do.", "Fr.", "Sa."},
		),
	)
}

// FormatFrFR returns the French conventions.
func FormatFrFR() *LocaleFormat {
	return NewLocaleFormat(language.MustParse("fr-FR"),
		WithSeparators(",", "\u202f"),
		WithCurrencyPattern("#\u00a0¤"),
		WithPercentPattern("#\u00a0%"),
		WithDateLayouts("02/01/2006", "2 Jan 2006", "2 January 2006", "Monday 2 January 2006"),
		WithTimeLayouts("15:04", "15:04:05", "15:04:05 MST", "15:04:05 MST"),
		WithDateTimePattern("{{date}} {{time}}"),
		WithMonthNames(
			[12]string{"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"},
			[12]string{"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
		),
		WithDayNames(
			[7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
			[7]string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
		),
	)
}

// FormatEsES returns the Spanish conventions.
func FormatEsES() *LocaleFormat {
	return NewLocaleFormat(language.MustParse("es-ES"),
		WithSeparators(",", "."),
		WithCurrencyPattern("#\u00a0¤"),
		WithPercentPattern("#\u00a0%"),
		WithDateLayouts("2/1/06", "2 Jan 2006", "2 de January de 2006", "Monday, 2 de January de 2006"),
		WithTimeLayouts("15:04", "15:04:05", "15:04:05 MST", "15:04:05 MST"),
		WithMonthNames(
			[12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
			[12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"},
		),
		WithDayNames(
			[7]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
			[7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
		),
	)
}

// FormatPtBR returns the Brazilian Portuguese conventions.
func FormatPtBR() *LocaleFormat {
	return NewLocaleFormat(language.BrazilianPortuguese,
		WithSeparators(",", "."),
		WithCurrencyPattern("¤\u00a0#"),
		WithDateLayouts("02/01/2006", "2 de Jan de 2006", "2 de January de 2006", "Monday, 2 de January de 2006"),
		WithTimeLayouts("15:04", "15:04:05", "15:04:05 MST", "15:04:05 MST"),
		WithDateTimePattern("{{date}} {{time}}"),
		WithMonthNames(
			[12]string{"janeiro", "fevereiro", "março", "abril", "maio", "junho", "julho", "agosto", "setembro", "outubro", "novembro", "dezembro"},
			[12]string{"jan.", "fev.", "mar.", "abr.", "mai.", "jun.", "jul.", "ago.", "set.", "out.", "nov.", "dez."},
		),
		WithDayNames(
			[7]string{"domingo", "segunda-feira", "terça-feira", "quarta-feira", "quinta-feira", "sexta-feira", "sábado"},
			[7]string{"dom.", "seg.", "ter.", "qua.", "qui.", "sex.", "sáb."},
		),
	)
}

// FormatPlPL returns the Polish conventions. Month names are genitive, as
// used inside dates.
func FormatPlPL() *LocaleFormat {
	return NewLocaleFormat(language.MustParse("pl-PL"),
		WithSeparators(",", "\u00a0"),
		WithCurrencyPattern("#\u00a0¤"),
		WithDateLayouts("02.01.2006", "2 Jan 2006", "2 January 2006", "Monday, 2 January 2006"),
		WithTimeLayouts("15:04", "15:04:05", "15:04:05 MST", "15:04:05 MST"),
		WithDateTimePattern("{{date}} {{time}}"),
		WithMonthNames(
			[12]string{"stycznia", "lutego", "marca", "kwietnia", "maja", "czerwca", "lipca", "sierpnia", "września", "października", "listopada", "grudnia"},
			[12]string{"sty", "lut", "mar", "kwi", "maj", "cze", "lip", "sie", "wrz", "paź", "lis", "gru"},
		),
		WithDayNames(
			[7]string{"niedziela", "poniedziałek", "wtorek", "środa", "czwartek", "piątek", "sobota"},
			[7]string{"niedz.", "pon.", "wt.", "śr.", "czw.", "pt.", "sob."},
		),
	)
}

// FormatRuRU returns the Russian conventions. Month names are genitive.
func FormatRuRU() *LocaleFormat {
	return NewLocaleFormat(language.MustParse("ru-RU"),
		WithSeparators(",", "\u00a0"),
		WithCurrencyPattern("#\u00a0¤"),
		WithPercentPattern("#\u00a0%"),
		WithDateLayouts("02.01.2006", "2 Jan 2006 г.", "2 January 2006 г.", "Monday, 2 January 2006 г."),
		WithTimeLayouts("15:04", "15:04:05", "15:04:05 MST", "15:04:05 MST"),
		WithMonthNames(
			[12]string{"января", "февраля", "марта", "апреля", "мая", "июня", "июля", "августа", "сентября", "октября", "ноября", "декабря"},
			[12]string{"янв.", "февр.", "мар.", "апр.", "мая", "июн.", "июл.", "авг.", "сент.", "окт.", "нояб.", "дек."},
		),
		WithDayNames(
			[7]string{"воскресенье", "понедельник", "вторник", "среда", "четверг", "пятница", "суббота"},
			[7]string{"вс", "пн", "вт", "ср", "чт", "пт", "сб"},
		),
	)
}

// FormatJaJP returns the Japanese conventions.
func FormatJaJP() *LocaleFormat {
	return NewLocaleFormat(language.MustParse("ja-JP"),
		WithDateLayouts("2006/01/02", "2006/01/02", "2006年1月2日", "2006年1月2日Monday"),
		WithTimeLayouts("15:04", "15:04:05", "15:04:05 MST", "15:04:05 MST"),
		WithDateTimePattern("{{date}} {{time}}"),
		WithDayNames(
			[7]string{"日曜日", "月曜日", "火曜日", "水曜日", "木曜日", "金曜日", "土曜日"},
			[7]string{"日", "月", "火", "水", "木", "金", "土"},
		),
	)
}

// FormatZhCN returns the Simplified Chinese conventions.
func FormatZhCN() *LocaleFormat {
	return NewLocaleFormat(language.MustParse("zh-CN"),
		WithDateLayouts("2006/1/2", "2006年1月2日", "2006年1月2日", "2006年1月2日 Monday"),
		WithTimeLayouts("15:04", "15:04:05", "MST 15:04:05", "MST 15:04:05"),
		WithDateTimePattern("{{date}} {{time}}"),
		WithDayNames(
			[7]string{"星期日", "星期一", "星期二", "星期三", "星期四", "星期五", "星期六"},
			[7]string{"周日", "周一", "周二", "周三", "周四", "周五", "周六"},
		),
	)
}

// FormatKoKR returns the Korean conventions.
func FormatKoKR() *LocaleFormat {
	return NewLocaleFormat(language.MustParse("ko-KR"),
		WithDateLayouts("06. 1. 2.", "2006. 1. 2.", "2006년 1월 2일", "2006년 1월 2일 Monday"),
		WithTimeLayouts("15:04", "15:04:05", "15시 4분 5초 MST", "15시 4분 5초 MST"),
		WithDateTimePattern("{{date}} {{time}}"),
		WithDayNames(
			[7]string{"일요일", "월요일", "화요일", "수요일", "목요일", "금요일", "토요일"},
			[7]string{"일", "월", "화", "수", "목", "금", "토"},
		),
	)
}

// FormatArSA returns Arabic (Saudi Arabia) conventions with Gregorian month
// names and Latin digits.
func FormatArSA() *LocaleFormat {
	return NewLocaleFormat(language.MustParse("ar-SA"),
		WithCurrencyPattern("#\u00a0¤"),
		WithDateLayouts("2/1/2006", "02/01/2006", "2 January 2006", "Monday، 2 January 2006"),
		WithTimeLayouts("15:04", "15:04:05", "15:04:05 MST", "15:04:05 MST"),
		WithDateTimePattern("{{date}} {{time}}"),
		WithMonthNames(
			[12]string{"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو", "يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر"},
			[12]string{"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو", "يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر"},
		),
		WithDayNames(
			[7]string{"الأحد", "الاثنين", "الثلاثاء", "الأربعاء", "الخميس", "الجمعة", "السبت"},
			[7]string{"الأحد", "الاثنين", "الثلاثاء", "الأربعاء", "الخميس", "الجمعة", "السبت"},
		),
	)
}

var (
	formatsOnce sync.Once
	formats     []*LocaleFormat
	formatTags  []language.Tag
	formatIndex language.Matcher
)

func loadFormats() {
	formats = []*LocaleFormat{
		FormatEnUS(), FormatEnGB(), FormatDeDE(), FormatFrFR(), FormatEsES(), FormatPtBR(),
		FormatPlPL(), FormatRuRU(), FormatJaJP(), FormatZhCN(), FormatKoKR(), FormatArSA(),
	}
	formatTags = make([]language.Tag, len(formats))
	for i, f := range formats {
		formatTags[i] = f.tag
	}
	formatIndex = language.NewMatcher(formatTags)
}

// Formats returns the tags of the predefined locale formats, en-US first.
func Formats() []language.Tag {
	formatsOnce.Do(loadFormats)
	out := make([]language.Tag, len(formatTags))
	copy(out, formatTags)
	return out
}

// LookupFormat returns the predefined format closest to locale. A locale
// whose language has no format, such as "it", yields ErrUnknownLocale; one
// with a known language but another region ("de-AT") gets that language's
// format.
func LookupFormat(locale string) (*LocaleFormat, error) {
	formatsOnce.Do(loadFormats)

	tag, err := language.Parse(locale)
	if err != nil {
		return nil, ErrUnknownLocale
	}
	_, idx, conf := formatIndex.Match(tag)
	if conf == language.No {
		return nil, ErrUnknownLocale
	}
	return formats[idx], nil
}
