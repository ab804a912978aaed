package translit

// entry maps a set of source sequences to their ASCII replacement.
type entry struct {
	ascii   string
	sources []string
}

// table is applied in order: digits, lowercase letters, lowercase digraphs,
// symbols, uppercase letters, uppercase digraphs and finally the non-breaking
// and typographic spaces. When two entries claim the same source the earlier
// one wins.
var table = []entry{
	{"0", []string{"°", "₀", "۰", "０"}},
	{"1", []string{"¹", "₁", "۱", "１"}},
	{"2", []string{"²", "₂", "۲", "２"}},
	{"3", []string{"³", "₃", "۳", "３"}},
	{"4", []string{"⁴", "₄", "۴", "٤", "４"}},
	{"5", []string{"⁵", "₅", "۵", "٥", "５"}},
	{"6", []string{"⁶", "₆", "۶", "٦", "６"}},
	{"7", []string{"⁷", "₇", "۷", "７"}},
	{"8", []string{"⁸", "₈", "۸", "８"}},
	{"9", []string{"⁹", "₉", "۹", "９"}},
	{"a", []string{
		"à", "á", "ả", "ã", "ạ", "ă", "ắ", "ằ", "ẳ", "ẵ",
		"ặ", "â", "ấ", "ầ", "ẩ", "ẫ", "ậ", "ā", "ą", "å",
		"α", "ά", "ἀ", "ἁ", "ἂ", "ἃ", "ἄ", "ἅ", "ἆ", "ἇ",
		"ᾀ", "ᾁ", "ᾂ", "ᾃ", "ᾄ", "ᾅ", "ᾆ", "ᾇ", "ὰ", "ά",
		"ᾰ", "ᾱ", "ᾲ", "ᾳ", "ᾴ", "ᾶ", "ᾷ", "а", "أ", "အ",
		"ာ", "ါ", "ǻ", "ǎ", "ª", "ა", "अ", "ا", "ａ", "ä",
	}},
	{"b", []string{"б", "β", "ب", "ဗ", "ბ", "ｂ"}},
	{"c", []string{"ç", "ć", "č", "ĉ", "ċ", "ｃ"}},
	{"d", []string{
		"ď", "ð", "đ", "ƌ", "ȡ", "ɖ", "ɗ", "ᵭ", "ᶁ", "ᶑ",
		"д", "δ", "د", "ض", "ဍ", "ဒ", "დ", "ｄ",
	}},
	{"e", []string{
		"é", "è", "ẻ", "ẽ", "ẹ", "ê", "ế", "ề", "ể", "ễ",
		"ệ", "ë", "ē", "ę", "ě", "ĕ", "ė", "ε", "έ", "ἐ",
		"ἑ", "ἒ", "ἓ", "ἔ", "ἕ", "ὲ", "έ", "е", "ё", "э",
		"є", "ə", "ဧ", "ေ", "ဲ", "ე", "ए", "إ", "ئ", "ｅ",
	}},
	{"f", []string{"ф", "φ", "ف", "ƒ", "ფ", "ｆ"}},
	{"g", []string{
		"ĝ", "ğ", "ġ", "ģ", "г", "ґ", "γ", "ဂ", "გ", "گ",
		"ｇ",
	}},
	{"h", []string{"ĥ", "ħ", "η", "ή", "ح", "ه", "ဟ", "ှ", "ჰ", "ｈ"}},
	{"i", []string{
		"í", "ì", "ỉ", "ĩ", "ị", "î", "ï", "ī", "ĭ", "į",
		"ı", "ι", "ί", "ϊ", "ΐ", "ἰ", "ἱ", "ἲ", "ἳ", "ἴ",
		"ἵ", "ἶ", "ἷ", "ὶ", "ί", "ῐ", "ῑ", "ῒ", "ΐ", "ῖ",
		"ῗ", "і", "ї", "и", "ဣ", "ိ", "ီ", "ည်", "ǐ", "ი",
		"इ", "ی", "ｉ",
	}},
	{"j", []string{"ĵ", "ј", "Ј", "ჯ", "ج", "ｊ"}},
	{"k", []string{
		"ķ", "ĸ", "к", "κ", "Ķ", "ق", "ك", "က", "კ", "ქ",
		"ک", "ｋ",
	}},
	{"l", []string{
		"ł", "ľ", "ĺ", "ļ", "ŀ", "л", "λ", "ل", "လ", "ლ",
		"ｌ",
	}},
	{"m", []string{"м", "μ", "م", "မ", "მ", "ｍ"}},
	{"n", []string{
		"ñ", "ń", "ň", "ņ", "ŉ", "ŋ", "ν", "н", "ن", "န",
		"ნ", "ｎ",
	}},
	{"o", []string{
		"ó", "ò", "ỏ", "õ", "ọ", "ô", "ố", "ồ", "ổ", "ỗ",
		"ộ", "ơ", "ớ", "ờ", "ở", "ỡ", "ợ", "ø", "ō", "ő",
		"ŏ", "ο", "ὀ", "ὁ", "ὂ", "ὃ", "ὄ", "ὅ", "ὸ", "ό",
		"о", "و", "θ", "ို", "ǒ", "ǿ", "º", "ო", "ओ", "ｏ",
		"ö",
	}},
	{"p", []string{"п", "π", "ပ", "პ", "پ", "ｐ"}},
	{"q", []string{"ყ", "ｑ"}},
	{"r", []string{"ŕ", "ř", "ŗ", "р", "ρ", "ر", "რ", "ｒ"}},
	{"s", []string{
		"ś", "š", "ş", "с", "σ", "ș", "ς", "س", "ص", "စ",
		"ſ", "ს", "ｓ",
	}},
	{"t", []string{
		"ť", "ţ", "т", "τ", "ț", "ت", "ط", "ဋ", "တ", "ŧ",
		"თ", "ტ", "ｔ",
	}},
	{"u", []string{
		"ú", "ù", "ủ", "ũ", "ụ", "ư", "ứ", "ừ", "ử", "ữ",
		"ự", "û", "ū", "ů", "ű", "ŭ", "ų", "µ", "у", "ဉ",
		"ု", "ူ", "ǔ", "ǖ", "ǘ", "ǚ", "ǜ", "უ", "उ", "ｕ",
		"ў", "ü",
	}},
	{"v", []string{"в", "ვ", "ϐ", "ｖ"}},
	{"w", []string{"ŵ", "ω", "ώ", "ဝ", "ွ", "ｗ"}},
	{"x", []string{"χ", "ξ", "ｘ"}},
	{"y", []string{
		"ý", "ỳ", "ỷ", "ỹ", "ỵ", "ÿ", "ŷ", "й", "ы", "υ",
		"ϋ", "ύ", "ΰ", "ي", "ယ", "ｙ",
	}},
	{"z", []string{"ź", "ž", "ż", "з", "ζ", "ز", "ဇ", "ზ", "ｚ"}},
	{"aa", []string{"ع", "आ", "آ"}},
	{"ae", []string{"æ", "ǽ"}},
	{"ai", []string{"ऐ"}},
	{"ch", []string{"ч", "ჩ", "ჭ", "چ"}},
	{"dj", []string{"ђ", "đ"}},
	{"dz", []string{"џ", "ძ"}},
	{"ei", []string{"ऍ"}},
	{"gh", []string{"غ", "ღ"}},
	{"ii", []string{"ई"}},
	{"ij", []string{"ĳ"}},
	{"kh", []string{"х", "خ", "ხ"}},
	{"lj", []string{"љ"}},
	{"nj", []string{"њ"}},
	{"oe", []string{"œ", "ؤ"}},
	{"oi", []string{"ऑ"}},
	{"oii", []string{"ऒ"}},
	{"ps", []string{"ψ"}},
	{"sh", []string{"ш", "შ", "ش"}},
	{"shch", []string{"щ"}},
	{"ss", []string{"ß"}},
	{"sx", []string{"ŝ"}},
	{"th", []string{"þ", "ϑ", "ث", "ذ", "ظ"}},
	{"ts", []string{"ц", "ც", "წ"}},
	{"uu", []string{"ऊ"}},
	{"ya", []string{"я"}},
	{"yu", []string{"ю"}},
	{"zh", []string{"ж", "ჟ", "ژ"}},
	{"(c)", []string{"©"}},
	{"A", []string{
		"Á", "À", "Ả", "Ã", "Ạ", "Ă", "Ắ", "Ằ", "Ẳ", "Ẵ",
		"Ặ", "Â", "Ấ", "Ầ", "Ẩ", "Ẫ", "Ậ", "Å", "Ā", "Ą",
		"Α", "Ά", "Ἀ", "Ἁ", "Ἂ", "Ἃ", "Ἄ", "Ἅ", "Ἆ", "Ἇ",
		"ᾈ", "ᾉ", "ᾊ", "ᾋ", "ᾌ", "ᾍ", "ᾎ", "ᾏ", "Ᾰ", "Ᾱ",
		"Ὰ", "Ά", "ᾼ", "А", "Ǻ", "Ǎ", "Ａ", "Ä",
	}},
	{"B", []string{"Б", "Β", "ब", "Ｂ"}},
	{"C", []string{"Ç", "Ć", "Č", "Ĉ", "Ċ", "Ｃ"}},
	{"D", []string{
		"Ď", "Ð", "Đ", "Ɖ", "Ɗ", "Ƌ", "ᴅ", "ᴆ", "Д", "Δ",
		"Ｄ",
	}},
	{"E", []string{
		"É", "È", "Ẻ", "Ẽ", "Ẹ", "Ê", "Ế", "Ề", "Ể", "Ễ",
		"Ệ", "Ë", "Ē", "Ę", "Ě", "Ĕ", "Ė", "Ε", "Έ", "Ἐ",
		"Ἑ", "Ἒ", "Ἓ", "Ἔ", "Ἕ", "Έ", "Ὲ", "Е", "Ё", "Э",
		"Є", "Ə", "Ｅ",
	}},
	{"F", []string{"Ф", "Φ", "Ｆ"}},
	{"G", []string{"Ğ", "Ġ", "Ģ", "Г", "Ґ", "Γ", "Ｇ"}},
	{"H", []string{"Η", "Ή", "Ħ", "Ｈ"}},
	{"I", []string{
		"Í", "Ì", "Ỉ", "Ĩ", "Ị", "Î", "Ï", "Ī", "Ĭ", "Į",
		"İ", "Ι", "Ί", "Ϊ", "Ἰ", "Ἱ", "Ἳ", "Ἴ", "Ἵ", "Ἶ",
		"Ἷ", "Ῐ", "Ῑ", "Ὶ", "Ί", "И", "І", "Ї", "Ǐ", "ϒ",
		"Ｉ",
	}},
	{"J", []string{"Ｊ"}},
	{"K", []string{"К", "Κ", "Ｋ"}},
	{"L", []string{"Ĺ", "Ł", "Л", "Λ", "Ļ", "Ľ", "Ŀ", "ल", "Ｌ"}},
	{"M", []string{"М", "Μ", "Ｍ"}},
	{"N", []string{"Ń", "Ñ", "Ň", "Ņ", "Ŋ", "Н", "Ν", "Ｎ"}},
	{"O", []string{
		"Ó", "Ò", "Ỏ", "Õ", "Ọ", "Ô", "Ố", "Ồ", "Ổ", "Ỗ",
		"Ộ", "Ơ", "Ớ", "Ờ", "Ở", "Ỡ", "Ợ", "Ø", "Ō", "Ő",
		"Ŏ", "Ο", "Ό", "Ὀ", "Ὁ", "Ὂ", "Ὃ", "Ὄ", "Ὅ", "Ὸ",
		"Ό", "О", "Θ", "Ө", "Ǒ", "Ǿ", "Ｏ", "Ö",
	}},
	{"P", []string{"П", "Π", "Ｐ"}},
	{"Q", []string{"Ｑ"}},
	{"R", []string{"Ř", "Ŕ", "Р", "Ρ", "Ŗ", "Ｒ"}},
	{"S", []string{"Ş", "Ŝ", "Ș", "Š", "Ś", "С", "Σ", "Ｓ"}},
	{"T", []string{"Ť", "Ţ", "Ŧ", "Ț", "Т", "Τ", "Ｔ"}},
	{"U", []string{
		"Ú", "Ù", "Ủ", "Ũ", "Ụ", "Ư", "Ứ", "Ừ", "Ử", "Ữ",
		"Ự", "Û", "Ū", "Ů", "Ű", "Ŭ", "Ų", "У", "Ǔ", "Ǖ",
		"Ǘ", "Ǚ", "Ǜ", "Ｕ", "Ў", "Ü",
	}},
	{"V", []string{"В", "Ｖ"}},
	{"W", []string{"Ω", "Ώ", "Ŵ", "Ｗ"}},
	{"X", []string{"Χ", "Ξ", "Ｘ"}},
	{"Y", []string{
		"Ý", "Ỳ", "Ỷ", "Ỹ", "Ỵ", "Ÿ", "Ῠ", "Ῡ", "Ὺ", "Ύ",
		"Ы", "Й", "Υ", "Ϋ", "Ŷ", "Ｙ",
	}},
	{"Z", []string{"Ź", "Ž", "Ż", "З", "Ζ", "Ｚ"}},
	{"AE", []string{"Æ", "Ǽ"}},
	{"Ch", []string{"Ч"}},
	{"Dj", []string{"Ђ"}},
	{"Dz", []string{"Џ"}},
	{"Gx", []string{"Ĝ"}},
	{"Hx", []string{"Ĥ"}},
	{"Ij", []string{"Ĳ"}},
	{"Jx", []string{"Ĵ"}},
	{"Kh", []string{"Х"}},
	{"Lj", []string{"Љ"}},
	{"Nj", []string{"Њ"}},
	{"Oe", []string{"Œ"}},
	{"Ps", []string{"Ψ"}},
	{"Sh", []string{"Ш"}},
	{"Shch", []string{"Щ"}},
	{"Ss", []string{"ẞ"}},
	{"Th", []string{"Þ"}},
	{"Ts", []string{"Ц"}},
	{"Ya", []string{"Я"}},
	{"Yu", []string{"Ю"}},
	{"Zh", []string{"Ж"}},
	{" ", []string{
		"\u00a0", "\u2000", "\u2001", "\u2002", "\u2003", "\u2004", "\u2005", "\u2006", "\u2007", "\u2008",
		"\u2009", "\u200a", "\u202f", "\u205f", "\u3000", "\uffa0",
	}},
}

// overrides hold language specific replacements applied before the generic
// table. Sources and targets are parallel.
var overrides = map[string]struct {
	sources []string
	targets []string
}{
	"de": {
		sources: []string{"ä", "ö", "ü", "Ä", "Ö", "Ü"},
		targets: []string{"ae", "oe", "ue", "AE", "OE", "UE"},
	},
	"bg": {
		sources: []string{"х", "Х", "щ", "Щ", "ъ", "Ъ", "ь", "Ь"},
		targets: []string{"h", "H", "sht", "SHT", "a", "A", "y", "Y"},
	},
	"da": {
		sources: []string{"æ", "ø", "å", "Æ", "Ø", "Å"},
		targets: []string{"ae", "oe", "aa", "Ae", "Oe", "Aa"},
	},
	"nb": {
		sources: []string{"æ", "ø", "å", "Æ", "Ø", "Å"},
		targets: []string{"ae", "oe", "aa", "Ae", "Oe", "Aa"},
	},
	"sv": {
		sources: []string{"ä", "ö", "å", "Ä", "Ö", "Å"},
		targets: []string{"ae", "oe", "aa", "Ae", "Oe", "Aa"},
	},
	"ru": {
		sources: []string{"ъ", "Ъ", "ь", "Ь"},
		targets: []string{"", "", "", ""},
	},
	"uk": {
		sources: []string{"г", "Г", "ґ", "Ґ", "и", "И", "ї", "Ї", "є", "Є", "ь", "Ь"},
		targets: []string{"h", "H", "g", "G", "y", "Y", "yi", "Yi", "ye", "Ye", "", ""},
	},
}
