package devapi

import "unicode"

// detectLanguage returns a best-effort ISO-639-1 code for text based on
// its predominant script. Good enough for local development; the
// production service does real detection.
func detectLanguage(text string) string {
	var (
		latin, cyrillic, han, kana, hangul int
		arabic, thai, devanagari           int
	)

	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		switch {
		case unicode.In(r, unicode.Hiragana), unicode.In(r, unicode.Katakana):
			kana++
		case unicode.In(r, unicode.Hangul):
			hangul++
		case unicode.In(r, unicode.Han):
			han++
		case unicode.In(r, unicode.Arabic):
			arabic++
		case unicode.In(r, unicode.Thai):
			thai++
		case unicode.In(r, unicode.Devanagari):
			devanagari++
		case unicode.In(r, unicode.Cyrillic):
			cyrillic++
		case unicode.In(r, unicode.Latin):
			latin++
		}
	}

	// Specific scripts win over Latin; kana decides Japanese even in
	// mixed kana/kanji text.
	switch {
	case kana > 0:
		return "ja"
	case hangul > 0:
		return "ko"
	case han > 0:
		return "zh"
	case arabic > 0:
		return "ar"
	case thai > 0:
		return "th"
	case devanagari > 0:
		return "hi"
	case cyrillic > 0:
		return "ru"
	case latin > 0:
		return "en"
	default:
		return "en"
	}
}
