package devapi

// stubTranslate returns a deterministic translation for development: a
// tiny phrase dictionary, then a tagged echo of the original text.
func stubTranslate(text, targetLang string) string {
	if byPhrase, ok := dictionary[targetLang]; ok {
		if translated, ok := byPhrase[text]; ok {
			return translated
		}
	}
	return "[" + targetLang + "] " + text
}

var dictionary = map[string]map[string]string{
	"ja": {
		"Hello":        "こんにちは",
		"Good morning": "おはようございます",
		"Thank you":    "ありがとうございます",
	},
	"en": {
		"こんにちは":      "Hello",
		"おはようございます":  "Good morning",
		"ありがとうございます": "Thank you",
	},
	"es": {
		"Hello":     "Hola",
		"Thank you": "Gracias",
	},
}
