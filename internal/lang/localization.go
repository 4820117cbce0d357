package lang

import "golang.org/x/text/language"

// UITexts are the localized strings the frontend renders outside the
// transcript itself.
type UITexts struct {
	StartConversation   string `json:"startConversation"`
	TypeToTranslate     string `json:"typeToTranslate"`
	VoiceInputAvailable string `json:"voiceInputAvailable"`
	TypeOrSpeak         string `json:"typeOrSpeak"`
}

// English first so it doubles as the matcher fallback.
var uiLocales = []language.Tag{
	language.English,
	language.Japanese,
	language.Korean,
	language.Chinese,
	language.Spanish,
	language.French,
	language.German,
	language.Italian,
	language.Portuguese,
	language.Russian,
}

var uiTexts = map[language.Tag]UITexts{
	language.English: {
		StartConversation:   "Start a conversation",
		TypeToTranslate:     "Type text to translate",
		VoiceInputAvailable: "Voice input available in chat rooms",
		TypeOrSpeak:         "Type or speak...",
	},
	language.Japanese: {
		StartConversation:   "会話を始める",
		TypeToTranslate:     "テキストを入力して翻訳",
		VoiceInputAvailable: "チャットルームで音声入力が利用可能",
		TypeOrSpeak:         "入力または音声...",
	},
	language.Korean: {
		StartConversation:   "대화 시작하기",
		TypeToTranslate:     "번역할 텍스트를 입력하세요",
		VoiceInputAvailable: "채팅방에서 음성 입력 사용 가능",
		TypeOrSpeak:         "입력 또는 음성...",
	},
	language.Chinese: {
		StartConversation:   "开始对话",
		TypeToTranslate:     "输入要翻译的文本",
		VoiceInputAvailable: "聊天室可使用语音输入",
		TypeOrSpeak:         "输入或语音...",
	},
	language.Spanish: {
		StartConversation:   "Iniciar conversación",
		TypeToTranslate:     "Escribe texto para traducir",
		VoiceInputAvailable: "Entrada de voz disponible en salas de chat",
		TypeOrSpeak:         "Escribir o hablar...",
	},
	language.French: {
		StartConversation:   "Commencer une conversation",
		TypeToTranslate:     "Tapez le texte à traduire",
		VoiceInputAvailable: "Saisie vocale disponible dans les salles de chat",
		TypeOrSpeak:         "Taper ou parler...",
	},
	language.German: {
		StartConversation:   "Gespräch beginnen",
		TypeToTranslate:     "Text zum Übersetzen eingeben",
		VoiceInputAvailable: "Spracheingabe in Chatrooms verfügbar",
		TypeOrSpeak:         "Tippen oder sprechen...",
	},
	language.Italian: {
		StartConversation:   "Inizia una conversazione",
		TypeToTranslate:     "Digita il testo da tradurre",
		VoiceInputAvailable: "Input vocale disponibile nelle chat",
		TypeOrSpeak:         "Digita o parla...",
	},
	language.Portuguese: {
		StartConversation:   "Iniciar conversa",
		TypeToTranslate:     "Digite o texto para traduzir",
		VoiceInputAvailable: "Entrada de voz disponível nas salas de chat",
		TypeOrSpeak:         "Digite ou fale...",
	},
	language.Russian: {
		StartConversation:   "Начать разговор",
		TypeToTranslate:     "Введите текст для перевода",
		VoiceInputAvailable: "Голосовой ввод доступен в чатах",
		TypeOrSpeak:         "Введите или говорите...",
	},
}

var uiMatcher = language.NewMatcher(uiLocales)

// Texts picks the best localized string set for locale, an arbitrary
// BCP-47-ish string such as "ja", "pt-BR" or a raw OS locale. Unmatched
// or unparseable locales fall back to English.
func Texts(locale string) UITexts {
	_, index := language.MatchStrings(uiMatcher, locale)
	return uiTexts[uiLocales[index]]
}
