// Package lang holds the closed set of languages the app supports and
// the localized UI strings for the visible ones.
package lang

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

const fallbackVoiceLocale = "en-US"

// Language is one immutable registry entry.
type Language struct {
	Code        string `json:"code"`
	DisplayName string `json:"displayName"`
	ShortName   string `json:"shortName"`
	VoiceLocale string `json:"voiceLocale"`
	UIVisible   bool   `json:"uiVisible"`
}

// The registry is a fixed ordered table loaded at startup and never
// mutated. Entries past the visible block support voice capture only.
var table = []Language{
	{Code: "ja", DisplayName: "🇯🇵 日本語", ShortName: "日本語", VoiceLocale: "ja-JP", UIVisible: true},
	{Code: "en", DisplayName: "🇺🇸 English", ShortName: "English", VoiceLocale: "en-US", UIVisible: true},
	{Code: "ko", DisplayName: "🇰🇷 한국어", ShortName: "한국어", VoiceLocale: "ko-KR", UIVisible: true},
	{Code: "zh", DisplayName: "🇨🇳 中文", ShortName: "中文", VoiceLocale: "zh-CN", UIVisible: true},
	{Code: "es", DisplayName: "🇪🇸 Español", ShortName: "Español", VoiceLocale: "es-ES", UIVisible: true},
	{Code: "fr", DisplayName: "🇫🇷 Français", ShortName: "Français", VoiceLocale: "fr-FR", UIVisible: true},
	{Code: "de", DisplayName: "🇩🇪 Deutsch", ShortName: "Deutsch", VoiceLocale: "de-DE", UIVisible: true},
	{Code: "it", DisplayName: "🇮🇹 Italiano", ShortName: "Italiano", VoiceLocale: "it-IT", UIVisible: true},
	{Code: "pt", DisplayName: "🇵🇹 Português", ShortName: "Português", VoiceLocale: "pt-BR", UIVisible: true},
	{Code: "ru", DisplayName: "🇷🇺 Русский", ShortName: "Русский", VoiceLocale: "ru-RU", UIVisible: true},
	{Code: "ar", DisplayName: "🇸🇦 العربية", ShortName: "العربية", VoiceLocale: "ar-SA", UIVisible: false},
	{Code: "hi", DisplayName: "🇮🇳 हिन्दी", ShortName: "हिन्दी", VoiceLocale: "hi-IN", UIVisible: false},
	{Code: "th", DisplayName: "🇹🇭 ไทย", ShortName: "ไทย", VoiceLocale: "th-TH", UIVisible: false},
	{Code: "vi", DisplayName: "🇻🇳 Tiếng Việt", ShortName: "Tiếng Việt", VoiceLocale: "vi-VN", UIVisible: false},
	{Code: "id", DisplayName: "🇮🇩 Bahasa Indonesia", ShortName: "Bahasa Indonesia", VoiceLocale: "id-ID", UIVisible: false},
	{Code: "ms", DisplayName: "🇲🇾 Bahasa Melayu", ShortName: "Bahasa Melayu", VoiceLocale: "ms-MY", UIVisible: false},
	{Code: "tr", DisplayName: "🇹🇷 Türkçe", ShortName: "Türkçe", VoiceLocale: "tr-TR", UIVisible: false},
	{Code: "pl", DisplayName: "🇵🇱 Polski", ShortName: "Polski", VoiceLocale: "pl-PL", UIVisible: false},
	{Code: "nl", DisplayName: "🇳🇱 Nederlands", ShortName: "Nederlands", VoiceLocale: "nl-NL", UIVisible: false},
	{Code: "sv", DisplayName: "🇸🇪 Svenska", ShortName: "Svenska", VoiceLocale: "sv-SE", UIVisible: false},
}

// Registry answers lookups against the fixed language table.
type Registry struct {
	ordered []Language
	byCode  map[string]Language
}

// NewRegistry builds the registry and verifies every voice locale is a
// parseable BCP-47 tag.
func NewRegistry() (*Registry, error) {
	byCode := make(map[string]Language, len(table))
	for _, entry := range table {
		if _, err := language.Parse(entry.VoiceLocale); err != nil {
			return nil, fmt.Errorf("invalid voice locale %q for %q: %w", entry.VoiceLocale, entry.Code, err)
		}
		byCode[entry.Code] = entry
	}
	return &Registry{ordered: table, byCode: byCode}, nil
}

// Lookup returns the entry for code. Unknown codes degrade to a safe
// default rather than failing; the registry is a closed, trusted set.
func (r *Registry) Lookup(code string) Language {
	if entry, ok := r.byCode[code]; ok {
		return entry
	}
	upper := strings.ToUpper(code)
	return Language{
		Code:        code,
		DisplayName: upper,
		ShortName:   upper,
		VoiceLocale: fallbackVoiceLocale,
	}
}

// Visible returns the UI-visible languages in registry order.
func (r *Registry) Visible() []Language {
	visible := make([]Language, 0, len(r.ordered))
	for _, entry := range r.ordered {
		if entry.UIVisible {
			visible = append(visible, entry)
		}
	}
	return visible
}

// VoiceLocaleFor maps a language code to the BCP-47 locale the speech
// engine expects, falling back to en-US for unknown codes.
func (r *Registry) VoiceLocaleFor(code string) string {
	if entry, ok := r.byCode[code]; ok {
		return entry.VoiceLocale
	}
	return fallbackVoiceLocale
}

// ShortNameFor returns the plain display name for a code, uppercased
// code for unknown ones.
func (r *Registry) ShortNameFor(code string) string {
	if entry, ok := r.byCode[code]; ok {
		return entry.ShortName
	}
	return strings.ToUpper(code)
}

// Known reports whether code is part of the registry.
func (r *Registry) Known(code string) bool {
	_, ok := r.byCode[code]
	return ok
}
