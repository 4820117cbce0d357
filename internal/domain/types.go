package domain

import "time"

// VoiceState models the press-and-hold capture lifecycle.
type VoiceState string

const (
	VoiceStateIdle      VoiceState = "idle"
	VoiceStateStarting  VoiceState = "starting"
	VoiceStateListening VoiceState = "listening"
	VoiceStateStopping  VoiceState = "stopping"
)

// Side identifies one of the two conversational roles. Each side is
// bound to a language code from the registry.
type Side string

const (
	SideA    Side = "A"
	SideB    Side = "B"
	SideNone Side = ""
)

// VoiceStateReason provides a structured reason for state transitions.
type VoiceStateReason string

const (
	VoiceReasonReady             VoiceStateReason = "ready"
	VoiceReasonStarting          VoiceStateReason = "starting"
	VoiceReasonListening         VoiceStateReason = "listening"
	VoiceReasonStopping          VoiceStateReason = "stopping"
	VoiceReasonCaptureFinished   VoiceStateReason = "capture_finished"
	VoiceReasonCaptureFailed     VoiceStateReason = "capture_failed"
	VoiceReasonEngineUnavailable VoiceStateReason = "engine_unavailable"
)

// ErrorCode identifies non-fatal backend errors surfaced to the UI.
type ErrorCode string

const (
	ErrorCodeStartup     ErrorCode = "startup"
	ErrorCodeDetect      ErrorCode = "detect"
	ErrorCodeTranslate   ErrorCode = "translate"
	ErrorCodeSpeech      ErrorCode = "speech"
	ErrorCodeUnavailable ErrorCode = "unavailable"
)

// SpeechEventKind identifies speech engine lifecycle events. For a
// single capture session the engine delivers started, zero or more
// partials, at most one final, then exactly one of ended or error.
type SpeechEventKind string

const (
	SpeechEventStarted SpeechEventKind = "started"
	SpeechEventPartial SpeechEventKind = "partial"
	SpeechEventFinal   SpeechEventKind = "final"
	SpeechEventEnded   SpeechEventKind = "ended"
	SpeechEventError   SpeechEventKind = "error"
)

// SpeechEvent is a typed event from the speech engine boundary.
type SpeechEvent struct {
	Kind SpeechEventKind `json:"kind"`
	Text string          `json:"text,omitempty"`
	Err  string          `json:"error,omitempty"`
}

// TranslationMessage is one committed transcript entry. Immutable once
// created; the transcript only grows or is cleared wholesale.
type TranslationMessage struct {
	ID             string    `json:"id"`
	OriginalText   string    `json:"originalText"`
	TranslatedText string    `json:"translatedText"`
	SourceLang     string    `json:"sourceLang"`
	TargetLang     string    `json:"targetLang"`
	IsFromSideA    bool      `json:"isFromSideA"`
	CreatedAt      time.Time `json:"createdAt"`
}

// TranslationResult is the remote translate response.
type TranslationResult struct {
	TranslatedText string `json:"translated_text"`
	SourceLang     string `json:"source_lang"`
	TargetLang     string `json:"target_lang"`
}

// HealthInfo is the remote health check response.
type HealthInfo struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	Timestamp    string `json:"timestamp"`
	OpenAIAPIKey string `json:"openai_api_key"`
}

// Status summarizes the current backend status for the UI.
type Status struct {
	Voice          VoiceState `json:"voice"`
	Recording      bool       `json:"recording"`
	CapturingSide  Side       `json:"capturingSide"`
	Translating    bool       `json:"translating"`
	VoiceAvailable bool       `json:"voiceAvailable"`
	VoiceError     string     `json:"voiceError,omitempty"`
}
