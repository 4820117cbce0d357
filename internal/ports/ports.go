package ports

import (
	"context"
	"io"

	"talkbuddy/internal/domain"
)

// AudioConfig describes how the microphone should be captured.
type AudioConfig struct {
	SampleRate  int
	Channels    int
	InputFormat string
	InputDevice string
}

// AudioSession is a live microphone capture session.
type AudioSession interface {
	io.ReadCloser
	Stop() error
}

// AudioCapture creates microphone capture sessions.
type AudioCapture interface {
	Start(ctx context.Context, cfg AudioConfig) (AudioSession, error)
}

// SpeechSession is an active capture session on the speech engine.
// Events delivers the session lifecycle as a bounded stream: started,
// zero or more partials, at most one final, then ended or error. The
// channel is closed once the session is over.
type SpeechSession interface {
	Events() <-chan domain.SpeechEvent
	Stop() error
	Close() error
}

// SpeechEngine is the abstract speech-to-text capability the core
// consumes. Available reports whether starting a session can succeed
// at all on this deployment.
type SpeechEngine interface {
	Available() bool
	Start(ctx context.Context, voiceLocale string) (SpeechSession, error)
}

// TranslationAPI is the remote detect/translate service boundary.
type TranslationAPI interface {
	DetectLanguage(ctx context.Context, text string) (string, error)
	Translate(ctx context.Context, text, sourceLang, targetLang string) (domain.TranslationResult, error)
	CheckHealth(ctx context.Context) (domain.HealthInfo, error)
}

// EventSink emits backend state/events to the UI.
type EventSink interface {
	VoiceStateChanged(state domain.VoiceState, side domain.Side, reason domain.VoiceStateReason)
	PartialTranscript(text string)
	InputTextChanged(text string)
	RecordingPulse(value int)
	MessageAdded(msg domain.TranslationMessage)
	TranscriptCleared()
	SessionError(code domain.ErrorCode, detail string)
}

// Notifier raises blocking, user-facing alerts.
type Notifier interface {
	Alert(title string, message string)
}
