package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"talkbuddy/internal/bootstrap"
	"talkbuddy/internal/config"
	"talkbuddy/internal/domain"
	"talkbuddy/internal/lang"
	"talkbuddy/internal/usecase"
)

const (
	eventVoice   = "talkbuddy:voice"
	eventPartial = "talkbuddy:partial"
	eventInput   = "talkbuddy:input"
	eventPulse   = "talkbuddy:pulse"
	eventMessage = "talkbuddy:message"
	eventCleared = "talkbuddy:cleared"
	eventError   = "talkbuddy:error"
)

// App is the Wails application root.
type App struct {
	ctx context.Context

	services bootstrap.Services
	cfg      config.Config
	bootErr  error
}

func NewApp() *App {
	return &App{}
}

func (a *App) startup(ctx context.Context) {
	a.ctx = ctx

	services, err := bootstrap.Build(a, a)
	if err != nil {
		a.bootErr = err
		a.SessionError(domain.ErrorCodeStartup, err.Error())
		return
	}

	a.services = services
	a.cfg = services.Config
	a.VoiceStateChanged(domain.VoiceStateIdle, domain.SideNone, domain.VoiceReasonReady)
}

// Translate runs one translation cycle for typed text. Results arrive
// through transcript events, not the return value.
func (a *App) Translate(text string, isFromSideA bool) error {
	if err := a.requireReady(); err != nil {
		return err
	}
	a.services.Translator.Translate(a.ctx, text, isFromSideA)
	return nil
}

// StartRecording begins press-and-hold voice capture for a language.
func (a *App) StartRecording(languageCode string) (domain.Status, error) {
	if err := a.requireReady(); err != nil {
		return domain.Status{}, err
	}
	if err := a.services.Recorder.Start(a.ctx, languageCode); err != nil {
		if errors.Is(err, usecase.ErrCaptureActive) {
			return a.Status(), nil
		}
		return domain.Status{}, err
	}
	return a.Status(), nil
}

// StopRecording releases the press-and-hold control.
func (a *App) StopRecording() error {
	if err := a.requireReady(); err != nil {
		return err
	}
	if err := a.services.Recorder.Stop(); err != nil {
		if errors.Is(err, usecase.ErrNoActiveCapture) {
			return nil
		}
		return err
	}
	return nil
}

// Languages returns the UI-visible language table.
func (a *App) Languages() []lang.Language {
	if a.requireReady() != nil {
		return nil
	}
	return a.services.Registry.Visible()
}

// LanguagePair returns the current (sideA, sideB) selection.
func (a *App) LanguagePair() []string {
	if a.requireReady() != nil {
		return nil
	}
	sideA, sideB := a.services.Session.Pair.Sides()
	return []string{sideA, sideB}
}

func (a *App) SetLanguageA(code string) {
	if a.requireReady() != nil {
		return
	}
	a.services.Session.Pair.SetSideA(code)
}

func (a *App) SetLanguageB(code string) {
	if a.requireReady() != nil {
		return
	}
	a.services.Session.Pair.SetSideB(code)
}

// SwapLanguages exchanges the two selected codes atomically.
func (a *App) SwapLanguages() []string {
	if a.requireReady() != nil {
		return nil
	}
	sideA, sideB := a.services.Session.Pair.Swap()
	return []string{sideA, sideB}
}

// InputText returns the pending, not yet sent input.
func (a *App) InputText() string {
	if a.requireReady() != nil {
		return ""
	}
	return a.services.Session.Pair.Input()
}

// SetInputText mirrors keystrokes into the pending input buffer.
func (a *App) SetInputText(text string) {
	if a.requireReady() != nil {
		return
	}
	a.services.Session.Pair.SetInput(text)
}

// Messages returns the transcript in append order.
func (a *App) Messages() []domain.TranslationMessage {
	if a.requireReady() != nil {
		return nil
	}
	return a.services.Session.Transcript.Messages()
}

// ClearMessages resets the transcript wholesale.
func (a *App) ClearMessages() {
	if a.requireReady() != nil {
		return
	}
	a.services.Session.Transcript.Clear()
	a.TranscriptCleared()
}

// Status returns the current backend status.
func (a *App) Status() domain.Status {
	if a.requireReady() != nil {
		return domain.Status{Voice: domain.VoiceStateIdle}
	}
	sess := a.services.Session
	return domain.Status{
		Voice:          sess.Voice.State(),
		Recording:      sess.Voice.Active(),
		CapturingSide:  sess.Voice.Side(),
		Translating:    sess.Transcript.Translating(),
		VoiceAvailable: sess.Voice.Available(),
		VoiceError:     sess.Voice.LastError(),
	}
}

// CheckConnection probes the remote health endpoint.
func (a *App) CheckConnection() (domain.HealthInfo, error) {
	if err := a.requireReady(); err != nil {
		return domain.HealthInfo{}, err
	}
	return a.services.Client.CheckHealth(a.ctx)
}

// UITexts returns the localized strings for a locale.
func (a *App) UITexts(locale string) lang.UITexts {
	if locale == "" {
		locale = a.cfg.Locale
	}
	return lang.Texts(locale)
}

func (a *App) requireReady() error {
	if a.bootErr != nil {
		return a.bootErr
	}
	if a.services.Translator == nil {
		return fmt.Errorf("application is not initialized")
	}
	return nil
}

// VoiceStateChanged emits capture lifecycle updates to the frontend.
func (a *App) VoiceStateChanged(state domain.VoiceState, side domain.Side, reason domain.VoiceStateReason) {
	if a.ctx == nil {
		return
	}
	runtime.EventsEmit(a.ctx, eventVoice, map[string]string{
		"state":   string(state),
		"side":    string(side),
		"reason":  string(reason),
		"message": voiceReasonMessage(reason),
	})
}

// PartialTranscript emits the live recognition preview.
func (a *App) PartialTranscript(text string) {
	if a.ctx == nil {
		return
	}
	runtime.EventsEmit(a.ctx, eventPartial, map[string]string{"text": text})
}

// InputTextChanged emits pending input updates.
func (a *App) InputTextChanged(text string) {
	if a.ctx == nil {
		return
	}
	runtime.EventsEmit(a.ctx, eventInput, map[string]string{"text": text})
}

// RecordingPulse emits the cosmetic recording indicator value.
func (a *App) RecordingPulse(value int) {
	if a.ctx == nil {
		return
	}
	runtime.EventsEmit(a.ctx, eventPulse, value)
}

// MessageAdded emits a committed transcript entry.
func (a *App) MessageAdded(msg domain.TranslationMessage) {
	if a.ctx == nil {
		return
	}
	runtime.EventsEmit(a.ctx, eventMessage, msg)
}

// TranscriptCleared tells the frontend the history was reset.
func (a *App) TranscriptCleared() {
	if a.ctx == nil {
		return
	}
	runtime.EventsEmit(a.ctx, eventCleared)
}

// SessionError emits backend errors to the UI.
func (a *App) SessionError(code domain.ErrorCode, detail string) {
	if a.ctx == nil {
		return
	}
	runtime.EventsEmit(a.ctx, eventError, map[string]string{
		"code":    string(code),
		"message": errorMessage(code, detail),
		"detail":  detail,
	})
}

// Alert raises a blocking, user-facing dialog.
func (a *App) Alert(title string, message string) {
	if a.ctx == nil {
		return
	}
	_, _ = runtime.MessageDialog(a.ctx, runtime.MessageDialogOptions{
		Type:    runtime.ErrorDialog,
		Title:   title,
		Message: message,
	})
}

func voiceReasonMessage(reason domain.VoiceStateReason) string {
	switch reason {
	case domain.VoiceReasonReady:
		return "Ready"
	case domain.VoiceReasonStarting:
		return "Starting voice recognition..."
	case domain.VoiceReasonListening:
		return "Listening..."
	case domain.VoiceReasonStopping:
		return "Stopping..."
	case domain.VoiceReasonCaptureFinished:
		return "Voice capture finished"
	case domain.VoiceReasonCaptureFailed:
		return "Voice capture failed"
	case domain.VoiceReasonEngineUnavailable:
		return "Voice recognition unavailable"
	default:
		return ""
	}
}

func errorMessage(code domain.ErrorCode, detail string) string {
	switch code {
	case domain.ErrorCodeStartup:
		return "Startup failed"
	case domain.ErrorCodeDetect:
		return "Language detection failed"
	case domain.ErrorCodeTranslate:
		return "Translation failed"
	case domain.ErrorCodeSpeech:
		return "Speech recognition error"
	case domain.ErrorCodeUnavailable:
		return "Voice recognition unavailable"
	default:
		if detail == "" {
			return "Unknown error"
		}
		return detail
	}
}
