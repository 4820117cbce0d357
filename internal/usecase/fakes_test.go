package usecase

import (
	"context"
	"sync"

	"talkbuddy/internal/domain"
	"talkbuddy/internal/ports"
)

type fakeAPI struct {
	mu sync.Mutex

	detectResult string
	detectErr    error
	detectGate   chan struct{} // when set, DetectLanguage blocks until closed

	translateResult domain.TranslationResult
	translateErr    error

	detectCalls    []string
	translateCalls [][3]string
}

func (f *fakeAPI) DetectLanguage(_ context.Context, text string) (string, error) {
	f.mu.Lock()
	f.detectCalls = append(f.detectCalls, text)
	gate := f.detectGate
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	return f.detectResult, f.detectErr
}

func (f *fakeAPI) Translate(_ context.Context, text, source, target string) (domain.TranslationResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.translateCalls = append(f.translateCalls, [3]string{text, source, target})
	if f.translateErr != nil {
		return domain.TranslationResult{}, f.translateErr
	}
	result := f.translateResult
	if result.TranslatedText == "" {
		result = domain.TranslationResult{TranslatedText: "translated:" + text, SourceLang: source, TargetLang: target}
	}
	return result, nil
}

func (f *fakeAPI) CheckHealth(context.Context) (domain.HealthInfo, error) {
	return domain.HealthInfo{Status: "ok"}, nil
}

func (f *fakeAPI) calls() (detect []string, translate [][3]string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.detectCalls...), append([][3]string(nil), f.translateCalls...)
}

type stateChange struct {
	state  domain.VoiceState
	side   domain.Side
	reason domain.VoiceStateReason
}

type fakeEventSink struct {
	mu       sync.Mutex
	states   []stateChange
	partials []string
	inputs   []string
	pulses   []int
	messages []domain.TranslationMessage
	cleared  int
	errors   []domain.ErrorCode
}

func (f *fakeEventSink) VoiceStateChanged(state domain.VoiceState, side domain.Side, reason domain.VoiceStateReason) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.states = append(f.states, stateChange{state, side, reason})
}

func (f *fakeEventSink) PartialTranscript(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.partials = append(f.partials, text)
}

func (f *fakeEventSink) InputTextChanged(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inputs = append(f.inputs, text)
}

func (f *fakeEventSink) RecordingPulse(value int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pulses = append(f.pulses, value)
}

func (f *fakeEventSink) MessageAdded(msg domain.TranslationMessage) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, msg)
}

func (f *fakeEventSink) TranscriptCleared() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cleared++
}

func (f *fakeEventSink) SessionError(code domain.ErrorCode, _ string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errors = append(f.errors, code)
}

func (f *fakeEventSink) snapshotStates() []stateChange {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]stateChange(nil), f.states...)
}

func (f *fakeEventSink) snapshotErrors() []domain.ErrorCode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.ErrorCode(nil), f.errors...)
}

type fakeNotifier struct {
	mu     sync.Mutex
	alerts []string
}

func (f *fakeNotifier) Alert(title, _ string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.alerts = append(f.alerts, title)
}

func (f *fakeNotifier) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.alerts)
}

type fakeSpeechSession struct {
	events chan domain.SpeechEvent

	mu      sync.Mutex
	stopped bool
	closed  bool
}

func newFakeSpeechSession() *fakeSpeechSession {
	return &fakeSpeechSession{events: make(chan domain.SpeechEvent, 16)}
}

func (s *fakeSpeechSession) Events() <-chan domain.SpeechEvent { return s.events }

func (s *fakeSpeechSession) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	return nil
}

func (s *fakeSpeechSession) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *fakeSpeechSession) wasStopped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopped
}

type fakeEngine struct {
	available bool
	startErr  error
	sessions  []*fakeSpeechSession
	startGate chan struct{} // when set, Start blocks until closed

	mu     sync.Mutex
	starts []string
}

func (e *fakeEngine) Available() bool { return e.available }

func (e *fakeEngine) Start(_ context.Context, locale string) (ports.SpeechSession, error) {
	e.mu.Lock()
	e.starts = append(e.starts, locale)
	gate := e.startGate
	e.mu.Unlock()
	if gate != nil {
		<-gate
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.startErr != nil {
		return nil, e.startErr
	}
	if len(e.sessions) == 0 {
		return nil, ErrEngineUnavailable
	}
	next := e.sessions[0]
	e.sessions = e.sessions[1:]
	return next, nil
}

func (e *fakeEngine) startCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.starts)
}
