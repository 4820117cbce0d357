// Package session owns the three shared state groups of one chat
// session: the language pair plus pending input, the voice capture
// status, and the transcript. Each group has a single logical writer;
// the mutexes exist because Wails bindings and speech-engine event
// consumption run on different goroutines.
package session

import (
	"sync"

	"talkbuddy/internal/domain"
)

// Session bundles the state groups and is passed by handle into the
// orchestrator and the recorder.
type Session struct {
	Pair       *Pair
	Voice      *Voice
	Transcript *Transcript
}

// New creates a session with the given initial language pair and an
// empty transcript.
func New(sideA, sideB string) *Session {
	return &Session{
		Pair:       &Pair{sideA: sideA, sideB: sideB},
		Voice:      &Voice{},
		Transcript: &Transcript{},
	}
}

// Pair holds the two selected language codes and the pending, not yet
// sent input text.
type Pair struct {
	mu    sync.Mutex
	sideA string
	sideB string
	input string
}

// Sides returns the current (sideA, sideB) codes.
func (p *Pair) Sides() (string, string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sideA, p.sideB
}

func (p *Pair) SetSideA(code string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sideA = code
}

func (p *Pair) SetSideB(code string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sideB = code
}

// Swap exchanges the two codes atomically.
func (p *Pair) Swap() (string, string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sideA, p.sideB = p.sideB, p.sideA
	return p.sideA, p.sideB
}

func (p *Pair) Input() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.input
}

func (p *Pair) SetInput(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.input = text
}

// Voice holds the capture status written by the recorder.
type Voice struct {
	mu        sync.Mutex
	state     domain.VoiceState
	side      domain.Side
	partial   string
	lastError string
	available bool
}

func (v *Voice) State() domain.VoiceState {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.state == "" {
		return domain.VoiceStateIdle
	}
	return v.state
}

func (v *Voice) SetState(state domain.VoiceState) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state = state
}

// Active reports whether a capture session is live, meaning any state
// other than idle.
func (v *Voice) Active() bool {
	return v.State() != domain.VoiceStateIdle
}

func (v *Voice) Side() domain.Side {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.side
}

func (v *Voice) SetSide(side domain.Side) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.side = side
}

func (v *Voice) Partial() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.partial
}

func (v *Voice) SetPartial(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.partial = text
}

func (v *Voice) LastError() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lastError
}

func (v *Voice) SetLastError(message string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.lastError = message
}

func (v *Voice) Available() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.available
}

func (v *Voice) SetAvailable(available bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.available = available
}

// Transcript is the append-only message history plus the session-wide
// in-flight translation guard.
type Transcript struct {
	mu          sync.Mutex
	messages    []domain.TranslationMessage
	translating bool
}

// BeginTranslation claims the in-flight guard. It returns false when a
// translation is already pending; the caller must drop the request, not
// queue it.
func (t *Transcript) BeginTranslation() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.translating {
		return false
	}
	t.translating = true
	return true
}

// EndTranslation releases the guard. Safe to call unconditionally.
func (t *Transcript) EndTranslation() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.translating = false
}

func (t *Transcript) Translating() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.translating
}

// Append commits one fully built message to the history.
func (t *Transcript) Append(msg domain.TranslationMessage) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.messages = append(t.messages, msg)
}

// Clear resets the history wholesale.
func (t *Transcript) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.messages = nil
}

// Messages returns a copy of the history in append order.
func (t *Transcript) Messages() []domain.TranslationMessage {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]domain.TranslationMessage, len(t.messages))
	copy(out, t.messages)
	return out
}

func (t *Transcript) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.messages)
}
