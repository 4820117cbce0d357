package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"talkbuddy/internal/domain"
	"talkbuddy/internal/lang"
	"talkbuddy/internal/ports"
	"talkbuddy/internal/session"
)

var (
	ErrEngineUnavailable = errors.New("speech recognition is not available")
	ErrCaptureActive     = errors.New("a voice capture session is already active")
	ErrNoActiveCapture   = errors.New("no active voice capture session")
)

// Recorder drives the speech engine through the press-and-hold capture
// lifecycle (idle, starting, listening, stopping) and hands completed
// utterances to the translator. At most one capture session exists at
// a time; exactly one of the engine's ended or error events closes it.
type Recorder struct {
	session    *session.Session
	engine     ports.SpeechEngine
	registry   *lang.Registry
	translator *Translator
	events     ports.EventSink
	notify     ports.Notifier
	log        zerolog.Logger

	mu      sync.Mutex
	current *captureRun
}

type captureRun struct {
	cancel func()
	stream ports.SpeechSession
	side   domain.Side
	pulse  int
	done   chan struct{}
}

func NewRecorder(
	sess *session.Session,
	engine ports.SpeechEngine,
	registry *lang.Registry,
	translator *Translator,
	events ports.EventSink,
	notify ports.Notifier,
	log zerolog.Logger,
) *Recorder {
	sess.Voice.SetAvailable(engine.Available())
	return &Recorder{
		session:    sess,
		engine:     engine,
		registry:   registry,
		translator: translator,
		events:     events,
		notify:     notify,
		log:        log,
	}
}

// Start begins a capture session for the given language code. It is
// rejected when the engine is unavailable or a session is already live.
func (r *Recorder) Start(ctx context.Context, languageCode string) error {
	if !r.engine.Available() {
		r.notify.Alert("Voice Recognition Unavailable", "Speech recognition is not available on this device.")
		r.events.SessionError(domain.ErrorCodeUnavailable, "speech engine unavailable")
		return ErrEngineUnavailable
	}

	sideA, _ := r.session.Pair.Sides()
	side := domain.SideB
	if languageCode == sideA {
		side = domain.SideA
	}

	// Claim the single session slot before touching the engine. The
	// engine dial suspends, so the claim and the nil check must happen
	// in one critical section or two concurrent Start calls both pass.
	run := &captureRun{side: side, done: make(chan struct{})}
	r.mu.Lock()
	if r.current != nil {
		r.mu.Unlock()
		return ErrCaptureActive
	}
	r.current = run
	r.mu.Unlock()

	// Reset stale capture state and the pending input from a previous
	// round before the engine starts delivering events.
	r.session.Voice.SetLastError("")
	r.session.Voice.SetPartial("")
	r.session.Pair.SetInput("")
	r.events.InputTextChanged("")

	sessionCtx, cancel := context.WithCancel(ctx)
	locale := r.registry.VoiceLocaleFor(languageCode)
	stream, err := r.engine.Start(sessionCtx, locale)
	if err != nil {
		cancel()
		r.mu.Lock()
		r.current = nil
		r.mu.Unlock()
		close(run.done)
		r.session.Voice.SetLastError(err.Error())
		r.events.SessionError(domain.ErrorCodeSpeech, err.Error())
		r.notify.Alert("Recording Error", "Failed to start voice recognition: "+err.Error())
		return err
	}

	r.mu.Lock()
	run.cancel = cancel
	run.stream = stream
	r.mu.Unlock()

	r.session.Voice.SetSide(side)
	r.session.Voice.SetState(domain.VoiceStateStarting)
	r.events.VoiceStateChanged(domain.VoiceStateStarting, side, domain.VoiceReasonStarting)
	r.log.Info().Str("language", languageCode).Str("locale", locale).Str("side", string(side)).Msg("voice capture starting")

	go r.consume(run)
	return nil
}

// Stop asks the engine to stop listening. Fire-and-forget: the session
// stays in stopping until the engine's ended event lands.
func (r *Recorder) Stop() error {
	r.mu.Lock()
	run := r.current
	var stream ports.SpeechSession
	if run != nil {
		stream = run.stream
	}
	r.mu.Unlock()
	// A claimed slot whose engine dial has not returned yet has no
	// stream to stop; the caller retries once the session is live.
	if run == nil || stream == nil {
		return ErrNoActiveCapture
	}

	r.session.Voice.SetState(domain.VoiceStateStopping)
	r.events.VoiceStateChanged(domain.VoiceStateStopping, run.side, domain.VoiceReasonStopping)
	if err := stream.Stop(); err != nil {
		r.log.Warn().Err(err).Msg("speech engine stop failed")
	}
	return nil
}

// Active reports whether a capture session is currently live.
func (r *Recorder) Active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current != nil
}

// Wait blocks until the current capture session fully resolves. Test
// hook; the UI never needs it.
func (r *Recorder) Wait() {
	r.mu.Lock()
	run := r.current
	r.mu.Unlock()
	if run != nil {
		<-run.done
	}
}

// consume is the single reader of a session's event stream. Engine
// events arrive strictly ordered for one session: started, zero or
// more partials, at most one final, then ended or error.
func (r *Recorder) consume(run *captureRun) {
	defer close(run.done)

	for event := range run.stream.Events() {
		switch event.Kind {
		case domain.SpeechEventStarted:
			r.session.Voice.SetState(domain.VoiceStateListening)
			r.session.Voice.SetPartial("")
			r.session.Voice.SetLastError("")
			r.session.Pair.SetInput("")
			r.events.VoiceStateChanged(domain.VoiceStateListening, run.side, domain.VoiceReasonListening)
			r.advancePulse(run)

		case domain.SpeechEventPartial:
			r.session.Voice.SetPartial(event.Text)
			r.events.PartialTranscript(event.Text)
			r.advancePulse(run)

		case domain.SpeechEventFinal:
			// The utterance lands in the pending input; translation
			// waits for the session to end.
			r.session.Pair.SetInput(event.Text)
			r.events.InputTextChanged(event.Text)

		case domain.SpeechEventEnded:
			r.finish(run, domain.VoiceReasonCaptureFinished)
			if text := r.session.Pair.Input(); text != "" {
				r.log.Info().Str("text", text).Msg("capture ended, translating utterance")
				r.translator.Translate(context.Background(), text, run.side == domain.SideA)
			}
			return

		case domain.SpeechEventError:
			r.session.Voice.SetLastError(event.Err)
			r.events.SessionError(domain.ErrorCodeSpeech, event.Err)
			r.finish(run, domain.VoiceReasonCaptureFailed)
			return
		}
	}

	// Stream closed without a terminal event; treat as ended.
	r.finish(run, domain.VoiceReasonCaptureFinished)
}

func (r *Recorder) finish(run *captureRun, reason domain.VoiceStateReason) {
	run.cancel()
	_ = run.stream.Close()

	r.mu.Lock()
	if r.current == run {
		r.current = nil
	}
	r.mu.Unlock()

	r.session.Voice.SetState(domain.VoiceStateIdle)
	r.session.Voice.SetSide(domain.SideNone)
	r.session.Voice.SetPartial("")
	r.events.VoiceStateChanged(domain.VoiceStateIdle, domain.SideNone, reason)
	r.events.RecordingPulse(0)
}

// advancePulse drives the cosmetic recording indicator while the
// session is listening.
func (r *Recorder) advancePulse(run *captureRun) {
	run.pulse++
	r.events.RecordingPulse(run.pulse)
}
