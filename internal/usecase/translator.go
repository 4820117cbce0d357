package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"talkbuddy/internal/domain"
	"talkbuddy/internal/ports"
	"talkbuddy/internal/session"
)

// Translator turns a raw utterance into a committed transcript entry:
// it resolves the real source/target pair against server-side language
// detection, performs the translate call, and appends the result.
type Translator struct {
	session *session.Session
	api     ports.TranslationAPI
	events  ports.EventSink
	notify  ports.Notifier
	log     zerolog.Logger

	now   func() time.Time
	newID func() string
}

func NewTranslator(
	sess *session.Session,
	api ports.TranslationAPI,
	events ports.EventSink,
	notify ports.Notifier,
	log zerolog.Logger,
) *Translator {
	return &Translator{
		session: sess,
		api:     api,
		events:  events,
		notify:  notify,
		log:     log,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Translate runs one full translation cycle for text declared to come
// from side A or side B. Guard failures are silent no-ops by policy:
// empty input, a translation already in flight, or an active voice
// capture session each drop the request without error.
func (t *Translator) Translate(ctx context.Context, text string, isFromSideA bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	if t.session.Transcript.Translating() {
		t.log.Debug().Str("text", text).Msg("skipping translate, request already in flight")
		return
	}
	if t.session.Voice.Active() {
		t.log.Debug().Str("text", text).Msg("skipping translate, voice capture in progress")
		return
	}
	// Claimed synchronously before the first suspension point; this is
	// the only thing keeping translate cycles from overlapping.
	if !t.session.Transcript.BeginTranslation() {
		return
	}
	defer t.session.Transcript.EndTranslation()

	// Optimistic clear: the input box empties as soon as the send is
	// accepted, before any network round trip.
	t.session.Pair.SetInput("")
	t.events.InputTextChanged("")

	sideA, sideB := t.session.Pair.Sides()
	sourceLang, targetLang := sideA, sideB
	if !isFromSideA {
		sourceLang, targetLang = sideB, sideA
	}
	resolvedFromSideA := isFromSideA

	detected, err := t.api.DetectLanguage(ctx, text)
	if err != nil {
		t.fail(domain.ErrorCodeDetect, err)
		return
	}

	// Minimal-correction heuristic: flip only when the user apparently
	// typed in the declared target language. A detected third language
	// keeps the declared pair.
	if detected == targetLang {
		sourceLang, targetLang = targetLang, sourceLang
		resolvedFromSideA = !resolvedFromSideA
		t.log.Debug().
			Str("detected", detected).
			Str("source", sourceLang).
			Str("target", targetLang).
			Msg("flipped pair to match detected language")
	}

	result, err := t.api.Translate(ctx, text, sourceLang, targetLang)
	if err != nil {
		t.fail(domain.ErrorCodeTranslate, err)
		return
	}

	msg := domain.TranslationMessage{
		ID:             t.newID(),
		OriginalText:   text,
		TranslatedText: result.TranslatedText,
		SourceLang:     sourceLang,
		TargetLang:     targetLang,
		IsFromSideA:    resolvedFromSideA,
		CreatedAt:      t.now(),
	}
	t.session.Transcript.Append(msg)
	t.events.MessageAdded(msg)

	t.log.Info().
		Str("source", sourceLang).
		Str("target", targetLang).
		Bool("fromSideA", resolvedFromSideA).
		Msg("translation committed")
}

func (t *Translator) fail(code domain.ErrorCode, err error) {
	t.log.Error().Err(err).Str("code", string(code)).Msg("translation cycle aborted")
	t.events.SessionError(code, err.Error())
	t.notify.Alert("Translation Error", "Failed to translate message: "+err.Error())
}
