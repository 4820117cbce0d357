// Package remote implements the speech engine boundary on top of a
// streaming speech-recognition websocket service: microphone PCM goes
// up, typed transcript events come back.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"talkbuddy/internal/domain"
	"talkbuddy/internal/ports"
)

// Config controls the recognizer connection and capture settings.
type Config struct {
	Endpoint   string
	APIKey     string
	Model      string
	SampleRate int
	Channels   int
	ChunkSize  int

	Audio ports.AudioConfig
}

// Engine implements ports.SpeechEngine. Availability is derived from
// configuration: no endpoint or key means speech capture is off for
// this deployment.
type Engine struct {
	cfg   Config
	audio ports.AudioCapture
	log   zerolog.Logger
}

func NewEngine(cfg Config, audio ports.AudioCapture, log zerolog.Logger) *Engine {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = 16000
	}
	if cfg.Channels <= 0 {
		cfg.Channels = 1
	}
	if cfg.ChunkSize < 256 {
		cfg.ChunkSize = 4096
	}
	return &Engine{cfg: cfg, audio: audio, log: log}
}

func (e *Engine) Available() bool {
	return strings.TrimSpace(e.cfg.Endpoint) != "" && strings.TrimSpace(e.cfg.APIKey) != ""
}

// Start opens the recognizer stream for voiceLocale and begins pumping
// microphone audio into it. The returned session emits a started event
// once both legs are up.
func (e *Engine) Start(ctx context.Context, voiceLocale string) (ports.SpeechSession, error) {
	if !e.Available() {
		return nil, errors.New("speech recognition is not configured")
	}

	streamURL, err := buildStreamURL(e.cfg, voiceLocale)
	if err != nil {
		return nil, err
	}

	headers := http.Header{}
	headers.Set("Authorization", "Token "+e.cfg.APIKey)

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, streamURL, headers)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to speech service: %w", err)
	}

	audioCfg := e.cfg.Audio
	audioCfg.SampleRate = e.cfg.SampleRate
	audioCfg.Channels = e.cfg.Channels
	mic, err := e.audio.Start(ctx, audioCfg)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to start microphone capture: %w", err)
	}

	session := &captureSession{
		conn:   conn,
		mic:    mic,
		events: make(chan domain.SpeechEvent, 64),
		done:   make(chan struct{}),
		log:    e.log,
	}

	session.emit(domain.SpeechEvent{Kind: domain.SpeechEventStarted})

	go session.pumpAudio(e.cfg.ChunkSize)
	go session.readLoop()
	go func() {
		<-ctx.Done()
		_ = session.Close()
	}()

	return session, nil
}

func buildStreamURL(cfg Config, voiceLocale string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(cfg.Endpoint))
	if err != nil {
		return "", fmt.Errorf("invalid speech endpoint: %w", err)
	}
	switch parsed.Scheme {
	case "http":
		parsed.Scheme = "ws"
	case "https":
		parsed.Scheme = "wss"
	case "ws", "wss":
	default:
		return "", fmt.Errorf("invalid speech endpoint scheme %q", parsed.Scheme)
	}

	query := parsed.Query()
	query.Set("language", voiceLocale)
	query.Set("encoding", "linear16")
	query.Set("sample_rate", fmt.Sprintf("%d", cfg.SampleRate))
	query.Set("channels", fmt.Sprintf("%d", cfg.Channels))
	query.Set("interim_results", "true")
	if cfg.Model != "" {
		query.Set("model", cfg.Model)
	}
	parsed.RawQuery = query.Encode()
	return parsed.String(), nil
}

type captureSession struct {
	conn *websocket.Conn
	mic  ports.AudioSession

	events chan domain.SpeechEvent
	done   chan struct{}
	log    zerolog.Logger

	emitMu    sync.Mutex
	ended     bool
	closeOnce sync.Once
	stopOnce  sync.Once
}

func (s *captureSession) Events() <-chan domain.SpeechEvent {
	return s.events
}

// Stop ends the capture: the microphone is released and the recognizer
// is told to flush. Fire-and-forget; the ended event arrives through
// the stream once the server is done.
func (s *captureSession) Stop() error {
	s.stopOnce.Do(func() {
		if err := s.mic.Stop(); err != nil {
			s.log.Warn().Err(err).Msg("microphone did not stop cleanly")
		}
		if err := s.conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"Finalize"}`)); err != nil {
			s.log.Warn().Err(err).Msg("failed to send finalize frame")
		}
	})
	return nil
}

func (s *captureSession) Close() error {
	s.closeOnce.Do(func() {
		_ = s.mic.Stop()
		_ = s.conn.Close()
	})
	return nil
}

func (s *captureSession) pumpAudio(chunkSize int) {
	buf := make([]byte, chunkSize)
	for {
		n, err := s.mic.Read(buf)
		if n > 0 {
			if sendErr := s.conn.WriteMessage(websocket.BinaryMessage, buf[:n]); sendErr != nil {
				return
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrClosedPipe) {
				s.log.Debug().Err(err).Msg("microphone read ended")
			}
			_ = s.Stop()
			return
		}
	}
}

type recognizerFrame struct {
	Type    string `json:"type"`
	Text    string `json:"text"`
	IsFinal bool   `json:"is_final"`
	Message string `json:"message"`
}

func (s *captureSession) readLoop() {
	defer func() {
		s.finish(domain.SpeechEvent{Kind: domain.SpeechEventEnded})
		close(s.events)
		_ = s.Close()
	}()

	for {
		_, payload, err := s.conn.ReadMessage()
		if err != nil {
			if !isNormalClose(err) {
				s.finish(domain.SpeechEvent{Kind: domain.SpeechEventError, Err: err.Error()})
			}
			return
		}

		var frame recognizerFrame
		if err := json.Unmarshal(payload, &frame); err != nil {
			continue
		}

		switch strings.ToLower(frame.Type) {
		case "transcript":
			text := strings.TrimSpace(frame.Text)
			if text == "" {
				continue
			}
			kind := domain.SpeechEventPartial
			if frame.IsFinal {
				kind = domain.SpeechEventFinal
			}
			s.emit(domain.SpeechEvent{Kind: kind, Text: text})
		case "done":
			return
		case "error":
			message := strings.TrimSpace(frame.Message)
			if message == "" {
				message = "speech service returned an unknown error"
			}
			s.finish(domain.SpeechEvent{Kind: domain.SpeechEventError, Err: message})
			return
		}
	}
}

// finish emits the terminal event exactly once; a session ends with
// ended or error, never both.
func (s *captureSession) finish(event domain.SpeechEvent) {
	s.emitMu.Lock()
	if s.ended {
		s.emitMu.Unlock()
		return
	}
	s.ended = true
	s.emitMu.Unlock()
	s.emit(event)
}

func (s *captureSession) emit(event domain.SpeechEvent) {
	select {
	case s.events <- event:
	default:
		s.log.Warn().Str("kind", string(event.Kind)).Msg("dropping speech event, consumer is behind")
	}
}

func isNormalClose(err error) bool {
	return websocket.IsCloseError(err,
		websocket.CloseNormalClosure,
		websocket.CloseGoingAway,
		websocket.CloseNoStatusReceived,
	) || errors.Is(err, net.ErrClosed)
}
