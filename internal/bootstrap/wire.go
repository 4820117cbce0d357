package bootstrap

import (
	"talkbuddy/internal/audio"
	"talkbuddy/internal/client"
	"talkbuddy/internal/config"
	"talkbuddy/internal/lang"
	"talkbuddy/internal/logging"
	"talkbuddy/internal/ports"
	"talkbuddy/internal/session"
	"talkbuddy/internal/speech/remote"
	"talkbuddy/internal/usecase"
)

// Services is the assembled runtime graph.
type Services struct {
	Config     config.Config
	Registry   *lang.Registry
	Session    *session.Session
	Client     *client.Client
	Translator *usecase.Translator
	Recorder   *usecase.Recorder
}

// Build wires all backend dependencies for the current runtime.
func Build(events ports.EventSink, notify ports.Notifier) (Services, error) {
	cfg, err := config.Load()
	if err != nil {
		return Services{}, err
	}

	registry, err := lang.NewRegistry()
	if err != nil {
		return Services{}, err
	}

	sess := session.New(cfg.Session.DefaultSideA, cfg.Session.DefaultSideB)

	api := client.New(client.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
	}, logging.New("client"))

	engine := remote.NewEngine(remote.Config{
		Endpoint:   cfg.Speech.Endpoint,
		APIKey:     cfg.Speech.APIKey,
		Model:      cfg.Speech.Model,
		SampleRate: cfg.Speech.SampleRate,
		Channels:   cfg.Speech.Channels,
		ChunkSize:  cfg.Speech.ChunkSize,
		Audio: ports.AudioConfig{
			SampleRate:  cfg.Speech.SampleRate,
			Channels:    cfg.Speech.Channels,
			InputFormat: cfg.Speech.InputFormat,
			InputDevice: cfg.Speech.InputDevice,
		},
	}, audio.NewMicCapture(cfg.Speech.RecorderCommand), logging.New("speech"))

	translator := usecase.NewTranslator(sess, api, events, notify, logging.New("translator"))
	recorder := usecase.NewRecorder(sess, engine, registry, translator, events, notify, logging.New("recorder"))

	return Services{
		Config:     cfg,
		Registry:   registry,
		Session:    sess,
		Client:     api,
		Translator: translator,
		Recorder:   recorder,
	}, nil
}
