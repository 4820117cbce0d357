package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	productionBaseURL = "https://talkbuddy-production.up.railway.app"
	localDevPort      = "8000"
	// Android emulators reach the host machine through a fixed alias.
	androidEmulatorHost = "10.0.2.2"
)

// Config stores runtime configuration for the app backend.
type Config struct {
	API     APIConfig
	Speech  SpeechConfig
	Session SessionConfig
	Locale  string
}

type APIConfig struct {
	BaseURL string        `validate:"required,url"`
	Timeout time.Duration `validate:"required,min=1s"`
}

type SpeechConfig struct {
	Endpoint        string `validate:"omitempty,url"`
	APIKey          string
	Model           string
	RecorderCommand string
	InputFormat     string
	InputDevice     string
	SampleRate      int `validate:"min=0"`
	Channels        int `validate:"min=0"`
	ChunkSize       int `validate:"min=0"`
}

type SessionConfig struct {
	DefaultSideA string `validate:"required"`
	DefaultSideB string `validate:"required"`
}

// Load resolves configuration from environment variables and sensible
// defaults. TALKBUDDY_PRODUCTION=false switches the API base to the
// per-OS local development endpoint; TALKBUDDY_API_BASE_URL overrides
// either.
func Load() (Config, error) {
	cfg := Config{
		API: APIConfig{
			BaseURL: resolveBaseURL(),
			Timeout: time.Duration(envOrDefaultInt("TALKBUDDY_API_TIMEOUT_MS", 10000)) * time.Millisecond,
		},
		Speech: SpeechConfig{
			Endpoint:        strings.TrimSpace(os.Getenv("TALKBUDDY_SPEECH_ENDPOINT")),
			APIKey:          strings.TrimSpace(os.Getenv("TALKBUDDY_SPEECH_API_KEY")),
			Model:           envOrDefault("TALKBUDDY_SPEECH_MODEL", "nova-2"),
			RecorderCommand: envOrDefault("TALKBUDDY_FFMPEG_COMMAND", "ffmpeg"),
			// Empty means the capture layer picks the platform backend.
			InputFormat:     strings.TrimSpace(os.Getenv("TALKBUDDY_AUDIO_INPUT_FORMAT")),
			InputDevice:     strings.TrimSpace(os.Getenv("TALKBUDDY_AUDIO_INPUT_DEVICE")),
			SampleRate:      envOrDefaultInt("TALKBUDDY_SAMPLE_RATE", 16000),
			Channels:        envOrDefaultInt("TALKBUDDY_CHANNELS", 1),
			ChunkSize:       envOrDefaultInt("TALKBUDDY_AUDIO_CHUNK_SIZE", 4096),
		},
		Session: SessionConfig{
			DefaultSideA: envOrDefault("TALKBUDDY_DEFAULT_LANGUAGE_A", "ja"),
			DefaultSideB: envOrDefault("TALKBUDDY_DEFAULT_LANGUAGE_B", "en"),
		},
		Locale: envOrDefault("TALKBUDDY_UI_LOCALE", "en"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func resolveBaseURL() string {
	if override := strings.TrimSpace(os.Getenv("TALKBUDDY_API_BASE_URL")); override != "" {
		return override
	}
	if envOrDefaultBool("TALKBUDDY_PRODUCTION", true) {
		return productionBaseURL
	}

	host := envOrDefault("TALKBUDDY_LOCAL_HOST", "localhost")
	if runtime.GOOS == "android" {
		host = androidEmulatorHost
	}
	return "http://" + host + ":" + envOrDefault("TALKBUDDY_LOCAL_PORT", localDevPort)
}

func envOrDefault(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func envOrDefaultInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDefaultBool(key string, fallback bool) bool {
	value := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	switch value {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}
