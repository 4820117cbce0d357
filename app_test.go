package main

import (
	"testing"

	"talkbuddy/internal/domain"
)

func TestVoiceReasonMessage(t *testing.T) {
	t.Parallel()

	cases := []struct {
		reason domain.VoiceStateReason
		want   string
	}{
		{domain.VoiceReasonReady, "Ready"},
		{domain.VoiceReasonStarting, "Starting voice recognition..."},
		{domain.VoiceReasonListening, "Listening..."},
		{domain.VoiceReasonStopping, "Stopping..."},
		{domain.VoiceReasonCaptureFinished, "Voice capture finished"},
		{domain.VoiceReasonCaptureFailed, "Voice capture failed"},
		{domain.VoiceReasonEngineUnavailable, "Voice recognition unavailable"},
		{domain.VoiceStateReason("mystery"), ""},
	}
	for _, tc := range cases {
		if got := voiceReasonMessage(tc.reason); got != tc.want {
			t.Errorf("voiceReasonMessage(%q) = %q, want %q", tc.reason, got, tc.want)
		}
	}
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	cases := []struct {
		code   domain.ErrorCode
		detail string
		want   string
	}{
		{domain.ErrorCodeStartup, "boom", "Startup failed"},
		{domain.ErrorCodeDetect, "", "Language detection failed"},
		{domain.ErrorCodeTranslate, "", "Translation failed"},
		{domain.ErrorCodeSpeech, "", "Speech recognition error"},
		{domain.ErrorCodeUnavailable, "", "Voice recognition unavailable"},
		{domain.ErrorCode("other"), "socket closed", "socket closed"},
		{domain.ErrorCode("other"), "", "Unknown error"},
	}
	for _, tc := range cases {
		if got := errorMessage(tc.code, tc.detail); got != tc.want {
			t.Errorf("errorMessage(%q, %q) = %q, want %q", tc.code, tc.detail, got, tc.want)
		}
	}
}

func TestBindingsBeforeStartup(t *testing.T) {
	t.Parallel()

	app := NewApp()
	if err := app.Translate("hello", true); err == nil {
		t.Fatalf("expected error before startup")
	}
	if _, err := app.StartRecording("ja"); err == nil {
		t.Fatalf("expected error before startup")
	}
	if langs := app.Languages(); langs != nil {
		t.Fatalf("expected no languages before startup, got %d", len(langs))
	}
	if status := app.Status(); status.Voice != domain.VoiceStateIdle || status.Recording {
		t.Fatalf("unexpected pre-startup status: %+v", status)
	}
}
