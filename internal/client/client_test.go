package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func testClient(baseURL string, timeout time.Duration) *Client {
	return New(Config{BaseURL: baseURL, Timeout: timeout}, zerolog.Nop())
}

func TestDetectLanguage(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/detect-language" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		if body["text"] != "hello" {
			t.Errorf("unexpected text: %q", body["text"])
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"detected_language": "en"})
	}))
	defer server.Close()

	detected, err := testClient(server.URL, time.Second).DetectLanguage(context.Background(), "hello")
	if err != nil {
		t.Fatalf("detect failed: %v", err)
	}
	if detected != "en" {
		t.Fatalf("unexpected detected language: %q", detected)
	}
}

func TestTranslate(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/translate" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["source_lang"] != "ja" || body["target_lang"] != "en" {
			t.Errorf("unexpected pair: %s -> %s", body["source_lang"], body["target_lang"])
		}
		_ = json.NewEncoder(w).Encode(map[string]string{
			"translated_text": "hello",
			"source_lang":     "ja",
			"target_lang":     "en",
		})
	}))
	defer server.Close()

	result, err := testClient(server.URL, time.Second).Translate(context.Background(), "こんにちは", "ja", "en")
	if err != nil {
		t.Fatalf("translate failed: %v", err)
	}
	if result.TranslatedText != "hello" {
		t.Fatalf("unexpected translation: %q", result.TranslatedText)
	}
}

func TestNon2xxCarriesResponseBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream translator unavailable", http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := testClient(server.URL, time.Second).DetectLanguage(context.Background(), "hello")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "502") {
		t.Fatalf("error should carry the status: %v", err)
	}
	if !strings.Contains(err.Error(), "upstream translator unavailable") {
		t.Fatalf("error should carry the response body: %v", err)
	}
}

func TestTimeoutSurfacesAsFailure(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
		_ = json.NewEncoder(w).Encode(map[string]string{"detected_language": "en"})
	}))
	defer func() {
		close(release)
		server.Close()
	}()

	start := time.Now()
	_, err := testClient(server.URL, 50*time.Millisecond).DetectLanguage(context.Background(), "hello")
	if err == nil {
		t.Fatalf("expected timeout error")
	}
	if !strings.Contains(err.Error(), "timeout") {
		t.Fatalf("expected timeout in error, got: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("call did not abort promptly: %s", elapsed)
	}
}

func TestCheckHealth(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/test" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{
			"status":         "ok",
			"message":        "running",
			"timestamp":      "2024-01-01T00:00:00Z",
			"openai_api_key": "configured",
		})
	}))
	defer server.Close()

	info, err := testClient(server.URL, time.Second).CheckHealth(context.Background())
	if err != nil {
		t.Fatalf("health check failed: %v", err)
	}
	if info.Status != "ok" || info.OpenAIAPIKey != "configured" {
		t.Fatalf("unexpected health info: %+v", info)
	}
}

func TestBaseURLTrailingSlash(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/test" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer server.Close()

	if _, err := testClient(server.URL+"/", time.Second).CheckHealth(context.Background()); err != nil {
		t.Fatalf("health check failed: %v", err)
	}
}
