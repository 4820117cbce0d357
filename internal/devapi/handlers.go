package devapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type handlers struct {
	log zerolog.Logger
}

func newHandlers(log zerolog.Logger) *handlers {
	return &handlers{log: log}
}

type detectRequest struct {
	Text string `json:"text"`
}

type detectResponse struct {
	DetectedLanguage string `json:"detected_language"`
}

type translateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

type translateResponse struct {
	TranslatedText string `json:"translated_text"`
	SourceLang     string `json:"source_lang"`
	TargetLang     string `json:"target_lang"`
}

type testResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	Timestamp    string `json:"timestamp"`
	OpenAIAPIKey string `json:"openai_api_key"`
}

func (h *handlers) detectLanguage(w http.ResponseWriter, r *http.Request) {
	var req detectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}
	writeJSON(w, http.StatusOK, detectResponse{DetectedLanguage: detectLanguage(req.Text)})
}

func (h *handlers) translate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Text) == "" || req.SourceLang == "" || req.TargetLang == "" {
		writeError(w, http.StatusBadRequest, "text, source_lang and target_lang are required")
		return
	}
	writeJSON(w, http.StatusOK, translateResponse{
		TranslatedText: stubTranslate(req.Text, req.TargetLang),
		SourceLang:     req.SourceLang,
		TargetLang:     req.TargetLang,
	})
}

func (h *handlers) test(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, testResponse{
		Status:       "ok",
		Message:      "talkbuddy dev server is running",
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		OpenAIAPIKey: "not configured",
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
