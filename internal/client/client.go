// Package client wraps the remote detect/translate HTTP endpoints.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"talkbuddy/internal/domain"
)

const defaultTimeout = 10 * time.Second

// Config controls the remote endpoint and the per-call bound.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client is a thin request/response wrapper. One attempt per call, no
// retries; calls exceeding the timeout are abandoned.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	log     zerolog.Logger
}

func New(cfg Config, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{},
		timeout: timeout,
		log:     log,
	}
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

// DetectLanguage asks the server which language text is written in.
func (c *Client) DetectLanguage(ctx context.Context, text string) (string, error) {
	var out detectResponse
	if err := c.postJSON(ctx, "/api/detect-language", detectRequest{Text: text}, &out); err != nil {
		return "", fmt.Errorf("language detection failed: %w", err)
	}
	return out.DetectedLanguage, nil
}

// Translate converts text from sourceLang to targetLang.
func (c *Client) Translate(ctx context.Context, text, sourceLang, targetLang string) (domain.TranslationResult, error) {
	var out domain.TranslationResult
	req := translateRequest{Text: text, SourceLang: sourceLang, TargetLang: targetLang}
	if err := c.postJSON(ctx, "/api/translate", req, &out); err != nil {
		return domain.TranslationResult{}, fmt.Errorf("translation failed: %w", err)
	}
	return out, nil
}

// CheckHealth probes the server's test endpoint.
func (c *Client) CheckHealth(ctx context.Context) (domain.HealthInfo, error) {
	var out domain.HealthInfo
	if err := c.doJSON(ctx, http.MethodGet, "/api/test", nil, &out); err != nil {
		return domain.HealthInfo{}, fmt.Errorf("connection test failed: %w", err)
	}
	return out, nil
}

func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return c.doJSON(ctx, http.MethodPost, path, payload, out)
}

func (c *Client) doJSON(ctx context.Context, method, path string, payload []byte, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.Debug().Str("method", method).Str("path", path).Msg("calling translation api")

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("request timeout after %s", c.timeout)
		}
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	return json.Unmarshal(raw, out)
}
