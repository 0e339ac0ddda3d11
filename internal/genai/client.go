// Package genai wraps the Google generative-language REST API behind a
// small text-in/text-out interface. Callers treat the service as untrusted
// for availability: one attempt with a bounded timeout, no retries, and the
// caller decides how to degrade.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Client generates text for a prompt. Implementations must honor the
// context deadline and return an error on any non-success outcome.
type Client interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Gemini is the production Client backed by the generateContent endpoint.
type Gemini struct {
	apiKey  string
	model   string
	baseURL string
	httpc   *http.Client
	log     zerolog.Logger
}

// NewGemini creates a Gemini client. Timeout bounds every call; there is no
// retry loop.
func NewGemini(apiKey, model string, timeout time.Duration, log zerolog.Logger) *Gemini {
	return &Gemini{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		httpc:   &http.Client{Timeout: timeout},
		log:     log.With().Str("component", "genai").Logger(),
	}
}

// generateContent request/response shapes, reduced to the fields we use.
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// GenerateText sends a single-turn prompt and returns the concatenated text
// of the first candidate.
func (g *Gemini) GenerateText(ctx context.Context, prompt string) (string, error) {
	body := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		strings.TrimRight(g.baseURL, "/"), g.model, g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := g.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("generate request failed: %w", err)
	}
	defer resp.Body.Close()

	respRaw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var parsed generateResponse
	if err := json.Unmarshal(respRaw, &parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := "unknown error"
		if parsed.Error != nil {
			msg = parsed.Error.Message
		}
		return "", fmt.Errorf("generate API error (status %d): %s", resp.StatusCode, msg)
	}

	if len(parsed.Candidates) == 0 {
		return "", fmt.Errorf("empty candidate list")
	}

	var sb strings.Builder
	for _, p := range parsed.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}

	g.log.Debug().
		Int("prompt_len", len(prompt)).
		Int("response_len", sb.Len()).
		Dur("elapsed", time.Since(start)).
		Msg("generateContent completed")

	return sb.String(), nil
}

// Mock is a scripted Client for tests. Responses are consumed in order;
// when exhausted, the last one repeats. A non-nil Err is returned instead.
type Mock struct {
	Responses []string
	Err       error
	Calls     int
}

func (m *Mock) GenerateText(_ context.Context, _ string) (string, error) {
	m.Calls++
	if m.Err != nil {
		return "", m.Err
	}
	if len(m.Responses) == 0 {
		return "", fmt.Errorf("mock has no responses")
	}
	i := m.Calls - 1
	if i >= len(m.Responses) {
		i = len(m.Responses) - 1
	}
	return m.Responses[i], nil
}
