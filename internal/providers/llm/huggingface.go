package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const hfChatURL = "https://router.huggingface.co/v1/chat/completions"

// HuggingFace talks to the serverless inference router through its
// OpenAI-compatible chat-completions endpoint. Models are tried in order;
// the first reply longer than ten characters wins.
type HuggingFace struct {
	token   string
	models  []string
	baseURL string
	httpc   *http.Client
}

func NewHuggingFace(token string, models []string) *HuggingFace {
	if len(models) == 0 {
		models = []string{
			"microsoft/Phi-3.5-mini-instruct",
			"mistralai/Mistral-7B-Instruct-v0.3",
			"HuggingFaceH4/zephyr-7b-beta",
		}
	}
	return &HuggingFace{
		token:   token,
		models:  models,
		baseURL: hfChatURL,
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (h *HuggingFace) Close() error { return nil }

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
	TopP        float64       `json:"top_p,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (h *HuggingFace) Chat(ctx context.Context, systemPrompt string, history []Turn, message string) (string, error) {
	user := flattenHistory(history, message)

	msgs := make([]chatMessage, 0, 2)
	if systemPrompt != "" {
		msgs = append(msgs, chatMessage{Role: "system", Content: systemPrompt})
	}
	msgs = append(msgs, chatMessage{Role: "user", Content: user})

	var lastErr error
	for _, model := range h.models {
		out, err := h.complete(ctx, model, msgs, 250)
		if err != nil {
			lastErr = err
			continue
		}
		if len(out) > 10 {
			return out, nil
		}
	}
	if lastErr == nil {
		lastErr = errors.New("no usable model response")
	}
	return "", lastErr
}

func (h *HuggingFace) Probe(ctx context.Context) error {
	_, err := h.complete(ctx, h.models[0], []chatMessage{{Role: "user", Content: "Hi"}}, 10)
	return err
}

func (h *HuggingFace) complete(ctx context.Context, model string, msgs []chatMessage, maxTokens int) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       model,
		Messages:    msgs,
		MaxTokens:   maxTokens,
		Temperature: 0.7,
		TopP:        0.9,
	})
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+h.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("call inference api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("inference api HTTP %d", resp.StatusCode)
	}

	var cr chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(cr.Choices) == 0 {
		return "", errors.New("no choices in response")
	}
	return strings.TrimSpace(cr.Choices[0].Message.Content), nil
}

// flattenHistory renders history back into a transcript and appends the new
// message, keeping the last 8 lines.
func flattenHistory(history []Turn, message string) string {
	lines := make([]string, 0, len(history))
	for _, t := range history {
		prefix := "User: "
		if t.Role == RoleAssistant {
			prefix = "Assistant: "
		}
		lines = append(lines, prefix+t.Text)
	}
	if len(lines) > 8 {
		lines = lines[len(lines)-8:]
	}
	lines = append(lines, "User: "+message)
	return strings.Join(lines, "\n")
}
