package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func hfTestServer(t *testing.T, replies map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("auth header %q", got)
		}
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		reply, ok := replies[req.Model]
		if !ok {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		resp := chatResponse{}
		resp.Choices = append(resp.Choices, struct {
			Message chatMessage `json:"message"`
		}{Message: chatMessage{Role: "assistant", Content: reply}})
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func newTestHF(srvURL string, models []string) *HuggingFace {
	h := NewHuggingFace("test-token", models)
	h.baseURL = srvURL
	h.httpc = &http.Client{Timeout: 5 * time.Second}
	return h
}

func TestHuggingFaceChatFailover(t *testing.T) {
	srv := hfTestServer(t, map[string]string{
		// first model replies too briefly, second carries the answer
		"model-a": "ok",
		"model-b": "We currently have several Go openings.",
	})
	defer srv.Close()

	h := newTestHF(srv.URL, []string{"model-a", "model-b"})
	out, err := h.Chat(context.Background(), "", nil, "any jobs?")
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if out != "We currently have several Go openings." {
		t.Fatalf("reply %q", out)
	}
}

func TestHuggingFaceChatAllModelsFail(t *testing.T) {
	srv := hfTestServer(t, nil)
	defer srv.Close()

	h := newTestHF(srv.URL, []string{"model-a", "model-b"})
	if _, err := h.Chat(context.Background(), "", nil, "hello"); err == nil {
		t.Fatal("expected error when every model fails")
	}
}

func TestHuggingFaceProbe(t *testing.T) {
	srv := hfTestServer(t, map[string]string{"model-a": "OK"})
	defer srv.Close()

	h := newTestHF(srv.URL, []string{"model-a"})
	if err := h.Probe(context.Background()); err != nil {
		t.Fatalf("probe: %v", err)
	}
}

func TestFlattenHistory(t *testing.T) {
	history := []Turn{
		{Role: RoleUser, Text: "hi"},
		{Role: RoleAssistant, Text: "hello!"},
	}
	got := flattenHistory(history, "any jobs?")
	want := "User: hi\nAssistant: hello!\nUser: any jobs?"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFlattenHistoryKeepsLastEight(t *testing.T) {
	var history []Turn
	for i := 0; i < 6; i++ {
		history = append(history,
			Turn{Role: RoleUser, Text: "q"},
			Turn{Role: RoleAssistant, Text: "a"},
		)
	}
	got := flattenHistory(history, "final")
	lines := strings.Split(got, "\n")
	if len(lines) != 9 {
		t.Fatalf("kept %d lines, want 8 history lines plus the new message", len(lines))
	}
	if lines[len(lines)-1] != "User: final" {
		t.Fatalf("last line %q", lines[len(lines)-1])
	}
}
