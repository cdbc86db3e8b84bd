package generate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*AnthropicClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewAnthropicClient(Settings{APIKey: "test-key", Model: "test-model"})
	c.endpoint = srv.URL
	return c, srv
}

func TestAnthropicClient_Complete(t *testing.T) {
	var gotPrompt string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") != "test-key" {
			t.Errorf("expected api key header, got %q", r.Header.Get("x-api-key"))
		}
		if r.Header.Get("anthropic-version") == "" {
			t.Error("expected anthropic-version header")
		}
		var req anthropicRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Model != "test-model" {
			t.Errorf("expected model %q, got %q", "test-model", req.Model)
		}
		if len(req.Messages) != 1 || req.Messages[0].Role != "user" {
			t.Fatalf("expected one user message, got %+v", req.Messages)
		}
		gotPrompt = req.Messages[0].Content

		json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]string{{"type": "text", "text": "```html\n<!DOCTYPE html><html></html>\n```"}},
		})
	})

	reply, err := c.Complete(context.Background(), "build me a page")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPrompt != "build me a page" {
		t.Errorf("expected prompt forwarded verbatim, got %q", gotPrompt)
	}
	if !strings.Contains(reply, "<!DOCTYPE html>") {
		t.Errorf("expected raw reply passed through, got %q", reply)
	}
}

func TestAnthropicClient_StatusError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"type":"overloaded_error","message":"try later"}}`))
	})

	if _, err := c.Complete(context.Background(), "p"); err == nil {
		t.Fatal("expected error for 500 status")
	}
}

func TestAnthropicClient_APIError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"type": "invalid_request_error", "message": "bad model"},
		})
	})

	_, err := c.Complete(context.Background(), "p")
	if err == nil || !strings.Contains(err.Error(), "bad model") {
		t.Fatalf("expected api error with detail, got %v", err)
	}
}

func TestAnthropicClient_EmptyContent(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"content": []any{}})
	})

	if _, err := c.Complete(context.Background(), "p"); err == nil {
		t.Fatal("expected error for empty content")
	}
}

func TestMockClient_ProducesExtractableReply(t *testing.T) {
	reply, err := MockClient{}.Complete(context.Background(), BuildPrompt("anything"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc, err := ExtractDocument(reply)
	if err != nil {
		t.Fatalf("expected mock reply to extract cleanly: %v", err)
	}
	if !strings.HasPrefix(doc, "<!DOCTYPE html>") {
		t.Errorf("expected extracted document to start with doctype, got %q", doc[:20])
	}
}
