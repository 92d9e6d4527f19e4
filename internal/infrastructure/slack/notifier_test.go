package slack

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"TubeDigest/internal/domain"
)

func TestPublish(t *testing.T) {
	t.Parallel()

	var received domain.Message
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type: %s", ct)
		}
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &received); err != nil {
			t.Errorf("unmarshal payload: %v", err)
		}
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	n := NewNotifier(server.URL)

	msg := domain.Message{
		Text:   "digest body",
		Blocks: []domain.Block{{Type: "section", Text: domain.Markdown("hello")}},
	}
	if err := n.Publish(context.Background(), msg); err != nil {
		t.Fatalf("Publish error: %v", err)
	}

	if received.Text != "digest body" {
		t.Fatalf("unexpected text: %s", received.Text)
	}
	if len(received.Blocks) != 1 || received.Blocks[0].Type != "section" {
		t.Fatalf("unexpected blocks: %+v", received.Blocks)
	}
}

func TestPublishOmitsEmptyBlocks(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var raw map[string]any
		if err := json.Unmarshal(body, &raw); err != nil {
			t.Errorf("unmarshal payload: %v", err)
		}
		if _, ok := raw["blocks"]; ok {
			t.Error("blocks key should be omitted for plain-text messages")
		}
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	n := NewNotifier(server.URL)

	if err := n.Publish(context.Background(), domain.Message{Text: "plain"}); err != nil {
		t.Fatalf("Publish error: %v", err)
	}
}

func TestPublishWebhookError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("no_service"))
	}))
	defer server.Close()

	n := NewNotifier(server.URL)

	err := n.Publish(context.Background(), domain.Message{Text: "x"})
	if err == nil {
		t.Fatal("expected error for non-2xx response")
	}
}

func TestPublishMisconfigured(t *testing.T) {
	t.Parallel()

	n := NewNotifier("")
	if err := n.Publish(context.Background(), domain.Message{Text: "x"}); err == nil {
		t.Fatal("expected error for empty webhook url")
	}
}
