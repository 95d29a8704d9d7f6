package chatbot

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestClient(endpoint string) *Client {
	return NewClient(Config{
		Endpoint: endpoint,
		APIKey:   "test-key",
		Timeout:  time.Second,
	})
}

func TestSendReturnsFirstCandidateText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if got := r.URL.Query().Get("key"); got != "test-key" {
			t.Errorf("key query param = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Hello from the model"}]}}]}`))
	}))
	defer srv.Close()

	reply, raw, err := newTestClient(srv.URL).Send(context.Background(), "hi")
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if reply != "Hello from the model" {
		t.Errorf("reply = %q", reply)
	}
	if raw != `{"candidates":[{"content":{"parts":[{"text":"Hello from the model"}]}}]}` {
		t.Errorf("raw = %q, want the unmodified upstream body", raw)
	}
}

func TestSendUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, _, err := newTestClient(srv.URL).Send(context.Background(), "hi")
	if err == nil {
		t.Fatal("expected an error for a non-2xx response")
	}
	if !strings.Contains(err.Error(), "status 429") {
		t.Errorf("err = %v, want upstream status in message", err)
	}
}

func TestSendEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	_, _, err := newTestClient(srv.URL).Send(context.Background(), "hi")
	if !errors.Is(err, ErrEmptyReply) {
		t.Errorf("err = %v, want ErrEmptyReply", err)
	}
}

func TestSendMissingAPIKey(t *testing.T) {
	client := NewClient(Config{Endpoint: "http://localhost:0", Timeout: time.Second})

	_, _, err := client.Send(context.Background(), "hi")
	if err == nil {
		t.Fatal("expected an error without an API key")
	}
	if !strings.Contains(err.Error(), "API key") {
		t.Errorf("err = %v, want missing key message", err)
	}
}
