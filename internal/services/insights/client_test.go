package insights

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewClientDefaults(t *testing.T) {
	client := NewClient(Config{
		APIKey:  "test-key",
		Timeout: 10 * time.Second,
	})

	expectedBaseURL := "https://api.openai.com/v1"
	if client.baseURL != expectedBaseURL {
		t.Errorf("Expected default baseURL %s, got %s", expectedBaseURL, client.baseURL)
	}

	expectedModel := "gpt-4o-mini"
	if client.model != expectedModel {
		t.Errorf("Expected default model %s, got %s", expectedModel, client.model)
	}
}

func TestComplete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("Expected path /chat/completions, got %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("Unexpected Authorization header: %s", r.Header.Get("Authorization"))
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("Unexpected Content-Type: %s", r.Header.Get("Content-Type"))
		}

		body, _ := io.ReadAll(r.Body)
		var req chatRequest
		if err := json.Unmarshal(body, &req); err != nil {
			t.Fatalf("Failed to decode request body: %v", err)
		}
		if req.Model != "test-model" {
			t.Errorf("Expected model test-model, got %s", req.Model)
		}
		if len(req.Messages) != 2 {
			t.Fatalf("Expected 2 messages, got %d", len(req.Messages))
		}
		if req.Messages[0].Role != "system" {
			t.Errorf("Expected first message role system, got %s", req.Messages[0].Role)
		}
		if req.Messages[1].Content != "Describe the roof." {
			t.Errorf("Unexpected user content: %s", req.Messages[1].Content)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "chatcmpl-1",
			"choices": [
				{"index": 0, "message": {"role": "assistant", "content": "The roof is in fair condition."}, "finish_reason": "stop"}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Model:   "test-model",
		Timeout: 5 * time.Second,
	})

	reply, err := client.Complete(context.Background(), "You are an analyst.", "Describe the roof.")
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if reply != "The roof is in fair condition." {
		t.Errorf("Unexpected reply: %s", reply)
	}
}

func TestCompleteEmptyPrompt(t *testing.T) {
	client := NewClient(Config{APIKey: "test-key", Timeout: time.Second})

	if _, err := client.Complete(context.Background(), "", ""); err == nil {
		t.Error("Expected error for empty prompt")
	}
}

func TestCompleteAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "rate limit exceeded", "type": "rate_limit_error"}}`))
	}))
	defer server.Close()

	client := NewClient(Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
	})

	_, err := client.Complete(context.Background(), "", "hello")
	if err == nil {
		t.Fatal("Expected error for 429 response")
	}
}

func TestCompleteNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "chatcmpl-2", "choices": []}`))
	}))
	defer server.Close()

	client := NewClient(Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
	})

	_, err := client.Complete(context.Background(), "", "hello")
	if err == nil {
		t.Fatal("Expected error for empty choices")
	}
}
