package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOpenAIClient_Generate(t *testing.T) {
	var gotPath string
	var gotReq map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
  "id":"abc",
  "object":"chat.completion",
  "created": 1,
  "model":"gpt-4o-mini",
  "choices":[
    {"index":0,"finish_reason":"stop","message":{"role":"assistant","content":" first "}},
    {"index":1,"finish_reason":"stop","message":{"role":"assistant","content":"second"}}
  ],
  "usage":{"prompt_tokens":1,"completion_tokens":2,"total_tokens":3}
}`))
	}))
	defer srv.Close()

	c := NewOpenAIClient("tok", srv.URL+"/v1", srv.Client())

	gen, err := c.Generate(context.Background(), GenerateRequest{
		Model:       "gpt-4o-mini",
		Prompt:      "Should I buy index funds?",
		MaxTokens:   250,
		Temperature: 0.5,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if gotPath != "/v1/chat/completions" {
		t.Errorf("unexpected path %q", gotPath)
	}
	if gotReq["model"] != "gpt-4o-mini" {
		t.Errorf("unexpected model %v", gotReq["model"])
	}
	if gotReq["max_tokens"] != float64(250) {
		t.Errorf("unexpected max_tokens %v", gotReq["max_tokens"])
	}
	if gotReq["temperature"] != 0.5 {
		t.Errorf("unexpected temperature %v", gotReq["temperature"])
	}

	msgs, _ := gotReq["messages"].([]any)
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	msg, _ := msgs[0].(map[string]any)
	if msg["role"] != "user" || msg["content"] != "Should I buy index funds?" {
		t.Errorf("unexpected message %v", msg)
	}

	if len(gen.Generations) != 2 {
		t.Fatalf("expected 2 generations, got %d", len(gen.Generations))
	}
	first, err := gen.First()
	if err != nil {
		t.Fatalf("First: %v", err)
	}
	if first != " first " {
		t.Errorf("unexpected first text %q", first)
	}
}

func TestOpenAIClient_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"abc","object":"chat.completion","created":1,"model":"m","choices":[]}`))
	}))
	defer srv.Close()

	c := NewOpenAIClient("tok", srv.URL+"/v1", srv.Client())

	_, err := c.Generate(context.Background(), GenerateRequest{Model: "m", Prompt: "p"})
	if !errors.Is(err, ErrNoGenerations) {
		t.Fatalf("expected ErrNoGenerations, got %v", err)
	}
}

func TestOpenAIClient_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"invalid api key","type":"invalid_request_error"}}`))
	}))
	defer srv.Close()

	c := NewOpenAIClient("bad", srv.URL+"/v1", srv.Client())

	if _, err := c.Generate(context.Background(), GenerateRequest{Model: "m", Prompt: "p"}); err == nil {
		t.Fatal("expected error for 401 response")
	}
}
