package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient(Config{
		BaseURL: "https://example.com",
		APIKey:  "",
	})
	if err == nil {
		t.Error("expected error for empty API key")
	}
}

func TestNewClient_DefaultValues(t *testing.T) {
	client, err := NewClient(Config{APIKey: "test-key"})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	if client.BaseURL() != DefaultBaseURL {
		t.Errorf("baseURL = %s, want %s", client.BaseURL(), DefaultBaseURL)
	}
	if client.httpClient == nil {
		t.Fatal("httpClient is nil")
	}
	if client.httpClient.Timeout != DefaultTimeout {
		t.Errorf("timeout = %v, want %v", client.httpClient.Timeout, DefaultTimeout)
	}
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	client, err := NewClient(Config{
		BaseURL: "https://example.com/",
		APIKey:  "test-key",
	})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	if client.BaseURL() != "https://example.com" {
		t.Errorf("baseURL = %s, want https://example.com", client.BaseURL())
	}
}

func TestNewClient_InjectedClientNotMutated(t *testing.T) {
	custom := &http.Client{Timeout: 60 * time.Second}

	client, err := NewClient(Config{
		APIKey:     "test-key",
		HTTPClient: custom,
		UserAgent:  "minutemail-test/1.0",
	})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	if custom.Transport != nil {
		t.Error("injected client's transport was mutated")
	}
	if client.httpClient == custom {
		t.Error("expected a shallow copy, got the injected client itself")
	}
	if client.httpClient.Timeout != 60*time.Second {
		t.Errorf("timeout = %v, want the injected client's 60s", client.httpClient.Timeout)
	}
}

func TestNew_WithOptions(t *testing.T) {
	client, err := New("test-key",
		WithBaseURL("https://example.com"),
		WithTimeout(60*time.Second),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if client.baseURL != "https://example.com" {
		t.Errorf("baseURL = %s, want https://example.com", client.baseURL)
	}
	if client.httpClient.Timeout != 60*time.Second {
		t.Errorf("timeout = %v, want 60s", client.httpClient.Timeout)
	}
}

func TestNewClient_InvalidThrottle(t *testing.T) {
	_, err := NewClient(Config{
		APIKey:      "test-key",
		ThrottleRPS: -1,
	})
	if err == nil {
		t.Error("expected error for negative throttle rps")
	}
}

func TestClient_Do_Headers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Values("Authorization"); len(got) != 1 {
			t.Errorf("Authorization headers = %d, want exactly 1", len(got))
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("Authorization = %s, want Bearer test-key", r.Header.Get("Authorization"))
		}
		if r.Header.Get("Accept") != "application/json" {
			t.Errorf("Accept = %s, want application/json", r.Header.Get("Accept"))
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("Content-Type = %s, want application/json", r.Header.Get("Content-Type"))
		}
		if r.Header.Get("X-Request-Id") == "" {
			t.Error("X-Request-Id is empty")
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]bool{"ok": true})
	}))
	defer server.Close()

	client, _ := NewClient(Config{BaseURL: server.URL, APIKey: "test-key"})

	var result struct{ OK bool }
	err := client.do(context.Background(), request{
		method: "POST",
		path:   "/test",
		body:   map[string]string{"name": "test"},
		result: &result,
	})
	if err != nil {
		t.Fatalf("do() error = %v", err)
	}
	if !result.OK {
		t.Error("result.OK = false, want true")
	}
}

func TestClient_Do_NoAuthSkipsAuthorization(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Errorf("Authorization = %s, want empty", r.Header.Get("Authorization"))
		}
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer server.Close()

	client, _ := NewClient(Config{BaseURL: server.URL, APIKey: "test-key"})

	err := client.do(context.Background(), request{
		method: "GET",
		path:   "/health",
		noAuth: true,
	})
	if err != nil {
		t.Fatalf("do() error = %v", err)
	}
}

func TestClient_Do_NoBodyOmitsContentType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "" {
			t.Errorf("Content-Type = %s, want empty for bodyless request", r.Header.Get("Content-Type"))
		}
		json.NewEncoder(w).Encode(map[string]bool{"ok": true})
	}))
	defer server.Close()

	client, _ := NewClient(Config{BaseURL: server.URL, APIKey: "test-key"})

	err := client.do(context.Background(), request{method: "GET", path: "/test"})
	if err != nil {
		t.Fatalf("do() error = %v", err)
	}
}

func TestClient_Do_IdentityRoundTrip(t *testing.T) {
	fixture := map[string]any{
		"id":      "mb_1",
		"address": "x@minutemail.cc",
		"nested":  map[string]any{"a": float64(1), "b": true},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(fixture)
	}))
	defer server.Close()

	client, _ := NewClient(Config{BaseURL: server.URL, APIKey: "test-key"})

	var result map[string]any
	err := client.do(context.Background(), request{method: "GET", path: "/test", result: &result})
	if err != nil {
		t.Fatalf("do() error = %v", err)
	}

	if result["id"] != "mb_1" || result["address"] != "x@minutemail.cc" {
		t.Errorf("result = %v, want fixture returned unchanged", result)
	}
	nested, ok := result["nested"].(map[string]any)
	if !ok || nested["a"] != float64(1) || nested["b"] != true {
		t.Errorf("nested = %v, want fixture nested value", result["nested"])
	}
}

func TestClient_Do_NoContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client, _ := NewClient(Config{BaseURL: server.URL, APIKey: "test-key"})

	err := client.do(context.Background(), request{method: "DELETE", path: "/test"})
	if err != nil {
		t.Fatalf("do() error = %v", err)
	}
}

func TestClient_Do_EmptySuccessBodyWithResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, _ := NewClient(Config{BaseURL: server.URL, APIKey: "test-key"})

	var result map[string]any
	err := client.do(context.Background(), request{method: "GET", path: "/test", result: &result})
	if err != nil {
		t.Fatalf("do() error = %v, want empty body treated as absence", err)
	}
	if result != nil {
		t.Errorf("result = %v, want untouched nil map", result)
	}
}

func TestClient_Do_QueryEncoding(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("address"); got != "a+b@minutemail.cc" {
			t.Errorf("address query = %s, want a+b@minutemail.cc", got)
		}
		json.NewEncoder(w).Encode(map[string]any{"items": []any{}})
	}))
	defer server.Close()

	client, _ := NewClient(Config{BaseURL: server.URL, APIKey: "test-key"})

	_, err := client.ListMailboxes(context.Background(), "a+b@minutemail.cc")
	if err != nil {
		t.Fatalf("ListMailboxes() error = %v", err)
	}
}

func TestClient_Do_ErrorResponse(t *testing.T) {
	tests := []struct {
		name          string
		statusCode    int
		body          string
		wantErrorCode string
		wantMessage   string
	}{
		{
			name:          "structured error body",
			statusCode:    404,
			body:          `{"error":"mailbox_not_found","message":"no such mailbox"}`,
			wantErrorCode: "mailbox_not_found",
			wantMessage:   "no such mailbox",
		},
		{
			name:          "malformed JSON body",
			statusCode:    500,
			body:          "not json",
			wantErrorCode: FallbackErrorCode,
			wantMessage:   "not json",
		},
		{
			name:          "JSON body without error fields",
			statusCode:    409,
			body:          `{"detail":"conflict"}`,
			wantErrorCode: FallbackErrorCode,
			wantMessage:   `{"detail":"conflict"}`,
		},
		{
			name:          "empty body",
			statusCode:    502,
			body:          "",
			wantErrorCode: FallbackErrorCode,
			wantMessage:   http.StatusText(502),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client, _ := NewClient(Config{BaseURL: server.URL, APIKey: "test-key"})

			err := client.do(context.Background(), request{method: "GET", path: "/test"})
			if err == nil {
				t.Fatal("expected error")
			}

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected APIError, got %T", err)
			}
			if apiErr.StatusCode != tt.statusCode {
				t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, tt.statusCode)
			}
			if apiErr.ErrorCode != tt.wantErrorCode {
				t.Errorf("ErrorCode = %s, want %s", apiErr.ErrorCode, tt.wantErrorCode)
			}
			if apiErr.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", apiErr.Message, tt.wantMessage)
			}
			if apiErr.BodyPreview != tt.body {
				t.Errorf("BodyPreview = %q, want %q", apiErr.BodyPreview, tt.body)
			}
		})
	}
}

func TestClient_Do_StatusCodePreservedForAnyBodyShape(t *testing.T) {
	bodies := []string{"", "not json", `[]`, `{"error":"x"}`, `"quoted"`, `12345`}

	for _, body := range bodies {
		t.Run(fmt.Sprintf("body=%q", body), func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTeapot)
				w.Write([]byte(body))
			}))
			defer server.Close()

			client, _ := NewClient(Config{BaseURL: server.URL, APIKey: "test-key"})

			err := client.do(context.Background(), request{method: "GET", path: "/test"})
			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected APIError, got %T", err)
			}
			if apiErr.StatusCode != http.StatusTeapot {
				t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, http.StatusTeapot)
			}
		})
	}
}

func TestClient_Do_BodyPreviewCapped(t *testing.T) {
	longBody := strings.Repeat("x", BodyPreviewLimit*3)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(longBody))
	}))
	defer server.Close()

	client, _ := NewClient(Config{BaseURL: server.URL, APIKey: "test-key"})

	err := client.do(context.Background(), request{method: "GET", path: "/test"})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T", err)
	}
	if len(apiErr.BodyPreview) != BodyPreviewLimit {
		t.Errorf("BodyPreview length = %d, want %d", len(apiErr.BodyPreview), BodyPreviewLimit)
	}
}

func TestClient_Do_InvalidSuccessBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("<html>definitely not json</html>"))
	}))
	defer server.Close()

	client, _ := NewClient(Config{BaseURL: server.URL, APIKey: "test-key"})

	var result map[string]any
	err := client.do(context.Background(), request{method: "GET", path: "/test", result: &result})
	if err == nil {
		t.Fatal("expected error for undecodable 2xx body")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, want 200", apiErr.StatusCode)
	}
	if apiErr.ErrorCode != InvalidResponseCode {
		t.Errorf("ErrorCode = %s, want %s", apiErr.ErrorCode, InvalidResponseCode)
	}
}

func TestClient_Do_TransportError(t *testing.T) {
	// Server is closed before the call so the connection is refused.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client, _ := NewClient(Config{BaseURL: server.URL, APIKey: "test-key"})

	err := client.do(context.Background(), request{method: "GET", path: "/test"})
	if err == nil {
		t.Fatal("expected error for refused connection")
	}

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected TransportError, got %T", err)
	}
	if transportErr.Unwrap() == nil {
		t.Error("TransportError does not wrap a cause")
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Error("transport failure must never surface as APIError")
	}
}

func TestClient_Do_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, _ := NewClient(Config{BaseURL: server.URL, APIKey: "test-key"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	err := client.do(ctx, request{method: "GET", path: "/test"})
	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected TransportError, got %T", err)
	}
}

func TestClient_Do_UserAgent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != "minutemail-go/1.0" {
			t.Errorf("User-Agent = %s, want minutemail-go/1.0", r.Header.Get("User-Agent"))
		}
		json.NewEncoder(w).Encode(map[string]bool{"ok": true})
	}))
	defer server.Close()

	client, _ := NewClient(Config{
		BaseURL:   server.URL,
		APIKey:    "test-key",
		UserAgent: "minutemail-go/1.0",
	})

	err := client.do(context.Background(), request{method: "GET", path: "/test"})
	if err != nil {
		t.Fatalf("do() error = %v", err)
	}
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestUserAgentTransport_DoesNotMutateRequest(t *testing.T) {
	var sent string
	transport := &userAgentTransport{
		value: "minutemail-go/1.0",
		base: roundTripperFunc(func(r *http.Request) (*http.Response, error) {
			sent = r.Header.Get("User-Agent")
			return &http.Response{StatusCode: 204, Body: http.NoBody}, nil
		}),
	}

	original, _ := http.NewRequest("GET", "http://example.invalid/test", nil)
	resp, err := transport.RoundTrip(original)
	if err != nil {
		t.Fatalf("RoundTrip() error = %v", err)
	}
	resp.Body.Close()

	if sent != "minutemail-go/1.0" {
		t.Errorf("outbound User-Agent = %q, want minutemail-go/1.0", sent)
	}
	if got := original.Header.Get("User-Agent"); got != "" {
		t.Errorf("caller's request gained User-Agent %q; RoundTrip must not modify it", got)
	}
}

func TestClient_SetHTTPClient(t *testing.T) {
	client, _ := NewClient(Config{APIKey: "test-key"})

	replacement := &http.Client{Timeout: 120 * time.Second}
	client.SetHTTPClient(replacement)

	if client.HTTPClient() != replacement {
		t.Error("SetHTTPClient() did not update the client")
	}
}

// ExampleNewClient demonstrates creating an API client with struct-based configuration.
func ExampleNewClient() {
	client, err := NewClient(Config{
		BaseURL: "https://api.minutemail.co",
		APIKey:  "your-api-key",
		Timeout: 10 * time.Second,
	})
	if err != nil {
		panic(err)
	}

	fmt.Printf("Client created for: %s\n", client.BaseURL())
	// Output: Client created for: https://api.minutemail.co
}

// ExampleNew demonstrates creating an API client with functional options.
func ExampleNew() {
	client, err := New("your-api-key",
		WithBaseURL("https://api.minutemail.co"),
		WithTimeout(30*time.Second),
	)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Client created for: %s\n", client.BaseURL())
	// Output: Client created for: https://api.minutemail.co
}
