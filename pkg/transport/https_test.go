package transport

import (
	"context"
	"crypto/tls"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"
)

func TestDefaultHTTPSConfig(t *testing.T) {
	config := DefaultHTTPSConfig()

	if config == nil {
		t.Fatal("expected non-nil config")
	}

	if config.MinTLSVersion != TLS12 {
		t.Errorf("expected MinTLSVersion TLS12, got %d", config.MinTLSVersion)
	}
	if config.MaxTLSVersion != TLS13 {
		t.Errorf("expected MaxTLSVersion TLS13, got %d", config.MaxTLSVersion)
	}
	if len(config.CipherSuites) == 0 {
		t.Error("expected CipherSuites to be set")
	}
	if config.InsecureSkipVerify {
		t.Error("expected certificate verification to be enabled by default")
	}
	if config.Timeout != 30*time.Second {
		t.Errorf("expected Timeout 30s, got %v", config.Timeout)
	}
	if config.IdleConnTimeout != 90*time.Second {
		t.Errorf("expected IdleConnTimeout 90s, got %v", config.IdleConnTimeout)
	}
}

func TestRecommendedTLS12CipherSuites(t *testing.T) {
	if len(RecommendedTLS12CipherSuites) == 0 {
		t.Error("expected recommended cipher suites to be defined")
	}

	for _, suite := range RecommendedTLS12CipherSuites {
		name := tls.CipherSuiteName(suite)
		if name == "" {
			t.Errorf("unknown cipher suite: %d", suite)
		}
	}
}

func TestNewClient_NilConfig(t *testing.T) {
	client := NewClient(nil)

	if client == nil {
		t.Fatal("expected non-nil client")
	}
	if client.client == nil {
		t.Error("expected http.Client to be initialized")
	}
	if client.config == nil {
		t.Error("expected config to be set to default")
	}
}

func TestNewClient_CustomConfig(t *testing.T) {
	config := &HTTPSConfig{
		MinTLSVersion:      TLS13,
		MaxTLSVersion:      TLS13,
		InsecureSkipVerify: true,
		Timeout:            60 * time.Second,
	}

	client := NewClient(config)

	if client == nil {
		t.Fatal("expected non-nil client")
	}
	if client.config.MinTLSVersion != TLS13 {
		t.Error("expected custom MinTLSVersion")
	}
	if !client.config.InsecureSkipVerify {
		t.Error("expected InsecureSkipVerify to be set")
	}
}

// endpointFor maps an httptest server URL onto an Endpoint so that
// Endpoint.URL resolves back to the test server.
func endpointFor(t *testing.T, server *httptest.Server) Endpoint {
	t.Helper()

	u, err := url.Parse(server.URL)
	if err != nil {
		t.Fatalf("failed to parse server URL: %v", err)
	}
	port, err := strconv.Atoi(u.Port())
	if err != nil {
		t.Fatalf("failed to parse server port: %v", err)
	}

	return NewEndpoint(u.Hostname(), port, "Processor", "Default")
}

func TestClient_Send(t *testing.T) {
	var gotPath, gotContentType, gotRequestID string
	var gotBody []byte

	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotRequestID = r.Header.Get("X-Request-Id")
		gotBody, _ = io.ReadAll(r.Body)

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"BatchId":"42"}`))
	}))
	defer server.Close()

	client := NewClient(&HTTPSConfig{InsecureSkipVerify: true, Timeout: 10 * time.Second})

	body := []byte(`{"Name":"Invoices","Documents":[]}`)
	resp, err := client.Send(context.Background(), endpointFor(t, server), body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected status 200, got %d", resp.StatusCode)
	}
	if string(resp.Body) != `{"BatchId":"42"}` {
		t.Errorf("unexpected response body: %s", string(resp.Body))
	}
	if gotPath != "/api/v1/Input/Default/Processor/Batches" {
		t.Errorf("unexpected request path: %s", gotPath)
	}
	if gotContentType != ContentTypeJSON {
		t.Errorf("expected content-type %q, got %q", ContentTypeJSON, gotContentType)
	}
	if gotRequestID == "" {
		t.Error("expected X-Request-Id header to be set")
	}
	if string(gotBody) != string(body) {
		t.Errorf("body not transmitted verbatim: %s", string(gotBody))
	}
}

func TestClient_Send_ReturnsErrorStatusVerbatim(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("scenario not found"))
	}))
	defer server.Close()

	client := NewClient(&HTTPSConfig{InsecureSkipVerify: true})

	// Non-2xx responses are not transport failures; the raw response is
	// handed back for the caller to interpret.
	resp, err := client.Send(context.Background(), endpointFor(t, server), []byte("{}"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", resp.StatusCode)
	}
	if string(resp.Body) != "scenario not found" {
		t.Errorf("unexpected response body: %s", string(resp.Body))
	}
}

func TestClient_Send_CertificateVerification(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	// The test server uses a self-signed certificate, so a verifying
	// client must fail...
	verifying := NewClient(nil)
	if _, err := verifying.Send(context.Background(), endpointFor(t, server), []byte("{}")); err == nil {
		t.Error("expected TLS verification error against self-signed certificate")
	}

	// ...and the insecure escape hatch must succeed.
	insecure := NewClient(&HTTPSConfig{InsecureSkipVerify: true})
	if _, err := insecure.Send(context.Background(), endpointFor(t, server), []byte("{}")); err != nil {
		t.Errorf("unexpected error with InsecureSkipVerify: %v", err)
	}
}

func TestClient_Send_UnreachableHost(t *testing.T) {
	client := NewClient(&HTTPSConfig{Timeout: 2 * time.Second})

	endpoint := NewEndpoint("invalid.invalid", 1, "Processor", "Default")
	_, err := client.Send(context.Background(), endpoint, []byte("{}"))
	if err == nil {
		t.Error("expected error for unreachable host")
	}
}

func TestClient_Send_ContextCancellation(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(5 * time.Second) // Simulate slow response
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(&HTTPSConfig{
		InsecureSkipVerify: true,
		Timeout:            10 * time.Second,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	_, err := client.Send(ctx, endpointFor(t, server), []byte("{}"))
	if err == nil {
		t.Error("expected error for cancelled context")
	}
}
