package utils

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDoPostStream_BodyLeftOpen(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
		_, _ = writer.Write([]byte(`{"a":1}{"b":2}`))
	}))
	defer server.Close()

	response, err := DoPostStream(context.Background(), server.Client(), server.URL, nil)
	if err != nil {
		t.Fatalf("DoPostStream returned error: %v", err)
	}
	defer CloseWithLog(response.Body)

	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("reading streamed body failed: %v", err)
	}
	if string(body) != `{"a":1}{"b":2}` {
		t.Errorf("unexpected body: %q", body)
	}
}

func TestDoPostStream_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusUnauthorized)
		_, _ = writer.Write([]byte(`{"error":{"code":401,"message":"bad key"}}`))
	}))
	defer server.Close()

	_, err := DoPostStream(context.Background(), server.Client(), server.URL, nil)
	if err == nil {
		t.Fatal("expected error for 401 response")
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *StatusError, got %T: %v", err, err)
	}
	if statusErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", statusErr.StatusCode)
	}
}

func TestDoPostStream_CustomHeaderSent(t *testing.T) {
	var receivedHeader string
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		receivedHeader = request.Header.Get("x-goog-api-key")
		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	response, err := DoPostStream(context.Background(), server.Client(), server.URL, nil,
		HeaderOption{Key: "x-goog-api-key", Value: "stream-key"})
	if err != nil {
		t.Fatalf("DoPostStream returned error: %v", err)
	}
	CloseWithLog(response.Body)

	if receivedHeader != "stream-key" {
		t.Errorf("expected custom header to be sent, got %q", receivedHeader)
	}
}
