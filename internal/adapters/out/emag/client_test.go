package emag_test

import (
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"fulfillment/internal/adapters/out/emag"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *emag.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return emag.NewClient(server.URL, "seller@example.com", "secret", logger)
}

func expectedAuthHeader() string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte("seller@example.com:secret"))
}
