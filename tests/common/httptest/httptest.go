//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// PerformRequest sends body encoded as JSON. A nil body sends an empty request
// without a content type, which the handlers treat as missing data.
func PerformRequest(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	if body == nil {
		return serve(router, httptest.NewRequest(method, path, http.NoBody))
	}
	encoded, err := json.Marshal(body)
	require.NoError(t, err, "encode request body")
	return serve(router, jsonRequest(method, path, bytes.NewReader(encoded)))
}

// PerformRawRequest sends raw untouched, for payloads that are not valid JSON.
func PerformRawRequest(t *testing.T, router http.Handler, method, path, raw string) *httptest.ResponseRecorder {
	t.Helper()
	return serve(router, jsonRequest(method, path, strings.NewReader(raw)))
}

func jsonRequest(method, path string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
