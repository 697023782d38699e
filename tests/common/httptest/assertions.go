//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// successBody is the {"data": ...} envelope every 2xx response uses.
type successBody struct {
	Data json.RawMessage `json:"data"`
}

// errorBody is the flat {"error": "..."} body every failure uses.
type errorBody struct {
	Error string `json:"error"`
}

// AssertSuccessResponse checks the status and, when target is non-nil,
// decodes the data envelope into it.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}
	if target == nil || expectedStatus < 200 || expectedStatus >= 300 {
		return
	}

	var body successBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "decode body: %s", w.Body.String())
	require.NotEmpty(t, body.Data, "no data field in %s", w.Body.String())
	assert.NoError(t, json.Unmarshal(body.Data, target), "decode data: %s", string(body.Data))
}

// AssertErrorResponse checks the status and the error message. An empty
// expectedErrorMsg only requires that some message is present.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	var body errorBody
	if !assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "decode error body: %s", w.Body.String()) {
		return
	}
	if expectedErrorMsg == "" {
		assert.NotEmpty(t, body.Error, "error message should not be empty")
		return
	}
	assert.Equal(t, expectedErrorMsg, body.Error)
}
