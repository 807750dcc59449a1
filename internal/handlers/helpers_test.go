package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/sbilibin2017/ive-had-worse/internal/jwt"
	"github.com/sbilibin2017/ive-had-worse/internal/middlewares"
	"github.com/stretchr/testify/require"
)

func newJSONRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()

	var bodyBytes []byte
	switch v := body.(type) {
	case string:
		bodyBytes = []byte(v)
	default:
		var err error
		bodyBytes, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func withSession(req *http.Request, userID uuid.UUID) *http.Request {
	ctx := middlewares.WithSession(req.Context(), &jwt.Claims{UserID: userID})
	return req.WithContext(ctx)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

func assertError(t *testing.T, w *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	require.Equal(t, status, w.Code)

	var resp ErrorResponse
	decodeBody(t, w, &resp)
	require.Equal(t, ErrorResponse{Success: false, Error: code}, resp)
}
