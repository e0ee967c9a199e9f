package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daide-tools/pressgloss"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	g, err := pressgloss.New(pressgloss.WithSeed(1))
	require.NoError(t, err)
	return NewHandler(g, Options{
		Tones:          []pressgloss.Tone{pressgloss.ToneObjective},
		AllowedOrigins: []string{"https://example.org"},
	})
}

func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestTranslate(t *testing.T) {
	h := newTestHandler(t)
	rec := do(h, http.MethodPost, "/daide2gloss",
		`{"daidetext": "FRM (FRA) (ENG) (PRP (PCE (ENG FRA)))", "tones": []}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp translateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Let us sign a peace treaty together.", resp.Gloss)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestTranslateTones(t *testing.T) {
	h := newTestHandler(t)
	rec := do(h, http.MethodPost, "/daide2gloss",
		`{"daidetext": "FRM (FRA) (ENG) (PRP (PCE (ENG FRA)))", "tones": ["Haughty"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp translateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t,
		"The French Republic demands your attention in this matter. Let us sign a peace treaty together. What say you to that?",
		resp.Gloss)
}

func TestTranslateBadPress(t *testing.T) {
	h := newTestHandler(t)
	rec := do(h, http.MethodPost, "/daide2gloss", `{"daidetext": "BORK"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp translateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, pressgloss.Sentinel, resp.Gloss)
}

func TestTranslateRejects(t *testing.T) {
	h := newTestHandler(t)
	cases := []struct {
		name, method, body string
		want               int
	}{
		{"wrong method", http.MethodGet, "", http.StatusMethodNotAllowed},
		{"not json", http.MethodPost, "FRM", http.StatusBadRequest},
		{"missing text", http.MethodPost, `{"tones": []}`, http.StatusBadRequest},
		{"text not a string", http.MethodPost, `{"daidetext": 3}`, http.StatusBadRequest},
		{"tones not strings", http.MethodPost, `{"daidetext": "x", "tones": [1]}`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(h, tc.method, "/daide2gloss", tc.body)
			assert.Equal(t, tc.want, rec.Code, rec.Body.String())
			var resp errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestRandom(t *testing.T) {
	h := newTestHandler(t)
	rec := do(h, http.MethodGet, "/random?tones=Friendly", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp randomResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, strings.HasPrefix(resp.Daide, "FRM ("), resp.Daide)
	assert.NotEqual(t, pressgloss.Sentinel, resp.Gloss)

	assert.Equal(t, http.StatusMethodNotAllowed, do(h, http.MethodPost, "/random", "{}").Code)
}

func TestParse(t *testing.T) {
	h := newTestHandler(t)
	rec := do(h, http.MethodPost, "/parse",
		`{"daidetext": "FRM ( ENG ) (FRA ITA) (PRP (AND (PCE (ENG FRA)) (DMZ (ENG) (LVP))))"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp parseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ENG", resp.Sender)
	assert.Equal(t, []string{"FRA", "ITA"}, resp.Recipients)
	assert.Equal(t, []string{"PRP", "AND", "PCE", "DMZ"}, resp.Operators)
	assert.Equal(t, "PRP", resp.Content.Operator)
	require.Len(t, resp.Content.Children, 1)
	assert.Len(t, resp.Content.Children[0].Children, 2)

	rec = do(h, http.MethodPost, "/parse", `{"daidetext": "BORK"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	rec = do(h, http.MethodPost, "/parse", `{"daidetext": ""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t)
	rec := do(h, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 7, resp.Powers)
}

func TestRequestIDEcho(t *testing.T) {
	h := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-Id"))
}

func TestCORS(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://example.org")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "https://example.org", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://elsewhere.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
