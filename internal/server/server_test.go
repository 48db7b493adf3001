package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/nlplab/internal/logging"
	"github.com/cognicore/nlplab/pkg/nlplab"
)

func newTestServer(t *testing.T, cfg Config) http.Handler {
	t.Helper()
	if cfg.CORSOrigins == nil {
		cfg.CORSOrigins = []string{"*"}
	}
	return New(nlplab.New(nlplab.Options{}), logging.Nop(), cfg, nil).Handler()
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := do(newTestServer(t, Config{}), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok"`)
}

func TestPhases(t *testing.T) {
	w := do(newTestServer(t, Config{}), http.MethodGet, "/api/phases", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp phasesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Phases, 7)
	assert.Equal(t, nlplab.PhaseOverview, resp.Phases[0].Name)
	assert.Equal(t, []string{"stem", "lemmatize"}, resp.Phases[1].Operations)
}

func TestOperations(t *testing.T) {
	w := do(newTestServer(t, Config{}), http.MethodGet, "/api/operations", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"delayMs":1200`)
	assert.Contains(t, w.Body.String(), `"name":"coreference"`)
}

func TestAnalyzeTokenize(t *testing.T) {
	w := do(newTestServer(t, Config{}), http.MethodPost, "/api/analyze/tokenize", `{"text":"I have $5 and 3 books."}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ID     string `json:"id"`
		Op     string `json:"op"`
		Phase  string `json:"phase"`
		Output []struct {
			Text     string `json:"text"`
			Position int    `json:"position"`
		} `json:"output"`
		Card struct {
			Title string   `json:"title"`
			Lines []string `json:"lines"`
		} `json:"card"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "tokenize", resp.Op)
	assert.Equal(t, nlplab.PhaseLexical, resp.Phase)
	require.Len(t, resp.Output, 7)
	assert.Equal(t, "$5", resp.Output[2].Text)
	assert.Equal(t, 6, resp.Output[6].Position)
	assert.Equal(t, "Tokenization Results", resp.Card.Title)
}

func TestAnalyzeCoherenceNullAverage(t *testing.T) {
	w := do(newTestServer(t, Config{}), http.MethodPost, "/api/analyze/coherence", `{"text":"Just one sentence."}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"average":null`)
}

func TestAnalyzeStripHTML(t *testing.T) {
	w := do(newTestServer(t, Config{}), http.MethodPost, "/api/analyze/ner",
		`{"text":"<p>Barack <i>Obama</i></p>","stripHtml":true}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"input":"Barack Obama"`)
}

func TestAnalyzeErrors(t *testing.T) {
	h := newTestServer(t, Config{})

	tests := []struct {
		name   string
		path   string
		body   string
		status int
	}{
		{"unknown op", "/api/analyze/translate", `{"text":"hi"}`, http.StatusNotFound},
		{"empty text", "/api/analyze/tokenize", `{"text":""}`, http.StatusBadRequest},
		{"blank text", "/api/analyze/tokenize", `{"text":"  \n "}`, http.StatusBadRequest},
		{"missing text", "/api/analyze/tokenize", `{}`, http.StatusBadRequest},
		{"malformed body", "/api/analyze/tokenize", `{"text":`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(h, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), `"error"`)
		})
	}
}

func TestAnalyzeWrongMethod(t *testing.T) {
	w := do(newTestServer(t, Config{}), http.MethodGet, "/api/analyze/tokenize", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestAnalyzeTimeout(t *testing.T) {
	engine := nlplab.New(nlplab.Options{SimulateDelay: true})
	h := New(engine, logging.Nop(), Config{CORSOrigins: []string{"*"}, Timeout: time.Millisecond}, nil).Handler()

	w := do(h, http.MethodPost, "/api/analyze/tokenize", `{"text":"hello"}`)
	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
}

func TestRateLimit(t *testing.T) {
	h := newTestServer(t, Config{RateLimit: 0.001, RateBurst: 1})

	w := do(h, http.MethodGet, "/api/phases", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(h, http.MethodGet, "/api/phases", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	w = do(h, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code, "health checks are exempt")
}

func TestCORSPreflight(t *testing.T) {
	h := newTestServer(t, Config{CORSOrigins: []string{"http://localhost:3000"}})

	req := httptest.NewRequest(http.MethodOptions, "/api/analyze/ner", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetrics(t *testing.T) {
	h := newTestServer(t, Config{})
	do(h, http.MethodPost, "/api/analyze/ner", `{"text":"nothing here"}`)
	do(h, http.MethodPost, "/api/analyze/ner", `{"text":""}`)

	w := do(h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `nlplab_analyses_total{op="ner"} 1`)
	assert.Contains(t, body, `nlplab_empty_results_total{op="ner"} 1`)
	assert.Contains(t, body, `nlplab_errors_total{op="ner",reason="empty_input"} 1`)
}
