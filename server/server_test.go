package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/poiesic/lanelist/ai"
	"github.com/poiesic/lanelist/core"
	"github.com/poiesic/lanelist/mail"
	"github.com/poiesic/lanelist/ratelimit"
	"github.com/poiesic/lanelist/search"
	lanelistbadger "github.com/poiesic/lanelist/storage/badger"
	"github.com/poiesic/lanelist/suggest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorderSender struct {
	mu   sync.Mutex
	sent int
	err  error
}

func (r *recorderSender) Send(ctx context.Context, req *mail.ContactRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.sent++
	return nil
}

func (r *recorderSender) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sent
}

type testServer struct {
	router *gin.Engine
	sender *recorderSender
}

func newTestServer(t *testing.T, seed ...*core.Carrier) *testServer {
	t.Helper()

	repo, backend, err := lanelistbadger.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})

	if len(seed) > 0 {
		_, err = repo.AddCarriers(context.Background(), seed...)
		require.NoError(t, err)
	}

	engine, err := suggest.NewEngine(
		ai.NewConfig(ai.WithCallTimeout(time.Second)),
		nil,
		ratelimit.New(),
	)
	require.NoError(t, err)

	searcher, err := search.NewSearcher(repo, engine)
	require.NoError(t, err)

	sender := &recorderSender{}
	relay, err := mail.NewRelay(sender)
	require.NoError(t, err)

	srv, err := New(searcher, relay)
	require.NoError(t, err)

	return &testServer{router: srv.Router(), sender: sender}
}

func (ts *testServer) do(method, path, body string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func validContactBody() string {
	return `{
		"name": "Marie Dupont",
		"email": "marie@example.com",
		"subject": "Reefer capacity",
		"message": "Weekly reefer capacity from Lyon to Barcelona.",
		"consent": true
	}`
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestSearch_DatabaseMatch(t *testing.T) {
	rating := 4.6
	ts := newTestServer(t, &core.Carrier{
		Name:     "Alpine Logistics",
		Verified: true,
		Rating:   &rating,
		Types:    []core.TransportType{core.TransportTruck},
		Lanes:    []core.Lane{{Origin: "FR", Destination: "DE"}},
	})

	rec := ts.do(http.MethodPost, "/api/search",
		`{"type": "truck", "origin": "FR", "destination": "DE"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var result core.SearchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.Len(t, result.Carriers, 1)
	assert.Equal(t, "Alpine Logistics", result.Carriers[0].Name)
	assert.Equal(t, core.SourceDB, result.Carriers[0].Source)
	assert.False(t, result.UsedAI)

	assert.NotEmpty(t, rec.Header().Get("X-Response-Time-Ms"))
}

func TestSearch_EmptyStoreFallsBack(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/api/search",
		`{"type": "truck", "origin": "FR", "destination": "ES"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code, "search must never fail")

	var result core.SearchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.UsedAI)
	assert.Equal(t, search.NoticeNoMatches, result.Notice)
	assert.NotEmpty(t, result.Suggestions)
}

func TestSearch_EmptyBodyIsUnconstrained(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/api/search", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSearch_NormalizesFilterInput(t *testing.T) {
	ts := newTestServer(t, &core.Carrier{
		Name:  "Iberia Freight",
		Types: []core.TransportType{core.TransportReefer},
		Lanes: []core.Lane{{Origin: "FR", Destination: "ES"}},
	})

	rec := ts.do(http.MethodPost, "/api/search",
		`{"type": "Reefer", "origin": "fr", "destination": " es "}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var result core.SearchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.Len(t, result.Carriers, 1)
	assert.Equal(t, "Iberia Freight", result.Carriers[0].Name)
}

func TestSearch_RejectsBadInput(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"type":`},
		{"unknown transport type", `{"type": "zeppelin"}`},
		{"bad origin", `{"origin": "FRA"}`},
		{"bad destination", `{"destination": "1X"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.do(http.MethodPost, "/api/search", tt.body, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestContact_Delivers(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/api/contact", validContactBody(), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, ts.sender.count())
}

func TestContact_RejectsInvalid(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/api/contact", `{"name": "Marie"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, ts.sender.count())
}

func TestContact_HoneypotLooksAccepted(t *testing.T) {
	ts := newTestServer(t)

	body := strings.Replace(validContactBody(), `"consent": true`,
		`"consent": true, "website": "https://spam.example"`, 1)
	rec := ts.do(http.MethodPost, "/api/contact", body, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, ts.sender.count())
}

func TestContact_RateLimitPerForwardedIP(t *testing.T) {
	ts := newTestServer(t)

	from := func(ip string) http.Header {
		return http.Header{"X-Forwarded-For": []string{ip + ", 10.0.0.1"}}
	}

	for i := 0; i < mail.ContactMaxCalls; i++ {
		rec := ts.do(http.MethodPost, "/api/contact", validContactBody(), from("203.0.113.7"))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := ts.do(http.MethodPost, "/api/contact", validContactBody(), from("203.0.113.7"))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// The first forwarded hop is the key, so another IP is unaffected.
	rec = ts.do(http.MethodPost, "/api/contact", validContactBody(), from("198.51.100.4"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestContact_SenderFailureIs500(t *testing.T) {
	ts := newTestServer(t)
	ts.sender.err = mail.ErrNotConfigured

	rec := ts.do(http.MethodPost, "/api/contact", validContactBody(), nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "smtp", "transport details must stay internal")
}

func TestContact_UnavailableWithoutRelay(t *testing.T) {
	engine, err := suggest.NewEngine(
		ai.NewConfig(ai.WithCallTimeout(time.Second)),
		nil,
		ratelimit.New(),
	)
	require.NoError(t, err)
	searcher, err := search.NewSearcher(nil, engine)
	require.NoError(t, err)

	srv, err := New(searcher, nil)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(validContactBody()))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
