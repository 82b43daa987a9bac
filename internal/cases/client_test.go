package cases

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseEndpoint_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseEndpoint("")
	if err != nil {
		t.Fatalf("parseEndpoint returned error: %v", err)
	}
	if u.String() != defaultEndpoint {
		t.Fatalf("endpoint = %q, want %q", u.String(), defaultEndpoint)
	}

	u, err = parseEndpoint("  example.com:1234/get-cases#frag ")
	if err != nil {
		t.Fatalf("parseEndpoint returned error: %v", err)
	}
	if u.Scheme != "http" || u.Host != "example.com:1234" || u.Path != "/get-cases" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestParseEndpoint_RejectsMissingHost(t *testing.T) {
	if _, err := parseEndpoint("http:///only-path"); err == nil {
		t.Fatalf("parseEndpoint returned nil error, want missing host error")
	}
}

func TestClient_FetchSendsSingleGETWithHeaders(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	var gotMethod, gotAccept, gotUserAgent, gotRequestID, gotQuery string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		gotMethod = r.Method
		gotAccept = r.Header.Get("Accept")
		gotUserAgent = r.Header.Get("User-Agent")
		gotRequestID = r.Header.Get(RequestIDHeader)
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"cases":[
			{"id":1,"title":"Первый","organization":"Минфин","implementationYear":2021,"rulesGenerated":340,"efficiencyIncrease":12.5,"extra":"ignored"},
			{"id":2,"title":"Второй","status":"в эксплуатации"}
		]}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL + "/get-cases")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	got, err := c.Fetch(ctx)
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	want := []Record{
		{ID: 1, Title: "Первый", Organization: "Минфин", ImplementationYear: 2021, RulesGenerated: 340, EfficiencyIncrease: 12.5},
		{ID: 2, Title: "Второй", Status: "в эксплуатации"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Fetch records mismatch (-want +got):\n%s", diff)
	}

	if hits.Load() != 1 {
		t.Fatalf("server hits = %d, want 1", hits.Load())
	}
	if gotMethod != http.MethodGet {
		t.Fatalf("method = %q, want GET", gotMethod)
	}
	if gotQuery != "" {
		t.Fatalf("query = %q, want none", gotQuery)
	}
	if gotAccept != "application/json" {
		t.Fatalf("Accept = %q, want application/json", gotAccept)
	}
	if !strings.HasPrefix(gotUserAgent, "bureaucrat/") {
		t.Fatalf("User-Agent = %q, want bureaucrat/*", gotUserAgent)
	}
	if len(gotRequestID) != 36 {
		t.Fatalf("%s = %q, want a uuid", RequestIDHeader, gotRequestID)
	}
}

func TestClient_MissingCasesFieldIsEmpty(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	got, err := c.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("Fetch = %#v, want empty non-nil slice", got)
	}
}

func TestClient_HTTPErrorAndDecodeError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/broken":
			_, _ = w.Write([]byte("{not-json"))
		case "/down":
			http.Error(w, "nope", http.StatusInternalServerError)
		case "/moved":
			w.WriteHeader(http.StatusNotModified)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	tests := []struct {
		path    string
		wantErr string
	}{
		{"/broken", "decode response"},
		{"/down", "returned status 500"},
		{"/moved", "returned status 304"},
		{"/missing", "returned status 404"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			c, err := NewClient(server.URL + tt.path)
			if err != nil {
				t.Fatalf("NewClient returned error: %v", err)
			}
			_, err = c.Fetch(context.Background())
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Fetch error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestClient_TransportErrorIsWrapped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	c, err := NewClient(url, WithTimeout(500*time.Millisecond))
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.Fetch(context.Background())
	if err == nil || !strings.Contains(err.Error(), "execute request") {
		t.Fatalf("Fetch error = %v, want execute request error", err)
	}
}

func TestClient_LogsOutcomeWithRequestID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"cases":[{"id":7}]}`))
	}))
	t.Cleanup(server.Close)

	core, logs := observer.New(zapcore.DebugLevel)
	c, err := NewClient(server.URL, WithLogger(zap.New(core)), WithUserAgent("bureaucrat-test/1"))
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err := c.Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}

	entries := logs.FilterMessage("cases fetched").All()
	if len(entries) != 1 {
		t.Fatalf("log entries = %d, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["count"] != int64(1) {
		t.Fatalf("count field = %v, want 1", fields["count"])
	}
	if id, _ := fields["request_id"].(string); id == "" {
		t.Fatalf("request_id field missing: %v", fields)
	}
}

func TestClient_NilFetchErrors(t *testing.T) {
	var c *Client
	if _, err := c.Fetch(context.Background()); err == nil {
		t.Fatalf("Fetch on nil client returned nil error")
	}
	if c.Endpoint() != "" {
		t.Fatalf("Endpoint on nil client = %q, want empty", c.Endpoint())
	}
}
