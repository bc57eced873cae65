package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ganttline/pkg/pipeline"
)

const chartJSON = `{
  "view_mode": "day",
  "tasks": [
    {"id": "a", "name": "Design", "start": "2024-01-01", "end": "2024-01-03"},
    {"id": "b", "name": "Build", "start": "2024-01-03", "end": "2024-01-05", "depends_on": ["a"]}
  ]
}`

const chartYAML = `view_mode: week
tasks:
  - id: a
    name: Design
    start: 2024-01-01
    end: 2024-01-03
`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	s := New(pipeline.NewRunner(nil, nil, nil), log.New(io.Discard), Options{
		Defaults: pipeline.DefaultOptions(),
	})
	ts := httptest.NewServer(s)
	t.Cleanup(ts.Close)
	return ts
}

func post(t *testing.T, url, contentType, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, url, strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func readBody(t *testing.T, resp *http.Response) []byte {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "ok" {
		t.Errorf("status = %q, want ok", body["status"])
	}
	if resp.Header.Get(RequestIDHeader) == "" {
		t.Error("response has no request id")
	}
}

func TestRender(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name        string
		query       string
		contentType string
		body        string
		wantType    string
		wantPrefix  string
	}{
		{"svg by default", "", "", chartJSON, "image/svg+xml", "<svg"},
		{"json format", "?format=json", "application/json", chartJSON, "application/json", "{"},
		{"yaml body", "?format=svg", "application/yaml", chartYAML, "image/svg+xml", "<svg"},
		{"view override", "?view=month&rtl=true&now=2024-01-02T12:00:00Z", "", chartJSON, "image/svg+xml", "<svg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, ts.URL+"/v1/render"+tt.query, tt.contentType, tt.body)
			body := readBody(t, resp)
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d, body %s", resp.StatusCode, body)
			}
			if got := resp.Header.Get("Content-Type"); got != tt.wantType {
				t.Errorf("Content-Type = %q, want %q", got, tt.wantType)
			}
			if !bytes.HasPrefix(body, []byte(tt.wantPrefix)) {
				t.Errorf("body = %.40q, want prefix %q", body, tt.wantPrefix)
			}
		})
	}
}

func TestLayout(t *testing.T) {
	ts := newTestServer(t)
	resp := post(t, ts.URL+"/v1/layout?now=2024-01-02T12:00:00Z", "application/json", chartJSON)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var out struct {
		Bars []struct {
			ID string `json:"id"`
		} `json:"bars"`
		Arrows []struct {
			From string `json:"from"`
			To   string `json:"to"`
			D    string `json:"d"`
		} `json:"arrows"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if len(out.Bars) != 2 || len(out.Arrows) != 1 {
		t.Fatalf("got %d bars, %d arrows, want 2, 1", len(out.Bars), len(out.Arrows))
	}
	if a := out.Arrows[0]; a.From != "a" || a.To != "b" || !strings.HasPrefix(a.D, "M ") {
		t.Errorf("arrow = %+v", a)
	}
}

func TestRenderErrors(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name        string
		query       string
		contentType string
		body        string
		wantStatus  int
		wantCode    string
	}{
		{"unknown format", "?format=gif", "", chartJSON, http.StatusBadRequest, "INVALID_FORMAT"},
		{"unknown view", "?view=decade", "", chartJSON, http.StatusBadRequest, "INVALID_VIEW_MODE"},
		{"bad rtl", "?rtl=maybe", "", chartJSON, http.StatusBadRequest, "INVALID_INPUT"},
		{"bad now", "?now=yesterday", "", chartJSON, http.StatusBadRequest, "INVALID_INPUT"},
		{"bad content type", "", "text/html", chartJSON, http.StatusBadRequest, "INVALID_FORMAT"},
		{"malformed body", "", "", "{", http.StatusBadRequest, "INVALID_INPUT"},
		{"unknown dependency", "", "", `{"tasks":[{"id":"a","start":"2024-01-01","end":"2024-01-02","depends_on":["x"]}]}`,
			http.StatusBadRequest, "UNKNOWN_TASK"},
		{"too many columns", "?view=hour", "", `{"tasks":[{"id":"a","start":"1900-01-01","end":"2100-01-01"}]}`,
			http.StatusBadRequest, "INVALID_INPUT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, ts.URL+"/v1/render"+tt.query, tt.contentType, tt.body)
			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			var body map[string]string
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatal(err)
			}
			if body["code"] != tt.wantCode {
				t.Errorf("code = %q, want %q (error %q)", body["code"], tt.wantCode, body["error"])
			}
		})
	}
}

func TestRequestIDPropagates(t *testing.T) {
	ts := newTestServer(t)
	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if got := resp.Header.Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("%s = %q, want abc-123", RequestIDHeader, got)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/v1/render")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", resp.StatusCode)
	}
}

func TestRenderBodyTooLarge(t *testing.T) {
	s := New(pipeline.NewRunner(nil, nil, nil), log.New(io.Discard), Options{
		Defaults: pipeline.DefaultOptions(),
	})

	for _, contentType := range []string{"application/json", "application/yaml", "application/toml"} {
		t.Run(contentType, func(t *testing.T) {
			body := strings.Repeat(" ", maxBodyBytes+1)
			req := httptest.NewRequest(http.MethodPost, "/v1/render", strings.NewReader(body))
			req.Header.Set("Content-Type", contentType)
			rec := httptest.NewRecorder()
			s.ServeHTTP(rec, req)

			if rec.Code != http.StatusRequestEntityTooLarge {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, http.StatusRequestEntityTooLarge, rec.Body)
			}
			var got map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
				t.Fatal(err)
			}
			if got["code"] != "TOO_LARGE" {
				t.Errorf("code = %q, want TOO_LARGE", got["code"])
			}
		})
	}
}
