package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"deckflow/pkg/pipeline"
	"deckflow/pkg/spec"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	runner := pipeline.NewRunner(nil, nil, logger)
	srv := httptest.NewServer(NewRouter(runner, logger))
	t.Cleanup(srv.Close)
	return srv
}

func TestHealth(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var body HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Status != "ok" {
		t.Errorf("Status = %q", body.Status)
	}
}

func TestThemes(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/themes")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var body ThemesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if len(body.Themes) < 4 {
		t.Errorf("got %d themes, want at least the built-in presets", len(body.Themes))
	}
	for _, th := range body.Themes {
		if th.Name == "" || !strings.HasPrefix(th.Background, "#") {
			t.Errorf("incomplete theme entry: %+v", th)
		}
	}
}

func TestGenerate(t *testing.T) {
	srv := testServer(t)

	payload := `{"topic":"Photosynthesis","slide_count":5,"formats":["svg","json"]}`
	resp, err := http.Post(srv.URL+"/generate", "application/json", strings.NewReader(payload))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		t.Fatalf("status = %d, body = %s", resp.StatusCode, raw)
	}
	if got := resp.Header.Get("X-Request-ID"); got == "" {
		t.Error("response missing request id")
	}

	var body GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if err := spec.CheckInvariants(&body.Spec, 5); err != nil {
		t.Errorf("returned spec: %v", err)
	}
	if len(body.Plans) != 5 {
		t.Errorf("len(Plans) = %d", len(body.Plans))
	}
	if _, ok := body.Artifacts["deck.json"]; !ok {
		t.Error("deck.json artifact missing")
	}
	for name, data := range body.Artifacts {
		if strings.HasSuffix(name, ".svg") && !bytes.HasPrefix(data, []byte("<svg ")) {
			t.Errorf("artifact %s is not an SVG document", name)
		}
	}
}

func TestGenerateEchoesClientRequestID(t *testing.T) {
	srv := testServer(t)

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/health", nil)
	req.Header.Set("X-Request-ID", "test-id-123")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	if got := resp.Header.Get("X-Request-ID"); got != "test-id-123" {
		t.Errorf("request id = %q, want echo of client id", got)
	}
}

func TestGenerateValidation(t *testing.T) {
	srv := testServer(t)

	tests := []struct {
		name    string
		payload string
	}{
		{"broken json", `{"topic": `},
		{"topic too short", `{"topic":"x"}`},
		{"slide count out of range", `{"topic":"Kafka","slide_count":99}`},
		{"unknown format", `{"topic":"Kafka","formats":["gif"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+"/generate", "application/json", strings.NewReader(tt.payload))
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
			var body errResponse
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatal(err)
			}
			if body.Error == "" {
				t.Error("error body missing message")
			}
		})
	}
}
