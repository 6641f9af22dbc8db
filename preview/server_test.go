package preview

import (
	"bytes"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/lixenwraith/backdrop/config"
)

func newTestServer() (*Server, *config.Config) {
	cfg := config.Default()
	cfg.Preview.Width, cfg.Preview.Height = 32, 32
	cfg.Preview.Frames = 2
	cfg.Preview.MaxFrames = 3
	return NewServer(cfg, zap.NewNop()), cfg
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	s, _ := newTestServer()
	w := get(t, s, "/healthz")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body["status"] != "ok" {
		t.Errorf("Unexpected body %q (%v)", w.Body.String(), err)
	}
}

func TestEffectsList(t *testing.T) {
	s, _ := newTestServer()
	w := get(t, s, "/effects")
	var body struct {
		Effects []string `json:"effects"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Effects) != len(config.Effects) {
		t.Errorf("Expected %d effects, got %v", len(config.Effects), body.Effects)
	}
}

func TestRenderEndpoint(t *testing.T) {
	s, _ := newTestServer()
	w := get(t, s, "/render/particles.png?seed=1&x=16&y=16")

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected image/png, got %q", ct)
	}
	if w.Header().Get("X-Frames") != "2" {
		t.Errorf("Expected default 2 frames, got %q", w.Header().Get("X-Frames"))
	}
	if w.Header().Get("X-Spawned") != "200" {
		t.Errorf("Expected 200 spawned, got %q", w.Header().Get("X-Spawned"))
	}

	img, err := png.Decode(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatalf("Expected PNG body: %v", err)
	}
	if img.Bounds().Dx() != 32 {
		t.Errorf("Expected 32px wide, got %d", img.Bounds().Dx())
	}
}

func TestRenderEndpointClampsFrames(t *testing.T) {
	s, _ := newTestServer()
	w := get(t, s, "/render/grid.png?frames=100&width=16&height=8")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if w.Header().Get("X-Frames") != "3" {
		t.Errorf("Expected frames clamped to 3, got %q", w.Header().Get("X-Frames"))
	}
}

func TestRenderEndpointErrors(t *testing.T) {
	s, _ := newTestServer()

	tests := []struct {
		path string
		code int
	}{
		{"/render/fireworks.png", http.StatusNotFound},
		{"/render/particles", http.StatusNotFound},
		{"/render/particles.png?frames=lots", http.StatusBadRequest},
		{"/render/particles.png?seed=-1", http.StatusBadRequest},
		{"/render/particles.png?x=1&y=up", http.StatusBadRequest},
		{"/render/particles.png?width=0", http.StatusBadRequest},
	}
	for _, tt := range tests {
		if w := get(t, s, tt.path); w.Code != tt.code {
			t.Errorf("%s: expected %d, got %d", tt.path, tt.code, w.Code)
		}
	}
}
