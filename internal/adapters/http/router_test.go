package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nothingtosurprise/VisionClaw/internal/app"
	"github.com/nothingtosurprise/VisionClaw/internal/config"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Mode:       "test",
		StaticPath: t.TempDir(),
		ReadLimit:  65536,
		PingPeriod: 54 * time.Second,
		Secret:     "test-cookie-secret",
	}
	registry := app.NewRoomRegistry()
	issuer := app.NewCredentialIssuer("turn-secret", time.Hour,
		[]string{"stun:stun.example.org:3478"},
		[]string{"turn:turn.example.org:3478"})
	return SetupRouter(cfg, registry, issuer)
}

func TestHealthz(t *testing.T) {
	r := newRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestTURNEndpoint(t *testing.T) {
	r := newRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/turn", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body struct {
		ICEServers []struct {
			URLs       []string `json:"urls"`
			Username   string   `json:"username"`
			Credential string   `json:"credential"`
		} `json:"iceServers"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if len(body.ICEServers) != 2 {
		t.Fatalf("got %d ice servers, want 2", len(body.ICEServers))
	}
	turn := body.ICEServers[1]
	if turn.Username == "" || turn.Credential == "" {
		t.Error("TURN entry missing username/credential")
	}
}

func TestStatsEndpoint(t *testing.T) {
	r := newRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body struct {
		Rooms int `json:"rooms"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if body.Rooms != 0 {
		t.Errorf("rooms = %d, want 0", body.Rooms)
	}
}

func TestClientTokenCookieSet(t *testing.T) {
	r := newRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	r.ServeHTTP(w, req)

	if len(w.Result().Cookies()) == 0 {
		t.Error("no session cookie set on first request")
	}
}
