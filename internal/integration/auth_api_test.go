package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"rexagon/internal/config"
	httpServer "rexagon/internal/http"
	"rexagon/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	pool := setupDB(t)
	service.InitJWTWithSecret("test-secret")

	cfg := &config.Config{
		APIRateLimit:   1000,
		APIRateWindow:  60,
		AuthRateLimit:  1000,
		AuthRateWindow: 60,
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	httpServer.RegisterRoutes(r, pool, nil, service.NewFulfillmentService("", "", 0), cfg, "test")

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body map[string]any, token string) (*http.Response, map[string]any) {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer res.Body.Close()

	var out map[string]any
	_ = json.NewDecoder(res.Body).Decode(&out)
	return res, out
}

func registerBody(username string) map[string]any {
	return map[string]any{
		"kullanici_adi":       username,
		"email":               fmt.Sprintf("%s@example.com", username),
		"sifre":               "sifre123",
		"dogum_tarihi":        "2000-01-01",
		"gizlilik_sozlesmesi": true,
	}
}

func TestAuthAPI_RegisterLoginMe(t *testing.T) {
	srv := newTestServer(t)
	username := "api_" + uuid.NewString()[:8]

	res, body := postJSON(t, srv.URL+"/api/auth/kayit", registerBody(username), "")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("register: expected 200, got %d (%v)", res.StatusCode, body)
	}
	if body["access_token"] == nil {
		t.Fatalf("register: expected access_token, got %v", body)
	}

	res, body = postJSON(t, srv.URL+"/api/auth/giris", map[string]any{
		"kullanici_adi": username,
		"sifre":         "sifre123",
	}, "")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("login: expected 200, got %d (%v)", res.StatusCode, body)
	}
	token, _ := body["access_token"].(string)
	if token == "" {
		t.Fatalf("login: expected access_token, got %v", body)
	}

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	meRes, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("me request failed: %v", err)
	}
	defer meRes.Body.Close()
	if meRes.StatusCode != http.StatusOK {
		t.Fatalf("me: expected 200, got %d", meRes.StatusCode)
	}
	var me map[string]any
	if err := json.NewDecoder(meRes.Body).Decode(&me); err != nil {
		t.Fatalf("decode me: %v", err)
	}
	if me["kullanici_adi"] != username {
		t.Fatalf("me: expected username %s, got %v", username, me["kullanici_adi"])
	}
}

func TestAuthAPI_DuplicateUsername(t *testing.T) {
	srv := newTestServer(t)
	username := "api_" + uuid.NewString()[:8]

	res, _ := postJSON(t, srv.URL+"/api/auth/kayit", registerBody(username), "")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("first register: expected 200, got %d", res.StatusCode)
	}

	body := registerBody(username)
	body["email"] = fmt.Sprintf("other_%s@example.com", uuid.NewString()[:8])
	res, out := postJSON(t, srv.URL+"/api/auth/kayit", body, "")
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("duplicate register: expected 400, got %d (%v)", res.StatusCode, out)
	}
}

func TestAuthAPI_WrongPassword(t *testing.T) {
	srv := newTestServer(t)
	username := "api_" + uuid.NewString()[:8]

	if res, _ := postJSON(t, srv.URL+"/api/auth/kayit", registerBody(username), ""); res.StatusCode != http.StatusOK {
		t.Fatalf("register: expected 200, got %d", res.StatusCode)
	}

	res, _ := postJSON(t, srv.URL+"/api/auth/giris", map[string]any{
		"kullanici_adi": username,
		"sifre":         "yanlis-sifre",
	}, "")
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("login: expected 401, got %d", res.StatusCode)
	}
}

func TestAuthAPI_ConsentRequired(t *testing.T) {
	srv := newTestServer(t)
	body := registerBody("api_" + uuid.NewString()[:8])
	body["gizlilik_sozlesmesi"] = false

	res, out := postJSON(t, srv.URL+"/api/auth/kayit", body, "")
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 without consent, got %d (%v)", res.StatusCode, out)
	}
}
