package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/manoranjan-programmer/fiesta-ignitron/internal/config"
	"github.com/manoranjan-programmer/fiesta-ignitron/internal/database"
	"github.com/manoranjan-programmer/fiesta-ignitron/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func testRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db, err := database.Init(config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "router_test.db"),
	})
	if err != nil {
		t.Fatalf("init test db: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	cfg := &config.Config{
		Server: config.ServerConfig{Mode: gin.TestMode},
		Session: config.SessionConfig{
			CookieName: "fi_session",
			TTLHours:   24,
			Secret:     "test-secret",
		},
		Security: config.SecurityConfig{BcryptCost: 4},
		CORS:     config.CORSConfig{Origins: []string{"http://localhost:5173"}},
		Frontend: config.FrontendConfig{URL: "http://localhost:5173"},
	}
	return Setup(cfg, db), db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == "fi_session" && c.Value != "" {
			return c
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

func TestSignupLoginCheckLogoutFlow(t *testing.T) {
	r, _ := testRouter(t)

	// signup
	w := doJSON(t, r, http.MethodPost, "/api/signup", gin.H{
		"fullName": "Ada",
		"email":    "ada@x.com",
		"password": "pw123456",
	}, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("signup status = %d, want 201; body %s", w.Code, w.Body.String())
	}

	// login
	w = doJSON(t, r, http.MethodPost, "/api/login", gin.H{
		"email":    "ada@x.com",
		"password": "pw123456",
	}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, want 200; body %s", w.Code, w.Body.String())
	}
	cookie := sessionCookie(t, w)
	if !cookie.HttpOnly {
		t.Error("session cookie is not httpOnly")
	}

	// authenticated check
	w = doJSON(t, r, http.MethodGet, "/api/auth/check", nil, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("auth check status = %d, want 200; body %s", w.Code, w.Body.String())
	}
	var checkResp struct {
		Success bool `json:"success"`
		User    struct {
			Name string `json:"name"`
		} `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &checkResp); err != nil {
		t.Fatalf("decode check response: %v", err)
	}
	if !checkResp.Success || checkResp.User.Name != "Ada" {
		t.Errorf("check response = %s, want success with user Ada", w.Body.String())
	}

	// logout redirects to the frontend login page and clears the cookie
	w = doJSON(t, r, http.MethodGet, "/auth/logout", nil, cookie)
	if w.Code != http.StatusFound {
		t.Fatalf("logout status = %d, want 302", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "http://localhost:5173/login" {
		t.Errorf("logout redirect = %q, want frontend /login", loc)
	}

	// the old cookie no longer authenticates
	w = doJSON(t, r, http.MethodGet, "/api/auth/check", nil, cookie)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("check after logout status = %d, want 401", w.Code)
	}
}

func TestAuthCheck_NoSession(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/auth/check", nil, nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("check without cookie status = %d, want 401", w.Code)
	}
	var resp struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Success {
		t.Error("unauthenticated check reported success")
	}
}

func TestSignup_DuplicateAndBadInput(t *testing.T) {
	r, _ := testRouter(t)

	body := gin.H{"fullName": "Ada", "email": "ada@x.com", "password": "pw123456"}
	if w := doJSON(t, r, http.MethodPost, "/api/signup", body, nil); w.Code != http.StatusCreated {
		t.Fatalf("first signup status = %d, want 201", w.Code)
	}

	w := doJSON(t, r, http.MethodPost, "/api/signup", gin.H{
		"fullName": "Other", "email": "ADA@X.COM", "password": "pw123456",
	}, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("duplicate signup status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "already exists") {
		t.Errorf("duplicate signup body = %s, want user-exists message", w.Body.String())
	}

	// short password
	w = doJSON(t, r, http.MethodPost, "/api/signup", gin.H{
		"fullName": "Bob", "email": "bob@x.com", "password": "short",
	}, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("short-password signup status = %d, want 400", w.Code)
	}

	// malformed email
	w = doJSON(t, r, http.MethodPost, "/api/signup", gin.H{
		"fullName": "Bob", "email": "not-an-email", "password": "pw123456",
	}, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad-email signup status = %d, want 400", w.Code)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	r, _ := testRouter(t)

	doJSON(t, r, http.MethodPost, "/api/signup", gin.H{
		"fullName": "Ada", "email": "ada@x.com", "password": "pw123456",
	}, nil)

	// wrong password and unknown email produce identical responses
	w1 := doJSON(t, r, http.MethodPost, "/api/login", gin.H{
		"email": "ada@x.com", "password": "wrongpass",
	}, nil)
	w2 := doJSON(t, r, http.MethodPost, "/api/login", gin.H{
		"email": "nobody@x.com", "password": "pw123456",
	}, nil)
	if w1.Code != http.StatusBadRequest || w2.Code != http.StatusBadRequest {
		t.Errorf("invalid login statuses = %d, %d, want 400, 400", w1.Code, w2.Code)
	}
	if w1.Body.String() != w2.Body.String() {
		t.Errorf("wrong-password body %s differs from unknown-email body %s", w1.Body.String(), w2.Body.String())
	}
}

func TestSubmitTeam(t *testing.T) {
	r, db := testRouter(t)

	// unauthenticated submit is rejected outright
	team := gin.H{
		"teamName":     "Algorithmic Titans",
		"bids":         []string{"TimSort", "Radix Sort"},
		"selectedData": []string{"Small Random", "Strings"},
		"credits":      40,
		"score":        27.4,
	}
	if w := doJSON(t, r, http.MethodPost, "/api/submit-team", team, nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated submit status = %d, want 401", w.Code)
	}

	doJSON(t, r, http.MethodPost, "/api/signup", gin.H{
		"fullName": "Ada", "email": "ada@x.com", "password": "pw123456",
	}, nil)
	w := doJSON(t, r, http.MethodPost, "/api/login", gin.H{
		"email": "ada@x.com", "password": "pw123456",
	}, nil)
	cookie := sessionCookie(t, w)

	w = doJSON(t, r, http.MethodPost, "/api/submit-team", team, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("submit status = %d, want 200; body %s", w.Code, w.Body.String())
	}

	var stored models.Team
	if err := db.First(&stored).Error; err != nil {
		t.Fatalf("load stored team: %v", err)
	}
	if stored.TeamName != "Algorithmic Titans" {
		t.Errorf("stored team name = %q", stored.TeamName)
	}
	if stored.Score != 27.4 {
		t.Errorf("stored score = %v, want posted 27.4", stored.Score)
	}
	if stored.PublicID == "" {
		t.Error("stored team has no public id")
	}
	if len(stored.Bids) != 2 || len(stored.SelectedData) != 2 {
		t.Errorf("stored selections = %v / %v", stored.Bids, stored.SelectedData)
	}

	// empty selections are rejected
	w = doJSON(t, r, http.MethodPost, "/api/submit-team", gin.H{
		"teamName": "Empty", "bids": []string{}, "selectedData": []string{"Strings"},
	}, cookie)
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty-bids submit status = %d, want 400", w.Code)
	}
}

func TestSubmitTeam_ServerComputesMissingScore(t *testing.T) {
	r, db := testRouter(t)

	doJSON(t, r, http.MethodPost, "/api/signup", gin.H{
		"fullName": "Ada", "email": "ada@x.com", "password": "pw123456",
	}, nil)
	w := doJSON(t, r, http.MethodPost, "/api/login", gin.H{
		"email": "ada@x.com", "password": "pw123456",
	}, nil)
	cookie := sessionCookie(t, w)

	// no score field: TimSort on Small Random (9) + 100 credits -> 10
	w = doJSON(t, r, http.MethodPost, "/api/submit-team", gin.H{
		"teamName":     "NoScore",
		"bids":         []string{"TimSort"},
		"selectedData": []string{"Small Random"},
		"credits":      100,
	}, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("submit status = %d, want 200; body %s", w.Code, w.Body.String())
	}

	var stored models.Team
	if err := db.First(&stored).Error; err != nil {
		t.Fatalf("load stored team: %v", err)
	}
	if stored.Score != 10 {
		t.Errorf("computed score = %v, want 10", stored.Score)
	}
}

func TestTeamHistory(t *testing.T) {
	r, _ := testRouter(t)

	doJSON(t, r, http.MethodPost, "/api/signup", gin.H{
		"fullName": "Ada", "email": "ada@x.com", "password": "pw123456",
	}, nil)
	w := doJSON(t, r, http.MethodPost, "/api/login", gin.H{
		"email": "ada@x.com", "password": "pw123456",
	}, nil)
	cookie := sessionCookie(t, w)

	for _, name := range []string{"First", "Second"} {
		w = doJSON(t, r, http.MethodPost, "/api/submit-team", gin.H{
			"teamName":     name,
			"bids":         []string{"TimSort"},
			"selectedData": []string{"Strings"},
		}, cookie)
		if w.Code != http.StatusOK {
			t.Fatalf("submit %s status = %d", name, w.Code)
		}
	}

	w = doJSON(t, r, http.MethodGet, "/api/teams", nil, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("history status = %d, want 200; body %s", w.Code, w.Body.String())
	}
	var resp struct {
		Teams []struct {
			TeamName string  `json:"teamName"`
			Score    float64 `json:"score"`
		} `json:"teams"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if len(resp.Teams) != 2 {
		t.Fatalf("history length = %d, want 2", len(resp.Teams))
	}
}

func TestGoogleRedirect(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(t, r, http.MethodGet, "/auth/google", nil, nil)
	if w.Code != http.StatusFound {
		t.Fatalf("google redirect status = %d, want 302", w.Code)
	}
	loc := w.Header().Get("Location")
	if !strings.Contains(loc, "accounts.google.com") {
		t.Errorf("redirect location = %q, want Google authorize URL", loc)
	}
	if !strings.Contains(loc, "state=") {
		t.Errorf("redirect location %q carries no state parameter", loc)
	}
}

func TestGoogleCallback_BadStateRedirectsToLogin(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(t, r, http.MethodGet, "/auth/google/callback?state=forged&code=abc", nil, nil)
	if w.Code != http.StatusFound {
		t.Fatalf("callback status = %d, want 302", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "http://localhost:5173/login" {
		t.Errorf("callback redirect = %q, want frontend /login", loc)
	}
}

func TestCORS(t *testing.T) {
	r, _ := testRouter(t)

	preflight := func(origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/api/login", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", "POST")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := preflight("http://localhost:5173")
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("allowed origin echoed as %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("Allow-Credentials = %q, want true", got)
	}

	// vercel preview deployments are allowed by suffix
	w = preflight("https://fiesta-ignitron-git-main.vercel.app")
	if got := w.Header().Get("Access-Control-Allow-Origin"); got == "" {
		t.Error("vercel preview origin was not allowed")
	}

	// anything else is not echoed back
	w = preflight("https://evil.example.com")
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("disallowed origin echoed as %q", got)
	}
}
