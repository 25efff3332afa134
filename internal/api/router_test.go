package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/admin-scaffold/demo-backend/internal/core/service"
)

func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()
	log := zerolog.Nop()
	return NewRouter(Dependencies{
		Store:    service.NewDomainStore(log, service.WithFetchLatency(time.Millisecond)),
		MockAPI:  service.NewMockAPIService(0, log),
		App:      service.NewAppStore(nil, log),
		Counter:  service.NewCounterStore(),
		Registry: prometheus.NewRegistry(),
	}, log)
}

func do(t *testing.T, e *echo.Echo, method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

var admin = map[string]string{"Authorization": "Admin-Token"}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json %q: %v", rec.Body.String(), err)
	}
	return out
}

func TestRouter_MockLoginAndUserInfo(t *testing.T) {
	e := newTestRouter(t)

	rec := do(t, e, http.MethodPost, "/api/login", `{"username":"admin","password":"123456"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decode(t, rec)
	if body["code"] != float64(200) {
		t.Fatalf("expected code 200, got %v", body["code"])
	}
	token := body["data"].(map[string]any)["token"]
	if token != "Admin-Token" {
		t.Fatalf("unexpected token %v", token)
	}

	rec = do(t, e, http.MethodPost, "/api/login", `{"username":"admin","password":"nope"}`, nil)
	body = decode(t, rec)
	if rec.Code != http.StatusOK || body["code"] != float64(201) {
		t.Fatalf("expected envelope 201 over HTTP 200, got %d %v", rec.Code, body)
	}
	if msg := body["data"].(map[string]any)["message"]; msg != "账号或者密码不正确" {
		t.Fatalf("unexpected message %v", msg)
	}

	rec = do(t, e, http.MethodGet, "/api/user/info", "", map[string]string{"Authorization": "System-Token"})
	body = decode(t, rec)
	data := body["data"].(map[string]any)
	if body["code"] != float64(200) || data["username"] != "system" || data["userId"] != float64(2) {
		t.Fatalf("unexpected user info %v", body)
	}

	rec = do(t, e, http.MethodGet, "/api/user/info", "", map[string]string{"Authorization": "bogus"})
	body = decode(t, rec)
	if body["code"] != float64(201) {
		t.Fatalf("expected code 201, got %v", body)
	}
}

func TestRouter_CreateUserRequiresButton(t *testing.T) {
	e := newTestRouter(t)
	payload := `{"name":"赵六","email":"zhaoliu@example.com","role":"user"}`

	if rec := do(t, e, http.MethodPost, "/api/users", payload, nil); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	rec := do(t, e, http.MethodPost, "/api/users", payload, map[string]string{"Authorization": "Bearer Admin-Token"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	user := decode(t, rec)
	if user["id"] != float64(4) || user["status"] != "active" {
		t.Fatalf("unexpected user %v", user)
	}

	rec = do(t, e, http.MethodPost, "/api/users", `{"name":"x","email":"bad","role":"root"}`, map[string]string{"Authorization": "Admin-Token"})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestRouter_ListFilters(t *testing.T) {
	e := newTestRouter(t)

	cases := []struct {
		query string
		total float64
	}{
		{"", 3},
		{"?status=active", 2},
		{"?status=inactive", 1},
		{"?role=admin", 1},
		{"?q=example.com&status=active", 2},
		{"?q=lisi&role=admin", 0},
	}
	for _, tc := range cases {
		rec := do(t, e, http.MethodGet, "/api/users"+tc.query, "", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", tc.query, rec.Code)
		}
		if got := decode(t, rec)["total"]; got != tc.total {
			t.Fatalf("%s: expected total %v, got %v", tc.query, tc.total, got)
		}
	}

	if rec := do(t, e, http.MethodGet, "/api/users?role=root", "", nil); rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for unknown role, got %d", rec.Code)
	}
}

func TestRouter_SessionAndTodos(t *testing.T) {
	e := newTestRouter(t)

	if rec := do(t, e, http.MethodPost, "/api/todos", `{"text":"x"}`, nil); rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 without session, got %d", rec.Code)
	}
	if rec := do(t, e, http.MethodPatch, "/api/session/profile", `{"name":"x"}`, nil); rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 without session, got %d", rec.Code)
	}
	if rec := do(t, e, http.MethodPost, "/api/session", `{"user_id":99}`, nil); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown user, got %d", rec.Code)
	}

	rec := do(t, e, http.MethodPost, "/api/session", `{"user_id":2}`, nil)
	if rec.Code != http.StatusOK || decode(t, rec)["is_logged_in"] != true {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}

	if rec := do(t, e, http.MethodPost, "/api/todos", `{"text":"   "}`, nil); rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for blank text, got %d", rec.Code)
	}
	rec = do(t, e, http.MethodPost, "/api/todos", `{"text":"写周报"}`, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if owner := decode(t, rec)["user_id"]; owner != float64(2) {
		t.Fatalf("expected owner 2, got %v", owner)
	}

	rec = do(t, e, http.MethodGet, "/api/todos", "", nil)
	todos := decode(t, rec)
	if len(todos["items"].([]any)) != 3 || todos["completed"] != float64(1) || todos["uncompleted"] != float64(2) {
		t.Fatalf("unexpected todos %v", todos)
	}

	if rec := do(t, e, http.MethodPost, "/api/todos/99/toggle", "", nil); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if rec := do(t, e, http.MethodDelete, "/api/todos/abc", "", nil); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	if rec := do(t, e, http.MethodDelete, "/api/session", "", nil); rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if decode(t, do(t, e, http.MethodGet, "/api/session", "", nil))["is_logged_in"] != false {
		t.Fatalf("expected logged out")
	}
}

func TestRouter_ResetAndStats(t *testing.T) {
	e := newTestRouter(t)

	stats := decode(t, do(t, e, http.MethodGet, "/api/stats", "", nil))
	if stats["user_count"] != float64(3) || stats["admin_user_count"] != float64(1) {
		t.Fatalf("unexpected stats %v", stats)
	}

	if rec := do(t, e, http.MethodPost, "/api/store/reset", "", nil); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
	if rec := do(t, e, http.MethodPost, "/api/store/reset", "", admin); rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	stats = decode(t, do(t, e, http.MethodGet, "/api/stats", "", nil))
	for _, k := range []string{"user_count", "active_user_count", "admin_user_count", "user_todo_count"} {
		if stats[k] != float64(0) {
			t.Fatalf("expected %s to be 0 after reset, got %v", k, stats[k])
		}
	}
}

func TestRouter_FetchUsers(t *testing.T) {
	e := newTestRouter(t)

	rec := do(t, e, http.MethodGet, "/api/users/fetch", "", nil)
	if rec.Code != http.StatusOK || decode(t, rec)["total"] != float64(3) {
		t.Fatalf("unexpected fetch response %d %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_AppAndCounter(t *testing.T) {
	e := newTestRouter(t)

	theme := decode(t, do(t, e, http.MethodPost, "/api/app/theme/toggle", "", nil))
	if theme["theme"] != "dark" {
		t.Fatalf("expected dark, got %v", theme)
	}
	if rec := do(t, e, http.MethodPut, "/api/app/theme", `{"theme":"neon"}`, nil); rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	if rec := do(t, e, http.MethodPut, "/api/app/sidebar", `{}`, nil); rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for missing flag, got %d", rec.Code)
	}
	do(t, e, http.MethodPost, "/api/app/breadcrumbs", `{"name":"首页","path":"/"}`, nil)
	state := decode(t, do(t, e, http.MethodGet, "/api/app", "", nil))
	if len(state["breadcrumbs"].([]any)) != 1 {
		t.Fatalf("expected one breadcrumb, got %v", state)
	}

	do(t, e, http.MethodPost, "/api/counter/increment", "", nil)
	counter := decode(t, do(t, e, http.MethodPut, "/api/counter/name", `{"name":"小红"}`, nil))
	if counter["count"] != float64(1) || counter["double_count"] != float64(2) || counter["greeting"] != "你好，小红！" {
		t.Fatalf("unexpected counter %v", counter)
	}
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	e := newTestRouter(t)

	if rec := do(t, e, http.MethodGet, "/health", "", nil); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	rec := do(t, e, http.MethodGet, "/health/ready", "", nil)
	if rec.Code != http.StatusOK || decode(t, rec)["status"] != "ok" {
		t.Fatalf("expected ready without backing stores, got %d %s", rec.Code, rec.Body.String())
	}
	if rec := do(t, e, http.MethodGet, "/metrics", "", nil); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /metrics, got %d", rec.Code)
	}
}

func TestRouter_LoginRateLimit(t *testing.T) {
	log := zerolog.Nop()
	e := NewRouter(Dependencies{
		Store:      service.NewDomainStore(log),
		MockAPI:    service.NewMockAPIService(0, log),
		App:        service.NewAppStore(nil, log),
		Counter:    service.NewCounterStore(),
		Registry:   prometheus.NewRegistry(),
		LoginRate:  0.01,
		LoginBurst: 1,
	}, log)

	body := `{"username":"admin","password":"123456"}`
	if rec := do(t, e, http.MethodPost, "/api/login", body, nil); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec := do(t, e, http.MethodPost, "/api/login", body, nil); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	// other routes are not limited
	if rec := do(t, e, http.MethodGet, "/api/user/info", "", map[string]string{"Authorization": "Admin-Token"}); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRouter_EscapedMarkupIsStripped(t *testing.T) {
	e := newTestRouter(t)
	if rec := do(t, e, http.MethodPost, "/api/session", `{"user_id":1}`, nil); rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d", rec.Code)
	}

	rec := do(t, e, http.MethodPost, "/api/todos", `{"text":"&lt;script&gt;alert(1)&lt;/script&gt;"}`, nil)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for text that is only markup, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = do(t, e, http.MethodPost, "/api/todos", `{"text":"&lt;b&gt;买菜&lt;/b&gt;"}`, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if text := decode(t, rec)["text"]; text != "买菜" {
		t.Fatalf("expected markup to be stripped, got %q", text)
	}
}

func TestRouter_NamesBlankAfterCleaningAreRejected(t *testing.T) {
	e := newTestRouter(t)

	rec := do(t, e, http.MethodPost, "/api/users", `{"name":"<b></b>","email":"x@example.com","role":"user"}`, admin)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("create: expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
	if msg := decode(t, rec)["error"]; msg != "name must not be blank" {
		t.Fatalf("create: unexpected message %v", msg)
	}

	rec = do(t, e, http.MethodPatch, "/api/users/2", `{"name":"<i> </i>"}`, admin)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("update: expected 422, got %d: %s", rec.Code, rec.Body.String())
	}

	if rec := do(t, e, http.MethodPost, "/api/session", `{"user_id":2}`, nil); rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d", rec.Code)
	}
	rec = do(t, e, http.MethodPatch, "/api/session/profile", `{"name":"&lt;b&gt;&lt;/b&gt;"}`, nil)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("profile: expected 422, got %d: %s", rec.Code, rec.Body.String())
	}

	users := decode(t, do(t, e, http.MethodGet, "/api/users", "", nil))
	if users["total"] != float64(3) {
		t.Fatalf("expected no user to be added, got %v", users["total"])
	}
	for _, u := range users["items"].([]any) {
		if u.(map[string]any)["name"] == "" {
			t.Fatalf("a user was stored with an empty name: %v", u)
		}
	}
}

func TestRouter_UserWritesRequireButton(t *testing.T) {
	e := newTestRouter(t)

	cases := []struct {
		method, path, body string
	}{
		{http.MethodPatch, "/api/users/2", `{"role":"admin"}`},
		{http.MethodPost, "/api/users/2/toggle-status", ""},
		{http.MethodDelete, "/api/users/2", ""},
	}
	for _, tc := range cases {
		if rec := do(t, e, tc.method, tc.path, tc.body, nil); rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401 without token, got %d", tc.method, tc.path, rec.Code)
		}
	}

	rec := do(t, e, http.MethodPatch, "/api/users/2", `{"role":"admin"}`, admin)
	if rec.Code != http.StatusOK || decode(t, rec)["role"] != "admin" {
		t.Fatalf("update with token: %d %s", rec.Code, rec.Body.String())
	}
	rec = do(t, e, http.MethodPost, "/api/users/2/toggle-status", "", admin)
	if rec.Code != http.StatusOK || decode(t, rec)["status"] != "inactive" {
		t.Fatalf("toggle with token: %d %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_MockBodyLimit(t *testing.T) {
	e := newTestRouter(t)

	big := `{"username":"admin","password":"` + strings.Repeat("x", 32*1024) + `"}`
	if rec := do(t, e, http.MethodPost, "/api/login", big, nil); rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", rec.Code)
	}
}
