package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	controller "golang-sportplans/controllers"
	"golang-sportplans/database"
	"golang-sportplans/helpers"

	"github.com/gin-gonic/gin"
)

type testServer struct {
	router *gin.Engine
	tokens *helpers.TokenManager
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("db open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	tokens := helpers.NewTokenManager("test-secret", time.Hour)
	ctl := controller.New(database.NewStore(db), tokens)
	return &testServer{router: Setup(ctl, tokens, nil), tokens: tokens}
}

func (s *testServer) token(t *testing.T, id int64, role string) string {
	t.Helper()
	token, err := s.tokens.Issue(helpers.Identity{ID: id, Username: "u", Role: role})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	return token
}

func (s *testServer) do(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func expect(t *testing.T, w *httptest.ResponseRecorder, status int) {
	t.Helper()
	if w.Code != status {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, status, w.Body.String())
	}
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

func TestHealthAndRoot(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/", "", "")
	expect(t, w, http.StatusOK)
	if w.Body.String() != "Hello World!" {
		t.Fatalf("root body = %q", w.Body.String())
	}
	expect(t, s.do(t, http.MethodGet, "/health", "", ""), http.StatusOK)

	w = s.do(t, http.MethodGet, "/metrics", "", "")
	expect(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), "http_requests_total") {
		t.Fatalf("metrics missing request counter")
	}
}

func TestRegisterLoginRenew(t *testing.T) {
	s := newTestServer(t)
	creds := `{"username":"ana","password":"s3cret-pass"}`

	w := s.do(t, http.MethodPost, "/users/register", "", creds)
	expect(t, w, http.StatusCreated)
	var registered struct{ Message, Token string }
	decode(t, w, &registered)
	if registered.Message != "User registered successfully." {
		t.Fatalf("message = %q", registered.Message)
	}
	claims, err := s.tokens.Verify(registered.Token)
	if err != nil {
		t.Fatalf("registration token: %v", err)
	}
	if claims.Role != helpers.RoleUser || claims.Username != "ana" {
		t.Fatalf("claims = %+v", claims)
	}

	w = s.do(t, http.MethodPost, "/users/register", "", creds)
	expect(t, w, http.StatusBadRequest)
	var failure map[string]string
	decode(t, w, &failure)
	if failure["message"] != "Username already exists." {
		t.Fatalf("duplicate body = %v", failure)
	}

	w = s.do(t, http.MethodPost, "/users/register", "", `{"username":"bo"}`)
	expect(t, w, http.StatusBadRequest)

	w = s.do(t, http.MethodPost, "/users/login", "", creds)
	expect(t, w, http.StatusOK)
	var login struct{ Message, Token string }
	decode(t, w, &login)
	if login.Message != "Login successful." {
		t.Fatalf("login message = %q", login.Message)
	}

	badPassword := s.do(t, http.MethodPost, "/users/login", "", `{"username":"ana","password":"nope"}`)
	unknownUser := s.do(t, http.MethodPost, "/users/login", "", `{"username":"zed","password":"nope"}`)
	expect(t, badPassword, http.StatusBadRequest)
	expect(t, unknownUser, http.StatusBadRequest)
	if badPassword.Body.String() != unknownUser.Body.String() {
		t.Fatalf("login failures differ: %s vs %s", badPassword.Body.String(), unknownUser.Body.String())
	}

	w = s.do(t, http.MethodGet, "/users/me", login.Token, "")
	expect(t, w, http.StatusOK)
	if strings.Contains(w.Body.String(), "password") {
		t.Fatalf("profile leaks password: %s", w.Body.String())
	}

	w = s.do(t, http.MethodPost, "/users/renew", "", `{"token":"`+login.Token+`"}`)
	expect(t, w, http.StatusOK)
	expect(t, s.do(t, http.MethodPost, "/users/renew", "", `{}`), http.StatusBadRequest)

	w = s.do(t, http.MethodGet, "/users/me", "", "")
	expect(t, w, http.StatusUnauthorized)
	failure = nil
	decode(t, w, &failure)
	if failure["message"] != helpers.ErrUnauthenticated.Error() {
		t.Fatalf("guard body = %v", failure)
	}
	expect(t, s.do(t, http.MethodPost, "/users/renew", "", `{"token":"garbage"}`), http.StatusUnauthorized)
}

func TestPlanOwnership(t *testing.T) {
	s := newTestServer(t)
	owner := s.token(t, 7, helpers.RoleUser)
	stranger := s.token(t, 8, helpers.RoleUser)
	admin := s.token(t, 99, helpers.RoleAdmin)

	expect(t, s.do(t, http.MethodGet, "/plans", "", ""), http.StatusUnauthorized)

	w := s.do(t, http.MethodPost, "/plans", owner,
		`{"title":"5K Plan","length":30,"coach":"Ana","description":"Beginner 5K"}`)
	expect(t, w, http.StatusCreated)
	var created map[string]any
	decode(t, w, &created)
	want := map[string]any{
		"id": float64(1), "title": "5K Plan", "length": float64(30),
		"coach": "Ana", "description": "Beginner 5K", "user_id": float64(7),
	}
	if len(created) != len(want) {
		t.Fatalf("created = %v", created)
	}
	for k, v := range want {
		if created[k] != v {
			t.Fatalf("created[%s] = %v, want %v", k, created[k], v)
		}
	}

	expect(t, s.do(t, http.MethodDelete, "/plans/1", stranger, ""), http.StatusForbidden)
	expect(t, s.do(t, http.MethodPut, "/plans/1", stranger, `{"title":"mine","length":5}`), http.StatusForbidden)

	w = s.do(t, http.MethodPut, "/plans/1", owner, `{"title":"10K Plan","length":60}`)
	expect(t, w, http.StatusOK)
	if w.Body.String() != "Plan updated successfully" {
		t.Fatalf("update body = %q", w.Body.String())
	}
	expect(t, s.do(t, http.MethodPut, "/plans/1", owner, `{"title":"10K Plan","length":0}`), http.StatusUnprocessableEntity)

	w = s.do(t, http.MethodGet, "/plans/1", stranger, "")
	expect(t, w, http.StatusOK)
	var plan map[string]any
	decode(t, w, &plan)
	if plan["title"] != "10K Plan" || plan["user_id"] != float64(7) {
		t.Fatalf("plan after update = %v", plan)
	}

	expect(t, s.do(t, http.MethodDelete, "/plans/1", admin, ""), http.StatusOK)
	expect(t, s.do(t, http.MethodGet, "/plans/1", owner, ""), http.StatusNotFound)
	expect(t, s.do(t, http.MethodDelete, "/plans/1", owner, ""), http.StatusNotFound)
	expect(t, s.do(t, http.MethodGet, "/plans/abc", owner, ""), http.StatusBadRequest)
}

func TestExerciseRules(t *testing.T) {
	s := newTestServer(t)
	owner := s.token(t, 7, helpers.RoleUser)
	stranger := s.token(t, 8, helpers.RoleUser)
	admin := s.token(t, 99, helpers.RoleAdmin)

	expect(t, s.do(t, http.MethodPost, "/plans", owner, `{"title":"5K Plan","length":30}`), http.StatusCreated)
	expect(t, s.do(t, http.MethodPost, "/workouts", stranger,
		`{"plan_id":1,"name":"Easy run","length":30,"frequency":3}`), http.StatusForbidden)
	expect(t, s.do(t, http.MethodPost, "/workouts", owner,
		`{"plan_id":42,"name":"Easy run","length":30,"frequency":3}`), http.StatusNotFound)
	w := s.do(t, http.MethodPost, "/workouts", owner, `{"plan_id":1,"name":"Easy run","length":30,"type":"run","frequency":3}`)
	expect(t, w, http.StatusCreated)

	exercise := func(fields string) string { return `{"workout_id":1,"name":"Strides",` + fields + `}` }

	expect(t, s.do(t, http.MethodPost, "/exercises", stranger, exercise(`"sets":4,"reps":1,"restTime":60`)), http.StatusForbidden)

	for _, tc := range []struct {
		name   string
		token  string
		fields string
		want   int
	}{
		{"owner", owner, `"sets":4,"reps":1,"restTime":60`, http.StatusCreated},
		{"admin", admin, `"sets":4,"reps":1,"restTime":60,"tips":"relax"`, http.StatusCreated},
		{"zero rest", owner, `"sets":4,"reps":1,"restTime":0`, http.StatusCreated},
		{"zero sets", owner, `"sets":0,"reps":1,"restTime":60`, http.StatusUnprocessableEntity},
		{"zero reps", owner, `"sets":4,"reps":0,"restTime":60`, http.StatusUnprocessableEntity},
		{"negative rest", owner, `"sets":4,"reps":1,"restTime":-1`, http.StatusUnprocessableEntity},
		{"missing reps", owner, `"sets":4,"restTime":60`, http.StatusBadRequest},
		{"malformed", owner, `"sets":"four","reps":1,"restTime":60`, http.StatusBadRequest},
	} {
		t.Run(tc.name, func(t *testing.T) {
			w := s.do(t, http.MethodPost, "/exercises", tc.token, exercise(tc.fields))
			expect(t, w, tc.want)
			if tc.want != http.StatusCreated {
				return
			}
			var got map[string]any
			decode(t, w, &got)
			if id, ok := got["id"].(float64); !ok || id < 1 {
				t.Fatalf("created exercise has no id: %v", got)
			}
		})
	}

	w = s.do(t, http.MethodGet, "/workouts/1/exercises", stranger, "")
	expect(t, w, http.StatusOK)
	var listed []map[string]any
	decode(t, w, &listed)
	if len(listed) != 3 {
		t.Fatalf("listed %d exercises, want 3", len(listed))
	}

	w = s.do(t, http.MethodGet, "/exercises?recordPerPage=2&page=2", owner, "")
	expect(t, w, http.StatusOK)
	decode(t, w, &listed)
	if len(listed) != 1 {
		t.Fatalf("second page has %d exercises, want 1", len(listed))
	}

	expect(t, s.do(t, http.MethodGet, "/exercises?page=9223372036854775807&recordPerPage=10", owner, ""), http.StatusBadRequest)
	expect(t, s.do(t, http.MethodGet, "/workouts/9/exercises", owner, ""), http.StatusNotFound)
	expect(t, s.do(t, http.MethodPut, "/exercises/1", stranger,
		`{"name":"Hills","sets":6,"reps":1,"restTime":90}`), http.StatusForbidden)
	expect(t, s.do(t, http.MethodPut, "/exercises/1", owner,
		`{"name":"Hills","sets":6,"reps":1,"restTime":90}`), http.StatusOK)
	expect(t, s.do(t, http.MethodDelete, "/exercises/2", stranger, ""), http.StatusForbidden)
	expect(t, s.do(t, http.MethodDelete, "/exercises/2", owner, ""), http.StatusOK)
	expect(t, s.do(t, http.MethodDelete, "/exercises/2", owner, ""), http.StatusNotFound)

	expect(t, s.do(t, http.MethodDelete, "/workouts/1", owner, ""), http.StatusOK)
	expect(t, s.do(t, http.MethodGet, "/exercises/1", owner, ""), http.StatusNotFound)
}
