package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang-sportplans/helpers"

	"github.com/gin-gonic/gin"
)

func newAuthRouter(tokens *helpers.TokenManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/private", Authentication(tokens), func(c *gin.Context) {
		who, ok := CurrentIdentity(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, who)
	})
	return r
}

func TestAuthentication(t *testing.T) {
	tokens := helpers.NewTokenManager("test-secret", time.Hour)
	other := helpers.NewTokenManager("other-secret", time.Hour)

	valid, err := tokens.Issue(helpers.Identity{ID: 7, Username: "ana", Role: helpers.RoleUser})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	foreign, _ := other.Issue(helpers.Identity{ID: 7, Username: "ana", Role: helpers.RoleUser})
	coach, _ := tokens.Issue(helpers.Identity{ID: 7, Username: "ana", Role: "coach"})

	tests := []struct {
		name    string
		header  string
		want    int
		wantErr string
	}{
		{"no header", "", http.StatusUnauthorized, helpers.ErrUnauthenticated.Error()},
		{"no bearer prefix", valid, http.StatusUnauthorized, helpers.ErrUnauthenticated.Error()},
		{"empty bearer", "Bearer ", http.StatusUnauthorized, helpers.ErrUnauthenticated.Error()},
		{"garbage token", "Bearer abc.def.ghi", http.StatusForbidden, helpers.ErrInvalidToken.Error()},
		{"foreign secret", "Bearer " + foreign, http.StatusForbidden, helpers.ErrInvalidToken.Error()},
		{"unknown role", "Bearer " + coach, http.StatusForbidden, helpers.ErrForbidden.Error()},
		{"valid", "Bearer " + valid, http.StatusOK, ""},
	}

	r := newAuthRouter(tokens)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.want, w.Body.String())
			}
			if tt.wantErr == "" {
				var who helpers.Identity
				if err := json.Unmarshal(w.Body.Bytes(), &who); err != nil {
					t.Fatalf("decode identity: %v", err)
				}
				if who.ID != 7 || who.Role != helpers.RoleUser {
					t.Fatalf("identity = %+v", who)
				}
				return
			}
			var body map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if body["message"] != tt.wantErr {
				t.Fatalf("message = %q, want %q", body["message"], tt.wantErr)
			}
		})
	}
}

func TestRequestIDIsKeptOrGenerated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, RequestIDFrom(c)) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Body.String() != "abc-123" || w.Header().Get("X-Request-ID") != "abc-123" {
		t.Fatalf("kept id: body %q header %q", w.Body.String(), w.Header().Get("X-Request-ID"))
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if len(w.Body.String()) != 36 {
		t.Fatalf("generated id = %q", w.Body.String())
	}
}
