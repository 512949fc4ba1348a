package router

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestMatchWildcardRoute(t *testing.T) {
	tests := []struct {
		path    string
		pattern string
		want    bool
	}{
		{"/api/v1/sessions/abc/steps", "/api/v1/sessions/*/steps", true},
		{"/api/v1/sessions/abc/steps/order", "/api/v1/sessions/*/steps", false},
		{"/api/v1/sessions/abc/steps/order", "/api/v1/sessions/*/steps/order", true},
		{"/api/v1/sessions//steps", "/api/v1/sessions/*/steps", false},
		{"/api/v1/sessions/abc", "/api/v1/sessions/*", true},
		{"/api/v1/sessions/abc/script", "/api/v1/sessions/*", true},
		{"/api/v1/sessions", "/api/v1/sessions/*", false},
		{"/api/v1/sessions/", "/api/v1/sessions/*", false},
		{"/swagger/index.html", "/swagger/*", true},
		{"/other/abc", "/api/v1/sessions/*", false},
	}

	for _, tt := range tests {
		t.Run(tt.path+" "+tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.want, matchWildcardRoute(tt.path, tt.pattern))
		})
	}
}

func handlerWriting(body string) HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, body)
	}
}

func serve(r *Router, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestRouterDispatch(t *testing.T) {
	r := New(zerolog.Nop())
	r.POST("/api/v1/sessions", handlerWriting("create"))
	r.GET("/api/v1/sessions/*/steps", handlerWriting("steps"))
	r.PUT("/api/v1/sessions/*/steps/order", handlerWriting("order"))
	r.GET("/api/v1/sessions/*", handlerWriting("session"))
	r.DELETE("/api/v1/sessions/*", handlerWriting("delete"))

	tests := []struct {
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{http.MethodPost, "/api/v1/sessions", http.StatusOK, "create"},
		{http.MethodGet, "/api/v1/sessions/abc/steps", http.StatusOK, "steps"},
		{http.MethodPut, "/api/v1/sessions/abc/steps/order", http.StatusOK, "order"},
		{http.MethodGet, "/api/v1/sessions/abc", http.StatusOK, "session"},
		{http.MethodDelete, "/api/v1/sessions/abc", http.StatusOK, "delete"},
		{http.MethodGet, "/api/v1/sessions", http.StatusMethodNotAllowed, "Method Not Allowed\n"},
		{http.MethodPost, "/api/v1/sessions/abc/steps", http.StatusMethodNotAllowed, "Method Not Allowed\n"},
		{http.MethodGet, "/nowhere", http.StatusNotFound, "Not Found\n"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := serve(r, tt.method, tt.path)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestRouterRegistrationOrderWins(t *testing.T) {
	r := New(zerolog.Nop())
	r.GET("/files/*/meta", handlerWriting("meta"))
	r.GET("/files/*", handlerWriting("file"))

	// repeated to make sure no map iteration order leaks in
	for i := 0; i < 20; i++ {
		assert.Equal(t, "meta", serve(r, http.MethodGet, "/files/a/meta").Body.String())
	}
}

func TestRouterGetters(t *testing.T) {
	r := New(zerolog.Nop())
	r.PATCH("/a", handlerWriting("a"))

	assert.Contains(t, r.Routes(), "PATCH:/a")
	assert.True(t, r.Paths()["/a"])
}
