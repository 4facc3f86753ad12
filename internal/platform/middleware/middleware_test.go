// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/kaamelott/internal/platform/ctxutil"
	"github.com/taibuivan/kaamelott/internal/platform/middleware"
	"github.com/taibuivan/kaamelott/internal/platform/sec"
)

type fakeVerifier map[string]*sec.AuthClaims

func (f fakeVerifier) VerifyToken(token string) (*sec.AuthClaims, error) {
	if claims, ok := f[token]; ok {
		return claims, nil
	}
	return nil, errors.New("invalid")
}

type devConfig bool

func (d devConfig) IsDevelopment() bool { return bool(d) }

var ok = http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
	writer.WriteHeader(http.StatusNoContent)
})

func serve(handler http.Handler, request *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

func TestRequestID(t *testing.T) {
	var seen string
	handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, request *http.Request) {
		seen = ctxutil.GetRequestID(request.Context())
	}))

	recorder := serve(handler, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, recorder.Header().Get("X-Request-ID"))

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("X-Request-ID", "0191f0c2-7b1e-7cc3-9d62-5a1f0e3c2b10")
	serve(handler, request)
	assert.Equal(t, "0191f0c2-7b1e-7cc3-9d62-5a1f0e3c2b10", seen)

	request = httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("X-Request-ID", "<script>")
	serve(handler, request)
	assert.NotEqual(t, "<script>", seen)
}

func TestWrites(t *testing.T) {
	verifier := fakeVerifier{
		"editor": {UserID: "e", Role: sec.RoleEditor},
		"reader": {UserID: "r", Role: sec.RoleReader},
	}
	handler := middleware.Writes(verifier, sec.RoleEditor)(ok)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"anonymous", "", http.StatusUnauthorized},
		{"malformed", "Token editor", http.StatusUnauthorized},
		{"invalid", "Bearer forged", http.StatusUnauthorized},
		{"insufficient", "Bearer reader", http.StatusForbidden},
		{"editor", "Bearer editor", http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodPost, "/api/v1/actors", nil)
			if tt.header != "" {
				request.Header.Set("Authorization", tt.header)
			}
			assert.Equal(t, tt.want, serve(handler, request).Code)
		})
	}
}

func TestWrites_OpenWithoutVerifier(t *testing.T) {
	handler := middleware.Writes(nil, sec.RoleEditor)(ok)

	assert.Equal(t, http.StatusNoContent, serve(handler, httptest.NewRequest(http.MethodDelete, "/api/v1/actors/1", nil)).Code)
}

func TestRateLimit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handler := middleware.RateLimit(ctx, 1, 2)(ok)
	request := httptest.NewRequest(http.MethodGet, "/api/v1/actors", nil)

	assert.Equal(t, http.StatusNoContent, serve(handler, request).Code)
	assert.Equal(t, http.StatusNoContent, serve(handler, request).Code)

	throttled := serve(handler, request)
	assert.Equal(t, http.StatusTooManyRequests, throttled.Code)
	assert.Equal(t, "1", throttled.Header().Get("Retry-After"))
}

func TestPanicRecovery(t *testing.T) {
	handler := middleware.PanicRecovery()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("Excalibur is stuck")
	}))

	recorder := serve(handler, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "Excalibur")
}

func TestCORS(t *testing.T) {
	handler := middleware.CORS(devConfig(false), []string{"https://admin.example.org"})(ok)

	tests := []struct {
		origin  string
		allowed bool
	}{
		{"https://www.kaamelott.app", true},
		{"https://admin.example.org", true},
		{"https://evil.example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodOptions, "/api/v1/actors", nil)
			request.Header.Set("Origin", tt.origin)

			recorder := serve(handler, request)

			assert.Equal(t, http.StatusNoContent, recorder.Code)
			if tt.allowed {
				assert.Equal(t, tt.origin, recorder.Header().Get("Access-Control-Allow-Origin"))
			} else {
				assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}

func TestRealIP(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

	assert.Equal(t, "203.0.113.7", middleware.RealIP(request))
}
