// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/taibuivan/kaamelott/internal/platform/constants"
)

// AppConfig is the part of the configuration CORS depends on.
type AppConfig interface {
	IsDevelopment() bool
}

var corsHeaders = map[string]string{
	"Access-Control-Allow-Methods":  "GET, POST, PATCH, DELETE, OPTIONS",
	"Access-Control-Allow-Headers":  "Accept, Content-Type, Content-Length, Authorization, X-Request-ID",
	"Access-Control-Expose-Headers": "Content-Length, X-Request-ID",
	"Access-Control-Max-Age":        "300",
}

// CORS allows any origin in development. Elsewhere only the catalogue domain
// and extraOrigins are echoed back. Preflight requests end here with 204.
func CORS(cfg AppConfig, extraOrigins []string) func(http.Handler) http.Handler {
	allowed := func(origin string) bool {
		return cfg.IsDevelopment() ||
			strings.HasSuffix(origin, constants.AllowedOriginSuffix) ||
			slices.Contains(extraOrigins, origin)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			origin := request.Header.Get(constants.HeaderOrigin)
			if origin == "" {
				next.ServeHTTP(writer, request)
				return
			}

			if allowed(origin) {
				header := writer.Header()
				header.Set("Access-Control-Allow-Origin", origin)
				for name, value := range corsHeaders {
					header.Set(name, value)
				}
				header.Add("Vary", constants.HeaderOrigin)
			}

			if request.Method == http.MethodOptions {
				writer.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(writer, request)
		})
	}
}
