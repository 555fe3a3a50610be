// Package middleware holds the HTTP middleware mounted in front of the
// market's probe endpoints.
package middleware

import "net/http"

// Middleware wraps an http.Handler. It matches chi's Use signature.
type Middleware = func(http.Handler) http.Handler
