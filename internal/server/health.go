// Package server provides the operational HTTP surface around the MCP endpoint.
package server

import (
	"net/http"
)

// Health returns a probe handler for /healthz and /readyz. The server has
// no warm-up phase and holds no state, so live and ready are the same check.
func Health() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})
}
