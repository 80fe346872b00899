package middleware

import "net/http"

// CORSMiddleware answers preflight requests and stamps the configured
// allow-origin on every response. The origin comes from CORS_ALLOW_ORIGIN,
// so deployments can pin it to the SPA host instead of the wildcard.
type CORSMiddleware struct {
	allowOrigin string
}

func NewCORSMiddleware(allowOrigin string) *CORSMiddleware {
	return &CORSMiddleware{
		allowOrigin: allowOrigin,
	}
}

func (m *CORSMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", m.allowOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if m.allowOrigin != "*" {
			// Caches must not serve a pinned-origin response cross-origin.
			w.Header().Add("Vary", "Origin")
		}

		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, req)
	})
}
