package middleware

import "net/http"

// CORS headers sent on every response so the frontend can be hosted on
// a different origin than the API.
const (
	corsAllowOrigin  = "*"
	corsAllowMethods = "GET,PUT,POST,DELETE"
	corsAllowHeaders = "X-Requested-With, X-HTTP-Method-Override, Content-Type, Accept"
)

// CORSMiddleware sets permissive cross-origin headers on every response.
func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", corsAllowOrigin)
		w.Header().Set("Access-Control-Allow-Methods", corsAllowMethods)
		w.Header().Set("Access-Control-Allow-Headers", corsAllowHeaders)

		next.ServeHTTP(w, r)
	})
}
