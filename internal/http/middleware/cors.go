package middleware

import (
	"net/http"
	"strings"
)

const (
	allowOriginHeader    = "Access-Control-Allow-Origin"
	allowMethodsHeader   = "Access-Control-Allow-Methods"
	allowHeadersHeader   = "Access-Control-Allow-Headers"
	requestMethodHeader  = "Access-Control-Request-Method"
	requestHeadersHeader = "Access-Control-Request-Headers"
)

var allowedMethods = strings.Join([]string{
	http.MethodGet, http.MethodHead, http.MethodPost, http.MethodOptions,
	http.MethodPut, http.MethodPatch, http.MethodDelete,
}, ", ")

// CORS permits cross-origin requests from any origin. Preflight requests are
// answered directly with 204.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(allowOriginHeader, "*")

		if r.Method == http.MethodOptions && r.Header.Get(requestMethodHeader) != "" {
			w.Header().Set(allowMethodsHeader, allowedMethods)
			if h := r.Header.Get(requestHeadersHeader); h != "" {
				w.Header().Set(allowHeadersHeader, h)
			}
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
