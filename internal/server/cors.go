package server

import (
	"net/http"
	"slices"
	"strings"
)

// corsPolicy は回答フォームを配信するフロントエンドのオリジンだけにクロスオリジン応答を許可する。
// 許可リストが空なら CORS ヘッダーは一切付けない。
type corsPolicy struct {
	anyOrigin bool
	origins   []string
}

const (
	corsAllowMethods = "GET, POST, OPTIONS"
	corsAllowHeaders = "Authorization, Content-Type"
	corsMaxAge       = "600"
)

func newCORSPolicy(origins []string) corsPolicy {
	var p corsPolicy
	for _, origin := range origins {
		origin = strings.TrimRight(strings.TrimSpace(origin), "/")
		switch origin {
		case "":
		case "*":
			p.anyOrigin = true
		default:
			p.origins = append(p.origins, origin)
		}
	}
	return p
}

func (p corsPolicy) allows(origin string) bool {
	if origin == "" {
		return false
	}
	return p.anyOrigin || slices.Contains(p.origins, origin)
}

// handler はプリフライトを 204 で打ち切り、許可外オリジンには CORS ヘッダーを返さない。
func (p corsPolicy) handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		preflight := r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != ""

		if p.allows(origin) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Add("Vary", "Origin")
			if preflight {
				h.Set("Access-Control-Allow-Methods", corsAllowMethods)
				h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
				h.Set("Access-Control-Max-Age", corsMaxAge)
			}
		}

		if preflight {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
