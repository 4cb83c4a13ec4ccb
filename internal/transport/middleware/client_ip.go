package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/creditodds/creditodds-api/pkg/ctxutil"
)

// ClientIP stores the caller address in the context: the first
// X-Forwarded-For entry when present, otherwise the host of RemoteAddr.
// The value is informational (it is recorded as submitter_ip) and must not
// be used for access decisions since the client controls the header.
func ClientIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := ctxutil.WithClientIP(r.Context(), clientIP(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	return remoteHost(r)
}

func remoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// peerIP returns the address the closest untrusted hop connected from.
// Each of the trusted proxies appends the address it received the request
// from, so the client is the entry trusted places from the right; anything
// before it was written by the client. With trusted == 0, or when the header
// is shorter than the proxy chain, the TCP peer is used.
func peerIP(r *http.Request, trusted int) string {
	if trusted <= 0 {
		return remoteHost(r)
	}
	var hops []string
	for _, v := range r.Header.Values("X-Forwarded-For") {
		for _, h := range strings.Split(v, ",") {
			hops = append(hops, strings.TrimSpace(h))
		}
	}
	if len(hops) < trusted || hops[len(hops)-trusted] == "" {
		return remoteHost(r)
	}
	return hops[len(hops)-trusted]
}
