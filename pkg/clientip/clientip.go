package clientip

import (
	"net"
	"net/http"
	"strings"
)

// FromRequest returns the client IP for rate limiting. Proxy headers are
// consulted first since the API is expected to run behind a load balancer;
// the first X-Forwarded-For hop is the original client.
func FromRequest(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		ips := strings.Split(forwarded, ",")
		return strings.TrimSpace(ips[0])
	}

	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return strings.TrimSpace(realIP)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return strings.TrimSpace(r.RemoteAddr)
	}
	return strings.TrimSpace(host)
}
