package rate_limiter

import (
	"net"
	"net/http"
	"net/netip"
	"strconv"
	"strings"

	"courier-network/internal/pkg/middlewares/metrics"
	"courier-network/pkg/logger"
)

const (
	limiterGlobal = "global"
	limiterAuth   = "auth"

	tooManyRequestsBody = `{"success":false,"message":"Too many requests, please try again later."}`
)

// Middleware общий лимит на весь API.
func Middleware(log handlerLogger, rateLimiterQPS int, rlimiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rlimiter.Allow() {
				reject(w, r, log, limiterGlobal, rateLimiterQPS)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// PerClientMiddleware лимит по IP клиента, вешается на вход и регистрацию.
func PerClientMiddleware(
	log handlerLogger,
	limitPerMinute int,
	trustedProxies []netip.Prefix,
	rlimiter KeyedLimiter,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rlimiter.Allow(ClientIP(r, trustedProxies)) {
				reject(w, r, log, limiterAuth, limitPerMinute)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func reject(w http.ResponseWriter, r *http.Request, log handlerLogger, limiter string, limit int) {
	route := metrics.RouteTemplate(r)

	log.With(
		logger.NewField("method", r.Method),
		logger.NewField("path", r.URL.Path),
		logger.NewField("route", route),
		logger.NewField("remote_addr", r.RemoteAddr),
		logger.NewField("limiter", limiter),
	).Warn("rate limit exceeded")

	RateLimitExceededTotal.WithLabelValues(r.Method, route, limiter).Inc()

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
	w.Header().Set("Retry-After", "1")
	w.WriteHeader(http.StatusTooManyRequests)

	_, err := w.Write([]byte(tooManyRequestsBody))
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("path", r.URL.Path),
		).Error("failed to write rate limit response")
	}
}

// ClientIP адрес соединения. X-Forwarded-For читается только если соединение
// пришло от доверенного прокси: клиентом считается самый правый недоверенный адрес.
func ClientIP(r *http.Request, trustedProxies []netip.Prefix) string {
	peer, ok := remoteAddr(r.RemoteAddr)
	if !ok {
		return r.RemoteAddr
	}
	if !trusted(peer, trustedProxies) {
		return peer.String()
	}

	var hops []string
	for _, header := range r.Header.Values("X-Forwarded-For") {
		hops = append(hops, strings.Split(header, ",")...)
	}

	client := peer
	for i := len(hops) - 1; i >= 0; i-- {
		addr, err := netip.ParseAddr(strings.TrimSpace(hops[i]))
		if err != nil {
			break
		}
		client = addr.Unmap()
		if !trusted(client, trustedProxies) {
			break
		}
	}
	return client.String()
}

func remoteAddr(raw string) (netip.Addr, bool) {
	host, _, err := net.SplitHostPort(raw)
	if err != nil {
		host = raw
	}

	addr, err := netip.ParseAddr(host)
	if err != nil {
		return netip.Addr{}, false
	}
	return addr.Unmap(), true
}

func trusted(addr netip.Addr, trustedProxies []netip.Prefix) bool {
	for _, prefix := range trustedProxies {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}
