package handler

import (
	"net"
	"net/http"
	"time"

	"github.com/kwarula/discover-diani-explorer-sub001/internal/cache"

	"github.com/redis/go-redis/v9"
)

// RateLimit limita por IP con ventana fija en Redis. Se usa en los
// endpoints sensibles (auth y broker de claves); las lecturas públicas no
// pasan por acá.
func RateLimit(client *redis.Client, name string, limit int64, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			key := "rl:" + name + ":" + ip
			if !cache.Allow(r.Context(), client, key, limit, window) {
				writeJSON(w, http.StatusTooManyRequests, map[string]string{
					"error": "too many requests, try again later",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
