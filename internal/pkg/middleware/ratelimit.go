package middleware

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"recicleme/internal/pkg/cache"
	"recicleme/internal/pkg/logger"
)

// RateLimiter aplica uma janela fixa por IP com contador no Redis.
// Falhas do cache não bloqueiam a requisição.
func RateLimiter(client cache.Client, limit int, duration time.Duration, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			key := "rate-limit:" + ip
			ctx := r.Context()

			count, err := client.GetInt(ctx, key)
			if err == cache.ErrCacheMiss {
				if err := client.Set(ctx, key, 1, duration); err != nil {
					log.Warn("Falha ao iniciar contador de rate limit.", map[string]interface{}{"ip": ip, "error": err.Error()})
				}
				w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(limit-1))
				next.ServeHTTP(w, r)
				return
			} else if err != nil {
				log.Warn("Rate limit indisponível, requisição liberada.", map[string]interface{}{"ip": ip, "error": err.Error()})
				next.ServeHTTP(w, r)
				return
			}

			if count >= limit {
				w.Header().Set("Retry-After", strconv.Itoa(int(duration.Seconds())))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				w.Write([]byte(`{"code":429,"category":"RATE_LIMITED","message":"Limite de requisições excedido.","error":"Limite de requisições excedido."}`))
				return
			}

			if _, err := client.Incr(ctx, key); err != nil {
				log.Warn("Falha ao incrementar contador de rate limit.", map[string]interface{}{"ip": ip, "error": err.Error()})
			}
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(limit-count-1))
			next.ServeHTTP(w, r)
		})
	}
}
