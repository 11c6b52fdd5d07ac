package middleware

import (
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/teamvote/voteboard-backend/internal/http/response"
)

const rateLimitRetryAfterSeconds = 60

// RateLimit enforces a per-client token bucket keyed by remote IP.
// requestsPerMinute is the refill rate; the bucket also holds one minute of
// burst. Stale client entries are evicted lazily.
func RateLimit(requestsPerMinute int) gin.HandlerFunc {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 100
	}

	type client struct {
		limiter  *rate.Limiter
		lastSeen time.Time
	}

	var (
		mu      sync.Mutex
		clients = make(map[string]*client)
	)

	limit := rate.Limit(float64(requestsPerMinute) / 60.0)
	burst := requestsPerMinute

	lookup := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()

		now := time.Now()
		if len(clients) > 10000 {
			for key, cl := range clients {
				if now.Sub(cl.lastSeen) > 10*time.Minute {
					delete(clients, key)
				}
			}
		}

		cl, ok := clients[ip]
		if !ok {
			cl = &client{limiter: rate.NewLimiter(limit, burst)}
			clients[ip] = cl
		}
		cl.lastSeen = now
		return cl.limiter
	}

	return func(c *gin.Context) {
		ip := clientIP(c)
		if !lookup(ip).Allow() {
			c.Header("Retry-After", strconv.Itoa(rateLimitRetryAfterSeconds))
			response.RespondProblem(c, 429, "too_many_requests",
				"Rate limit exceeded. Please retry after "+strconv.Itoa(rateLimitRetryAfterSeconds)+" seconds.")
			c.Abort()
			return
		}
		c.Next()
	}
}

func clientIP(c *gin.Context) string {
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return host
}
