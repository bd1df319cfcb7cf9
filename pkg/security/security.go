package security

import (
	"context"
	"net/http"
	"sync"
	"time"

	"pengasuh_backend/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// CORS echoes allowed origins only and permits credentials for them.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	originSet := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		originSet[o] = true
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		if origin != "" && originSet[origin] {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		}

		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// Secure sets the standard hardening headers.
func Secure() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-XSS-Protection", "1; mode=block")
		if c.Request.TLS != nil {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload")
		}

		c.Next()
	}
}

// visitor pairs a limiter with its last use for eviction.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type visitorStore struct {
	mu     sync.Mutex
	m      map[string]*visitor
	expiry time.Duration
}

func newVisitorStore(window time.Duration) *visitorStore {
	expiry := window * 3
	if expiry < time.Minute {
		expiry = time.Minute
	}
	return &visitorStore{m: make(map[string]*visitor), expiry: expiry}
}

func (s *visitorStore) limiter(key string, newLimiter func() *rate.Limiter) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, exists := s.m[key]
	if !exists {
		v = &visitor{limiter: newLimiter()}
		s.m[key] = v
	}
	v.lastSeen = time.Now()
	return v.limiter
}

func (s *visitorStore) evict(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for ip, v := range s.m {
		if now.Sub(v.lastSeen) > s.expiry {
			delete(s.m, ip)
		}
	}
}

func (s *visitorStore) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.m)
}

// evictLoop drops idle visitors every interval until ctx is done.
func (s *visitorStore) evictLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.evict(now)
		}
	}
}

// RateLimiter is a per-IP token bucket allowing maxRequests per window.
// Idle entries are evicted once a minute until ctx is done.
func RateLimiter(ctx context.Context, maxRequests int, window time.Duration) gin.HandlerFunc {
	store := newVisitorStore(window)
	go store.evictLoop(ctx, time.Minute)

	r := rate.Every(window / time.Duration(maxRequests))
	newLimiter := func() *rate.Limiter { return rate.NewLimiter(r, maxRequests) }

	return func(c *gin.Context) {
		if !store.limiter(c.ClientIP(), newLimiter).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, util.Response{Code: http.StatusTooManyRequests, Message: "terlalu banyak permintaan"})
			return
		}

		c.Next()
	}
}
