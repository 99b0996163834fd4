package httpx

import (
	"fmt"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/time/rate"

	"github.com/cappelnord/codeklavier-ar-master/pkg/slogx"
)

// RateLimitConfig is a token bucket refilled with RequestsPerWindow tokens
// per Window and holding at most Burst tokens.
type RateLimitConfig struct {
	RequestsPerWindow int           `env:"REQUESTS"`
	Window            time.Duration `env:"WINDOW"`
	Burst             int           `env:"BURST"`
}

// Rate limit profiles for the master endpoints, overridable through
// RATELIMIT_{PROFILE}_{REQUESTS,WINDOW,BURST} by LoadRateLimits.
var (
	// ModerateLimit guards the signed update endpoint and the live feed.
	// Installations push a handful of updates per minute; more than that is
	// a misbehaving client or someone guessing hashes.
	ModerateLimit = RateLimitConfig{RequestsPerWindow: 60, Window: time.Minute, Burst: 20}

	// LenientLimit for health checks.
	LenientLimit = RateLimitConfig{RequestsPerWindow: 100, Window: time.Minute, Burst: 100}

	// PublicLimit for the read endpoints polled by front-ends.
	PublicLimit = RateLimitConfig{RequestsPerWindow: 1000, Window: time.Minute, Burst: 1000}
)

// LoadRateLimits applies environment overrides to the profiles. It must
// run before the router is built.
func LoadRateLimits() error {
	profiles := []struct {
		name string
		cfg  *RateLimitConfig
	}{
		{"MODERATE", &ModerateLimit},
		{"LENIENT", &LenientLimit},
		{"PUBLIC", &PublicLimit},
	}

	for _, p := range profiles {
		cfg := *p.cfg
		if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "RATELIMIT_" + p.name + "_"}); err != nil {
			return fmt.Errorf("rate limit %s: %w", strings.ToLower(p.name), err)
		}
		if err := cfg.validate(); err != nil {
			return fmt.Errorf("rate limit %s: %w", strings.ToLower(p.name), err)
		}
		*p.cfg = cfg
	}
	return nil
}

func (c RateLimitConfig) validate() error {
	if c.RequestsPerWindow <= 0 || c.Window <= 0 || c.Burst <= 0 {
		return fmt.Errorf("requests, window and burst must be positive (got %d per %s, burst %d)",
			c.RequestsPerWindow, c.Window, c.Burst)
	}
	return nil
}

func (c RateLimitConfig) limit() rate.Limit {
	return rate.Limit(float64(c.RequestsPerWindow) / c.Window.Seconds())
}

// KeyExtractor groups requests into buckets. An empty key is not limited.
type KeyExtractor func(*http.Request) string

// IPKeyExtractor returns the client address. The master usually sits
// behind a reverse proxy, so X-Forwarded-For and X-Real-IP win over the
// socket address.
func IPKeyExtractor(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// QueryKeyExtractor keys on a query parameter such as the channel id.
func QueryKeyExtractor(name string) KeyExtractor {
	return func(r *http.Request) string {
		return r.URL.Query().Get(name)
	}
}

// CompositeKeyExtractor joins the non-empty keys of extractors with sep,
// e.g. "192.168.1.1:chan1".
func CompositeKeyExtractor(sep string, extractors ...KeyExtractor) KeyExtractor {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(extractors))
		for _, extract := range extractors {
			if key := extract(r); key != "" {
				parts = append(parts, key)
			}
		}
		return strings.Join(parts, sep)
	}
}

const (
	bucketIdleTTL = 10 * time.Minute
	sweepEvery    = time.Minute
)

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// buckets holds one limiter per key and forgets keys idle for
// bucketIdleTTL.
type buckets struct {
	cfg RateLimitConfig

	mu        sync.Mutex
	byKey     map[string]*bucket
	lastSweep time.Time
	now       func() time.Time
}

func newBuckets(cfg RateLimitConfig) *buckets {
	return &buckets{cfg: cfg, byKey: make(map[string]*bucket), now: time.Now}
}

func (b *buckets) allow(key string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	if now.Sub(b.lastSweep) >= sweepEvery {
		for k, v := range b.byKey {
			if now.Sub(v.lastSeen) > bucketIdleTTL {
				delete(b.byKey, k)
			}
		}
		b.lastSweep = now
	}

	bk, ok := b.byKey[key]
	if !ok {
		bk = &bucket{limiter: rate.NewLimiter(b.cfg.limit(), b.cfg.Burst)}
		b.byKey[key] = bk
	}
	bk.lastSeen = now
	return bk.limiter.AllowN(now, 1)
}

func (b *buckets) size() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.byKey)
}

// retryAfter is the time until one token is back, rounded up to seconds.
func (c RateLimitConfig) retryAfter() int {
	return max(int(math.Ceil(1/float64(c.limit()))), 1)
}

// RateLimitMiddleware answers 429 "Too many requests!" once the bucket for
// a request's key is empty.
func RateLimitMiddleware(config RateLimitConfig, keyFn KeyExtractor) Middleware {
	b := newBuckets(config)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyFn(r)
			if key == "" || b.allow(key) {
				next.ServeHTTP(w, r)
				return
			}

			retry := config.retryAfter()
			w.Header().Set("Retry-After", strconv.Itoa(retry))
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(config.RequestsPerWindow))
			w.Header().Set("X-RateLimit-Window", config.Window.String())

			slogx.FromContext(r.Context()).Warn("rate limit exceeded",
				"key", key,
				"retry_after", retry,
			)

			WriteText(w, http.StatusTooManyRequests, "Too many requests!")
		})
	}
}

// RateLimitByIP limits per client address.
func RateLimitByIP(config RateLimitConfig) Middleware {
	return RateLimitMiddleware(config, IPKeyExtractor)
}

// RateLimitByIPAndQuery limits per client address and query parameter, so
// one installation hammering its own channel does not starve another one
// behind the same NAT.
func RateLimitByIPAndQuery(config RateLimitConfig, name string) Middleware {
	return RateLimitMiddleware(config, CompositeKeyExtractor(":",
		IPKeyExtractor,
		QueryKeyExtractor(name),
	))
}
