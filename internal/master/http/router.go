package http

import (
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/cappelnord/codeklavier-ar-master/internal/master/feed"
	"github.com/cappelnord/codeklavier-ar-master/internal/master/service"
	"github.com/cappelnord/codeklavier-ar-master/internal/master/store"
	"github.com/cappelnord/codeklavier-ar-master/pkg/httpx"
	"github.com/cappelnord/codeklavier-ar-master/pkg/slogx"

	_ "github.com/cappelnord/codeklavier-ar-master/api/master" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	// served counts every request under /master/.
	served atomic.Uint64

	ChannelService *service.ChannelService
	UpdateService  *service.UpdateService

	// Feed is optional; without it /master/ws is not registered.
	Feed           *feed.Hub
	AllowedOrigins []string

	// InfoURL is where / redirects to. Empty disables the redirect.
	InfoURL string

	// ResponseDelay holds every /master/ request before it is answered.
	ResponseDelay time.Duration
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain. Recover sits inside the logger so a
	// panicking request is still logged with its 500.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.Recover,
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerRoot()
	r.registerMaster()
	r.registerFeed()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// Served returns how many /master/ requests have been received.
func (r *Router) Served() uint64 {
	return r.served.Load()
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			codeklavier AR Master API
//	@version		0.1.0
//	@description	Coordination service for the codeklavier AR channels. Anyone can read channel state;
//	@description	channel owners update it with requests signed by a per-channel shared secret.
//	@description
//	@description	A set request carries the update as base64 encoded JSON together with the lowercase hex
//	@description	HMAC-SHA256 of the decoded JSON bytes, keyed with the channel secret.
//
//	@contact.name	codeklavier
//	@contact.url	https://github.com/cappelnord/codeklavier-ar-master
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:10333
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// countRequests increments the served counter before the request reaches
// any other middleware, so rejected requests are counted too.
func (r *Router) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		r.served.Add(1)
		next.ServeHTTP(w, req)
	})
}

// master wraps h with the middlewares shared by every /master/ route.
func (r *Router) master(h http.Handler, limit httpx.Middleware) http.Handler {
	return httpx.Chain(h,
		r.countRequests,
		limit,
		httpx.Delay(r.ResponseDelay),
	)
}

func (r *Router) registerRoot() {
	r.Mux.Handle("GET /{$}",
		httpx.Chain(RedirectHandler(r.InfoURL),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerMaster() {
	status := r.master(StatusHandler(&r.served), httpx.RateLimitByIP(httpx.PublicLimit))
	r.Mux.Handle("GET /master/{$}", status)
	r.Mux.Handle("GET /master", status)

	// Reads are cheap and polled by every installation - public limit
	appHandler := &AppHandler{ChannelService: r.ChannelService}
	r.Mux.Handle("GET /master/app",
		r.master(appHandler, httpx.RateLimitByIP(httpx.PublicLimit)),
	)

	channelHandler := &ChannelHandler{ChannelService: r.ChannelService}
	r.Mux.Handle("GET /master/channel",
		r.master(channelHandler, httpx.RateLimitByIP(httpx.PublicLimit)),
	)

	// Writes are authenticated by HMAC - moderate limit by IP + channel
	// so a guessing client cannot hammer one channel.
	setHandler := &SetHandler{UpdateService: r.UpdateService}
	r.Mux.Handle("GET /master/set",
		r.master(setHandler, httpx.RateLimitByIPAndQuery(httpx.ModerateLimit, "id")),
	)
}

func (r *Router) registerFeed() {
	if r.Feed == nil {
		return
	}

	// The upgrade must not be delayed; only count and limit it.
	r.Mux.Handle("GET /master/ws",
		httpx.Chain(feed.NewHandler(r.Feed, r.AllowedOrigins),
			r.countRequests,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion, &r.served),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.Feed),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
