package http

import (
	"net/http"
	"time"

	"github.com/cappelnord/codeklavier-ar-master/internal/master/feed"
	"github.com/cappelnord/codeklavier-ar-master/internal/master/store"
	"github.com/cappelnord/codeklavier-ar-master/pkg/httpx"
	"github.com/cappelnord/codeklavier-ar-master/pkg/mastersdk"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness endpoint returning service health status and checks for critical dependencies
//	@Description	Includes uptime, version, channel count and the status of the store and the live feed
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	mastersdk.HealthResponse	"status, uptime, version, channels, checks"
//	@Failure		503	{object}	mastersdk.HealthResponse	"status, uptime, version, channels, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	hub *feed.Hub,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &mastersdk.HealthChecks{
			Store: "ok",
			Feed:  "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		// Check the channels document can still be written
		if err := st.Ping(r.Context()); err != nil {
			checks.Store = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		// The feed is optional, but once configured it must be running
		switch {
		case hub == nil:
			checks.Feed = "disabled"
		case isClosed(hub.Done()):
			checks.Feed = "error: stopped"
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		response := mastersdk.HealthResponse{
			Status:   overallStatus,
			Uptime:   time.Since(startTime).String(),
			Version:  version,
			Channels: st.Channels().Count(r.Context()),
			Checks:   checks,
		}
		_ = httpx.WriteJSON(w, statusCode, response)
	}
}

func isClosed(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}
