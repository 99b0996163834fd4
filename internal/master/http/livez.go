package http

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/cappelnord/codeklavier-ar-master/pkg/httpx"
	"github.com/cappelnord/codeklavier-ar-master/pkg/mastersdk"
)

// LivezHandler godoc
//
//	@Summary		Liveness
//	@Description	Always 200 while the process runs. Reports uptime, version and the number of /master/
//	@Description	requests served so far; probing /livez does not add to that number.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	mastersdk.HealthResponse	"status, uptime, version, served"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string, served *atomic.Uint64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = httpx.WriteJSON(w, http.StatusOK, mastersdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).Round(time.Second).String(),
			Version: version,
			Served:  served.Load(),
		})
	}
}
