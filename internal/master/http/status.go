package http

import (
	"fmt"
	"net/http"
	"sync/atomic"

	"github.com/cappelnord/codeklavier-ar-master/pkg/httpx"
)

// StatusHandler godoc
//
//	@Summary		Master Status
//	@Description	Plain text liveness line with the number of /master/ requests served, this one included.
//	@Tags			Master
//	@Produce		plain
//	@Success		200	{string}	string	"Running. Served: N"
//	@Router			/master/ [get].
func StatusHandler(served *atomic.Uint64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteText(w, http.StatusOK, fmt.Sprintf("Running. Served: %d", served.Load()))
	}
}
