package http

import (
	"fmt"
	"net/http"

	"github.com/cappelnord/codeklavier-ar-master/internal/master/service"
	"github.com/cappelnord/codeklavier-ar-master/pkg/httpx"
	"github.com/cappelnord/codeklavier-ar-master/pkg/slogx"
)

type ChannelHandler struct {
	ChannelService *service.ChannelService
}

// ServeHTTP godoc
//
//	@Summary		Channel Info
//	@Description	Returns the public info of one channel. Every whitelisted key is present, null when unset.
//	@Description	The secret is never returned.
//	@Tags			Master
//	@Produce		json
//	@Param			id	query		string				true	"Channel id"
//	@Success		200	{object}	mastersdk.ChannelInfo	"whitelisted channel fields"
//	@Failure		404	{string}	string				"No channel specified! / Channel 'id' not found!"
//	@Router			/master/channel [get].
func (h *ChannelHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	if !query.Has("id") {
		httpx.WriteText(w, http.StatusNotFound, "No channel specified!")
		return
	}
	id := query.Get("id")

	info := h.ChannelService.Project(ctx, id)
	if !info.Found() {
		httpx.WriteText(w, http.StatusNotFound, fmt.Sprintf("Channel '%s' not found!", id))
		return
	}

	if err := httpx.WriteJSON(w, http.StatusOK, info); err != nil {
		slogx.FromContext(ctx).Error("failed to encode channel info", "err", err)
	}
}
