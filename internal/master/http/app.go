package http

import (
	"net/http"

	"github.com/cappelnord/codeklavier-ar-master/internal/master/service"
	"github.com/cappelnord/codeklavier-ar-master/pkg/httpx"
	"github.com/cappelnord/codeklavier-ar-master/pkg/slogx"
)

type AppHandler struct {
	ChannelService *service.ChannelService
}

// ServeHTTP godoc
//
//	@Summary		Aggregate Channel Listing
//	@Description	Returns the protocol value and every configured channel with its public info, in configured order.
//	@Description	Configured ids without a channel carry an empty info object. additionalChannel, when it names an
//	@Description	existing channel, appends that channel once more at the end.
//	@Tags			Master
//	@Produce		json
//	@Param			additionalChannel	query		string					false	"Extra channel id to append"
//	@Success		200					{object}	mastersdk.AppListing	"protocol, channelList"
//	@Failure		500					{string}	string					"Error!"
//	@Router			/master/app [get].
func (h *AppHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	listing := h.ChannelService.Listing(ctx, r.URL.Query().Get("additionalChannel"))

	if err := httpx.WriteJSON(w, http.StatusOK, listing); err != nil {
		log.Error("failed to encode channel listing", "err", err)
	}
}
