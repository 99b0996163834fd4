package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/cappelnord/codeklavier-ar-master/internal/master/service"
	"github.com/cappelnord/codeklavier-ar-master/pkg/httpx"
	"github.com/cappelnord/codeklavier-ar-master/pkg/slogx"
)

type SetHandler struct {
	UpdateService *service.UpdateService
}

// ServeHTTP godoc
//
//	@Summary		Update Channel
//	@Description	Merges the whitelisted keys of a signed JSON object into a channel. Keys outside the whitelist
//	@Description	are ignored and keys not sent are kept. payload is the base64 encoded JSON object (standard or
//	@Description	URL-safe alphabet, padding optional) and hash the lowercase hex HMAC-SHA256 of the decoded
//	@Description	bytes keyed with the channel secret. A websocket URL forced by the server configuration always
//	@Description	replaces the submitted one. A channel whose secret is empty in the channels document refuses
//	@Description	every update with 403, even when hash is the HMAC under the empty key.
//	@Tags			Master
//	@Produce		plain
//	@Param			id		query		string	true	"Channel id"
//	@Param			payload	query		string	true	"Base64 encoded JSON object"
//	@Param			hash	query		string	true	"Hex HMAC-SHA256 of the decoded payload"
//	@Success		200		{string}	string	"OK"
//	@Failure		403		{string}	string	"Could not update channel: Hash mismatch! (also for channels without a secret)"
//	@Failure		404		{string}	string	"Channel 'id' not found!"
//	@Failure		429		{string}	string	"Too many requests!"
//	@Failure		500		{string}	string	"Error!"
//	@Router			/master/set [get].
func (h *SetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	query := r.URL.Query()

	id := query.Get("id")
	err := h.UpdateService.Apply(ctx, id, query.Get("payload"), query.Get("hash"))

	switch {
	case err == nil:
		httpx.WriteText(w, http.StatusOK, "OK")
	case errors.Is(err, service.ErrNotFound):
		httpx.WriteText(w, http.StatusNotFound, fmt.Sprintf("Channel '%s' not found!", id))
	case errors.Is(err, service.ErrAuthenticationFailed):
		httpx.WriteText(w, http.StatusForbidden, "Could not update channel: Hash mismatch!")
	case errors.Is(err, service.ErrInvalidPayload):
		httpx.WriteText(w, http.StatusInternalServerError, "Error!")
	default:
		log.Error("failed to apply channel update", "err", err)
		httpx.WriteText(w, http.StatusInternalServerError, "Error!")
	}
}
