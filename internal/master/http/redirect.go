package http

import (
	"net/http"

	"github.com/cappelnord/codeklavier-ar-master/pkg/httpx"
)

// RedirectHandler godoc
//
//	@Summary		Project Information Redirect
//	@Description	Redirects to the configured project information page. Returns 404 when none is configured.
//	@Tags			Master
//	@Success		302
//	@Failure		404	{string}	string	"Not found!"
//	@Router			/ [get].
func RedirectHandler(infoURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if infoURL == "" {
			httpx.WriteText(w, http.StatusNotFound, "Not found!")
			return
		}
		http.Redirect(w, r, infoURL, http.StatusFound)
	}
}
