package httpx

import (
	"encoding/json"
	"net/http"
)

// WriteJSON writes v as compact JSON with no trailing newline. v is
// encoded before anything is sent, so an encoding failure becomes a plain
// 500 "Error!" and the error is returned for the caller to log.
func WriteJSON(w http.ResponseWriter, code int, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		WriteText(w, http.StatusInternalServerError, "Error!")
		return err
	}

	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(body)
	return nil
}

// WriteText writes a plain text response.
func WriteText(w http.ResponseWriter, code int, body string) {
	NoCache(w)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(body))
}

// NoCache marks a response as never cacheable. Channel state is live.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}
