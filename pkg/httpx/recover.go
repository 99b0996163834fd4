package httpx

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/cappelnord/codeklavier-ar-master/pkg/slogx"
)

// Recover turns a panic in next into a plain 500 "Error!" and logs it with
// the request logger. http.ErrAbortHandler is passed on untouched.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(v)
			}

			slogx.FromContext(r.Context()).Error("handler panicked",
				"panic", v,
				"stack", string(debug.Stack()),
			)
			WriteText(w, http.StatusInternalServerError, "Error!")
		}()

		next.ServeHTTP(w, r)
	})
}
