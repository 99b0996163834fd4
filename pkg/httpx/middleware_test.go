package httpx_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cappelnord/codeklavier-ar-master/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func TestChainOrder(t *testing.T) {
	var trace []string
	tag := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				trace = append(trace, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		trace = append(trace, "handler")
	}), tag("outer"), tag("inner"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"outer", "inner", "handler"}, trace)
}

func TestDelay(t *testing.T) {
	t.Run("zero delay passes through", func(t *testing.T) {
		rec := serve(httpx.Delay(0)(okHandler()), "/", "192.168.1.1:1")
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("waits before serving", func(t *testing.T) {
		h := httpx.Delay(20 * time.Millisecond)(okHandler())

		start := time.Now()
		rec := serve(h, "/", "192.168.1.1:1")
		require.Equal(t, http.StatusOK, rec.Code)
		require.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	})

	t.Run("cancelled request is dropped", func(t *testing.T) {
		called := false
		h := httpx.Delay(time.Hour)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
		h.ServeHTTP(httptest.NewRecorder(), req)
		require.False(t, called)
	})
}

func TestWriteText(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.WriteText(rec, http.StatusForbidden, "nope")

	require.Equal(t, http.StatusForbidden, rec.Code)
	require.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/plain"))
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	require.Equal(t, "nope", rec.Body.String())
}

func TestRecover(t *testing.T) {
	t.Run("panic becomes a generic 500", func(t *testing.T) {
		h := httpx.Recover(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic("nil map write")
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/master/app", nil))

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Equal(t, "Error!", rec.Body.String())
	})

	t.Run("abort handler is passed on", func(t *testing.T) {
		h := httpx.Recover(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic(http.ErrAbortHandler)
		}))

		require.PanicsWithValue(t, http.ErrAbortHandler, func() {
			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		})
	})

	t.Run("normal responses pass through", func(t *testing.T) {
		h := httpx.Recover(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusTeapot, rec.Code)
	})
}
