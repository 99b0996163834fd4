package mastersdk

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cappelnord/codeklavier-ar-master/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestSign(t *testing.T) {
	t.Parallel()

	signed, err := Sign("s3cret", map[string]any{"status": "live", "visible": false})
	require.NoError(t, err)

	doc, err := base64.StdEncoding.DecodeString(signed.Payload)
	require.NoError(t, err)
	require.JSONEq(t, `{"status":"live","visible":false}`, string(doc))
	require.True(t, cryptox.VerifyHex("s3cret", doc, signed.Hash))
}

func TestNewClientTrimsSlash(t *testing.T) {
	t.Parallel()

	c := NewClient("https://master.example.com/")
	require.Equal(t, "https://master.example.com", c.BaseURL)
	require.Equal(t, "https://master.example.com/master/channel?id=a%2Bb", c.url("/master/channel", map[string][]string{"id": {"a+b"}}))
}

func TestClientRequests(t *testing.T) {
	t.Parallel()

	var gotQuery map[string][]string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /master/{$}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("Running. Served: 42"))
	})
	mux.HandleFunc("GET /master/app", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"protocol":"1","channelList":[{"id":"lake","info":{"status":"live"}},{"id":"ghost","info":{}}]}`))
	})
	mux.HandleFunc("GET /master/channel", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("id") != "lake" {
			http.Error(w, "Channel 'x' not found!", http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"status":"live","name":null}`))
	})
	mux.HandleFunc("GET /master/set", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		doc, err := base64.StdEncoding.DecodeString(q.Get("payload"))
		if err != nil {
			http.Error(w, "Error!", http.StatusInternalServerError)
			return
		}
		if !cryptox.VerifyHex("s3cret", doc, q.Get("hash")) {
			http.Error(w, "Could not update channel: Hash mismatch!", http.StatusForbidden)
			return
		}
		_, _ = w.Write([]byte("OK"))
	})
	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"status":"degraded","checks":{"store":"error: gone","feed":"ok"}}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL)
	ctx := context.Background()

	t.Run("served count", func(t *testing.T) {
		n, err := c.GetServed(ctx)
		require.NoError(t, err)
		require.EqualValues(t, 42, n)
	})

	t.Run("app listing", func(t *testing.T) {
		listing, err := c.GetApp(ctx, "lake")
		require.NoError(t, err)
		require.Equal(t, []string{"lake", "ghost"}, listing.IDs())
		require.Equal(t, []string{"lake"}, gotQuery["additionalChannel"])
		require.Empty(t, listing.ChannelList[1].Info)
	})

	t.Run("channel", func(t *testing.T) {
		info, err := c.GetChannel(ctx, "lake")
		require.NoError(t, err)
		status, ok := info.String("status")
		require.True(t, ok)
		require.Equal(t, "live", status)
		require.Contains(t, info, "name")
	})

	t.Run("unknown channel", func(t *testing.T) {
		_, err := c.GetChannel(ctx, "ghost")
		require.ErrorIs(t, err, ErrChannelNotFound)

		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		require.Equal(t, "Channel 'x' not found!", apiErr.Message)
	})

	t.Run("set", func(t *testing.T) {
		require.NoError(t, c.SetFields(ctx, "lake", "s3cret", map[string]any{"status": "live"}))

		err := c.SetFields(ctx, "lake", "wrong", map[string]any{"status": "live"})
		require.ErrorIs(t, err, ErrHashMismatch)
		require.NotErrorIs(t, err, ErrServer)
	})

	t.Run("degraded readiness", func(t *testing.T) {
		health, err := c.GetReadiness(ctx)
		require.ErrorIs(t, err, ErrServer)
		require.NotNil(t, health)
		require.Equal(t, "degraded", health.Status)
		require.Equal(t, "error: gone", health.Checks.Store)
	})
}

func TestFeedURL(t *testing.T) {
	t.Parallel()

	require.Equal(t, "wss://master.example.com/master/ws", NewClient("https://master.example.com").FeedURL())
	require.Equal(t, "ws://localhost:10333/master/ws", NewClient("http://localhost:10333/").FeedURL())
}
