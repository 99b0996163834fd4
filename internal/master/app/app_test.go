package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	bundled := t.TempDir()
	data := filepath.Join(t.TempDir(), "data")

	cfg := Config{
		ChannelsFile:         filepath.Join(data, "channels.json"),
		ChannelsTemplateFile: filepath.Join(bundled, "channels.json"),
		AppFile:              filepath.Join(data, "app.json"),
		AppTemplateFile:      filepath.Join(bundled, "app.jsonc"),
		Env:                  "test",
		LogLevel:             "error",
		LogFormat:            "text",
		ShutdownGracePeriod:  time.Second,
	}

	require.NoError(t, os.WriteFile(cfg.ChannelsTemplateFile,
		[]byte(`{"lake": {"secret": "s3cret", "status": "idle"}}`), 0o600))
	require.NoError(t, os.WriteFile(cfg.AppTemplateFile,
		[]byte("{\n\t// listing\n\t\"protocol\": \"1\",\n\t\"channelList\": [\"lake\", \"ghost\"],\n}\n"), 0o600))
	return cfg
}

func TestNewBootstrapsAndServes(t *testing.T) {
	cfg := testConfig(t)

	app, err := New(cfg)
	require.NoError(t, err)
	require.FileExists(t, cfg.ChannelsFile)
	require.FileExists(t, cfg.AppFile)

	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/master/app", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var listing struct {
		ChannelList []struct {
			ID string `json:"id"`
		} `json:"channelList"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	require.Len(t, listing.ChannelList, 2)
	require.Equal(t, "lake", listing.ChannelList[0].ID)

	require.NoError(t, os.Remove(cfg.ChannelsFile))
	require.NoError(t, app.Shutdown())
	require.FileExists(t, cfg.ChannelsFile, "shutdown writes the channels document")
}

func TestNewFailsWithoutDocuments(t *testing.T) {
	cfg := testConfig(t)
	cfg.ChannelsTemplateFile = ""

	_, err := New(cfg)
	require.Error(t, err)
}
