package master_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestLivezEndpoint verifies the liveness check endpoint.
func TestLivezEndpoint(t *testing.T) {
	client := setupMaster(t)

	health, err := client.GetLiveness(t.Context())
	assertHealthy(t, health, err)
}

// TestReadyzEndpoint verifies the readiness check reports the store and feed.
func TestReadyzEndpoint(t *testing.T) {
	client := setupMaster(t)

	health, err := client.GetReadiness(t.Context())
	assertHealthy(t, health, err)
	require.Equal(t, 3, health.Channels)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Store)
	require.Equal(t, "ok", health.Checks.Feed)
}

// TestServedCounter verifies /master/ reports the requests it has served.
func TestServedCounter(t *testing.T) {
	client := setupMaster(t)
	ctx := t.Context()

	_, err := client.GetApp(ctx, "")
	require.NoError(t, err)
	_, err = client.GetChannel(ctx, "lake")
	require.NoError(t, err)

	served, err := client.GetServed(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 3, served)
}
