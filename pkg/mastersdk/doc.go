/*
Package mastersdk is a client for the codeklavier AR master service.

# Overview

The master keeps the shared state of a handful of channels (independent AR
installations). Anyone may read that state; only the owner of a channel,
holding its shared secret, may change it.

	client := mastersdk.NewClient("https://master.example.com/")

	// Aggregate view used by the master display app
	listing, err := client.GetApp(ctx, "")

	// One channel
	info, err := client.GetChannel(ctx, "lake")

# Updating a channel

Updates are JSON objects merged into the channel. The object is sent base64
encoded together with the lowercase hex HMAC-SHA256 of the JSON bytes,
keyed with the channel secret. SetFields does all of this:

	err := client.SetFields(ctx, "lake", secret, map[string]any{
		"status":  "live",
		"visible": true,
	})

Sign exposes the signing step alone, for callers that want to build the
request URL themselves or hand it to another system.

# Error Handling

Non-2xx responses are returned as *APIError, which matches the sentinel
errors with errors.Is:

	if errors.Is(err, mastersdk.ErrHashMismatch) {
		// wrong secret
	}
*/
package mastersdk
