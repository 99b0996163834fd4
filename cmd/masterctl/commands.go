package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"github.com/cappelnord/codeklavier-ar-master/pkg/mastersdk"
)

func runSign(args []string, stdout io.Writer) error {
	fs := newFlagSet("sign")
	var secret secretSource
	var payload payloadFlags
	secret.register(fs)
	payload.register(fs)
	id := fs.String("id", "", "channel id; when set, print the full set URL")
	server := fs.String("server", defaultServer(), "master base URL")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if _, err := payload.fields(); err != nil {
		return err
	}
	key, err := secret.read()
	if err != nil {
		return err
	}
	signed, err := payload.sign(key)
	if err != nil {
		return err
	}

	if *id == "" {
		fmt.Fprintf(stdout, "payload: %s\nhash:    %s\n", signed.Payload, signed.Hash)
		return nil
	}

	query := url.Values{"id": {*id}, "payload": {signed.Payload}, "hash": {signed.Hash}}
	fmt.Fprintf(stdout, "%s/master/set?%s\n", mastersdk.NewClient(*server).BaseURL, query.Encode())
	return nil
}

func runSet(args []string, stdout io.Writer) error {
	fs := newFlagSet("set")
	var secret secretSource
	var payload payloadFlags
	id := fs.String("id", "", "channel id (required)")
	server := fs.String("server", defaultServer(), "master base URL")
	secret.register(fs)
	payload.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return errors.New("--id is required")
	}

	if _, err := payload.fields(); err != nil {
		return err
	}
	key, err := secret.read()
	if err != nil {
		return err
	}
	signed, err := payload.sign(key)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	client := mastersdk.NewClient(*server)
	if err := client.Set(ctx, *id, signed); err != nil {
		switch {
		case errors.Is(err, mastersdk.ErrHashMismatch):
			return fmt.Errorf("the master rejected the signature, check the secret for %q", *id)
		case errors.Is(err, mastersdk.ErrChannelNotFound):
			return fmt.Errorf("channel %q does not exist", *id)
		}
		return err
	}
	fmt.Fprintln(stdout, "OK")
	return nil
}

func runGet(args []string, stdout io.Writer) error {
	fs := newFlagSet("get")
	id := fs.String("id", "", "channel id (required)")
	server := fs.String("server", defaultServer(), "master base URL")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return errors.New("--id is required")
	}

	ctx, cancel := signalContext()
	defer cancel()

	info, err := mastersdk.NewClient(*server).GetChannel(ctx, *id)
	if err != nil {
		return err
	}
	return printJSON(stdout, info)
}

func runApp(args []string, stdout io.Writer) error {
	fs := newFlagSet("app")
	additional := fs.String("additional", "", "extra channel id to append to the listing")
	server := fs.String("server", defaultServer(), "master base URL")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	listing, err := mastersdk.NewClient(*server).GetApp(ctx, *additional)
	if err != nil {
		return err
	}
	return printJSON(stdout, listing)
}

func runWatch(args []string, stdout io.Writer) error {
	fs := newFlagSet("watch")
	server := fs.String("server", defaultServer(), "master base URL")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	enc := json.NewEncoder(stdout)
	return mastersdk.NewClient(*server).Watch(ctx, func(msg mastersdk.FeedMessage) {
		_ = enc.Encode(msg)
	})
}

func runStatus(args []string, stdout io.Writer) error {
	fs := newFlagSet("status")
	server := fs.String("server", defaultServer(), "master base URL")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	client := mastersdk.NewClient(*server)
	served, err := client.GetServed(ctx)
	if err != nil {
		return err
	}

	health, err := client.GetReadiness(ctx)
	if health == nil {
		return err
	}
	fmt.Fprintf(stdout, "served:   %d\nstatus:   %s\nversion:  %s\nuptime:   %s\nchannels: %d\n",
		served, health.Status, health.Version, health.Uptime, health.Channels)
	if health.Checks != nil {
		fmt.Fprintf(stdout, "store:    %s\nfeed:     %s\n", health.Checks.Store, health.Checks.Feed)
	}
	return err
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
