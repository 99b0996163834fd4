// masterctl is the operator tool for the codeklavier AR master. It
// generates channel secrets, signs update payloads and talks to a
// running master.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
)

const usage = `masterctl - operate a codeklavier AR master

Usage:
  masterctl <command> [flags]

Commands:
  secret   generate a new channel secret
  sign     sign an update payload without sending it
  set      send a signed update for a channel
  get      print the public info of a channel
  app      print the aggregate channel listing
  watch    follow the live update feed
  status   print the master's served counter and readiness

Run "masterctl <command> --help" for the flags of a command.
The master URL defaults to $MASTER_URL, then http://localhost:10333.
`

type command func(args []string, stdout io.Writer) error

var commands = map[string]command{
	"secret": runSecret,
	"sign":   runSign,
	"set":    runSet,
	"get":    runGet,
	"app":    runApp,
	"watch":  runWatch,
	"status": runStatus,
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" || args[0] == "help" {
		fmt.Fprint(os.Stderr, usage)
		return nil
	}

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
	return cmd(args[1:], stdout)
}

func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet("masterctl "+name, pflag.ContinueOnError)
	fs.SortFlags = false
	return fs
}

func defaultServer() string {
	if u := os.Getenv("MASTER_URL"); u != "" {
		return u
	}
	return "http://localhost:10333"
}
