package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cappelnord/codeklavier-ar-master/pkg/cryptox"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

func runSecret(args []string, stdout io.Writer) error {
	fs := newFlagSet("secret")
	bits := fs.Int("bits", 256, "entropy of the secret in bits (128 or 256)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	secret, err := cryptox.NewSecret(*bits)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, secret)
	return nil
}

// secretSource is how sign and set find the channel secret: a file, the
// MASTER_SECRET variable, or an interactive prompt, in that order.
type secretSource struct {
	file string
}

func (s *secretSource) register(fs *pflag.FlagSet) {
	fs.StringVar(&s.file, "secret-file", "", `read the channel secret from this file ("-" prompts)`)
}

func (s *secretSource) read() (string, error) {
	if s.file != "" && s.file != "-" {
		data, err := os.ReadFile(s.file)
		if err != nil {
			return "", fmt.Errorf("reading secret: %w", err)
		}
		return strings.TrimRight(string(data), "\r\n"), nil
	}

	if s.file == "" {
		if v := os.Getenv("MASTER_SECRET"); v != "" {
			return v, nil
		}
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("no terminal available for the secret prompt (use --secret-file or MASTER_SECRET)")
	}

	fmt.Fprint(os.Stderr, "Channel secret: ")
	secret, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading secret: %w", err)
	}
	if len(secret) == 0 {
		return "", errors.New("empty secret")
	}
	return string(secret), nil
}
