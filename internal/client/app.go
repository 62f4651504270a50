// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/internal/service"
	"github.com/MKhiriev/go-zk-vault/models"
	"github.com/atotto/clipboard"
	"github.com/awnumar/memguard"
	"golang.org/x/term"
)

const prompt = "vault> "

// errQuit ends the command loop.
var errQuit = errors.New("quit")

type App struct {
	services  *service.ClientServices
	version   VersionSource
	buildInfo models.AppBuildInfo

	in  *bufio.Scanner
	out io.Writer

	// readSecret reads a line without echo. Nil means secrets are read from
	// in like any other line.
	readSecret func() ([]byte, error)
	copyText   func(string) error

	commands map[string]command

	logger *logger.Logger
}

// NewApp creates a client bound to the process standard streams.
func NewApp(services *service.ClientServices, version VersionSource, buildInfo models.AppBuildInfo, logger *logger.Logger) *App {
	app := newApp(services, version, buildInfo, os.Stdin, os.Stdout, logger)

	if fd := int(os.Stdin.Fd()); term.IsTerminal(fd) {
		app.readSecret = func() ([]byte, error) {
			defer fmt.Fprintln(app.out)
			return term.ReadPassword(fd)
		}
	}

	return app
}

func newApp(services *service.ClientServices, version VersionSource, buildInfo models.AppBuildInfo, in io.Reader, out io.Writer, logger *logger.Logger) *App {
	app := &App{
		services:  services,
		version:   version,
		buildInfo: buildInfo,
		in:        bufio.NewScanner(in),
		out:       out,
		copyText:  clipboard.WriteAll,
		logger:    logger,
	}
	app.commands = app.commandTable()

	return app
}

// Run reads and executes commands until quit, end of input or ctx is done.
// The keyring is cleared on every exit path.
func (a *App) Run(ctx context.Context) error {
	defer a.services.Keyring.Clear()

	fmt.Fprintln(a.out, "Type help for the list of commands.")
	for {
		if ctx.Err() != nil {
			return nil
		}

		line, ok := a.readLine(prompt)
		if !ok {
			return a.in.Err()
		}

		err := a.execute(ctx, line)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			a.logger.Debug().Err(err).Str("command", firstWord(line)).Msg("command failed")
			fmt.Fprintf(a.out, "error: %s\n", userMessage(err))
		}
	}
}

func (a *App) execute(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	cmd, ok := a.commands[strings.ToLower(fields[0])]
	if !ok {
		return errUnknownCommand
	}
	if len(fields)-1 < cmd.minArgs {
		return fmt.Errorf("%w, usage: %s", errUsage, cmd.usage)
	}

	return cmd.run(ctx, fields[1:])
}

func (a *App) readLine(label string) (string, bool) {
	line, ok := a.readRawLine(label)
	return strings.TrimSpace(line), ok
}

// readRawLine returns the line as typed, dropping only a CRLF terminator.
func (a *App) readRawLine(label string) (string, bool) {
	fmt.Fprint(a.out, label)
	if !a.in.Scan() {
		return "", false
	}
	return strings.TrimSuffix(a.in.Text(), "\r"), true
}

// readPassword prompts for a secret. The returned string is a copy; the
// buffer filled by the terminal is zeroed.
func (a *App) readPassword(label string) (string, error) {
	if a.readSecret == nil {
		line, ok := a.readRawLine(label)
		if !ok {
			return "", io.ErrUnexpectedEOF
		}
		return line, nil
	}

	fmt.Fprint(a.out, label)
	raw, err := a.readSecret()
	if err != nil {
		return "", err
	}
	defer memguard.WipeBytes(raw)

	return string(raw), nil
}

func (a *App) readCredentials(confirm bool) (models.Credentials, error) {
	email, ok := a.readLine("Email: ")
	if !ok {
		return models.Credentials{}, io.ErrUnexpectedEOF
	}

	password, err := a.readPassword("Master password: ")
	if err != nil {
		return models.Credentials{}, err
	}

	if confirm {
		again, err := a.readPassword("Repeat master password: ")
		if err != nil {
			return models.Credentials{}, err
		}
		if again != password {
			return models.Credentials{}, errPasswordsMismatch
		}
	}

	return models.Credentials{Email: email, Password: password}, nil
}

func firstWord(line string) string {
	if fields := strings.Fields(line); len(fields) > 0 {
		return fields[0]
	}
	return ""
}
