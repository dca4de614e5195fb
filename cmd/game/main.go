package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/muesli/termenv"
	flag "github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/tomz197/phaseshift/internal/config"
	"github.com/tomz197/phaseshift/internal/log"
	"github.com/tomz197/phaseshift/internal/loop/client"
	"github.com/tomz197/phaseshift/internal/loop/server"
)

func main() {
	logLevel := flag.String("log-level", config.GetEnv("PHASESHIFT_LOG_LEVEL", "info"), "log level (debug, info, warn, error)")
	logFile := flag.String("log-file", config.GetEnv("PHASESHIFT_LOG_FILE", ""), "log file path (defaults to the XDG state directory)")
	flag.Parse()

	f, err := setupLogging(log.ParseLevel(*logLevel), *logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not setup logging: %v\n", err)
	} else {
		defer f.Close()
	}

	if err := run(); err != nil {
		log.G().Error("game error", "err", err)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	gs := server.New(server.Options{})
	defer gs.Close()

	c := client.NewClient(gs, bufio.NewReader(os.Stdin), os.Stdout, client.ClientOptions{
		ColorProfile: termenv.EnvColorProfile(),
	})
	return c.Run()
}
