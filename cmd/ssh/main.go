package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	flag "github.com/spf13/pflag"

	"github.com/tomz197/phaseshift/internal/config"
	"github.com/tomz197/phaseshift/internal/log"
	"github.com/tomz197/phaseshift/internal/loop/client"
	"github.com/tomz197/phaseshift/internal/loop/server"
)

const (
	defaultHost        = "::"
	defaultPort        = 2222
	defaultHostKeyPath = "/app/keys/host_key"
)

func main() {
	host := flag.String("host", config.GetEnv("SSH_HOST", defaultHost), "address to listen on")
	port := flag.Int("port", config.GetEnvInt("SSH_PORT", defaultPort), "port to listen on")
	hostKeyPath := flag.String("host-key", config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath), "path to the SSH host key")
	logLevel := flag.String("log-level", config.GetEnv("PHASESHIFT_LOG_LEVEL", "info"), "log level (debug, info, warn, error)")
	shutdownTimeout := flag.Duration("shutdown-timeout", config.GetEnvDuration("SSH_SHUTDOWN_TIMEOUT", 15*time.Second), "how long to wait for players on shutdown")
	flag.Parse()

	logger := log.NewLogger(&log.LoggerConfiguration{
		Level:  log.ParseLevel(*logLevel),
		Prefix: "phaseshift",
	})
	log.SetDefault(logger)

	if err := run(logger, *host, *port, *hostKeyPath, *shutdownTimeout); err != nil {
		logger.Error("ssh server failed", "err", err)
		os.Exit(1)
	}
}

func run(logger *log.Logger, host string, port int, hostKeyPath string, shutdownTimeout time.Duration) error {
	workingDir, err := os.Getwd()
	if err != nil {
		logger.Warn("failed to get working directory", "err", err)
	}
	logger.Info("ssh config", "host", host, "port", port, "host_key", hostKeyPath, "working_dir", workingDir)

	// Every connection plays its own game; the registry tracks them for shutdown
	registry := server.NewRegistry(server.Options{Logger: log.Server()})

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, strconv.Itoa(port))),
		wish.WithMiddleware(
			gameMiddleware(registry),
			activeterm.Middleware(),
			logging.StructuredMiddlewareWithLogger(logger, log.InfoLevel),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}

	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	logger.Info("starting ssh server", "addr", s.Addr)
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("listen: %w", err)
	case <-done:
	}

	// Notify players and wait for them to disconnect
	logger.Info("shutting down", "players", registry.Count())
	registry.Shutdown(shutdownTimeout)
	logger.Info("game sessions stopped")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// gameMiddleware handles SSH sessions and runs a game client against a
// dedicated game server.
func gameMiddleware(registry *server.Registry) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			pty, winCh, ok := sess.Pty()
			if !ok {
				fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
				return
			}

			gs := registry.Open()
			defer registry.Release(gs.ID)

			logger := log.Client().With("session", gs.ID, "user", sess.User())
			logger.Info("new game session", "term", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

			// Create a terminal size tracker that updates on window changes
			sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
			go func() {
				for win := range winCh {
					sizeTracker.update(win.Width, win.Height)
				}
			}()

			c := client.NewClient(gs, bufio.NewReader(sess), sess, client.ClientOptions{
				TermSizeFunc: sizeTracker.getSize,
				ColorProfile: colorProfile(pty.Term, sess.Environ()),
				Logger:       logger,
			})
			if err := c.Run(); err != nil {
				logger.Error("game error", "err", err)
			}

			logger.Info("session ended")
			next(sess)
		}
	}
}
