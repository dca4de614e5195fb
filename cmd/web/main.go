package main

import (
	_ "embed"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/tomz197/phaseshift/internal/config"
	"github.com/tomz197/phaseshift/internal/log"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"
)

//go:embed index.html
var htmlPage string

func main() {
	host := flag.String("host", config.GetEnv("WEB_HOST", defaultHost), "address to listen on")
	port := flag.String("port", config.GetEnv("WEB_PORT", defaultPort), "port to listen on")
	sshHost := flag.String("ssh-host", config.GetEnv("SSH_DISPLAY_HOST", "your-server.com"), "SSH address shown on the page")
	logLevel := flag.String("log-level", config.GetEnv("PHASESHIFT_LOG_LEVEL", "info"), "log level (debug, info, warn, error)")
	flag.Parse()

	logger := log.NewLogger(&log.LoggerConfiguration{
		Level:  log.ParseLevel(*logLevel),
		Prefix: "phaseshift-web",
	})

	addr := net.JoinHostPort(*host, *port)
	logger.Info("starting web server", "url", "http://"+addr)
	if err := http.ListenAndServe(addr, landingHandler(*sshHost)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}

// landingHandler serves the landing page with the SSH address filled in.
func landingHandler(sshHost string) http.Handler {
	page := strings.ReplaceAll(htmlPage, "{{.SSHHost}}", sshHost)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, page)
	})
	return mux
}
