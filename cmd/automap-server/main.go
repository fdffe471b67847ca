// automap-server serves the interactive minimap demo over SSH; every
// connection gets its own level and automap session.
//
//	go run ./cmd/automap-server --port 2222
//	ssh -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/rs/zerolog"
	xssh "golang.org/x/crypto/ssh"

	"github.com/lixenwraith/automap/config"
	"github.com/lixenwraith/automap/engine"
)

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "automap_host_key", "PEM host key (generated if absent)")
	cfgPath := flag.String("config", "automap.json", "path to the config file")
	flag.Parse()

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	// The speaker is process-global; sound stays off for remote sessions.
	cfg.Sound = false

	signer, err := loadOrCreateHostKey(*keyFile, log)
	if err != nil {
		log.Fatal().Err(err).Msg("host key")
	}

	srv := &gossh.Server{
		Addr: fmt.Sprintf(":%d", *port),
		Handler: func(s gossh.Session) {
			handleSession(s, cfg, log)
		},
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		HostSigners: []gossh.Signer{signer},
	}

	log.Info().Int("port", *port).Msg("automap SSH server listening")
	log.Fatal().Err(srv.ListenAndServe()).Msg("server stopped")
}

// termMu serializes os.Setenv("TERM") around screen creation; tcell reads
// the process environment there.
var termMu sync.Mutex

// handleSession runs one demo session; it blocks until the client quits.
func handleSession(s gossh.Session, cfg config.Config, log zerolog.Logger) {
	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "A PTY is required. Connect with: ssh -t -p 2222 <host>")
		return
	}

	term := "xterm-256color"
	for _, env := range s.Environ() {
		if strings.HasPrefix(env, "TERM=") {
			term = env[5:]
			break
		}
	}

	tty := newSessionTty(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		return
	}
	defer screen.Fini()
	screen.EnableMouse()

	sessionLog := log.With().Str("remote", s.RemoteAddr().String()).Logger()
	game, err := engine.New(screen, cfg, sessionLog)
	if err != nil {
		sessionLog.Error().Err(err).Msg("session setup")
		return
	}
	if err := game.Run(); err != nil {
		sessionLog.Error().Err(err).Msg("session ended")
	}
}

// loadOrCreateHostKey loads a PEM private key, generating and persisting
// an ed25519 key when the file is absent.
func loadOrCreateHostKey(path string, log zerolog.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			return signer, nil
		}
	}

	log.Info().Str("path", path).Msg("generating ed25519 host key")
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	block, err := xssh.MarshalPrivateKey(key, "")
	if err != nil {
		return nil, fmt.Errorf("marshal host key: %w", err)
	}
	if err := os.WriteFile(path, pem.EncodeToMemory(block), 0o600); err != nil {
		return nil, fmt.Errorf("persist host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("signer: %w", err)
	}
	return signer, nil
}
