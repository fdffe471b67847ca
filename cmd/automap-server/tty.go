package main

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// sessionTty adapts a gliderlabs/ssh session to tcell.Tty so each client
// gets its own screen.
type sessionTty struct {
	session gossh.Session
	mu      sync.Mutex
	window  gossh.Window
	winCh   <-chan gossh.Window
	cb      func()
}

func newSessionTty(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) *sessionTty {
	return &sessionTty{
		session: s,
		window:  pty.Window,
		winCh:   winCh,
	}
}

func (t *sessionTty) Read(b []byte) (int, error)  { return t.session.Read(b) }
func (t *sessionTty) Write(b []byte) (int, error) { return t.session.Write(b) }
func (t *sessionTty) Close() error                { return t.session.Close() }

// Start and Stop are no-ops: the SSH channel is already open and owned by
// the server handler.
func (t *sessionTty) Start() error { return nil }
func (t *sessionTty) Stop() error  { return nil }
func (t *sessionTty) Drain() error { return nil }

func (t *sessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers the tcell resize callback and drains the SSH
// window-change channel for the session lifetime.
func (t *sessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.cb = cb
	t.mu.Unlock()

	go func() {
		for win := range t.winCh {
			t.mu.Lock()
			t.window = win
			localCb := t.cb
			t.mu.Unlock()
			if localCb != nil {
				localCb()
			}
		}
	}()
}
