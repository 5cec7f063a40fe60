//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/stretchr/testify/require"
)

var binPath = "storyfreak_e2e"

const (
	scrollback  = 1 << 20
	pollEvery   = 25 * time.Millisecond
	waitDefault = 3 * time.Second
)

// Keystrokes as the terminal sends them
const (
	keyTab       = "\t"
	keyCtrlC     = "\x03"
	keyArrowDown = "\x1b[B"
)

// escapes matches the control sequences stripped before text assertions
var escapes = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]|\x1b\][^\x07]*\x07|\x1b[()][A-Za-z]|\x1b[=>]|\r`)

// screen keeps the most recent terminal output
type screen struct {
	mu   sync.Mutex
	data []byte
}

func (s *screen) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append(s.data, p...)
	if over := len(s.data) - scrollback; over > 0 {
		s.data = s.data[over:]
	}
	return len(p), nil
}

func (s *screen) plain() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return escapes.ReplaceAllString(string(s.data), "")
}

// session is one storyfreak process attached to a pseudo terminal
type session struct {
	t      *testing.T
	dir    string
	cmd    *exec.Cmd
	tty    *os.File
	out    *screen

	exited  chan struct{}
	waitErr error
}

// startSession runs storyfreak on a fresh config and storage in a PTY.
// The process is killed when the test ends.
func startSession(t *testing.T, args ...string) *session {
	t.Helper()

	s := &session{t: t, dir: t.TempDir(), out: &screen{}, exited: make(chan struct{})}
	args = append([]string{"--config", s.configPath(), "--storage", s.storagePath()}, args...)
	s.cmd = exec.Command(binPath, args...)
	s.cmd.Env = append(os.Environ(), "TERM=xterm-256color", "HOME="+s.dir)

	tty, err := pty.StartWithSize(s.cmd, &pty.Winsize{Rows: 40, Cols: 120})
	require.NoError(t, err, "failed to start storyfreak")
	s.tty = tty

	go s.out.drain(tty)
	go func() {
		s.waitErr = s.cmd.Wait()
		close(s.exited)
	}()

	t.Cleanup(s.close)
	return s
}

// drain copies terminal output until the PTY closes
func (s *screen) drain(r *os.File) {
	buf := make([]byte, 8192)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			_, _ = s.Write(buf[:n])
		}
		if err != nil {
			return
		}
	}
}

func (s *session) configPath() string  { return filepath.Join(s.dir, ".storyfreak.toml") }
func (s *session) storagePath() string { return filepath.Join(s.dir, "storage.toml") }

// press writes keystrokes to the application
func (s *session) press(keys ...string) {
	s.t.Helper()
	for _, k := range keys {
		_, err := s.tty.Write([]byte(k))
		require.NoError(s.t, err, "failed to send %q", k)
	}
}

// waitFor polls until cond holds for the plain screen text. On timeout the
// tail of the screen is written to a file and returned in the error.
func (s *session) waitFor(cond func(string) bool, timeout time.Duration, what string) error {
	deadline := time.Now().Add(timeout)
	for {
		text := s.out.plain()
		if cond(text) {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("%s not seen within %s\n--- tail ---\n%s", what, timeout, s.dumpTail(text))
		}
		time.Sleep(pollEvery)
	}
}

// expect fails the test unless text shows up on screen
func (s *session) expect(text string) {
	s.t.Helper()
	err := s.waitFor(func(out string) bool { return strings.Contains(out, text) }, waitDefault, fmt.Sprintf("%q", text))
	require.NoError(s.t, err)
}

// expectFile fails the test unless the storage file satisfies cond
func (s *session) expectFile(cond func(string) bool, what string) {
	s.t.Helper()
	err := s.waitFor(func(string) bool {
		data, err := os.ReadFile(s.storagePath())
		return err == nil && cond(string(data))
	}, waitDefault, what)
	require.NoError(s.t, err)
}

// ready waits for the first frame of the showcase
func (s *session) ready() {
	s.t.Helper()
	s.expect("terminal component showcase")
}

// waitExit reports whether the process ended within timeout, and its exit error
func (s *session) waitExit(timeout time.Duration) (bool, error) {
	select {
	case <-s.exited:
		return true, s.waitErr
	case <-time.After(timeout):
		return false, nil
	}
}

func (s *session) dumpTail(text string) string {
	if len(text) > 4096 {
		text = text[len(text)-4096:]
	}
	p := filepath.Join(s.dir, "screen-tail.txt")
	_ = os.WriteFile(p, []byte(text), 0o644)
	s.t.Logf("saved screen tail to %s", p)
	return text
}

func (s *session) close() {
	if done, _ := s.waitExit(0); !done {
		_ = s.cmd.Process.Kill()
		_, _ = s.waitExit(time.Second)
	}
	_ = s.tty.Close()
}
