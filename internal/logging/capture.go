//go:build !windows

package logging

import (
	"bufio"
	"os"
	"strings"
	"syscall"
)

var (
	origStderr = -1
	pipeRead   *os.File
	pipeWrite  *os.File
	capturing  bool
)

// CaptureStderr redirects file descriptor 2 into the log at warn level.
// The audio backend writes device errors straight to fd 2, which would
// corrupt the TUI. Call it before the speaker is initialized and call
// ReleaseStderr on exit.
func CaptureStderr() error {
	if capturing {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	origStderr, err = syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}

	if err := syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		_ = syscall.Close(origStderr)
		origStderr = -1
		r.Close()
		w.Close()
		return err
	}

	pipeRead, pipeWrite = r, w
	capturing = true

	go func() {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				Warn("stderr: %s", line)
			}
		}
	}()
	return nil
}

// WriteOriginal writes to the terminal's stderr even while captured.
func WriteOriginal(msg string) {
	if origStderr >= 0 {
		_, _ = syscall.Write(origStderr, []byte(msg))
		return
	}
	_, _ = os.Stderr.WriteString(msg)
}

// ReleaseStderr restores the original stderr.
func ReleaseStderr() {
	if !capturing {
		return
	}
	_ = syscall.Dup2(origStderr, int(os.Stderr.Fd()))
	_ = syscall.Close(origStderr)
	origStderr = -1

	pipeWrite.Close()
	pipeRead.Close()
	capturing = false
}
