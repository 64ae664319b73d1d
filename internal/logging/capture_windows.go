//go:build windows

package logging

import "os"

// CaptureStderr is a no-op on Windows; its audio backend does not write to fd 2.
func CaptureStderr() error { return nil }

// WriteOriginal writes to stderr.
func WriteOriginal(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}

// ReleaseStderr is a no-op on Windows.
func ReleaseStderr() {}
