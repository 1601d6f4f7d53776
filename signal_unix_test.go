//go:build !windows

package main

import (
	"os"
	"syscall"
	"testing"
)

func TestIsReloadSignal(t *testing.T) {
	if !isReloadSignal(syscall.SIGHUP) {
		t.Error("SIGHUP should reload")
	}
	if isReloadSignal(syscall.SIGTERM) || isReloadSignal(os.Interrupt) {
		t.Error("SIGTERM and interrupt should shut down")
	}
}
