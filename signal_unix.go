//go:build !windows

package main

import (
	"os"
	"os/signal"
	"syscall"
)

func notifyExtraSignals(ch chan<- os.Signal) {
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGHUP)
}

// isReloadSignal reports whether sig asks for a settings reload rather than shutdown.
func isReloadSignal(sig os.Signal) bool {
	return sig == syscall.SIGHUP
}
