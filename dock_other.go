//go:build !darwin || !cgo

package main

func newDockInstaller() (Installer, error) {
	return nil, errUnsupportedTarget
}
