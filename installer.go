package main

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"log"
	"os"

	"github.com/dustin/go-humanize"
)

var errUnsupportedTarget = errors.New("install target not supported on this platform")

// Installer puts a composed icon in place and restores the default one.
type Installer interface {
	Install(img image.Image) error
	Reset() error
}

// newInstaller returns the installer for cfg.Target.
func newInstaller(cfg Config) (Installer, error) {
	switch cfg.Target {
	case "file":
		return newFileInstaller(outputPath(cfg)), nil
	case "tray":
		return &trayInstaller{defaultSize: cfg.IconSize}, nil
	case "dock":
		return newDockInstaller()
	default:
		return nil, fmt.Errorf("unknown target %q", cfg.Target)
	}
}

// fileInstaller writes the icon to a PNG or ICO file for consumers that load
// icons from disk. Unchanged icons are not rewritten.
type fileInstaller struct {
	path string
	last []byte
}

func newFileInstaller(path string) *fileInstaller {
	return &fileInstaller{path: path}
}

func (fi *fileInstaller) Install(img image.Image) error {
	data, err := encodeForPath(fi.path, img)
	if err != nil {
		return err
	}
	if bytes.Equal(data, fi.last) {
		if _, err := os.Stat(fi.path); err == nil {
			return nil
		}
	}
	if err := writeFileAtomic(fi.path, data, 0644, 0755); err != nil {
		return err
	}
	fi.last = data
	log.Printf("Wrote icon %s (%s)", fi.path, humanize.Bytes(uint64(len(data))))
	return nil
}

// Reset removes the icon file so consumers fall back to their own default.
func (fi *fileInstaller) Reset() error {
	fi.last = nil
	if err := os.Remove(fi.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s: %w", fi.path, err)
	}
	return nil
}
