package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"runtime"

	"github.com/minio/selfupdate"
	"github.com/ulikunitz/xz"
	"golang.org/x/mod/semver"
	"golang.org/x/term"
)

// releaseAssetURL returns the download URL of the xz-compressed binary for
// the given platform.
func releaseAssetURL(repo, tag, goos, goarch string) string {
	ext := "xz"
	if goos == "windows" {
		ext = "exe.xz"
	}
	return fmt.Sprintf(
		"https://github.com/%s/releases/download/%s/unicon-%s-%s.%s",
		repo, tag, goos, goarch, ext,
	)
}

func selfUpdate() error {
	fmt.Printf("Current version: %s-%s\n", Version, CommitHash)

	// Fetch latest release from GitHub API.
	url := fmt.Sprintf("https://api.github.com/repos/%s/releases/latest", GithubRepo)
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("check for updates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GitHub API returned HTTP %d", resp.StatusCode)
	}

	var release struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return fmt.Errorf("parse release info: %w", err)
	}

	latestRelease := release.Name
	fmt.Printf("Latest release: %s\n", latestRelease)

	switch semver.Compare(latestRelease, Version) {
	case -1:
		fmt.Println("You have a newer version than the latest release.")
		return nil
	case 0:
		fmt.Println("Already up to date.")
		return nil
	case 1:
		fmt.Println("New version available, upgrading...")
		if Version == "v0.0.0" {
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return fmt.Errorf("development build, refusing to update without a terminal")
			}
			fmt.Print("Development build detected, press Enter to proceed: ")
			bufio.NewReader(os.Stdin).ReadBytes('\n')
		}
	}

	downloadURL := releaseAssetURL(GithubRepo, latestRelease, runtime.GOOS, runtime.GOARCH)

	opts := selfupdate.Options{}
	if err := opts.CheckPermissions(); err != nil {
		fmt.Printf("Cannot update in place (permission denied).\nDownload manually: %s\n", downloadURL)
		return nil
	}

	fmt.Printf("Downloading %s...\n", downloadURL)
	dlResp, err := http.Get(downloadURL)
	if err != nil {
		return fmt.Errorf("download: %w", err)
	}
	defer dlResp.Body.Close()

	if dlResp.StatusCode != http.StatusOK {
		return fmt.Errorf("download returned HTTP %d", dlResp.StatusCode)
	}

	r, err := xz.NewReader(dlResp.Body)
	if err != nil {
		return fmt.Errorf("xz decompression: %w", err)
	}

	if err := selfupdate.Apply(r, opts); err != nil {
		return fmt.Errorf("apply update: %w", err)
	}

	fmt.Printf("Updated to %s successfully.\n", latestRelease)
	return nil
}
