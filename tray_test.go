package main

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/babs/unicon/compositor"
)

func TestBuildTooltip_Error(t *testing.T) {
	st := appStatus{Config: defaultConfig(), LastErr: errors.New("something broke")}
	got := buildTooltip(st)
	if !strings.Contains(got, "Error: something broke") {
		t.Errorf("buildTooltip(error) = %q, missing error line", got)
	}
	if strings.Contains(got, "Overlay:") {
		t.Errorf("buildTooltip(error) should not contain overlay line")
	}
}

func TestBuildTooltip_Disabled(t *testing.T) {
	got := buildTooltip(appStatus{Config: defaultConfig()})
	if got != "Unicon\nDisabled" {
		t.Errorf("buildTooltip(disabled) = %q, want %q", got, "Unicon\nDisabled")
	}
}

func TestBuildTooltip_AutoColor(t *testing.T) {
	cfg := defaultConfig()
	cfg.Enabled = true
	got := buildTooltip(appStatus{Config: cfg})
	if !strings.Contains(got, "Overlay: #FF7F00 @30% (auto)") {
		t.Errorf("buildTooltip missing auto overlay line: %q", got)
	}
	if strings.Contains(got, "Badge:") {
		t.Errorf("buildTooltip should not show a badge line: %q", got)
	}
}

func TestBuildTooltip_Full(t *testing.T) {
	cfg := defaultConfig()
	cfg.Enabled = true
	cfg.UseAutoColor = false
	cfg.OverlayColor = compositor.Color{R: 0, G: 0, B: 1, A: 0.5}
	cfg.IconPath = "/icons/app.png"
	cfg.BadgeText = "Dev"
	got := buildTooltip(appStatus{Config: cfg})
	for _, want := range []string{"Image: /icons/app.png", "Overlay: #0000FF @50%", `Badge: "Dev"`} {
		if !strings.Contains(got, want) {
			t.Errorf("buildTooltip missing %q: %q", want, got)
		}
	}
	if strings.Contains(got, "(auto)") {
		t.Errorf("manual overlay marked auto: %q", got)
	}
}

func TestBuildTooltip_TruncatesLongError(t *testing.T) {
	st := appStatus{LastErr: errors.New(strings.Repeat("x", 200))}
	got := buildTooltip(st)
	if len(got) > len("Unicon\nError: ")+60 {
		t.Errorf("tooltip not truncated: %d bytes", len(got))
	}
}

func TestFormatStatusLine(t *testing.T) {
	enabled := defaultConfig()
	enabled.Enabled = true
	now := time.Now()

	tests := []struct {
		name string
		st   appStatus
		want string
	}{
		{"error", appStatus{Config: enabled, LastErr: errors.New("x")}, "Status: error"},
		{"disabled", appStatus{Config: defaultConfig()}, "Status: disabled"},
		{"active", appStatus{Config: enabled, Installed: true, LastApply: &now}, "Status: active"},
		{"pending", appStatus{Config: enabled}, "Status: pending"},
	}
	for _, tt := range tests {
		if got := formatStatusLine(tt.st); got != tt.want {
			t.Errorf("%s: formatStatusLine() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("héllo", 2); got != "hé" {
		t.Errorf("truncate = %q, want %q", got, "hé")
	}
	if got := truncate("abc", 10); got != "abc" {
		t.Errorf("truncate = %q, want %q", got, "abc")
	}
}

func TestTrayInstallerSatisfiesInstaller(t *testing.T) {
	var _ Installer = &trayInstaller{}
}

func TestUpdateUI_BeforeTrayReady(t *testing.T) {
	app := NewApp(defaultConfig(), noOverrides, &fakeInstaller{})
	// No tray yet.
	app.updateUI()

	// Tray created but systray has not built the menu.
	app.tray = &trayMenu{}
	app.setOnApply(app.updateUI)
	if err := app.Apply(); err != nil {
		t.Fatalf("Apply error: %v", err)
	}
}
