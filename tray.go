package main

import (
	"fmt"
	"image"
	"log"
	"sync"
	"time"

	"fyne.io/systray"
)

// trayInstaller shows the composed icon as the system tray icon.
type trayInstaller struct {
	defaultSize int
}

func (ti *trayInstaller) Install(img image.Image) error {
	data, err := iconToBytes(img)
	if err != nil {
		return err
	}
	systray.SetIcon(data)
	return nil
}

// Reset shows the default icon.
func (ti *trayInstaller) Reset() error {
	data, err := iconToBytes(defaultIcon(ti.defaultSize))
	if err != nil {
		return err
	}
	systray.SetIcon(data)
	return nil
}

// trayMenu holds the menu items updated dynamically. Items are nil until
// systray reports ready.
type trayMenu struct {
	mu    sync.Mutex
	ready bool

	mStatus  *systray.MenuItem
	mApplied *systray.MenuItem
	mEnabled *systray.MenuItem
	mApply   *systray.MenuItem
	mReset   *systray.MenuItem
	mQuit    *systray.MenuItem
}

func (m *trayMenu) quit() {
	systray.Quit()
}

// RunTray starts the app with a tray menu. Blocks until the tray exits.
// The tray also provides the main event loop the dock installer needs.
func (a *App) RunTray() {
	a.mu.Lock()
	a.tray = &trayMenu{}
	a.mu.Unlock()
	a.setOnApply(a.updateUI)
	systray.Run(a.onReady, a.onExit)
}

func (a *App) menu() *trayMenu {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.tray
}

// onReady is called by systray when the tray is ready.
func (a *App) onReady() {
	systray.SetTitle("")
	systray.SetTooltip("Unicon")
	if data, err := iconToBytes(defaultIcon(a.Status().Config.IconSize)); err == nil {
		systray.SetIcon(data)
	}

	m := a.menu()
	m.mu.Lock()
	m.mStatus = systray.AddMenuItem("Status: --", "Custom icon status")
	m.mStatus.Disable()
	m.mApplied = systray.AddMenuItem("Applied: --", "Last time the icon was installed")
	m.mApplied.Disable()

	systray.AddSeparator()

	m.mEnabled = systray.AddMenuItemCheckbox("Enabled", "Enable the custom icon", a.Status().Config.Enabled)
	m.mApply = systray.AddMenuItem("Apply now", "Reload settings and apply")
	m.mReset = systray.AddMenuItem("Reset to defaults", "Reset icon settings to their defaults")
	m.mQuit = systray.AddMenuItem("Quit", "Quit the application")
	m.ready = true
	m.mu.Unlock()

	a.Start()

	go a.appliedTicker()
	go a.eventLoop()
}

// onExit is called when the systray is shutting down.
func (a *App) onExit() {
	a.quitOnce.Do(func() { close(a.quit) })
}

// eventLoop handles menu item clicks.
func (a *App) eventLoop() {
	m := a.menu()
	for {
		select {
		case <-a.quit:
			return
		case <-m.mEnabled.ClickedCh:
			if err := a.SetEnabled(!m.mEnabled.Checked()); err != nil {
				log.Printf("Toggle enabled failed: %v", err)
			}
		case <-m.mApply.ClickedCh:
			if err := a.Reload(); err != nil {
				log.Printf("Apply failed: %v", err)
			}
		case <-m.mReset.ClickedCh:
			if err := a.ResetSettings(); err != nil {
				log.Printf("Reset failed: %v", err)
			}
		case <-m.mQuit.ClickedCh:
			a.Shutdown()
			return
		}
	}
}

// appliedTicker refreshes the "Applied: Xs ago" menu item every second.
func (a *App) appliedTicker() {
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-a.quit:
			return
		case <-ticker.C:
			a.menu().mApplied.SetTitle(formatAppliedAgo(a.Status().LastApply))
		}
	}
}

// updateUI refreshes the tooltip and menu items from current state.
func (a *App) updateUI() {
	m := a.menu()
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.ready {
		return
	}
	st := a.Status()

	systray.SetTooltip(buildTooltip(st))
	m.mStatus.SetTitle(formatStatusLine(st))
	m.mApplied.SetTitle(formatAppliedAgo(st.LastApply))
	if st.Config.Enabled {
		m.mEnabled.Check()
	} else {
		m.mEnabled.Uncheck()
	}
}

// buildTooltip generates tooltip text from state.
func buildTooltip(st appStatus) string {
	lines := "Unicon"

	if st.LastErr != nil {
		return lines + "\nError: " + truncate(st.LastErr.Error(), 60)
	}
	if !st.Config.Enabled {
		return lines + "\nDisabled"
	}

	cfg := st.Config
	if cfg.IconPath != "" {
		lines += "\nImage: " + truncate(cfg.IconPath, 60)
	}
	overlay := describeColor(resolveOverlay(cfg))
	if cfg.UseAutoColor {
		overlay += " (auto)"
	}
	lines += "\nOverlay: " + overlay
	if cfg.BadgeText != "" {
		lines += fmt.Sprintf("\nBadge: %q", cfg.BadgeText)
	}
	return lines
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
