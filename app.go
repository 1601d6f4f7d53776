package main

import (
	"fmt"
	"log"
	"sync"
	"time"
)

// App ties together settings, the compositor and an icon installer. It
// re-asserts the icon periodically and reloads settings when they change.
type App struct {
	overrides overrides
	installer Installer

	mu        sync.Mutex // serializes Apply/Reset, guards the fields below
	cfg       Config
	interval  time.Duration
	installed bool
	lastApply *time.Time
	lastErr   error
	onApply   func()    // called after Apply/Reset, outside mu
	tray      *trayMenu // nil unless running with a tray

	quit     chan struct{} // closed on shutdown
	quitOnce sync.Once
}

// appStatus is a snapshot of the last apply cycle.
type appStatus struct {
	Config    Config
	Installed bool
	LastApply *time.Time
	LastErr   error
}

// NewApp creates an App from an already loaded config. o is re-applied on
// every settings reload so command-line values keep precedence.
func NewApp(cfg Config, o overrides, inst Installer) *App {
	return &App{
		overrides: o,
		installer: inst,
		interval:  time.Duration(cfg.ReapplyIntervalSeconds) * time.Second,
		cfg:       cfg,
		quit:      make(chan struct{}),
	}
}

// loadSettings reads the settings file and layers env and flag overrides on top.
func (a *App) loadSettings() Config {
	cfg := loadConfig()
	applyOverrides(&cfg, a.overrides)
	return cfg
}

// Reload re-reads the settings and applies them.
func (a *App) Reload() error {
	cfg := a.loadSettings()
	a.mu.Lock()
	if cfg.Target != a.cfg.Target {
		log.Printf("Target changed to %q; restart to switch installers", cfg.Target)
	}
	a.cfg = cfg
	a.interval = time.Duration(cfg.ReapplyIntervalSeconds) * time.Second
	a.mu.Unlock()
	return a.Apply()
}

// Apply composes the icon from the current settings and installs it. When
// the settings are disabled a previously installed icon is reset instead.
// On failure the previously installed icon stays in place.
func (a *App) Apply() error {
	err := a.apply()
	a.notify()
	return err
}

// setOnApply installs the hook run after every Apply and Reset.
func (a *App) setOnApply(fn func()) {
	a.mu.Lock()
	a.onApply = fn
	a.mu.Unlock()
}

func (a *App) notify() {
	a.mu.Lock()
	fn := a.onApply
	a.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// reapplyInterval returns the current re-assert period.
func (a *App) reapplyInterval() time.Duration {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.interval
}

func (a *App) apply() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.cfg.Enabled {
		a.lastErr = nil
		if !a.installed {
			return nil
		}
		if err := a.installer.Reset(); err != nil {
			a.lastErr = err
			return fmt.Errorf("reset icon: %w", err)
		}
		a.installed = false
		log.Println("Custom icon disabled, restored default")
		return nil
	}

	img, err := buildIcon(a.cfg)
	if err != nil {
		a.lastErr = err
		return fmt.Errorf("compose icon: %w", err)
	}
	if err := a.installer.Install(img); err != nil {
		a.lastErr = err
		return fmt.Errorf("install icon: %w", err)
	}

	if !a.installed {
		log.Printf("Icon installed (overlay %s, badge %q)", describeColor(resolveOverlay(a.cfg)), a.cfg.BadgeText)
	}
	now := time.Now()
	a.lastApply = &now
	a.lastErr = nil
	a.installed = true
	return nil
}

// Reset restores the default icon without touching the settings.
func (a *App) Reset() error {
	a.mu.Lock()
	err := a.installer.Reset()
	if err == nil {
		a.installed = false
	}
	a.lastErr = err
	a.mu.Unlock()

	a.notify()
	return err
}

// SetEnabled persists the enabled flag and re-applies.
func (a *App) SetEnabled(enabled bool) error {
	cfg := loadConfig()
	cfg.Enabled = enabled
	if err := saveConfig(cfg); err != nil {
		return err
	}
	return a.Reload()
}

// ResetSettings restores the icon settings to their defaults, keeping the
// enabled flag and where the icon is installed, and restores the default icon.
func (a *App) ResetSettings() error {
	cur := loadConfig()
	cfg := defaultConfig()
	cfg.Enabled = cur.Enabled
	cfg.ProjectName = cur.ProjectName
	cfg.Target = cur.Target
	cfg.OutputPath = cur.OutputPath
	if err := saveConfig(cfg); err != nil {
		return err
	}
	if err := a.Reset(); err != nil {
		return err
	}
	log.Println("Settings reset to defaults")
	return a.Reload()
}

// Status returns a consistent snapshot of the app state.
func (a *App) Status() appStatus {
	a.mu.Lock()
	defer a.mu.Unlock()
	return appStatus{
		Config:    a.cfg,
		Installed: a.installed,
		LastApply: a.lastApply,
		LastErr:   a.lastErr,
	}
}

// Start applies the icon once, then starts the re-assert loop and the
// settings watcher.
func (a *App) Start() {
	if err := a.Apply(); err != nil {
		log.Printf("Apply failed: %v", err)
	}
	go a.reassertLoop()
	if err := a.watchSettings(configPath); err != nil {
		log.Printf("Settings watcher disabled: %v", err)
	}
}

// Done is closed once the app shuts down.
func (a *App) Done() <-chan struct{} {
	return a.quit
}

// Shutdown signals the app to stop.
func (a *App) Shutdown() {
	a.quitOnce.Do(func() { close(a.quit) })
	a.mu.Lock()
	tray := a.tray
	a.mu.Unlock()
	if tray != nil {
		tray.quit()
	}
}

// reassertLoop re-installs the icon periodically; some platforms reset it
// behind our back. A changed interval takes effect after the next tick.
func (a *App) reassertLoop() {
	interval := a.reapplyInterval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	var lastMsg string
	for {
		select {
		case <-a.quit:
			return
		case <-ticker.C:
			err := a.Apply()
			// Log each distinct failure once instead of every tick.
			msg := ""
			if err != nil {
				msg = err.Error()
			}
			if msg != "" && msg != lastMsg {
				log.Printf("Re-apply failed: %v", err)
			}
			lastMsg = msg

			if d := a.reapplyInterval(); d != interval {
				log.Printf("Re-apply interval changed to %s", d)
				ticker.Reset(d)
				interval = d
			}
		}
	}
}
