package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"

	"github.com/babs/unicon/compositor"
)

// Build-time variables injected via ldflags.
var (
	Version        = "v0.0.0"
	CommitHash     = "dev"
	BuildTimestamp = "1970-01-01T00:00:00Z"
	Builder        = "unknown"
	GithubRepo     = "babs/unicon"
)

func versionString() string {
	return fmt.Sprintf("unicon %s-%s", Version, CommitHash)
}

func versionStringLong() string {
	return fmt.Sprintf("unicon %s-%s (built %s using %s)\nhttps://github.com/%s\n",
		Version, CommitHash, BuildTimestamp, Builder, GithubRepo)
}

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmsgprefix)
	log.SetPrefix("[unicon] ")

	showVersion := flag.Bool("version", false, "show version and exit")
	doUpdate := flag.Bool("update", false, "check and update to latest release")
	settingsFile := flag.String("config", "", "settings file (env: UNICON_CONFIG)")
	once := flag.Bool("once", false, "compose and install the icon once, then exit")
	enabled := flag.Bool("enabled", true, "enable the custom icon (env: UNICON_ENABLED)")
	iconPath := flag.String("image", "", "custom base image: png, jpg, gif, bmp, tiff (env: UNICON_IMAGE)")
	overlay := flag.String("overlay", "", "overlay color #RRGGBB[AA], disables auto color (env: UNICON_OVERLAY)")
	project := flag.String("project", "", "project name for the auto overlay color (env: UNICON_PROJECT)")
	badge := flag.String("badge", "", "badge text, 1-4 characters recommended (env: UNICON_BADGE)")
	badgeColor := flag.String("badge-color", "", "badge text color #RRGGBB[AA] (env: UNICON_BADGE_COLOR)")
	fontScale := flag.Float64("font-scale", 0, "badge font size multiplier, 0.5-2.0 (env: UNICON_FONT_SCALE)")
	fontName := flag.String("font-name", "", "badge font: bold, regular, mono, monobold (env: UNICON_FONT_NAME)")
	blend := flag.String("blend", "", "overlay blend: add, multiply (env: UNICON_BLEND)")
	iconSize := flag.Int("icon-size", -1, "icon size in pixels, 0 keeps the base size (env: UNICON_ICON_SIZE)")
	target := flag.String("target", "", "install target: file, tray, dock (env: UNICON_TARGET)")
	output := flag.String("output", "", "icon file for the file target, .png or .ico (env: UNICON_OUTPUT)")
	interval := flag.Int("interval", 0, "re-apply interval in seconds (env: UNICON_REAPPLY_INTERVAL)")
	flag.Usage = func() {
		fmt.Print(versionStringLong())
		fmt.Fprintf(os.Stderr, "\nUsage: %s [options]\n\nOptions:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Print(versionStringLong())
		return
	}

	if *doUpdate {
		if err := selfUpdate(); err != nil {
			log.Fatalf("Update failed: %v", err)
		}
		return
	}

	// Resolve settings path: default < env < flag.
	if v := os.Getenv("UNICON_CONFIG"); v != "" {
		configPath = v
	}
	if *settingsFile != "" {
		configPath = *settingsFile
	}

	// Bool and badge flags need flag.Visit: their zero values are valid settings.
	var enabledOverride *bool
	var badgeOverride *string
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "enabled":
			enabledOverride = enabled
		case "badge":
			badgeOverride = badge
		}
	})

	o := overrides{
		Enabled:         enabledOverride,
		IconPath:        *iconPath,
		Overlay:         *overlay,
		Project:         *project,
		Badge:           badgeOverride,
		BadgeColor:      *badgeColor,
		FontScale:       *fontScale,
		FontName:        *fontName,
		Blend:           *blend,
		IconSize:        *iconSize,
		Target:          *target,
		Output:          *output,
		ReapplyInterval: *interval,
	}

	cfg := loadConfig()
	applyOverrides(&cfg, o)

	fmt.Println(versionString())
	fmt.Printf("Config: %s\n", configPath)
	fmt.Printf("Target: %s\n", cfg.Target)

	if *once {
		if err := checkOnceTarget(cfg.Target); err != nil {
			fmt.Printf("\nError: %v\n", err)
			os.Exit(1)
		}
	}

	inst, err := newInstaller(cfg)
	if err != nil {
		fmt.Printf("\nError: target %q: %v\n", cfg.Target, err)
		os.Exit(1)
	}

	app := NewApp(cfg, o, inst)

	if *once {
		if !cfg.Enabled {
			fmt.Println("Custom icon is disabled; pass -enabled to apply anyway.")
		}
		if err := app.Apply(); err != nil {
			fmt.Printf("\nError: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Handle interrupt for clean shutdown; SIGHUP reloads settings on Unix.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	notifyExtraSignals(sigCh)
	go func() {
		for sig := range sigCh {
			if isReloadSignal(sig) {
				log.Println("Reloading settings")
				if err := app.Reload(); err != nil {
					log.Printf("Apply failed: %v", err)
				}
				continue
			}
			log.Println("Signal received, shutting down...")
			app.Shutdown()
			return
		}
	}()

	switch cfg.Target {
	case "tray", "dock":
		app.RunTray()
	default:
		app.Start()
		<-app.Done()
	}
}

// checkOnceTarget rejects targets that only show the icon while the process
// runs its event loop; -once would exit before anything is displayed.
func checkOnceTarget(target string) error {
	switch target {
	case "file":
		return nil
	case "tray", "dock":
		return fmt.Errorf("-once needs the file target; %q shows the icon only while unicon runs", target)
	default:
		return fmt.Errorf("unknown target %q", target)
	}
}

// overrides holds CLI flag values for config overrides.
type overrides struct {
	Enabled         *bool
	IconPath        string
	Overlay         string
	Project         string
	Badge           *string
	BadgeColor      string
	FontScale       float64
	FontName        string
	Blend           string
	IconSize        int
	Target          string
	Output          string
	ReapplyInterval int
}

// applyIntOverride applies an int override from env var and flag.
// The env value is parsed with Atoi; both env and flag values are accepted only if valid returns true.
func applyIntOverride(target *int, envKey string, flagVal int, valid func(int) bool) {
	if v := os.Getenv(envKey); v != "" {
		if i, err := strconv.Atoi(v); err != nil || !valid(i) {
			log.Printf("Ignoring invalid %s=%q", envKey, v)
		} else {
			*target = i
		}
	}
	if valid(flagVal) {
		*target = flagVal
	}
}

// applyFloatOverride applies a float64 override from env var and flag.
// flagIsSet indicates whether the flag was explicitly provided (since zero may be a valid value).
func applyFloatOverride(target *float64, envKey string, flagVal float64, flagIsSet bool, valid func(float64) bool) {
	if v := os.Getenv(envKey); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err != nil || !valid(f) {
			log.Printf("Ignoring invalid %s=%q", envKey, v)
		} else {
			*target = f
		}
	}
	if flagIsSet && valid(flagVal) {
		*target = flagVal
	}
}

// applyStringOverride applies a string override from env var and flag.
// Non-empty values are accepted only if valid returns true.
func applyStringOverride(target *string, envKey, flagName, flagVal string, valid func(string) bool) {
	if v := os.Getenv(envKey); v != "" {
		if !valid(v) {
			log.Printf("Ignoring invalid %s=%q", envKey, v)
		} else {
			*target = v
		}
	}
	if flagVal != "" {
		if !valid(flagVal) {
			log.Printf("Ignoring invalid -%s=%q", flagName, flagVal)
		} else {
			*target = flagVal
		}
	}
}

// applyColorOverride applies a hex color override from env var and flag.
// Returns true when target was changed.
func applyColorOverride(target *compositor.Color, envKey, flagName, flagVal string) bool {
	changed := false
	if v := os.Getenv(envKey); v != "" {
		if c, err := parseHexColor(v); err != nil {
			log.Printf("Ignoring invalid %s=%q", envKey, v)
		} else {
			*target = c
			changed = true
		}
	}
	if flagVal != "" {
		if c, err := parseHexColor(flagVal); err != nil {
			log.Printf("Ignoring invalid -%s=%q", flagName, flagVal)
		} else {
			*target = c
			changed = true
		}
	}
	return changed
}

func anyString(string) bool { return true }

// applyOverrides applies env vars and flags to config. Priority: flag > env > config file.
func applyOverrides(cfg *Config, o overrides) {
	// Enabled: tri-state parsing (true/1, false/0).
	if v := os.Getenv("UNICON_ENABLED"); v != "" {
		switch v {
		case "true", "1":
			cfg.Enabled = true
		case "false", "0":
			cfg.Enabled = false
		default:
			log.Printf("Ignoring invalid UNICON_ENABLED=%q", v)
		}
	}
	if o.Enabled != nil {
		cfg.Enabled = *o.Enabled
	}

	applyStringOverride(&cfg.IconPath, "UNICON_IMAGE", "image", o.IconPath, anyString)
	applyStringOverride(&cfg.ProjectName, "UNICON_PROJECT", "project", o.Project, anyString)
	if applyColorOverride(&cfg.OverlayColor, "UNICON_OVERLAY", "overlay", o.Overlay) {
		cfg.UseAutoColor = false
	}

	// Badge text: an explicit empty -badge clears the badge.
	if v := os.Getenv("UNICON_BADGE"); v != "" {
		cfg.BadgeText = v
	}
	if o.Badge != nil {
		cfg.BadgeText = *o.Badge
	}
	applyColorOverride(&cfg.BadgeTextColor, "UNICON_BADGE_COLOR", "badge-color", o.BadgeColor)

	applyFloatOverride(&cfg.FontSizeMultiplier, "UNICON_FONT_SCALE", o.FontScale, o.FontScale > 0,
		func(f float64) bool { return f >= minFontSizeMultiplier && f <= maxFontSizeMultiplier })
	applyStringOverride(&cfg.FontName, "UNICON_FONT_NAME", "font-name", o.FontName, compositor.ValidFontName)
	applyStringOverride(&cfg.Blend, "UNICON_BLEND", "blend", o.Blend, ValidBlendName)
	applyIntOverride(&cfg.IconSize, "UNICON_ICON_SIZE", o.IconSize,
		func(i int) bool { return i >= 0 })
	applyStringOverride(&cfg.Target, "UNICON_TARGET", "target", o.Target, ValidTarget)
	applyStringOverride(&cfg.OutputPath, "UNICON_OUTPUT", "output", o.Output, anyString)
	applyIntOverride(&cfg.ReapplyIntervalSeconds, "UNICON_REAPPLY_INTERVAL", o.ReapplyInterval,
		func(i int) bool { return i > 0 })
}
