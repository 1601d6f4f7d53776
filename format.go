package main

import (
	"fmt"
	"time"

	"github.com/babs/unicon/compositor"
)

// formatAppliedAgo returns "Applied: Xs ago" / "Xm Ys ago" / "Xh Ym ago" for the given time.
func formatAppliedAgo(t *time.Time) string {
	if t == nil {
		return "Applied: --"
	}
	ago := time.Since(*t)
	if ago < 0 {
		ago = 0
	}
	totalSec := int(ago.Seconds())
	if totalSec < 60 {
		return fmt.Sprintf("Applied: %ds ago", totalSec)
	}
	minutes := totalSec / 60
	seconds := totalSec % 60
	if minutes < 60 {
		return fmt.Sprintf("Applied: %dm %ds ago", minutes, seconds)
	}
	hours := minutes / 60
	minutes = minutes % 60
	return fmt.Sprintf("Applied: %dh %dm ago", hours, minutes)
}

// describeColor formats a color as "#RRGGBB @NN%", or "none" when fully transparent.
func describeColor(c compositor.Color) string {
	c = c.Clamped()
	if c.A == 0 {
		return "none"
	}
	hex := c.Hex()
	return fmt.Sprintf("%s @%.0f%%", hex[:7], c.A*100)
}

// formatStatusLine summarises whether the custom icon is active.
func formatStatusLine(st appStatus) string {
	switch {
	case st.LastErr != nil:
		return "Status: error"
	case !st.Config.Enabled:
		return "Status: disabled"
	case st.Installed:
		return "Status: active"
	default:
		return "Status: pending"
	}
}
