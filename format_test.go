package main

import (
	"testing"
	"time"

	"github.com/babs/unicon/compositor"
)

func TestFormatAppliedAgo_Nil(t *testing.T) {
	if got := formatAppliedAgo(nil); got != "Applied: --" {
		t.Errorf("formatAppliedAgo(nil) = %q, want %q", got, "Applied: --")
	}
}

func TestFormatAppliedAgo_Seconds(t *testing.T) {
	ts := time.Now().Add(-5 * time.Second)
	if got := formatAppliedAgo(&ts); got != "Applied: 5s ago" {
		t.Errorf("formatAppliedAgo(5s) = %q, want %q", got, "Applied: 5s ago")
	}
}

func TestFormatAppliedAgo_Minutes(t *testing.T) {
	ts := time.Now().Add(-(3*time.Minute + 12*time.Second))
	if got := formatAppliedAgo(&ts); got != "Applied: 3m 12s ago" {
		t.Errorf("formatAppliedAgo(3m12s) = %q, want %q", got, "Applied: 3m 12s ago")
	}
}

func TestFormatAppliedAgo_Hours(t *testing.T) {
	ts := time.Now().Add(-(2*time.Hour + 7*time.Minute))
	if got := formatAppliedAgo(&ts); got != "Applied: 2h 7m ago" {
		t.Errorf("formatAppliedAgo(2h7m) = %q, want %q", got, "Applied: 2h 7m ago")
	}
}

func TestFormatAppliedAgo_Future(t *testing.T) {
	ts := time.Now().Add(time.Minute)
	if got := formatAppliedAgo(&ts); got != "Applied: 0s ago" {
		t.Errorf("formatAppliedAgo(future) = %q, want %q", got, "Applied: 0s ago")
	}
}

func TestDescribeColor(t *testing.T) {
	if got := describeColor(compositor.Transparent); got != "none" {
		t.Errorf("describeColor(transparent) = %q, want %q", got, "none")
	}
	c := compositor.Color{R: 1, G: 0.5, B: 0, A: 0.3}
	if got := describeColor(c); got != "#FF7F00 @30%" {
		t.Errorf("describeColor(orange) = %q, want %q", got, "#FF7F00 @30%")
	}
}
