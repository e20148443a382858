package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Layout.StartX != 200 || cfg.Layout.MinNodeDistance != 450 {
		t.Errorf("unexpected layout defaults: %+v", cfg.Layout)
	}
	if cfg.Render.FontSize != 14 {
		t.Errorf("unexpected render defaults: %+v", cfg.Render)
	}
}

func TestLoadOverlaysPartialFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "timeline.yaml")
	body := "layout:\n  min_node_distance: 500\nrender:\n  background: \"#000000\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Layout.MinNodeDistance != 500 {
		t.Errorf("min_node_distance = %v, want 500", cfg.Layout.MinNodeDistance)
	}
	// Untouched fields keep their defaults.
	if cfg.Layout.StartX != 200 {
		t.Errorf("start_x = %v, want default 200", cfg.Layout.StartX)
	}
	if cfg.Render.Background != "#000000" {
		t.Errorf("background = %q", cfg.Render.Background)
	}
	if cfg.Render.FontFamily == "" {
		t.Error("font_family default lost")
	}
}

func TestLoadBadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	os.WriteFile(path, []byte("layout: ["), 0o644)

	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadAbsentFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected read error")
	}
}
