package main

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Width != 600 || cfg.Height != 600 {
		t.Errorf("size = %dx%d, want 600x600", cfg.Width, cfg.Height)
	}
	if cfg.Output != "sprigshot.png" {
		t.Errorf("output = %q", cfg.Output)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SPRIG_WIDTH", "320")
	t.Setenv("SPRIG_PROBE", "0.5, -0.25")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Width != 320 {
		t.Errorf("width = %d, want 320", cfg.Width)
	}
	p, ok, err := cfg.ProbePoint()
	if err != nil || !ok {
		t.Fatalf("ProbePoint = %v, %v, %v", p, ok, err)
	}
	if p.X != 0.5 || p.Y != -0.25 {
		t.Errorf("probe = %v", p)
	}
}

func TestLoadConfigRejectsBadSize(t *testing.T) {
	t.Setenv("SPRIG_HEIGHT", "0")
	if _, err := LoadConfig(); err == nil {
		t.Error("expected error for zero height")
	}
}

func TestBuildSceneDemo(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	scene, err := buildScene(cfg)
	if err != nil {
		t.Fatalf("buildScene: %v", err)
	}
	// root, camera and the demo object's parts.
	if got := scene.Registry().Len(); got != 17 {
		t.Errorf("registry len = %d, want 17", got)
	}
}
