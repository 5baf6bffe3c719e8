package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name       string
		createFile bool
		content    string
		wantErr    bool
		validate   func(t *testing.T, cfg *Config)
	}{
		{
			name:       "full file",
			createFile: true,
			content: `window:
  width: 1280
  height: 720
  title: "test"
logging:
  level: debug
  format: json
input:
  repeat_delay_ms: 200
  repeat_freq_ms: 40
  afterburn_sens_ms: 300
  mouse_doubleclick_s: 0.25
  layout: wasd
  keybinds_file: keys.toml
  watch_keybinds: true
data:
  outfits_file: outfits.xml
  hooks_dir: hooks
`,
			validate: func(t *testing.T, cfg *Config) {
				if cfg.Window.Width != 1280 || cfg.Window.Height != 720 {
					t.Errorf("Window = %dx%d, want 1280x720", cfg.Window.Width, cfg.Window.Height)
				}
				if cfg.Logging.Format != "json" {
					t.Errorf("Logging.Format = %q, want json", cfg.Logging.Format)
				}
				if cfg.Input.Layout != "wasd" {
					t.Errorf("Input.Layout = %q, want wasd", cfg.Input.Layout)
				}
				if !cfg.Input.WatchKeybinds {
					t.Error("Input.WatchKeybinds = false, want true")
				}
				if cfg.Data.HooksDir != "hooks" {
					t.Errorf("Data.HooksDir = %q, want hooks", cfg.Data.HooksDir)
				}
			},
		},
		{
			name:       "partial file keeps defaults",
			createFile: true,
			content:    "logging:\n  level: warn\n",
			validate: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "warn" {
					t.Errorf("Logging.Level = %q, want warn", cfg.Logging.Level)
				}
				if cfg.Window.Width != 1024 {
					t.Errorf("Window.Width = %d, want default 1024", cfg.Window.Width)
				}
				if cfg.Input.RepeatDelayMS != 300 {
					t.Errorf("Input.RepeatDelayMS = %d, want default 300", cfg.Input.RepeatDelayMS)
				}
			},
		},
		{
			name:       "missing file returns defaults",
			createFile: false,
			validate: func(t *testing.T, cfg *Config) {
				if cfg.Window.Title != "skyhaul" {
					t.Errorf("Window.Title = %q, want skyhaul", cfg.Window.Title)
				}
			},
		},
		{
			name:       "bad yaml",
			createFile: true,
			content:    "window: [1, 2",
			wantErr:    true,
		},
		{
			name:       "unknown layout",
			createFile: true,
			content:    "input:\n  layout: dvorak\n",
			wantErr:    true,
		},
		{
			name:       "negative timing",
			createFile: true,
			content:    "input:\n  repeat_delay_ms: -1\n",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if tt.createFile {
				if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
					t.Fatal(err)
				}
			}

			cfg, err := Load(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestInputSettings(t *testing.T) {
	cfg := Default()
	cfg.Input.MouseDoubleClickS = 0.5

	s := cfg.InputSettings()
	if s.RepeatDelay != 300*time.Millisecond {
		t.Errorf("RepeatDelay = %v, want 300ms", s.RepeatDelay)
	}
	if s.RepeatFreq != 30*time.Millisecond {
		t.Errorf("RepeatFreq = %v, want 30ms", s.RepeatFreq)
	}
	if s.AfterburnSens != 250*time.Millisecond {
		t.Errorf("AfterburnSens = %v, want 250ms", s.AfterburnSens)
	}
	if s.DoubleClick != 500*time.Millisecond {
		t.Errorf("DoubleClick = %v, want 500ms", s.DoubleClick)
	}

	cfg.Input.MouseDoubleClickS = 0
	if got := cfg.InputSettings().DoubleClick; got != 0 {
		t.Errorf("DoubleClick = %v, want 0 when disabled", got)
	}
}
