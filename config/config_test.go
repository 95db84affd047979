package config

import (
	"os"
	"path/filepath"
	"testing"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{
			URL:     "https://drive.example.com",
			Version: "auto",
		},
		Upload: UploadConfig{
			ChunkSize: 4 << 20,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func TestValidateServerURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{
			name:    "Valid URL",
			url:     "https://drive.example.com",
			wantErr: false,
		},
		{
			name:    "Missing URL",
			url:     "",
			wantErr: true,
		},
		{
			name:    "Bare host without scheme",
			url:     "drive.example.com",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Server.URL = tt.url

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateServerVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		wantErr bool
	}{
		{
			name:    "Auto detection",
			version: "auto",
			wantErr: false,
		},
		{
			name:    "Explicit v3",
			version: "v3",
			wantErr: false,
		},
		{
			name:    "Explicit v4",
			version: "v4",
			wantErr: false,
		},
		{
			name:    "Unknown version",
			version: "v5",
			wantErr: true,
		},
		{
			name:    "Empty version",
			version: "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Server.Version = tt.version

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateLogging(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  string
		wantErr bool
	}{
		{
			name:    "Valid console config",
			level:   "debug",
			format:  "console",
			wantErr: false,
		},
		{
			name:    "Valid json config",
			level:   "warn",
			format:  "json",
			wantErr: false,
		},
		{
			name:    "Invalid level",
			level:   "verbose",
			format:  "console",
			wantErr: true,
		},
		{
			name:    "Invalid format",
			level:   "info",
			format:  "logfmt",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Logging.Level = tt.level
			cfg.Logging.Format = tt.format

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("server:\n  url: https://drive.example.com\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Version != "auto" {
		t.Errorf("Server.Version = %q, want auto", cfg.Server.Version)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Errorf("Logging defaults = %q/%q, want info/console", cfg.Logging.Level, cfg.Logging.Format)
	}
	if cfg.Upload.ChunkSize != 4<<20 {
		t.Errorf("Upload.ChunkSize = %d, want %d", cfg.Upload.ChunkSize, int64(4<<20))
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("server:\n  url: https://drive.example.com\nlogging:\n  level: loud\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load() accepted an invalid logging level")
	}
}
