package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	logger, closer, err := setupLogging("", "debug")
	if err != nil {
		t.Fatalf("Expected no error without a log path, got %v", err)
	}
	defer closer.Close()

	if logger.Enabled(t.Context(), 0) {
		t.Error("Expected discard logger to be disabled")
	}
}

func TestSetupLogging_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "open-island.log")

	logger, closer, err := setupLogging(path, "debug")
	if err != nil {
		t.Fatalf("Expected log file to open, got %v", err)
	}
	logger.Debug("test log message", "key", "value")
	closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "test log message") || !strings.Contains(string(data), "key=value") {
		t.Errorf("Expected record in log file, got %q", data)
	}
}

func TestSetupLogging_RejectsUnknownLevel(t *testing.T) {
	if _, _, err := setupLogging(filepath.Join(t.TempDir(), "x.log"), "loud"); err == nil {
		t.Error("Expected error for unknown level")
	}
}

func TestLoadConfigDefault(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil || cfg == nil {
		t.Fatalf("Expected built-in config, got %v", err)
	}
	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for a missing config file")
	}
}
