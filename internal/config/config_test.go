package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

// isolate points the config directory at a temp dir and resets the global
// Viper instance.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("MAKEGEN_HOME", dir)
	viper.Reset()
	t.Cleanup(viper.Reset)
	return dir
}

func TestDir_EnvOverride(t *testing.T) {
	dir := isolate(t)
	if Dir() != dir {
		t.Errorf("Dir() = %q, want %q", Dir(), dir)
	}
	if FilePath() != filepath.Join(dir, "config.yaml") {
		t.Errorf("FilePath() = %q", FilePath())
	}
}

func TestSetAndGet(t *testing.T) {
	dir := isolate(t)
	Load()

	if err := Set(KeyTemplate, "templates/lib.mk.tmp"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	viper.Reset()
	Load()
	if got := Get(KeyTemplate); got != "templates/lib.mk.tmp" {
		t.Errorf("Get(%q) = %q, want %q", KeyTemplate, got, "templates/lib.mk.tmp")
	}
}

func TestTemplateAndOutputPath(t *testing.T) {
	isolate(t)
	Load()

	if got := TemplatePath(""); got != DefaultTemplate {
		t.Errorf("TemplatePath(\"\") = %q, want %q", got, DefaultTemplate)
	}
	if got := OutputPath(""); got != DefaultOutput {
		t.Errorf("OutputPath(\"\") = %q, want %q", got, DefaultOutput)
	}

	if err := Set(KeyOutput, "build/Makefile"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if got := OutputPath(""); got != "build/Makefile" {
		t.Errorf("OutputPath(\"\") = %q, want setting %q", got, "build/Makefile")
	}
	if got := OutputPath("out/Makefile"); got != "out/Makefile" {
		t.Errorf("OutputPath(flag) = %q, want flag value", got)
	}
}

func TestTemplatePath_EnvSetting(t *testing.T) {
	isolate(t)
	t.Setenv("MAKEGEN_TEMPLATE", "env.tmp")
	Load()

	if got := TemplatePath(""); got != "env.tmp" {
		t.Errorf("TemplatePath(\"\") = %q, want %q", got, "env.tmp")
	}
}
