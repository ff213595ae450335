package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("MAKEGEN_HOME", t.TempDir())
	viper.Reset()
	t.Cleanup(viper.Reset)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootRenderCommand(t *testing.T) {
	p := newProject(t)

	out, err := executeRoot(t, "render", "-t", p.template, "-o", p.output, "-f", p.values, "--lib-name", "libcli.a")
	if err != nil {
		t.Fatalf("render command error: %v", err)
	}
	if !strings.Contains(out, "Makefile generated successfully.") {
		t.Errorf("output = %q", out)
	}

	data, err := os.ReadFile(p.output)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.HasPrefix(string(data), "NAME = libcli.a\n") {
		t.Errorf("rendered = %q", string(data))
	}
}

func TestRootConfigSetGet(t *testing.T) {
	home := t.TempDir()
	t.Setenv("MAKEGEN_HOME", home)
	viper.Reset()
	t.Cleanup(viper.Reset)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	defer rootCmd.SetOut(nil)

	rootCmd.SetArgs([]string{"config", "set", "output", "build/Makefile"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("config set error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(home, "config.yaml")); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	out.Reset()
	rootCmd.SetArgs([]string{"config", "get", "output"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("config get error: %v", err)
	}
	rootCmd.SetArgs(nil)
	if strings.TrimSpace(out.String()) != "build/Makefile" {
		t.Errorf("config get = %q, want %q", out.String(), "build/Makefile")
	}
}

func TestRootVersionCommand(t *testing.T) {
	setBuildVersion(t, "0.4.0")

	out, err := executeRoot(t, "version")
	if err != nil {
		t.Fatalf("version command error: %v", err)
	}
	if !strings.Contains(out, "makegen version 0.4.0") {
		t.Errorf("version output = %q", out)
	}
}
