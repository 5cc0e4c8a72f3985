package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	configPath  string
	libraryPath string
	websiteDir  string
}

// setupCLITestEnv writes a config file pointing at temp locations. The OMDb
// base URL (and key) can be overridden per test via extraConfig lines.
func setupCLITestEnv(t *testing.T, extraConfig ...string) cliTestEnv {
	t.Helper()

	base := t.TempDir()
	env := cliTestEnv{
		configPath:  filepath.Join(base, "config.toml"),
		libraryPath: filepath.Join(base, "movies.json"),
		websiteDir:  filepath.Join(base, "site"),
	}

	content := fmt.Sprintf(`
[library]
path = %q

[website]
output_dir = %q
title = "Test Movies"
`, env.libraryPath, env.websiteDir)
	content += strings.Join(extraConfig, "\n")

	if err := os.WriteFile(env.configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return env
}

func runCLI(t *testing.T, args []string, configPath string) (string, error) {
	t.Helper()
	return runCLIWithInput(t, args, configPath, "")
}

func runCLIWithInput(t *testing.T, args []string, configPath string, input string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetArgs(append([]string{"--config", configPath}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func requireContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("output missing %q:\n%s", want, output)
	}
}
