//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	Endpoint   string
	BinaryPath string
	Verbose    bool
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		Endpoint:   os.Getenv("JSONBOX_TEST_ENDPOINT"),
		BinaryPath: getBinaryPath(),
		Verbose:    os.Getenv("JSONBOX_VERBOSE") == "true",
	}
}

// getBinaryPath determines the path to the jsonbox binary.
func getBinaryPath() string {
	if path := os.Getenv("JSONBOX_BINARY_PATH"); path != "" {
		return path
	}

	candidates := []string{
		"../../jsonbox",
		"./jsonbox",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "jsonbox"
}

// SkipIfNoEndpoint skips the test unless a service endpoint is configured.
func (config *TestConfig) SkipIfNoEndpoint(t *testing.T) {
	t.Helper()

	if config.Endpoint == "" {
		t.Skip("JSONBOX_TEST_ENDPOINT not set, skipping integration test")
	}
}

// SkipIfNoBinary additionally requires the CLI binary.
func (config *TestConfig) SkipIfNoBinary(t *testing.T) {
	t.Helper()

	config.SkipIfNoEndpoint(t)

	if _, err := exec.LookPath(config.BinaryPath); err != nil {
		t.Skipf("jsonbox binary not found at %s, skipping integration test", config.BinaryPath)
	}
}

// GenerateBoxID returns a fresh box id so runs never share state.
func GenerateBoxID(prefix string) string {
	return fmt.Sprintf("%s_%d", prefix, time.Now().UnixNano())
}

// CommandRunner runs the jsonbox binary against one box.
type CommandRunner struct {
	config *TestConfig
	boxID  string
	t      *testing.T
}

// NewCommandRunner creates a runner bound to boxID.
func NewCommandRunner(t *testing.T, config *TestConfig, boxID string) *CommandRunner {
	t.Helper()

	return &CommandRunner{config: config, boxID: boxID, t: t}
}

// Run executes the binary and returns stdout and stderr.
func (r *CommandRunner) Run(args ...string) (string, string, error) {
	r.t.Helper()

	fullArgs := append([]string{"--endpoint", r.config.Endpoint, "--box", r.boxID, "--no-color"}, args...)

	cmd := exec.Command(r.config.BinaryPath, fullArgs...) // #nosec G204 -- test binary path comes from the environment

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if r.config.Verbose {
		r.t.Logf("running: %s %s", r.config.BinaryPath, strings.Join(fullArgs, " "))
	}

	err := cmd.Run()

	return stdout.String(), stderr.String(), err
}

// AssertJSONOutput checks that output is valid JSON and decodes it into v.
func AssertJSONOutput(t *testing.T, output string, v interface{}) {
	t.Helper()

	require.NoError(t, json.Unmarshal([]byte(output), v), "output is not valid JSON: %s", output)
}
