// +build integration

package integration

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	Endpoint       string
	Token          string
	SkyliftPath    string
	ServerType     string
	Image          string
	Location       string
	RunServerTests bool
	Verbose        bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		Endpoint:       os.Getenv("SKYLIFT_API_ENDPOINT"),
		Token:          os.Getenv("SKYLIFT_API_TOKEN"),
		SkyliftPath:    getSkyliftPath(),
		ServerType:     envOrDefault("SKYLIFT_TEST_SERVER_TYPE", "sl-2c-4g"),
		Image:          envOrDefault("SKYLIFT_TEST_IMAGE", "ubuntu-24.04"),
		Location:       envOrDefault("SKYLIFT_TEST_LOCATION", "osl1"),
		RunServerTests: os.Getenv("SKYLIFT_TEST_SERVERS") == "true",
		Verbose:        os.Getenv("SKYLIFT_VERBOSE") == "true",
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

// getSkyliftPath determines the path to the skylift binary
func getSkyliftPath() string {
	if path := os.Getenv("SKYLIFT_BINARY_PATH"); path != "" {
		return path
	}

	// Try common locations
	candidates := []string{
		"../../skylift",
		"./skylift",
		"../skylift",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "skylift" // Fallback to PATH
}

// SkipIfMissingConfig skips test if required config is missing
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	if config.Token == "" {
		t.Skip("SKYLIFT_API_TOKEN not set, skipping integration test")
	}

	if _, err := os.Stat(config.SkyliftPath); os.IsNotExist(err) {
		t.Skipf("skylift binary not found at %s, skipping integration test", config.SkyliftPath)
	}
}

// CommandRunner provides utilities for running skylift commands
type CommandRunner struct {
	config     *TestConfig
	t          *testing.T
	configFile string
}

// NewCommandRunner creates a new command runner. Each runner points the CLI
// at a config file inside a fresh temp directory so tests never read or
// write the developer's ~/.skylift state.
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{
		config:     config,
		t:          t,
		configFile: filepath.Join(t.TempDir(), "config.yml"),
	}
}

// environ builds the child process environment. Credentials travel through
// SKYLIFT_TOKEN and SKYLIFT_API so they never show up in logged argv. Any
// SKYLIFT_* entries inherited from the caller are stripped first because a
// child process resolves duplicate environment keys to the first occurrence.
func (runner *CommandRunner) environ() []string {
	env := make([]string, 0, len(os.Environ())+3)

	for _, entry := range os.Environ() {
		if strings.HasPrefix(entry, "SKYLIFT_CONFIG=") ||
			strings.HasPrefix(entry, "SKYLIFT_API=") ||
			strings.HasPrefix(entry, "SKYLIFT_TOKEN=") {
			continue
		}

		env = append(env, entry)
	}

	return append(env,
		"SKYLIFT_CONFIG="+runner.configFile,
		"SKYLIFT_API="+runner.config.Endpoint,
		"SKYLIFT_TOKEN="+runner.config.Token,
	)
}

// Run executes a skylift command and returns output
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	cmd := exec.Command(runner.config.SkyliftPath, args...)
	cmd.Env = runner.environ()

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.SkyliftPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// RunWithInput executes a skylift command with stdin input
func (runner *CommandRunner) RunWithInput(input string, args ...string) (stdout, stderr string, err error) {
	cmd := exec.Command(runner.config.SkyliftPath, args...)
	cmd.Env = runner.environ()

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf
	cmd.Stdin = strings.NewReader(input)

	if runner.config.Verbose {
		runner.t.Logf("Running with input: %s %s", runner.config.SkyliftPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// VerifyAPIAccess checks that the configured token works before a workflow
// starts mutating resources.
func (runner *CommandRunner) VerifyAPIAccess() error {
	_, stderr, err := runner.Run("location", "list")
	if err != nil {
		return fmt.Errorf("failed to verify API access: %s", stderr)
	}

	return nil
}

// GenerateTestName creates a unique test resource name
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().Unix())
}

// CleanupResource attempts to delete a test resource
func (runner *CommandRunner) CleanupResource(resourceType, name string) {
	var args []string

	switch resourceType {
	case "server":
		args = []string{"server", "delete", name, "--force"}
	case "volume":
		args = []string{"volume", "delete", name, "--force"}
	case "ssh-key":
		args = []string{"ssh-key", "delete", name, "--force"}
	default:
		runner.t.Logf("Unknown resource type for cleanup: %s", resourceType)
		return
	}

	stdout, stderr, err := runner.Run(args...)
	if err != nil && runner.config.Verbose {
		runner.t.Logf("Cleanup warning for %s %s: %s\nStderr: %s", resourceType, name, stdout, stderr)
	}
}

// WaitForCondition waits for a condition to be met with timeout
func WaitForCondition(t *testing.T, condition func() bool, timeout time.Duration, message string) {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	timeoutChan := time.After(timeout)

	for {
		select {
		case <-ticker.C:
			if condition() {
				return
			}
		case <-timeoutChan:
			t.Fatalf("Timeout waiting for condition: %s", message)
		}
	}
}

// AssertJSONOutput verifies command output is valid JSON
func AssertJSONOutput(t *testing.T, output string) {
	// Basic JSON validation
	output = strings.TrimSpace(output)
	if !strings.HasPrefix(output, "{") && !strings.HasPrefix(output, "[") {
		t.Errorf("Output does not appear to be JSON: %s", output)
	}
}

// AssertYAMLOutput verifies command output is valid YAML
func AssertYAMLOutput(t *testing.T, output string) {
	// Basic YAML validation
	output = strings.TrimSpace(output)
	if strings.Contains(output, "---") || strings.Contains(output, ":") {
		return // Looks like YAML
	}
	t.Errorf("Output does not appear to be YAML: %s", output)
}
