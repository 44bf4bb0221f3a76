package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/skylift-io/skylift-go/internal/constants"
	"github.com/skylift-io/skylift-go/pkg/skylift"
	"github.com/skylift-io/skylift-go/pkg/slclient"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the CLI configuration persisted in ~/.skylift/config.yml.
// The same keys are also honored as SKYLIFT_* environment variables and as
// global flags; viper merges the three with flags winning over environment
// over file.
type Config struct {
	API     string `json:"api,omitempty"    yaml:"api,omitempty"`
	Token   string `json:"token,omitempty"  yaml:"token,omitempty"`
	Output  string `json:"output,omitempty" yaml:"output,omitempty"`
	NoColor bool   `json:"no_color"         yaml:"no_color"`
}

// loadConfig assembles the effective configuration from viper.
func loadConfig() *Config {
	return &Config{
		API:     viper.GetString("api"),
		Token:   viper.GetString("token"),
		Output:  viper.GetString("output"),
		NoColor: viper.GetBool("no_color"),
	}
}

// configFilePath returns the config file viper loaded, or the default
// location when no file exists yet.
func configFilePath() (string, error) {
	if configFile := viper.ConfigFileUsed(); configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	configDir := filepath.Join(home, ".skylift")

	err = os.MkdirAll(configDir, constants.ConfigDirPerm)
	if err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(configDir, "config.yml"), nil
}

// saveConfigStruct writes the configuration back to the config file. Flag and
// environment overrides are not written; only what the caller put into config.
func saveConfigStruct(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// createClient builds a Skylift client from the effective configuration.
func createClient() (skylift.Client, error) {
	token := viper.GetString("token")
	if token == "" {
		return nil, constants.ErrNoTokenInConfig
	}

	config := &skylift.Config{
		Token:    token,
		Endpoint: viper.GetString("api"),
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = newCLILogger()
	}

	client, err := slclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}
