package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/olekukonko/tablewriter"
	"github.com/skylift-io/skylift-go/internal/constants"
	"github.com/skylift-io/skylift-go/pkg/skylift"
	"github.com/skylift-io/skylift-go/pkg/slclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// NewAuthCommand creates the auth command group.
func NewAuthCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage authentication",
		Long:  "Login to Skylift Cloud, inspect the stored credentials, and logout",
	}

	cmd.AddCommand(newAuthLoginCommand())
	cmd.AddCommand(newAuthStatusCommand())
	cmd.AddCommand(newAuthLogoutCommand())

	return cmd
}

func newAuthLoginCommand() *cobra.Command {
	var apiEndpoint string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to Skylift Cloud",
		Long:  "Store an API token after verifying it against the API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiEndpoint == "" {
				apiEndpoint = viper.GetString("api")
			}

			// The token may come from the global flag or SKYLIFT_TOKEN;
			// otherwise prompt without echoing.
			token := viper.GetString("token")
			if token == "" {
				_, _ = fmt.Fprint(os.Stdout, "API token: ")

				byteToken, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("%w: %w", constants.ErrTokenFromTerminal, err)
				}

				token = strings.TrimSpace(string(byteToken))

				_, _ = fmt.Fprintln(os.Stdout)
			}

			client, err := slclient.New(&skylift.Config{
				Token:    token,
				Endpoint: apiEndpoint,
			})
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			// Verify the token with a cheap authenticated call before
			// persisting anything.
			ctx := context.Background()
			if _, err := client.Locations().List(ctx, nil); err != nil {
				return fmt.Errorf("token verification failed: %w", err)
			}

			config := loadConfig()
			config.Token = token
			config.API = apiEndpoint

			if err := saveConfigStruct(config); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			endpoint := apiEndpoint
			if endpoint == "" {
				endpoint = constants.DefaultEndpoint
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully logged in to %s\n", endpoint)

			return nil
		},
	}

	cmd.Flags().StringVar(&apiEndpoint, "endpoint", "", "API endpoint URL (defaults to the public API)")

	return cmd
}

func newAuthStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show authentication status",
		Long:  "Display the stored API endpoint and whether a token is configured",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			endpoint := config.API
			if endpoint == "" {
				endpoint = constants.DefaultEndpoint
			}

			tokenDisplay := "-"
			loggedIn := config.Token != ""

			if loggedIn {
				tokenDisplay = constants.MaskedSecret
			}

			type authStatus struct {
				Endpoint string `json:"endpoint"  yaml:"endpoint"`
				Token    string `json:"token"     yaml:"token"`
				LoggedIn bool   `json:"logged_in" yaml:"logged_in"`
			}

			status := authStatus{
				Endpoint: endpoint,
				Token:    tokenDisplay,
				LoggedIn: loggedIn,
			}

			output := viper.GetString("output")
			switch output {
			case constants.FormatJSON:
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")

				return encoder.Encode(status)
			case constants.FormatYAML:
				encoder := yaml.NewEncoder(os.Stdout)

				return encoder.Encode(status)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("Endpoint", status.Endpoint)
				_ = table.Append("Token", status.Token)
				_ = table.Append("Logged In", fmt.Sprintf("%t", status.LoggedIn))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newAuthLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Logout from Skylift Cloud",
		Long:  "Remove the stored API token",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.Token = ""

			if err := saveConfigStruct(config); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			_, _ = fmt.Fprintln(os.Stdout, "Successfully logged out")

			return nil
		},
	}
}
