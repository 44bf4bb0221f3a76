package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/skylift-io/skylift-go/internal/constants"
	"github.com/skylift-io/skylift-go/pkg/skylift"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// NewSSHKeysCommand creates the ssh-key command group.
func NewSSHKeysCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ssh-key",
		Aliases: []string{"ssh-keys"},
		Short:   "Manage SSH keys",
		Long:    "List, create, inspect, and delete SSH public keys",
	}

	cmd.AddCommand(newSSHKeysListCommand())
	cmd.AddCommand(newSSHKeysDescribeCommand())
	cmd.AddCommand(newSSHKeysCreateCommand())
	cmd.AddCommand(newSSHKeysDeleteCommand())

	return cmd
}

func newSSHKeysListCommand() *cobra.Command {
	var (
		name          string
		fingerprint   string
		labelSelector string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List SSH keys",
		Long:  "List all SSH keys in the project",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			params := &skylift.SSHKeyListParams{
				Name:          name,
				Fingerprint:   fingerprint,
				LabelSelector: labelSelector,
			}

			list, err := client.SSHKeys().List(ctx, params)
			if err != nil {
				return fmt.Errorf("failed to list SSH keys: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case constants.FormatJSON:
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")

				return encoder.Encode(list.SSHKeys)
			case constants.FormatYAML:
				encoder := yaml.NewEncoder(os.Stdout)

				return encoder.Encode(list.SSHKeys)
			default:
				if len(list.SSHKeys) == 0 {
					_, _ = fmt.Fprintln(os.Stdout, "No SSH keys found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Fingerprint", "Created")

				for _, key := range list.SSHKeys {
					_ = table.Append(
						strconv.FormatInt(key.ID, 10),
						key.Name,
						key.Fingerprint,
						formatTime(key.Created),
					)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "filter by key name")
	cmd.Flags().StringVar(&fingerprint, "fingerprint", "", "filter by MD5 fingerprint")
	cmd.Flags().StringVar(&labelSelector, "label-selector", "", "filter by label selector")

	return cmd
}

func newSSHKeysDescribeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "describe KEY_ID_OR_NAME",
		Short: "Show SSH key details",
		Long:  "Display detailed information about a specific SSH key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			key, err := findSSHKey(ctx, client, args[0])
			if err != nil {
				return err
			}

			output := viper.GetString("output")
			switch output {
			case constants.FormatJSON:
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")

				return encoder.Encode(key)
			case constants.FormatYAML:
				encoder := yaml.NewEncoder(os.Stdout)

				return encoder.Encode(key)
			default:
				_, _ = fmt.Fprintf(os.Stdout, "SSH Key: %s\n", key.Name)
				_, _ = fmt.Fprintf(os.Stdout, "  ID:          %d\n", key.ID)
				_, _ = fmt.Fprintf(os.Stdout, "  Fingerprint: %s\n", key.Fingerprint)
				_, _ = fmt.Fprintf(os.Stdout, "  Created:     %s\n", formatTime(key.Created))
				_, _ = fmt.Fprintf(os.Stdout, "  Labels:      %s\n", formatLabels(key.Labels))
				_, _ = fmt.Fprintf(os.Stdout, "  Public Key:  %s\n", key.PublicKey)
			}

			return nil
		},
	}
}

func newSSHKeysCreateCommand() *cobra.Command {
	var (
		name          string
		publicKey     string
		publicKeyFile string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an SSH key",
		Long:  "Upload a new SSH public key",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return constants.ErrSSHKeyNameRequired
			}

			if publicKey == "" && publicKeyFile != "" {
				data, err := os.ReadFile(publicKeyFile) //nolint:gosec // G304: user-specified path is intentional for a CLI tool
				if err != nil {
					return fmt.Errorf("failed to read public key file: %w", err)
				}

				publicKey = strings.TrimSpace(string(data))
			}

			if publicKey == "" {
				return constants.ErrPublicKeyRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			key, err := client.SSHKeys().Create(ctx, &skylift.SSHKeyCreateRequest{
				Name:      name,
				PublicKey: publicKey,
			})
			if err != nil {
				return fmt.Errorf("failed to create SSH key: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully created SSH key '%s'\n", key.Name)
			_, _ = fmt.Fprintf(os.Stdout, "  ID:          %d\n", key.ID)
			_, _ = fmt.Fprintf(os.Stdout, "  Fingerprint: %s\n", key.Fingerprint)

			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "key name (required)")
	cmd.Flags().StringVar(&publicKey, "public-key", "", "public key in OpenSSH format")
	cmd.Flags().StringVar(&publicKeyFile, "public-key-file", "", "file containing the public key")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newSSHKeysDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete KEY_ID_OR_NAME",
		Short: "Delete an SSH key",
		Long:  "Delete an SSH key from the project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			key, err := findSSHKey(ctx, client, args[0])
			if err != nil {
				return err
			}

			if !confirmDeletion("SSH key", key.Name, force) {
				return nil
			}

			if err := client.SSHKeys().Delete(ctx, key.ID); err != nil {
				return fmt.Errorf("failed to delete SSH key: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully deleted SSH key '%s'\n", key.Name)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}

// findSSHKey resolves a key by numeric id, falling back to a name lookup.
func findSSHKey(ctx context.Context, client skylift.Client, nameOrID string) (*skylift.SSHKey, error) {
	if id, err := strconv.ParseInt(nameOrID, 10, 64); err == nil {
		key, err := client.SSHKeys().Get(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to get SSH key: %w", err)
		}

		return key, nil
	}

	list, err := client.SSHKeys().List(ctx, &skylift.SSHKeyListParams{Name: nameOrID})
	if err != nil {
		return nil, fmt.Errorf("failed to find SSH key: %w", err)
	}

	if len(list.SSHKeys) == 0 {
		return nil, fmt.Errorf("%w: '%s'", constants.ErrSSHKeyNotFound, nameOrID)
	}

	return &list.SSHKeys[0], nil
}
