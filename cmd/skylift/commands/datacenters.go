package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/skylift-io/skylift-go/internal/constants"
	"github.com/skylift-io/skylift-go/pkg/skylift"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// NewDatacentersCommand creates the datacenter command group.
func NewDatacentersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "datacenter",
		Aliases: []string{"datacenters", "dc"},
		Short:   "Browse datacenters",
		Long:    "List the datacenters within Skylift Cloud locations",
	}

	cmd.AddCommand(newDatacentersListCommand())

	return cmd
}

func newDatacentersListCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List datacenters",
		Long:  "List all available datacenters",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			params := &skylift.DatacenterListParams{Name: name}

			datacenters, err := client.Datacenters().List(ctx, params)
			if err != nil {
				return fmt.Errorf("failed to list datacenters: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case constants.FormatJSON:
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")

				return encoder.Encode(datacenters.Datacenters)
			case constants.FormatYAML:
				encoder := yaml.NewEncoder(os.Stdout)

				return encoder.Encode(datacenters.Datacenters)
			default:
				if len(datacenters.Datacenters) == 0 {
					_, _ = fmt.Fprintln(os.Stdout, "No datacenters found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Location", "Description")

				for _, datacenter := range datacenters.Datacenters {
					_ = table.Append(
						fmt.Sprintf("%d", datacenter.ID),
						datacenter.Name,
						datacenter.Location.Name,
						datacenter.Description,
					)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "filter by datacenter name")

	return cmd
}
