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

// NewLocationsCommand creates the location command group.
func NewLocationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "location",
		Aliases: []string{"locations"},
		Short:   "Browse locations",
		Long:    "List the locations Skylift Cloud resources can be placed in",
	}

	cmd.AddCommand(newLocationsListCommand())

	return cmd
}

func newLocationsListCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List locations",
		Long:  "List all available locations",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			params := &skylift.LocationListParams{Name: name}

			locations, err := client.Locations().List(ctx, params)
			if err != nil {
				return fmt.Errorf("failed to list locations: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case constants.FormatJSON:
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")

				return encoder.Encode(locations.Locations)
			case constants.FormatYAML:
				encoder := yaml.NewEncoder(os.Stdout)

				return encoder.Encode(locations.Locations)
			default:
				if len(locations.Locations) == 0 {
					_, _ = fmt.Fprintln(os.Stdout, "No locations found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "City", "Country", "Network Zone")

				for _, location := range locations.Locations {
					_ = table.Append(
						fmt.Sprintf("%d", location.ID),
						location.Name,
						location.City,
						location.Country,
						location.NetworkZone,
					)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "filter by location name")

	return cmd
}
