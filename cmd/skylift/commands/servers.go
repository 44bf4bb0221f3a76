package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/skylift-io/skylift-go/internal/constants"
	"github.com/skylift-io/skylift-go/pkg/skylift"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// NewServersCommand creates the server command group.
func NewServersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "server",
		Aliases: []string{"servers"},
		Short:   "Manage servers",
		Long:    "List, create, inspect, delete, and power-cycle servers",
	}

	cmd.AddCommand(newServersListCommand())
	cmd.AddCommand(newServersDescribeCommand())
	cmd.AddCommand(newServersCreateCommand())
	cmd.AddCommand(newServersDeleteCommand())
	cmd.AddCommand(newServersPoweronCommand())
	cmd.AddCommand(newServersPoweroffCommand())
	cmd.AddCommand(newServersRebootCommand())

	return cmd
}

func newServersListCommand() *cobra.Command {
	var (
		allPages      bool
		perPage       int
		name          string
		labelSelector string
		statuses      []string
		sorts         []string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List servers",
		Long:  "List all servers in the project",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			params := &skylift.ServerListParams{
				ListParams:    skylift.ListParams{PerPage: perPage},
				Name:          name,
				LabelSelector: labelSelector,
				Sort:          sorts,
			}

			for _, status := range statuses {
				params.Status = append(params.Status, skylift.ServerStatus(status))
			}

			list, err := client.Servers().List(ctx, params)
			if err != nil {
				return fmt.Errorf("failed to list servers: %w", err)
			}

			servers := list.Servers
			if allPages {
				servers, err = skylift.CollectPages(ctx, func(ctx context.Context, page int) ([]skylift.Server, *skylift.Pagination, error) {
					params.Page = page

					pageList, err := client.Servers().List(ctx, params)
					if err != nil {
						return nil, nil, err
					}

					return pageList.Servers, pageList.Meta.Pagination, nil
				}, nil)
				if err != nil {
					return fmt.Errorf("failed to fetch all pages: %w", err)
				}
			}

			output := viper.GetString("output")
			switch output {
			case constants.FormatJSON:
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")

				return encoder.Encode(servers)
			case constants.FormatYAML:
				encoder := yaml.NewEncoder(os.Stdout)

				return encoder.Encode(servers)
			default:
				if len(servers) == 0 {
					_, _ = fmt.Fprintln(os.Stdout, "No servers found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Status", "Type", "Datacenter", "IPv4", "Created")

				for _, server := range servers {
					ipv4 := "-"
					if server.PublicNet.IPv4 != nil {
						ipv4 = server.PublicNet.IPv4.IP
					}

					_ = table.Append(
						strconv.FormatInt(server.ID, 10),
						server.Name,
						string(server.Status),
						server.ServerType.Name,
						server.Datacenter.Name,
						ipv4,
						formatTime(server.Created),
					)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				printPageHint(list.Meta.Pagination, allPages)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&perPage, "per-page", 0, "results per page")
	cmd.Flags().StringVar(&name, "name", "", "filter by server name")
	cmd.Flags().StringVar(&labelSelector, "label-selector", "", "filter by label selector")
	cmd.Flags().StringSliceVar(&statuses, "status", nil, "filter by status (running, off, ...)")
	cmd.Flags().StringSliceVar(&sorts, "sort", nil, "sort order, for example name:asc")

	return cmd
}

func newServersDescribeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "describe SERVER_ID_OR_NAME",
		Short: "Show server details",
		Long:  "Display detailed information about a specific server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			server, err := findServer(ctx, client, args[0])
			if err != nil {
				return err
			}

			output := viper.GetString("output")
			switch output {
			case constants.FormatJSON:
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")

				return encoder.Encode(server)
			case constants.FormatYAML:
				encoder := yaml.NewEncoder(os.Stdout)

				return encoder.Encode(server)
			default:
				_, _ = fmt.Fprintf(os.Stdout, "Server: %s\n", server.Name)
				_, _ = fmt.Fprintf(os.Stdout, "  ID:         %d\n", server.ID)
				_, _ = fmt.Fprintf(os.Stdout, "  Status:     %s\n", server.Status)
				_, _ = fmt.Fprintf(os.Stdout, "  Type:       %s\n", server.ServerType.Name)
				_, _ = fmt.Fprintf(os.Stdout, "  Datacenter: %s\n", server.Datacenter.Name)
				_, _ = fmt.Fprintf(os.Stdout, "  Created:    %s\n", formatTime(server.Created))

				if server.PublicNet.IPv4 != nil {
					_, _ = fmt.Fprintf(os.Stdout, "  IPv4:       %s\n", server.PublicNet.IPv4.IP)
				}

				if server.PublicNet.IPv6 != nil {
					_, _ = fmt.Fprintf(os.Stdout, "  IPv6:       %s\n", server.PublicNet.IPv6.IP)
				}

				if server.Image != nil {
					_, _ = fmt.Fprintf(os.Stdout, "  Image:      %s\n", stringOrDash(server.Image.Name))
				}

				_, _ = fmt.Fprintf(os.Stdout, "  Disk:       %d GB\n", server.PrimaryDiskSize)
				_, _ = fmt.Fprintf(os.Stdout, "  Protected:  %t\n", server.Protection.Delete)
				_, _ = fmt.Fprintf(os.Stdout, "  Rescue:     %t\n", server.RescueEnabled)
				_, _ = fmt.Fprintf(os.Stdout, "  Locked:     %t\n", server.Locked)
				_, _ = fmt.Fprintf(os.Stdout, "  Labels:     %s\n", formatLabels(server.Labels))

				if len(server.Volumes) > 0 {
					_, _ = fmt.Fprintf(os.Stdout, "  Volumes:    %d attached\n", len(server.Volumes))
				}

				if server.PlacementGroup != nil {
					_, _ = fmt.Fprintf(os.Stdout, "  Placement:  %s\n", server.PlacementGroup.Name)
				}
			}

			return nil
		},
	}
}

func newServersCreateCommand() *cobra.Command {
	var (
		name             string
		serverType       string
		image            string
		location         string
		datacenter       string
		sshKeys          []string
		userDataFile     string
		startAfterCreate bool
		poll             bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a server",
		Long:  "Create a new server from an image",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return constants.ErrServerNameRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			createReq := &skylift.ServerCreateRequest{
				Name:       name,
				ServerType: serverType,
				Image:      image,
				Location:   location,
				Datacenter: datacenter,
				SSHKeys:    sshKeys,
			}

			if userDataFile != "" {
				data, err := os.ReadFile(userDataFile) //nolint:gosec // G304: user-specified path is intentional for a CLI tool
				if err != nil {
					return fmt.Errorf("failed to read user data file: %w", err)
				}

				createReq.UserData = string(data)
			}

			if cmd.Flags().Changed("start-after-create") {
				createReq.StartAfterCreate = &startAfterCreate
			}

			result, err := client.Servers().Create(ctx, createReq)
			if err != nil {
				return fmt.Errorf("failed to create server: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully created server '%s'\n", result.Server.Name)
			_, _ = fmt.Fprintf(os.Stdout, "  ID:     %d\n", result.Server.ID)
			_, _ = fmt.Fprintf(os.Stdout, "  Status: %s\n", result.Server.Status)

			if result.RootPassword != nil {
				_, _ = fmt.Fprintf(os.Stdout, "  Root Password: %s\n", *result.RootPassword)
			}

			if poll {
				return pollActions(ctx, client, collectActions(&result.Action, result.NextActions))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "server name (required)")
	cmd.Flags().StringVar(&serverType, "type", "", "server type name, for example sl-2c-4g (required)")
	cmd.Flags().StringVar(&image, "image", "", "image name or id to boot from (required)")
	cmd.Flags().StringVar(&location, "location", "", "location to create the server in")
	cmd.Flags().StringVar(&datacenter, "datacenter", "", "datacenter to create the server in")
	cmd.Flags().StringSliceVar(&sshKeys, "ssh-key", nil, "SSH key names to inject")
	cmd.Flags().StringVar(&userDataFile, "user-data-file", "", "file with cloud-init user data")
	cmd.Flags().BoolVar(&startAfterCreate, "start-after-create", true, "start the server after creation")
	cmd.Flags().BoolVar(&poll, "poll", false, "wait for the resulting actions to finish")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("image")

	return cmd
}

func newServersDeleteCommand() *cobra.Command {
	var (
		force bool
		poll  bool
	)

	cmd := &cobra.Command{
		Use:   "delete SERVER_ID_OR_NAME",
		Short: "Delete a server",
		Long:  "Delete a server and its primary disk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			server, err := findServer(ctx, client, args[0])
			if err != nil {
				return err
			}

			if !confirmDeletion("server", server.Name, force) {
				return nil
			}

			action, err := client.Servers().Delete(ctx, server.ID)
			if err != nil {
				return fmt.Errorf("failed to delete server: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Deleting server '%s' (action %d)\n", server.Name, action.ID)

			if poll {
				return pollAction(ctx, client, action)
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")
	cmd.Flags().BoolVar(&poll, "poll", false, "wait for the delete action to finish")

	return cmd
}

func newServersPoweronCommand() *cobra.Command {
	var poll bool

	cmd := &cobra.Command{
		Use:   "poweron SERVER_ID_OR_NAME",
		Short: "Power on a server",
		Long:  "Start a server that is powered off",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			server, err := findServer(ctx, client, args[0])
			if err != nil {
				return err
			}

			action, err := client.Servers().Poweron(ctx, server.ID)
			if err != nil {
				return fmt.Errorf("failed to power on server: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Powering on server '%s' (action %d)\n", server.Name, action.ID)

			if poll {
				return pollAction(ctx, client, action)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&poll, "poll", false, "wait for the action to finish")

	return cmd
}

func newServersPoweroffCommand() *cobra.Command {
	var poll bool

	cmd := &cobra.Command{
		Use:   "poweroff SERVER_ID_OR_NAME",
		Short: "Power off a server",
		Long:  "Cut power to a server without a clean shutdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			server, err := findServer(ctx, client, args[0])
			if err != nil {
				return err
			}

			action, err := client.Servers().Poweroff(ctx, server.ID)
			if err != nil {
				return fmt.Errorf("failed to power off server: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Powering off server '%s' (action %d)\n", server.Name, action.ID)

			if poll {
				return pollAction(ctx, client, action)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&poll, "poll", false, "wait for the action to finish")

	return cmd
}

func newServersRebootCommand() *cobra.Command {
	var poll bool

	cmd := &cobra.Command{
		Use:   "reboot SERVER_ID_OR_NAME",
		Short: "Reboot a server",
		Long:  "Gracefully reboot a server via ACPI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			server, err := findServer(ctx, client, args[0])
			if err != nil {
				return err
			}

			action, err := client.Servers().Reboot(ctx, server.ID)
			if err != nil {
				return fmt.Errorf("failed to reboot server: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Rebooting server '%s' (action %d)\n", server.Name, action.ID)

			if poll {
				return pollAction(ctx, client, action)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&poll, "poll", false, "wait for the action to finish")

	return cmd
}

// findServer resolves a server by numeric id, falling back to a name lookup.
func findServer(ctx context.Context, client skylift.Client, nameOrID string) (*skylift.Server, error) {
	if id, err := strconv.ParseInt(nameOrID, 10, 64); err == nil {
		server, err := client.Servers().Get(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to get server: %w", err)
		}

		return server, nil
	}

	list, err := client.Servers().List(ctx, &skylift.ServerListParams{Name: nameOrID})
	if err != nil {
		return nil, fmt.Errorf("failed to find server: %w", err)
	}

	if len(list.Servers) == 0 {
		return nil, fmt.Errorf("%w: '%s'", constants.ErrServerNotFound, nameOrID)
	}

	return &list.Servers[0], nil
}
