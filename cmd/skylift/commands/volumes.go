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

// NewVolumesCommand creates the volume command group.
func NewVolumesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "volume",
		Aliases: []string{"volumes"},
		Short:   "Manage volumes",
		Long:    "List, create, attach, detach, and delete block storage volumes",
	}

	cmd.AddCommand(newVolumesListCommand())
	cmd.AddCommand(newVolumesDescribeCommand())
	cmd.AddCommand(newVolumesCreateCommand())
	cmd.AddCommand(newVolumesDeleteCommand())
	cmd.AddCommand(newVolumesAttachCommand())
	cmd.AddCommand(newVolumesDetachCommand())

	return cmd
}

func newVolumesListCommand() *cobra.Command {
	var (
		allPages      bool
		perPage       int
		name          string
		labelSelector string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List volumes",
		Long:  "List all block storage volumes",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			params := &skylift.VolumeListParams{
				ListParams:    skylift.ListParams{PerPage: perPage},
				Name:          name,
				LabelSelector: labelSelector,
			}

			list, err := client.Volumes().List(ctx, params)
			if err != nil {
				return fmt.Errorf("failed to list volumes: %w", err)
			}

			volumes := list.Volumes
			if allPages {
				volumes, err = skylift.CollectPages(ctx, func(ctx context.Context, page int) ([]skylift.Volume, *skylift.Pagination, error) {
					params.Page = page

					pageList, err := client.Volumes().List(ctx, params)
					if err != nil {
						return nil, nil, err
					}

					return pageList.Volumes, pageList.Meta.Pagination, nil
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

				return encoder.Encode(volumes)
			case constants.FormatYAML:
				encoder := yaml.NewEncoder(os.Stdout)

				return encoder.Encode(volumes)
			default:
				if len(volumes) == 0 {
					_, _ = fmt.Fprintln(os.Stdout, "No volumes found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Status", "Size", "Location", "Server", "Created")

				for _, volume := range volumes {
					server := "-"
					if volume.Server != nil {
						server = strconv.FormatInt(*volume.Server, 10)
					}

					_ = table.Append(
						strconv.FormatInt(volume.ID, 10),
						volume.Name,
						string(volume.Status),
						fmt.Sprintf("%d GB", volume.Size),
						volume.Location.Name,
						server,
						formatTime(volume.Created),
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
	cmd.Flags().StringVar(&name, "name", "", "filter by volume name")
	cmd.Flags().StringVar(&labelSelector, "label-selector", "", "filter by label selector")

	return cmd
}

func newVolumesDescribeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "describe VOLUME_ID_OR_NAME",
		Short: "Show volume details",
		Long:  "Display detailed information about a specific volume",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			volume, err := findVolume(ctx, client, args[0])
			if err != nil {
				return err
			}

			output := viper.GetString("output")
			switch output {
			case constants.FormatJSON:
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")

				return encoder.Encode(volume)
			case constants.FormatYAML:
				encoder := yaml.NewEncoder(os.Stdout)

				return encoder.Encode(volume)
			default:
				_, _ = fmt.Fprintf(os.Stdout, "Volume: %s\n", volume.Name)
				_, _ = fmt.Fprintf(os.Stdout, "  ID:        %d\n", volume.ID)
				_, _ = fmt.Fprintf(os.Stdout, "  Status:    %s\n", volume.Status)
				_, _ = fmt.Fprintf(os.Stdout, "  Size:      %d GB\n", volume.Size)
				_, _ = fmt.Fprintf(os.Stdout, "  Location:  %s\n", volume.Location.Name)
				_, _ = fmt.Fprintf(os.Stdout, "  Device:    %s\n", volume.LinuxDevice)
				_, _ = fmt.Fprintf(os.Stdout, "  Format:    %s\n", stringOrDash(volume.Format))
				_, _ = fmt.Fprintf(os.Stdout, "  Protected: %t\n", volume.Protection.Delete)
				_, _ = fmt.Fprintf(os.Stdout, "  Created:   %s\n", formatTime(volume.Created))
				_, _ = fmt.Fprintf(os.Stdout, "  Labels:    %s\n", formatLabels(volume.Labels))

				if volume.Server != nil {
					_, _ = fmt.Fprintf(os.Stdout, "  Server:    %d\n", *volume.Server)
				}
			}

			return nil
		},
	}
}

func newVolumesCreateCommand() *cobra.Command {
	var (
		name      string
		size      int
		location  string
		serverID  int64
		format    string
		automount bool
		poll      bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a volume",
		Long:  "Create a new block storage volume",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return constants.ErrVolumeNameRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			createReq := &skylift.VolumeCreateRequest{
				Name:     name,
				Size:     size,
				Location: location,
				Server:   serverID,
			}

			if format != "" {
				createReq.Format = &format
			}

			if cmd.Flags().Changed("automount") {
				createReq.Automount = &automount
			}

			result, err := client.Volumes().Create(ctx, createReq)
			if err != nil {
				return fmt.Errorf("failed to create volume: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully created volume '%s'\n", result.Volume.Name)
			_, _ = fmt.Fprintf(os.Stdout, "  ID:   %d\n", result.Volume.ID)
			_, _ = fmt.Fprintf(os.Stdout, "  Size: %d GB\n", result.Volume.Size)

			if poll {
				return pollActions(ctx, client, collectActions(result.Action, result.NextActions))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "volume name (required)")
	cmd.Flags().IntVar(&size, "size", 0, "volume size in GB (required, minimum 10)")
	cmd.Flags().StringVar(&location, "location", "", "location to create the volume in")
	cmd.Flags().Int64Var(&serverID, "server", 0, "server to attach the volume to instead of a location")
	cmd.Flags().StringVar(&format, "format", "", "filesystem format (xfs, ext4)")
	cmd.Flags().BoolVar(&automount, "automount", false, "automount the volume after attaching")
	cmd.Flags().BoolVar(&poll, "poll", false, "wait for the resulting actions to finish")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("size")

	return cmd
}

func newVolumesDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete VOLUME_ID_OR_NAME",
		Short: "Delete a volume",
		Long:  "Delete a block storage volume. The volume must be detached first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			volume, err := findVolume(ctx, client, args[0])
			if err != nil {
				return err
			}

			if !confirmDeletion("volume", volume.Name, force) {
				return nil
			}

			if err := client.Volumes().Delete(ctx, volume.ID); err != nil {
				return fmt.Errorf("failed to delete volume: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully deleted volume '%s'\n", volume.Name)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}

func newVolumesAttachCommand() *cobra.Command {
	var (
		automount bool
		poll      bool
	)

	cmd := &cobra.Command{
		Use:   "attach VOLUME_ID_OR_NAME SERVER_ID",
		Short: "Attach a volume",
		Long:  "Attach a volume to a server",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			serverID, err := parseID("server", args[1])
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			volume, err := findVolume(ctx, client, args[0])
			if err != nil {
				return err
			}

			attachReq := &skylift.VolumeAttachRequest{Server: serverID}
			if cmd.Flags().Changed("automount") {
				attachReq.Automount = &automount
			}

			action, err := client.Volumes().Attach(ctx, volume.ID, attachReq)
			if err != nil {
				return fmt.Errorf("failed to attach volume: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Attaching volume '%s' to server %d (action %d)\n", volume.Name, serverID, action.ID)

			if poll {
				return pollAction(ctx, client, action)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&automount, "automount", false, "automount the volume after attaching")
	cmd.Flags().BoolVar(&poll, "poll", false, "wait for the attach action to finish")

	return cmd
}

func newVolumesDetachCommand() *cobra.Command {
	var poll bool

	cmd := &cobra.Command{
		Use:   "detach VOLUME_ID_OR_NAME",
		Short: "Detach a volume",
		Long:  "Detach a volume from the server it is attached to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			volume, err := findVolume(ctx, client, args[0])
			if err != nil {
				return err
			}

			action, err := client.Volumes().Detach(ctx, volume.ID)
			if err != nil {
				return fmt.Errorf("failed to detach volume: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Detaching volume '%s' (action %d)\n", volume.Name, action.ID)

			if poll {
				return pollAction(ctx, client, action)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&poll, "poll", false, "wait for the detach action to finish")

	return cmd
}

// findVolume resolves a volume by numeric id, falling back to a name lookup.
func findVolume(ctx context.Context, client skylift.Client, nameOrID string) (*skylift.Volume, error) {
	if id, err := strconv.ParseInt(nameOrID, 10, 64); err == nil {
		volume, err := client.Volumes().Get(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to get volume: %w", err)
		}

		return volume, nil
	}

	list, err := client.Volumes().List(ctx, &skylift.VolumeListParams{Name: nameOrID})
	if err != nil {
		return nil, fmt.Errorf("failed to find volume: %w", err)
	}

	if len(list.Volumes) == 0 {
		return nil, fmt.Errorf("%w: '%s'", constants.ErrVolumeNotFound, nameOrID)
	}

	return &list.Volumes[0], nil
}
