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

// NewImagesCommand creates the image command group.
func NewImagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "image",
		Aliases: []string{"images"},
		Short:   "Browse images",
		Long:    "List and inspect system images, snapshots, and backups",
	}

	cmd.AddCommand(newImagesListCommand())
	cmd.AddCommand(newImagesDescribeCommand())

	return cmd
}

func newImagesListCommand() *cobra.Command {
	var (
		allPages          bool
		perPage           int
		name              string
		labelSelector     string
		imageTypes        []string
		architectures     []string
		includeDeprecated bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List images",
		Long:  "List system images, snapshots, and backups",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			params := &skylift.ImageListParams{
				ListParams:        skylift.ListParams{PerPage: perPage},
				Name:              name,
				LabelSelector:     labelSelector,
				Architecture:      architectures,
				IncludeDeprecated: includeDeprecated,
			}

			for _, imageType := range imageTypes {
				params.Type = append(params.Type, skylift.ImageType(imageType))
			}

			list, err := client.Images().List(ctx, params)
			if err != nil {
				return fmt.Errorf("failed to list images: %w", err)
			}

			images := list.Images
			if allPages {
				images, err = skylift.CollectPages(ctx, func(ctx context.Context, page int) ([]skylift.Image, *skylift.Pagination, error) {
					params.Page = page

					pageList, err := client.Images().List(ctx, params)
					if err != nil {
						return nil, nil, err
					}

					return pageList.Images, pageList.Meta.Pagination, nil
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

				return encoder.Encode(images)
			case constants.FormatYAML:
				encoder := yaml.NewEncoder(os.Stdout)

				return encoder.Encode(images)
			default:
				if len(images) == 0 {
					_, _ = fmt.Fprintln(os.Stdout, "No images found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Type", "Status", "Arch", "OS", "Created")

				for _, image := range images {
					_ = table.Append(
						strconv.FormatInt(image.ID, 10),
						stringOrDash(image.Name),
						string(image.Type),
						string(image.Status),
						image.Architecture,
						image.OSFlavor,
						formatTime(image.Created),
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
	cmd.Flags().StringVar(&name, "name", "", "filter by image name")
	cmd.Flags().StringVar(&labelSelector, "label-selector", "", "filter by label selector")
	cmd.Flags().StringSliceVar(&imageTypes, "type", nil, "filter by image type (system, snapshot, backup, app)")
	cmd.Flags().StringSliceVar(&architectures, "architecture", nil, "filter by CPU architecture")
	cmd.Flags().BoolVar(&includeDeprecated, "include-deprecated", false, "include deprecated images")

	return cmd
}

func newImagesDescribeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "describe IMAGE_ID_OR_NAME",
		Short: "Show image details",
		Long:  "Display detailed information about a specific image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			image, err := findImage(ctx, client, args[0])
			if err != nil {
				return err
			}

			output := viper.GetString("output")
			switch output {
			case constants.FormatJSON:
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")

				return encoder.Encode(image)
			case constants.FormatYAML:
				encoder := yaml.NewEncoder(os.Stdout)

				return encoder.Encode(image)
			default:
				_, _ = fmt.Fprintf(os.Stdout, "Image: %s\n", stringOrDash(image.Name))
				_, _ = fmt.Fprintf(os.Stdout, "  ID:           %d\n", image.ID)
				_, _ = fmt.Fprintf(os.Stdout, "  Type:         %s\n", image.Type)
				_, _ = fmt.Fprintf(os.Stdout, "  Status:       %s\n", image.Status)
				_, _ = fmt.Fprintf(os.Stdout, "  Architecture: %s\n", image.Architecture)
				_, _ = fmt.Fprintf(os.Stdout, "  OS:           %s %s\n", image.OSFlavor, stringOrDash(image.OSVersion))
				_, _ = fmt.Fprintf(os.Stdout, "  Disk Size:    %.1f GB\n", image.DiskSize)
				_, _ = fmt.Fprintf(os.Stdout, "  Created:      %s\n", formatTime(image.Created))
				_, _ = fmt.Fprintf(os.Stdout, "  Protected:    %t\n", image.Protection.Delete)
				_, _ = fmt.Fprintf(os.Stdout, "  Labels:       %s\n", formatLabels(image.Labels))

				if image.Deprecated != nil {
					_, _ = fmt.Fprintf(os.Stdout, "  Deprecated:   %s\n", formatTime(*image.Deprecated))
				}
			}

			return nil
		},
	}
}

// findImage resolves an image by numeric id, falling back to a name lookup.
func findImage(ctx context.Context, client skylift.Client, nameOrID string) (*skylift.Image, error) {
	if id, err := strconv.ParseInt(nameOrID, 10, 64); err == nil {
		image, err := client.Images().Get(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to get image: %w", err)
		}

		return image, nil
	}

	list, err := client.Images().List(ctx, &skylift.ImageListParams{Name: nameOrID})
	if err != nil {
		return nil, fmt.Errorf("failed to find image: %w", err)
	}

	if len(list.Images) == 0 {
		return nil, fmt.Errorf("%w: '%s'", constants.ErrImageNotFound, nameOrID)
	}

	return &list.Images[0], nil
}
