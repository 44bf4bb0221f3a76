package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/skylift-io/skylift-go/internal/constants"
	"github.com/skylift-io/skylift-go/pkg/skylift"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// NewActionsCommand creates the action command group.
func NewActionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "action",
		Aliases: []string{"actions"},
		Short:   "Track asynchronous actions",
		Long:    "List, inspect, and wait for the asynchronous actions the provider runs",
	}

	cmd.AddCommand(newActionsListCommand())
	cmd.AddCommand(newActionsDescribeCommand())
	cmd.AddCommand(newActionsWaitCommand())

	return cmd
}

func newActionsListCommand() *cobra.Command {
	var (
		allPages bool
		perPage  int
		statuses []string
		sorts    []string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List actions",
		Long:  "List the asynchronous actions recorded for the project",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			params := &skylift.ActionListParams{
				ListParams: skylift.ListParams{PerPage: perPage},
				Sort:       sorts,
			}

			for _, status := range statuses {
				params.Status = append(params.Status, skylift.ActionStatus(status))
			}

			list, err := client.Actions().List(ctx, params)
			if err != nil {
				return fmt.Errorf("failed to list actions: %w", err)
			}

			actions := list.Actions
			if allPages {
				actions, err = skylift.CollectPages(ctx, func(ctx context.Context, page int) ([]skylift.Action, *skylift.Pagination, error) {
					params.Page = page

					pageList, err := client.Actions().List(ctx, params)
					if err != nil {
						return nil, nil, err
					}

					return pageList.Actions, pageList.Meta.Pagination, nil
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

				return encoder.Encode(actions)
			case constants.FormatYAML:
				encoder := yaml.NewEncoder(os.Stdout)

				return encoder.Encode(actions)
			default:
				if len(actions) == 0 {
					_, _ = fmt.Fprintln(os.Stdout, "No actions found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Command", "Status", "Progress", "Started")

				for _, action := range actions {
					_ = table.Append(
						strconv.FormatInt(action.ID, 10),
						action.Command,
						string(action.Status),
						fmt.Sprintf("%d%%", action.Progress),
						formatTime(action.Started),
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
	cmd.Flags().StringSliceVar(&statuses, "status", nil, "filter by status (running, success, error)")
	cmd.Flags().StringSliceVar(&sorts, "sort", nil, "sort order, for example started:desc")

	return cmd
}

func newActionsDescribeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "describe ACTION_ID",
		Short: "Show action details",
		Long:  "Display detailed information about a specific action",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			actionID, err := parseID("action", args[0])
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			action, err := client.Actions().Get(ctx, actionID)
			if err != nil {
				return fmt.Errorf("failed to get action: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case constants.FormatJSON:
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")

				return encoder.Encode(action)
			case constants.FormatYAML:
				encoder := yaml.NewEncoder(os.Stdout)

				return encoder.Encode(action)
			default:
				_, _ = fmt.Fprintf(os.Stdout, "Action: %d\n", action.ID)
				_, _ = fmt.Fprintf(os.Stdout, "  Command:  %s\n", action.Command)
				_, _ = fmt.Fprintf(os.Stdout, "  Status:   %s\n", action.Status)
				_, _ = fmt.Fprintf(os.Stdout, "  Progress: %d%%\n", action.Progress)
				_, _ = fmt.Fprintf(os.Stdout, "  Started:  %s\n", formatTime(action.Started))

				if action.Finished != nil {
					_, _ = fmt.Fprintf(os.Stdout, "  Finished: %s\n", formatTime(*action.Finished))
				}

				for _, resource := range action.Resources {
					_, _ = fmt.Fprintf(os.Stdout, "  Resource: %s %d\n", resource.Type, resource.ID)
				}

				if action.Error != nil {
					_, _ = fmt.Fprintf(os.Stdout, "  Error:    %s (%s)\n", action.Error.Message, action.Error.Code)
				}
			}

			return nil
		},
	}
}

func newActionsWaitCommand() *cobra.Command {
	var (
		interval     time.Duration
		timeout      time.Duration
		ignoreErrors bool
	)

	cmd := &cobra.Command{
		Use:   "wait ACTION_ID [ACTION_ID...]",
		Short: "Wait for actions to finish",
		Long:  "Poll one or more actions until every one of them reaches a terminal state",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			actionIDs := make([]int64, 0, len(args))

			for _, arg := range args {
				actionID, err := parseID("action", arg)
				if err != nil {
					return err
				}

				actionIDs = append(actionIDs, actionID)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			opts := &skylift.PollOptions{
				Interval:           interval,
				Timeout:            timeout,
				IgnoreActionErrors: ignoreErrors,
			}

			if len(actionIDs) == 1 {
				action, err := client.Actions().PollUntilDone(ctx, actionIDs[0], opts)
				if err != nil {
					return fmt.Errorf("waiting for action %d: %w", actionIDs[0], err)
				}

				_, _ = fmt.Fprintf(os.Stdout, "Action %d (%s) finished with status %s\n", action.ID, action.Command, action.Status)

				return nil
			}

			actions, err := client.Actions().PollManyUntilDone(ctx, actionIDs, opts)
			if err != nil {
				return fmt.Errorf("waiting for actions: %w", err)
			}

			for _, action := range actions {
				_, _ = fmt.Fprintf(os.Stdout, "Action %d (%s) finished with status %s\n", action.ID, action.Command, action.Status)
			}

			return nil
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 0, "pause between status checks (default 1s)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "total wait budget (default 5m)")
	cmd.Flags().BoolVar(&ignoreErrors, "ignore-errors", false, "report errored actions instead of failing")

	return cmd
}
