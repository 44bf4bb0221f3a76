package commands

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/skylift-io/skylift-go/pkg/skylift"
)

// parseID converts a numeric command-line argument into a resource ID.
func parseID(kind, arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s id '%s': %w", kind, arg, err)
	}

	return id, nil
}

// confirmDeletion prompts for interactive confirmation unless force is set.
// It returns true when the caller may proceed.
func confirmDeletion(kind, name string, force bool) bool {
	if force {
		return true
	}

	_, _ = fmt.Fprintf(os.Stdout, "Really delete %s '%s'? (y/N): ", kind, name)

	var response string

	_, _ = fmt.Scanln(&response)

	if response != "y" && response != "Y" {
		_, _ = fmt.Fprintln(os.Stdout, "Cancelled")

		return false
	}

	return true
}

// pollAction waits for a single action to finish and reports the outcome.
func pollAction(ctx context.Context, client skylift.Client, action *skylift.Action) error {
	if action == nil {
		return nil
	}

	_, _ = fmt.Fprintf(os.Stdout, "Waiting for action %d (%s)...\n", action.ID, action.Command)

	done, err := client.Actions().PollUntilDone(ctx, action.ID, nil)
	if err != nil {
		return fmt.Errorf("waiting for action %d: %w", action.ID, err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Action %d finished with status %s\n", done.ID, done.Status)

	return nil
}

// pollActions waits for a batch of actions, typically a create result's
// action plus its next_actions, to finish.
func pollActions(ctx context.Context, client skylift.Client, actions []skylift.Action) error {
	if len(actions) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(actions))
	for _, action := range actions {
		ids = append(ids, action.ID)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Waiting for %d action(s)...\n", len(ids))

	done, err := client.Actions().PollManyUntilDone(ctx, ids, nil)
	if err != nil {
		return fmt.Errorf("waiting for actions: %w", err)
	}

	for _, action := range done {
		_, _ = fmt.Fprintf(os.Stdout, "Action %d (%s) finished with status %s\n", action.ID, action.Command, action.Status)
	}

	return nil
}

// collectActions flattens a primary action and its follow-ups into one slice.
func collectActions(action *skylift.Action, next []skylift.Action) []skylift.Action {
	actions := make([]skylift.Action, 0, len(next)+1)
	if action != nil {
		actions = append(actions, *action)
	}

	actions = append(actions, next...)

	return actions
}

// formatLabels renders a label map as "key=value" pairs in key order.
func formatLabels(labels map[string]string) string {
	if len(labels) == 0 {
		return "-"
	}

	keys := make([]string, 0, len(labels))
	for key := range labels {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+labels[key])
	}

	return strings.Join(pairs, ",")
}

// stringOrDash dereferences an optional string for table display.
func stringOrDash(value *string) string {
	if value == nil || *value == "" {
		return "-"
	}

	return *value
}

// formatTime renders a timestamp for table display.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}

	return t.Format("2006-01-02 15:04:05")
}

// printPageHint tells the user more pages exist when --all was not given.
func printPageHint(pagination *skylift.Pagination, allPages bool) {
	if allPages || pagination == nil || pagination.LastPage <= 1 {
		return
	}

	_, _ = fmt.Fprintf(os.Stdout, "\nShowing page %d of %d. Use --all to fetch all pages.\n", pagination.Page, pagination.LastPage)
}
