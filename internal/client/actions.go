package client

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/skylift-io/skylift-go/internal/http"
	"github.com/skylift-io/skylift-go/internal/validation"
	"github.com/skylift-io/skylift-go/pkg/skylift"
)

// ActionsClient implements the skylift.ActionsClient interface.
type ActionsClient struct {
	httpClient   *http.Client
	pollInterval time.Duration
	pollTimeout  time.Duration
}

// NewActionsClient creates a new actions client with the given poll defaults.
func NewActionsClient(httpClient *http.Client, pollInterval, pollTimeout time.Duration) *ActionsClient {
	return &ActionsClient{
		httpClient:   httpClient,
		pollInterval: pollInterval,
		pollTimeout:  pollTimeout,
	}
}

// actionResponse wraps a single action as returned by the API.
type actionResponse struct {
	Action skylift.Action `json:"action"`
}

// actionsResponse wraps the actions returned by bulk operations.
type actionsResponse struct {
	Actions []skylift.Action `json:"actions" validate:"dive"`
}

// decodeAction parses and validates a one-action envelope.
func decodeAction(body []byte, operation string) (*skylift.Action, error) {
	var envelope actionResponse
	if err := validation.DecodeResponse(body, &envelope, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", operation, err)
	}

	return &envelope.Action, nil
}

// decodeActions parses and validates a multi-action envelope.
func decodeActions(body []byte, operation string) ([]skylift.Action, error) {
	var envelope actionsResponse
	if err := validation.DecodeResponse(body, &envelope, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", operation, err)
	}

	return envelope.Actions, nil
}

// List implements skylift.ActionsClient.List.
func (c *ActionsClient) List(ctx context.Context, params *skylift.ActionListParams) (*skylift.ActionList, error) {
	resp, err := c.httpClient.Get(ctx, "/actions", params.ToValues())
	if err != nil {
		return nil, err
	}

	var list skylift.ActionList
	if err := validation.DecodeResponse(resp.Body, &list, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing action list response: %w", err)
	}

	return &list, nil
}

// Get implements skylift.ActionsClient.Get.
func (c *ActionsClient) Get(ctx context.Context, actionID int64) (*skylift.Action, error) {
	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/actions/%d", actionID), nil)
	if err != nil {
		return nil, err
	}

	return decodeAction(resp.Body, "action")
}

// PollUntilDone implements skylift.ActionsClient.PollUntilDone.
//
// The elapsed budget is checked before every fetch, including the first, so
// an exhausted timeout performs no request at all.
func (c *ActionsClient) PollUntilDone(ctx context.Context, actionID int64, opts *skylift.PollOptions) (*skylift.Action, error) {
	interval := c.pollInterval
	timeout := c.pollTimeout
	ignoreActionErrors := false

	if opts != nil {
		if opts.Interval > 0 {
			interval = opts.Interval
		}

		if opts.Timeout > 0 {
			timeout = opts.Timeout
		}

		ignoreActionErrors = opts.IgnoreActionErrors
	}

	start := time.Now()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if time.Since(start) > timeout {
			return nil, &skylift.APIError{
				Message: fmt.Sprintf("polling action %d timed out after %s", actionID, timeout),
				Code:    skylift.ErrorCodeTimeout,
			}
		}

		action, err := c.Get(ctx, actionID)
		if err != nil {
			return nil, err
		}

		if action.Status.IsTerminal() {
			if action.Status == skylift.ActionStatusError && !ignoreActionErrors {
				return action, actionFailureError(action)
			}

			return action, nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("polling action %d: %w", actionID, ctx.Err())
		case <-ticker.C:
		}
	}
}

// PollManyUntilDone implements skylift.ActionsClient.PollManyUntilDone.
//
// All actions are polled concurrently; the first failure cancels the
// remaining polls and is returned. On success the results match the order
// of actionIDs.
func (c *ActionsClient) PollManyUntilDone(ctx context.Context, actionIDs []int64, opts *skylift.PollOptions) ([]*skylift.Action, error) {
	results := make([]*skylift.Action, len(actionIDs))

	group, groupCtx := errgroup.WithContext(ctx)
	for i, actionID := range actionIDs {
		i, actionID := i, actionID
		group.Go(func() error {
			action, err := c.PollUntilDone(groupCtx, actionID, opts)
			if err != nil {
				return err
			}

			results[i] = action

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// actionFailureError converts an errored action into the error handed to the
// caller, preferring the action's own error code and message.
func actionFailureError(action *skylift.Action) error {
	apiErr := &skylift.APIError{
		Message: fmt.Sprintf("action %d failed", action.ID),
		Code:    skylift.ErrorCodeAction,
	}

	if action.Error != nil {
		if action.Error.Message != "" {
			apiErr.Message = action.Error.Message
		}

		if action.Error.Code != "" {
			apiErr.Code = action.Error.Code
		}
	}

	return apiErr
}
