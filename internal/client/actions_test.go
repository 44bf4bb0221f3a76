package client

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skylift-io/skylift-go/pkg/skylift"
)

func newTestActionsClient(t *testing.T, handler http.Handler) *ActionsClient {
	t.Helper()

	return NewActionsClient(newTestHTTPClient(t, handler), 10*time.Millisecond, time.Second)
}

func TestActionsClient_List(t *testing.T) {
	client := newTestActionsClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/actions", request.URL.Path)
		assert.Equal(t, "GET", request.Method)
		assert.Equal(t, []string{"running", "success"}, request.URL.Query()["status"])
		assert.Equal(t, []string{"started:desc"}, request.URL.Query()["sort"])
		assert.Equal(t, "2", request.URL.Query().Get("page"))

		writeJSON(writer, http.StatusOK, map[string]interface{}{
			"actions": []skylift.Action{
				testAction(1, "create_server"),
				testAction(2, "attach_volume"),
			},
			"meta": testMeta(2),
		})
	}))

	list, err := client.List(context.Background(), &skylift.ActionListParams{
		ListParams: skylift.ListParams{Page: 2},
		Status:     []skylift.ActionStatus{skylift.ActionStatusRunning, skylift.ActionStatusSuccess},
		Sort:       []string{"started:desc"},
	})
	require.NoError(t, err)
	require.Len(t, list.Actions, 2)
	assert.Equal(t, "create_server", list.Actions[0].Command)
	assert.Equal(t, "attach_volume", list.Actions[1].Command)
	require.NotNil(t, list.Meta.Pagination)
	assert.Equal(t, 2, list.Meta.Pagination.TotalEntries)
}

func TestActionsClient_Get(t *testing.T) {
	client := newTestActionsClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/actions/42", request.URL.Path)
		assert.Equal(t, "GET", request.Method)

		writeJSON(writer, http.StatusOK, actionResponse{Action: testAction(42, "create_server")})
	}))

	action, err := client.Get(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), action.ID)
	assert.Equal(t, "create_server", action.Command)
}

func TestActionsClient_PollUntilDone_ImmediateSuccess(t *testing.T) {
	var attempts atomic.Int64

	client := newTestActionsClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		attempts.Add(1)
		assert.Equal(t, "/actions/42", request.URL.Path)

		writeJSON(writer, http.StatusOK, actionResponse{Action: testAction(42, "create_server")})
	}))

	action, err := client.PollUntilDone(context.Background(), 42, nil)
	require.NoError(t, err)
	assert.Equal(t, skylift.ActionStatusSuccess, action.Status)
	assert.Equal(t, int64(1), attempts.Load())
}

func TestActionsClient_PollUntilDone_WaitsForCompletion(t *testing.T) {
	var attempts atomic.Int64

	client := newTestActionsClient(t, http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		count := attempts.Add(1)

		action := testAction(42, "create_server")
		if count <= 2 {
			action.Status = skylift.ActionStatusRunning
			action.Progress = int(count) * 25
		}

		writeJSON(writer, http.StatusOK, actionResponse{Action: action})
	}))

	action, err := client.PollUntilDone(context.Background(), 42, nil)
	require.NoError(t, err)
	assert.Equal(t, skylift.ActionStatusSuccess, action.Status)
	assert.Equal(t, int64(3), attempts.Load())
}

func TestActionsClient_PollUntilDone_ActionError(t *testing.T) {
	client := newTestActionsClient(t, http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		action := testAction(42, "create_server")
		action.Status = skylift.ActionStatusError
		action.Error = &skylift.ActionError{
			Code:    "image_not_available",
			Message: "image is unavailable in this location",
		}

		writeJSON(writer, http.StatusOK, actionResponse{Action: action})
	}))

	action, err := client.PollUntilDone(context.Background(), 42, nil)
	require.Error(t, err)
	require.NotNil(t, action)
	assert.Equal(t, skylift.ActionStatusError, action.Status)

	var apiErr *skylift.APIError

	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "image_not_available", apiErr.Code)
	assert.Equal(t, "image is unavailable in this location", apiErr.Message)
}

func TestActionsClient_PollUntilDone_ActionErrorWithoutDetail(t *testing.T) {
	client := newTestActionsClient(t, http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		action := testAction(42, "create_server")
		action.Status = skylift.ActionStatusError

		writeJSON(writer, http.StatusOK, actionResponse{Action: action})
	}))

	_, err := client.PollUntilDone(context.Background(), 42, nil)

	var apiErr *skylift.APIError

	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, skylift.ErrorCodeAction, apiErr.Code)
	assert.Contains(t, apiErr.Message, "action 42 failed")
}

func TestActionsClient_PollUntilDone_IgnoreActionErrors(t *testing.T) {
	client := newTestActionsClient(t, http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		action := testAction(42, "create_server")
		action.Status = skylift.ActionStatusError
		action.Error = &skylift.ActionError{Code: "server_error", Message: "boom"}

		writeJSON(writer, http.StatusOK, actionResponse{Action: action})
	}))

	action, err := client.PollUntilDone(context.Background(), 42, &skylift.PollOptions{IgnoreActionErrors: true})
	require.NoError(t, err)
	require.NotNil(t, action)
	assert.Equal(t, skylift.ActionStatusError, action.Status)
	require.NotNil(t, action.Error)
	assert.Equal(t, "server_error", action.Error.Code)
}

func TestActionsClient_PollUntilDone_TimeoutBeforeFirstFetch(t *testing.T) {
	var attempts atomic.Int64

	client := newTestActionsClient(t, http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		attempts.Add(1)
		writeJSON(writer, http.StatusOK, actionResponse{Action: testAction(42, "create_server")})
	}))

	_, err := client.PollUntilDone(context.Background(), 42, &skylift.PollOptions{Timeout: time.Nanosecond})
	require.Error(t, err)
	assert.True(t, skylift.IsTimeout(err))
	assert.Contains(t, err.Error(), "42")
	assert.Contains(t, err.Error(), "1ns")
	assert.Equal(t, int64(0), attempts.Load(), "an exhausted timeout must not fetch at all")
}

func TestActionsClient_PollUntilDone_TimeoutWhileRunning(t *testing.T) {
	var attempts atomic.Int64

	client := newTestActionsClient(t, http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		attempts.Add(1)

		action := testAction(42, "create_server")
		action.Status = skylift.ActionStatusRunning

		writeJSON(writer, http.StatusOK, actionResponse{Action: action})
	}))

	_, err := client.PollUntilDone(context.Background(), 42, &skylift.PollOptions{
		Interval: 10 * time.Millisecond,
		Timeout:  50 * time.Millisecond,
	})
	require.Error(t, err)
	assert.True(t, skylift.IsTimeout(err))
	assert.Contains(t, err.Error(), "50ms")
	assert.GreaterOrEqual(t, attempts.Load(), int64(1))
}

func TestActionsClient_PollUntilDone_ContextCanceled(t *testing.T) {
	client := newTestActionsClient(t, http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		action := testAction(42, "create_server")
		action.Status = skylift.ActionStatusRunning

		writeJSON(writer, http.StatusOK, actionResponse{Action: action})
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.PollUntilDone(ctx, 42, &skylift.PollOptions{
		Interval: 200 * time.Millisecond,
		Timeout:  10 * time.Second,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, err.Error(), "polling action 42")
}

func TestActionsClient_PollManyUntilDone_PreservesOrder(t *testing.T) {
	var polls atomic.Int64

	client := newTestActionsClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		count := polls.Add(1)

		var action skylift.Action
		switch request.URL.Path {
		case "/actions/3":
			action = testAction(3, "create_server")
		case "/actions/1":
			action = testAction(1, "attach_volume")
			// Finish this one a poll later than the others.
			if count < 4 {
				action.Status = skylift.ActionStatusRunning
			}
		case "/actions/2":
			action = testAction(2, "assign_floating_ip")
		default:
			t.Errorf("unexpected path %s", request.URL.Path)
		}

		writeJSON(writer, http.StatusOK, actionResponse{Action: action})
	}))

	actions, err := client.PollManyUntilDone(context.Background(), []int64{3, 1, 2}, nil)
	require.NoError(t, err)
	require.Len(t, actions, 3)
	assert.Equal(t, int64(3), actions[0].ID)
	assert.Equal(t, int64(1), actions[1].ID)
	assert.Equal(t, int64(2), actions[2].ID)
}

func TestActionsClient_PollManyUntilDone_FailsFast(t *testing.T) {
	client := newTestActionsClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		var action skylift.Action
		switch request.URL.Path {
		case "/actions/7":
			action = testAction(7, "create_server")
			action.Status = skylift.ActionStatusError
			action.Error = &skylift.ActionError{Code: "resource_limit_exceeded", Message: "server limit reached"}
		case "/actions/8":
			action = testAction(8, "attach_volume")
			action.Status = skylift.ActionStatusRunning
		}

		writeJSON(writer, http.StatusOK, actionResponse{Action: action})
	}))

	actions, err := client.PollManyUntilDone(context.Background(), []int64{8, 7}, &skylift.PollOptions{
		Interval: 10 * time.Millisecond,
		Timeout:  10 * time.Second,
	})
	require.Error(t, err)
	assert.Nil(t, actions)

	var apiErr *skylift.APIError

	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "resource_limit_exceeded", apiErr.Code)
}

func TestActionsClient_PollManyUntilDone_Empty(t *testing.T) {
	client := newTestActionsClient(t, http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		t.Error("no requests expected")
	}))

	actions, err := client.PollManyUntilDone(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, actions)
}
