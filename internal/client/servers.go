package client

import (
	"context"
	"fmt"

	"github.com/skylift-io/skylift-go/internal/http"
	"github.com/skylift-io/skylift-go/internal/validation"
	"github.com/skylift-io/skylift-go/pkg/skylift"
)

// ServersClient implements the skylift.ServersClient interface.
type ServersClient struct {
	httpClient *http.Client
}

// NewServersClient creates a new servers client.
func NewServersClient(httpClient *http.Client) *ServersClient {
	return &ServersClient{httpClient: httpClient}
}

// serverResponse wraps a single server as returned by the API.
type serverResponse struct {
	Server skylift.Server `json:"server"`
}

// List implements skylift.ServersClient.List.
func (c *ServersClient) List(ctx context.Context, params *skylift.ServerListParams) (*skylift.ServerList, error) {
	resp, err := c.httpClient.Get(ctx, "/servers", params.ToValues())
	if err != nil {
		return nil, err
	}

	var list skylift.ServerList
	if err := validation.DecodeResponse(resp.Body, &list, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing server list response: %w", err)
	}

	return &list, nil
}

// Get implements skylift.ServersClient.Get.
func (c *ServersClient) Get(ctx context.Context, serverID int64) (*skylift.Server, error) {
	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/servers/%d", serverID), nil)
	if err != nil {
		return nil, err
	}

	var envelope serverResponse
	if err := validation.DecodeResponse(resp.Body, &envelope, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing server response: %w", err)
	}

	return &envelope.Server, nil
}

// Create implements skylift.ServersClient.Create. The request is validated
// before anything is sent.
func (c *ServersClient) Create(ctx context.Context, request *skylift.ServerCreateRequest) (*skylift.ServerCreateResult, error) {
	if err := validation.ValidateRequest(request); err != nil {
		return nil, fmt.Errorf("creating server: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, "/servers", request)
	if err != nil {
		return nil, err
	}

	var result skylift.ServerCreateResult
	if err := validation.DecodeResponse(resp.Body, &result, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing server create response: %w", err)
	}

	return &result, nil
}

// Update implements skylift.ServersClient.Update.
func (c *ServersClient) Update(ctx context.Context, serverID int64, request *skylift.ServerUpdateRequest) (*skylift.Server, error) {
	if err := validation.ValidateRequest(request); err != nil {
		return nil, fmt.Errorf("updating server: %w", err)
	}

	resp, err := c.httpClient.Put(ctx, fmt.Sprintf("/servers/%d", serverID), request)
	if err != nil {
		return nil, err
	}

	var envelope serverResponse
	if err := validation.DecodeResponse(resp.Body, &envelope, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing server update response: %w", err)
	}

	return &envelope.Server, nil
}

// Delete implements skylift.ServersClient.Delete. Deleting a server is
// asynchronous, so the API answers with the deletion action.
func (c *ServersClient) Delete(ctx context.Context, serverID int64) (*skylift.Action, error) {
	resp, err := c.httpClient.Delete(ctx, fmt.Sprintf("/servers/%d", serverID))
	if err != nil {
		return nil, err
	}

	return decodeAction(resp.Body, "server delete")
}

// serverAction posts a body-less server action and decodes the returned
// action.
func (c *ServersClient) serverAction(ctx context.Context, serverID int64, command string) (*skylift.Action, error) {
	resp, err := c.httpClient.Post(ctx, fmt.Sprintf("/servers/%d/actions/%s", serverID, command), nil)
	if err != nil {
		return nil, err
	}

	return decodeAction(resp.Body, "server "+command)
}

// Poweron implements skylift.ServersClient.Poweron.
func (c *ServersClient) Poweron(ctx context.Context, serverID int64) (*skylift.Action, error) {
	return c.serverAction(ctx, serverID, "poweron")
}

// Poweroff implements skylift.ServersClient.Poweroff.
func (c *ServersClient) Poweroff(ctx context.Context, serverID int64) (*skylift.Action, error) {
	return c.serverAction(ctx, serverID, "poweroff")
}

// Reboot implements skylift.ServersClient.Reboot.
func (c *ServersClient) Reboot(ctx context.Context, serverID int64) (*skylift.Action, error) {
	return c.serverAction(ctx, serverID, "reboot")
}

// Shutdown implements skylift.ServersClient.Shutdown.
func (c *ServersClient) Shutdown(ctx context.Context, serverID int64) (*skylift.Action, error) {
	return c.serverAction(ctx, serverID, "shutdown")
}

// Reset implements skylift.ServersClient.Reset.
func (c *ServersClient) Reset(ctx context.Context, serverID int64) (*skylift.Action, error) {
	return c.serverAction(ctx, serverID, "reset")
}

// ResetPassword implements skylift.ServersClient.ResetPassword.
func (c *ServersClient) ResetPassword(ctx context.Context, serverID int64) (*skylift.ServerResetPasswordResult, error) {
	resp, err := c.httpClient.Post(ctx, fmt.Sprintf("/servers/%d/actions/reset_password", serverID), nil)
	if err != nil {
		return nil, err
	}

	var result skylift.ServerResetPasswordResult
	if err := validation.DecodeResponse(resp.Body, &result, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing server reset_password response: %w", err)
	}

	return &result, nil
}

// EnableRescue implements skylift.ServersClient.EnableRescue. A nil request
// enables the default rescue system.
func (c *ServersClient) EnableRescue(ctx context.Context, serverID int64, request *skylift.ServerEnableRescueRequest) (*skylift.ServerEnableRescueResult, error) {
	var body interface{}

	if request != nil {
		if err := validation.ValidateRequest(request); err != nil {
			return nil, fmt.Errorf("enabling rescue system: %w", err)
		}

		body = request
	}

	resp, err := c.httpClient.Post(ctx, fmt.Sprintf("/servers/%d/actions/enable_rescue", serverID), body)
	if err != nil {
		return nil, err
	}

	var result skylift.ServerEnableRescueResult
	if err := validation.DecodeResponse(resp.Body, &result, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing server enable_rescue response: %w", err)
	}

	return &result, nil
}

// DisableRescue implements skylift.ServersClient.DisableRescue.
func (c *ServersClient) DisableRescue(ctx context.Context, serverID int64) (*skylift.Action, error) {
	return c.serverAction(ctx, serverID, "disable_rescue")
}

// CreateImage implements skylift.ServersClient.CreateImage. A nil request
// creates a snapshot with provider defaults.
func (c *ServersClient) CreateImage(ctx context.Context, serverID int64, request *skylift.ServerCreateImageRequest) (*skylift.ServerCreateImageResult, error) {
	var body interface{}

	if request != nil {
		if err := validation.ValidateRequest(request); err != nil {
			return nil, fmt.Errorf("creating image from server: %w", err)
		}

		body = request
	}

	resp, err := c.httpClient.Post(ctx, fmt.Sprintf("/servers/%d/actions/create_image", serverID), body)
	if err != nil {
		return nil, err
	}

	var result skylift.ServerCreateImageResult
	if err := validation.DecodeResponse(resp.Body, &result, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing server create_image response: %w", err)
	}

	return &result, nil
}

// Rebuild implements skylift.ServersClient.Rebuild.
func (c *ServersClient) Rebuild(ctx context.Context, serverID int64, request *skylift.ServerRebuildRequest) (*skylift.ServerRebuildResult, error) {
	if err := validation.ValidateRequest(request); err != nil {
		return nil, fmt.Errorf("rebuilding server: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, fmt.Sprintf("/servers/%d/actions/rebuild", serverID), request)
	if err != nil {
		return nil, err
	}

	var result skylift.ServerRebuildResult
	if err := validation.DecodeResponse(resp.Body, &result, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing server rebuild response: %w", err)
	}

	return &result, nil
}

// ChangeType implements skylift.ServersClient.ChangeType.
func (c *ServersClient) ChangeType(ctx context.Context, serverID int64, request *skylift.ServerChangeTypeRequest) (*skylift.Action, error) {
	if err := validation.ValidateRequest(request); err != nil {
		return nil, fmt.Errorf("changing server type: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, fmt.Sprintf("/servers/%d/actions/change_type", serverID), request)
	if err != nil {
		return nil, err
	}

	return decodeAction(resp.Body, "server change_type")
}

// EnableBackup implements skylift.ServersClient.EnableBackup.
func (c *ServersClient) EnableBackup(ctx context.Context, serverID int64) (*skylift.Action, error) {
	return c.serverAction(ctx, serverID, "enable_backup")
}

// DisableBackup implements skylift.ServersClient.DisableBackup.
func (c *ServersClient) DisableBackup(ctx context.Context, serverID int64) (*skylift.Action, error) {
	return c.serverAction(ctx, serverID, "disable_backup")
}

// AttachISO implements skylift.ServersClient.AttachISO.
func (c *ServersClient) AttachISO(ctx context.Context, serverID int64, request *skylift.ServerAttachISORequest) (*skylift.Action, error) {
	if err := validation.ValidateRequest(request); err != nil {
		return nil, fmt.Errorf("attaching ISO: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, fmt.Sprintf("/servers/%d/actions/attach_iso", serverID), request)
	if err != nil {
		return nil, err
	}

	return decodeAction(resp.Body, "server attach_iso")
}

// DetachISO implements skylift.ServersClient.DetachISO.
func (c *ServersClient) DetachISO(ctx context.Context, serverID int64) (*skylift.Action, error) {
	return c.serverAction(ctx, serverID, "detach_iso")
}

// AttachToNetwork implements skylift.ServersClient.AttachToNetwork.
func (c *ServersClient) AttachToNetwork(ctx context.Context, serverID int64, request *skylift.ServerAttachToNetworkRequest) (*skylift.Action, error) {
	if err := validation.ValidateRequest(request); err != nil {
		return nil, fmt.Errorf("attaching server to network: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, fmt.Sprintf("/servers/%d/actions/attach_to_network", serverID), request)
	if err != nil {
		return nil, err
	}

	return decodeAction(resp.Body, "server attach_to_network")
}

// DetachFromNetwork implements skylift.ServersClient.DetachFromNetwork.
func (c *ServersClient) DetachFromNetwork(ctx context.Context, serverID int64, request *skylift.ServerDetachFromNetworkRequest) (*skylift.Action, error) {
	if err := validation.ValidateRequest(request); err != nil {
		return nil, fmt.Errorf("detaching server from network: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, fmt.Sprintf("/servers/%d/actions/detach_from_network", serverID), request)
	if err != nil {
		return nil, err
	}

	return decodeAction(resp.Body, "server detach_from_network")
}

// ChangeProtection implements skylift.ServersClient.ChangeProtection.
func (c *ServersClient) ChangeProtection(ctx context.Context, serverID int64, request *skylift.ServerChangeProtectionRequest) (*skylift.Action, error) {
	if err := validation.ValidateRequest(request); err != nil {
		return nil, fmt.Errorf("changing server protection: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, fmt.Sprintf("/servers/%d/actions/change_protection", serverID), request)
	if err != nil {
		return nil, err
	}

	return decodeAction(resp.Body, "server change_protection")
}

// ChangeDNSPtr implements skylift.ServersClient.ChangeDNSPtr.
func (c *ServersClient) ChangeDNSPtr(ctx context.Context, serverID int64, request *skylift.ChangeDNSPtrRequest) (*skylift.Action, error) {
	if err := validation.ValidateRequest(request); err != nil {
		return nil, fmt.Errorf("changing reverse DNS: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, fmt.Sprintf("/servers/%d/actions/change_dns_ptr", serverID), request)
	if err != nil {
		return nil, err
	}

	return decodeAction(resp.Body, "server change_dns_ptr")
}
