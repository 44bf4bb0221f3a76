package client

import (
	"context"
	"fmt"

	"github.com/skylift-io/skylift-go/internal/http"
	"github.com/skylift-io/skylift-go/internal/validation"
	"github.com/skylift-io/skylift-go/pkg/skylift"
)

// SSHKeysClient implements the skylift.SSHKeysClient interface.
type SSHKeysClient struct {
	httpClient *http.Client
}

// NewSSHKeysClient creates a new SSH keys client.
func NewSSHKeysClient(httpClient *http.Client) *SSHKeysClient {
	return &SSHKeysClient{httpClient: httpClient}
}

// sshKeyResponse wraps a single SSH key as returned by the API.
type sshKeyResponse struct {
	SSHKey skylift.SSHKey `json:"ssh_key"`
}

// List implements skylift.SSHKeysClient.List.
func (c *SSHKeysClient) List(ctx context.Context, params *skylift.SSHKeyListParams) (*skylift.SSHKeyList, error) {
	resp, err := c.httpClient.Get(ctx, "/ssh_keys", params.ToValues())
	if err != nil {
		return nil, err
	}

	var list skylift.SSHKeyList
	if err := validation.DecodeResponse(resp.Body, &list, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing SSH key list response: %w", err)
	}

	return &list, nil
}

// Get implements skylift.SSHKeysClient.Get.
func (c *SSHKeysClient) Get(ctx context.Context, sshKeyID int64) (*skylift.SSHKey, error) {
	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/ssh_keys/%d", sshKeyID), nil)
	if err != nil {
		return nil, err
	}

	var envelope sshKeyResponse
	if err := validation.DecodeResponse(resp.Body, &envelope, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing SSH key response: %w", err)
	}

	return &envelope.SSHKey, nil
}

// Create implements skylift.SSHKeysClient.Create.
func (c *SSHKeysClient) Create(ctx context.Context, request *skylift.SSHKeyCreateRequest) (*skylift.SSHKey, error) {
	if err := validation.ValidateRequest(request); err != nil {
		return nil, fmt.Errorf("creating SSH key: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, "/ssh_keys", request)
	if err != nil {
		return nil, err
	}

	var envelope sshKeyResponse
	if err := validation.DecodeResponse(resp.Body, &envelope, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing SSH key create response: %w", err)
	}

	return &envelope.SSHKey, nil
}

// Update implements skylift.SSHKeysClient.Update.
func (c *SSHKeysClient) Update(ctx context.Context, sshKeyID int64, request *skylift.SSHKeyUpdateRequest) (*skylift.SSHKey, error) {
	if err := validation.ValidateRequest(request); err != nil {
		return nil, fmt.Errorf("updating SSH key: %w", err)
	}

	resp, err := c.httpClient.Put(ctx, fmt.Sprintf("/ssh_keys/%d", sshKeyID), request)
	if err != nil {
		return nil, err
	}

	var envelope sshKeyResponse
	if err := validation.DecodeResponse(resp.Body, &envelope, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing SSH key update response: %w", err)
	}

	return &envelope.SSHKey, nil
}

// Delete implements skylift.SSHKeysClient.Delete.
func (c *SSHKeysClient) Delete(ctx context.Context, sshKeyID int64) error {
	_, err := c.httpClient.Delete(ctx, fmt.Sprintf("/ssh_keys/%d", sshKeyID))

	return err
}
