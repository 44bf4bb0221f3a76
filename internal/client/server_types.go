package client

import (
	"context"
	"fmt"

	"github.com/skylift-io/skylift-go/internal/http"
	"github.com/skylift-io/skylift-go/internal/validation"
	"github.com/skylift-io/skylift-go/pkg/skylift"
)

// ServerTypesClient implements the skylift.ServerTypesClient interface.
type ServerTypesClient struct {
	httpClient *http.Client
}

// NewServerTypesClient creates a new server types client.
func NewServerTypesClient(httpClient *http.Client) *ServerTypesClient {
	return &ServerTypesClient{httpClient: httpClient}
}

// serverTypeResponse wraps a single server type as returned by the API.
type serverTypeResponse struct {
	ServerType skylift.ServerType `json:"server_type"`
}

// List implements skylift.ServerTypesClient.List.
func (c *ServerTypesClient) List(ctx context.Context, params *skylift.ServerTypeListParams) (*skylift.ServerTypeList, error) {
	resp, err := c.httpClient.Get(ctx, "/server_types", params.ToValues())
	if err != nil {
		return nil, err
	}

	var list skylift.ServerTypeList
	if err := validation.DecodeResponse(resp.Body, &list, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing server type list response: %w", err)
	}

	return &list, nil
}

// Get implements skylift.ServerTypesClient.Get.
func (c *ServerTypesClient) Get(ctx context.Context, serverTypeID int64) (*skylift.ServerType, error) {
	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/server_types/%d", serverTypeID), nil)
	if err != nil {
		return nil, err
	}

	var envelope serverTypeResponse
	if err := validation.DecodeResponse(resp.Body, &envelope, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing server type response: %w", err)
	}

	return &envelope.ServerType, nil
}
