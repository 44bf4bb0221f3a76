package client

import (
	"context"
	"fmt"

	"github.com/skylift-io/skylift-go/internal/http"
	"github.com/skylift-io/skylift-go/internal/validation"
	"github.com/skylift-io/skylift-go/pkg/skylift"
)

// ISOsClient implements the skylift.ISOsClient interface.
type ISOsClient struct {
	httpClient *http.Client
}

// NewISOsClient creates a new ISOs client.
func NewISOsClient(httpClient *http.Client) *ISOsClient {
	return &ISOsClient{httpClient: httpClient}
}

// isoResponse wraps a single ISO as returned by the API.
type isoResponse struct {
	ISO skylift.ISO `json:"iso"`
}

// List implements skylift.ISOsClient.List.
func (c *ISOsClient) List(ctx context.Context, params *skylift.ISOListParams) (*skylift.ISOList, error) {
	resp, err := c.httpClient.Get(ctx, "/isos", params.ToValues())
	if err != nil {
		return nil, err
	}

	var list skylift.ISOList
	if err := validation.DecodeResponse(resp.Body, &list, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing ISO list response: %w", err)
	}

	return &list, nil
}

// Get implements skylift.ISOsClient.Get.
func (c *ISOsClient) Get(ctx context.Context, isoID int64) (*skylift.ISO, error) {
	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/isos/%d", isoID), nil)
	if err != nil {
		return nil, err
	}

	var envelope isoResponse
	if err := validation.DecodeResponse(resp.Body, &envelope, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing ISO response: %w", err)
	}

	return &envelope.ISO, nil
}
