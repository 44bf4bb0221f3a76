package client

import (
	"context"
	"fmt"

	"github.com/skylift-io/skylift-go/internal/http"
	"github.com/skylift-io/skylift-go/internal/validation"
	"github.com/skylift-io/skylift-go/pkg/skylift"
)

// PricingClient implements the skylift.PricingClient interface.
type PricingClient struct {
	httpClient *http.Client
}

// NewPricingClient creates a new pricing client.
func NewPricingClient(httpClient *http.Client) *PricingClient {
	return &PricingClient{httpClient: httpClient}
}

// pricingResponse wraps the price list as returned by the API.
type pricingResponse struct {
	Pricing skylift.Pricing `json:"pricing"`
}

// Get implements skylift.PricingClient.Get.
func (c *PricingClient) Get(ctx context.Context) (*skylift.Pricing, error) {
	resp, err := c.httpClient.Get(ctx, "/pricing", nil)
	if err != nil {
		return nil, err
	}

	var envelope pricingResponse
	if err := validation.DecodeResponse(resp.Body, &envelope, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing pricing response: %w", err)
	}

	return &envelope.Pricing, nil
}
