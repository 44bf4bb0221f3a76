package client

import (
	"context"
	"fmt"

	"github.com/skylift-io/skylift-go/internal/http"
	"github.com/skylift-io/skylift-go/internal/validation"
	"github.com/skylift-io/skylift-go/pkg/skylift"
)

// CertificatesClient implements the skylift.CertificatesClient interface.
type CertificatesClient struct {
	httpClient *http.Client
}

// NewCertificatesClient creates a new certificates client.
func NewCertificatesClient(httpClient *http.Client) *CertificatesClient {
	return &CertificatesClient{httpClient: httpClient}
}

// certificateResponse wraps a single certificate as returned by the API.
type certificateResponse struct {
	Certificate skylift.Certificate `json:"certificate"`
}

// List implements skylift.CertificatesClient.List.
func (c *CertificatesClient) List(ctx context.Context, params *skylift.CertificateListParams) (*skylift.CertificateList, error) {
	resp, err := c.httpClient.Get(ctx, "/certificates", params.ToValues())
	if err != nil {
		return nil, err
	}

	var list skylift.CertificateList
	if err := validation.DecodeResponse(resp.Body, &list, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing certificate list response: %w", err)
	}

	return &list, nil
}

// Get implements skylift.CertificatesClient.Get.
func (c *CertificatesClient) Get(ctx context.Context, certificateID int64) (*skylift.Certificate, error) {
	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/certificates/%d", certificateID), nil)
	if err != nil {
		return nil, err
	}

	var envelope certificateResponse
	if err := validation.DecodeResponse(resp.Body, &envelope, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing certificate response: %w", err)
	}

	return &envelope.Certificate, nil
}

// Create implements skylift.CertificatesClient.Create.
func (c *CertificatesClient) Create(ctx context.Context, request *skylift.CertificateCreateRequest) (*skylift.CertificateCreateResult, error) {
	if err := validation.ValidateRequest(request); err != nil {
		return nil, fmt.Errorf("creating certificate: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, "/certificates", request)
	if err != nil {
		return nil, err
	}

	var result skylift.CertificateCreateResult
	if err := validation.DecodeResponse(resp.Body, &result, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing certificate create response: %w", err)
	}

	return &result, nil
}

// Update implements skylift.CertificatesClient.Update.
func (c *CertificatesClient) Update(ctx context.Context, certificateID int64, request *skylift.CertificateUpdateRequest) (*skylift.Certificate, error) {
	if err := validation.ValidateRequest(request); err != nil {
		return nil, fmt.Errorf("updating certificate: %w", err)
	}

	resp, err := c.httpClient.Put(ctx, fmt.Sprintf("/certificates/%d", certificateID), request)
	if err != nil {
		return nil, err
	}

	var envelope certificateResponse
	if err := validation.DecodeResponse(resp.Body, &envelope, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing certificate update response: %w", err)
	}

	return &envelope.Certificate, nil
}

// Delete implements skylift.CertificatesClient.Delete.
func (c *CertificatesClient) Delete(ctx context.Context, certificateID int64) error {
	_, err := c.httpClient.Delete(ctx, fmt.Sprintf("/certificates/%d", certificateID))

	return err
}

// RetryIssuance implements skylift.CertificatesClient.RetryIssuance. It is
// only meaningful for managed certificates whose issuance failed.
func (c *CertificatesClient) RetryIssuance(ctx context.Context, certificateID int64) (*skylift.Action, error) {
	resp, err := c.httpClient.Post(ctx, fmt.Sprintf("/certificates/%d/actions/retry", certificateID), nil)
	if err != nil {
		return nil, err
	}

	return decodeAction(resp.Body, "certificate retry")
}
