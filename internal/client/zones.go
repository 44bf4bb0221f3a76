package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/skylift-io/skylift-go/internal/http"
	"github.com/skylift-io/skylift-go/internal/validation"
	"github.com/skylift-io/skylift-go/pkg/skylift"
)

// ZonesClient implements the skylift.ZonesClient interface. Zones and
// records use string ids, unlike the numeric ids of cloud resources.
type ZonesClient struct {
	httpClient *http.Client
}

// NewZonesClient creates a new DNS zones client.
func NewZonesClient(httpClient *http.Client) *ZonesClient {
	return &ZonesClient{httpClient: httpClient}
}

// zoneResponse wraps a single zone as returned by the API.
type zoneResponse struct {
	Zone skylift.Zone `json:"zone"`
}

// recordResponse wraps a single record as returned by the API.
type recordResponse struct {
	Record skylift.Record `json:"record"`
}

// List implements skylift.ZonesClient.List.
func (c *ZonesClient) List(ctx context.Context, params *skylift.ZoneListParams) (*skylift.ZoneList, error) {
	resp, err := c.httpClient.Get(ctx, "/zones", params.ToValues())
	if err != nil {
		return nil, err
	}

	var list skylift.ZoneList
	if err := validation.DecodeResponse(resp.Body, &list, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing zone list response: %w", err)
	}

	return &list, nil
}

// Get implements skylift.ZonesClient.Get.
func (c *ZonesClient) Get(ctx context.Context, zoneID string) (*skylift.Zone, error) {
	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/zones/%s", zoneID), nil)
	if err != nil {
		return nil, err
	}

	var envelope zoneResponse
	if err := validation.DecodeResponse(resp.Body, &envelope, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing zone response: %w", err)
	}

	return &envelope.Zone, nil
}

// Create implements skylift.ZonesClient.Create.
func (c *ZonesClient) Create(ctx context.Context, request *skylift.ZoneCreateRequest) (*skylift.Zone, error) {
	if err := validation.ValidateRequest(request); err != nil {
		return nil, fmt.Errorf("creating zone: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, "/zones", request)
	if err != nil {
		return nil, err
	}

	var envelope zoneResponse
	if err := validation.DecodeResponse(resp.Body, &envelope, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing zone create response: %w", err)
	}

	return &envelope.Zone, nil
}

// Update implements skylift.ZonesClient.Update.
func (c *ZonesClient) Update(ctx context.Context, zoneID string, request *skylift.ZoneUpdateRequest) (*skylift.Zone, error) {
	if err := validation.ValidateRequest(request); err != nil {
		return nil, fmt.Errorf("updating zone: %w", err)
	}

	resp, err := c.httpClient.Put(ctx, fmt.Sprintf("/zones/%s", zoneID), request)
	if err != nil {
		return nil, err
	}

	var envelope zoneResponse
	if err := validation.DecodeResponse(resp.Body, &envelope, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing zone update response: %w", err)
	}

	return &envelope.Zone, nil
}

// Delete implements skylift.ZonesClient.Delete.
func (c *ZonesClient) Delete(ctx context.Context, zoneID string) error {
	_, err := c.httpClient.Delete(ctx, fmt.Sprintf("/zones/%s", zoneID))

	return err
}

// ImportZoneFile implements skylift.ZonesClient.ImportZoneFile. The zone
// file is sent verbatim as text, not wrapped in JSON.
func (c *ZonesClient) ImportZoneFile(ctx context.Context, zoneID string, zoneFile string) (*skylift.Zone, error) {
	req := &http.Request{
		Method:  "POST",
		Path:    fmt.Sprintf("/zones/%s/import", zoneID),
		Body:    []byte(zoneFile),
		Headers: map[string]string{"Content-Type": "text/plain"},
	}

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, err
	}

	var envelope zoneResponse
	if err := validation.DecodeResponse(resp.Body, &envelope, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing zone import response: %w", err)
	}

	return &envelope.Zone, nil
}

// ExportZoneFile implements skylift.ZonesClient.ExportZoneFile. The response
// is the zone in BIND format, returned as-is.
func (c *ZonesClient) ExportZoneFile(ctx context.Context, zoneID string) (string, error) {
	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/zones/%s/export", zoneID), nil)
	if err != nil {
		return "", err
	}

	return string(resp.Body), nil
}

// ListRecords implements skylift.ZonesClient.ListRecords.
func (c *ZonesClient) ListRecords(ctx context.Context, zoneID string, params *skylift.RecordListParams) (*skylift.RecordList, error) {
	query := params.ToValues()
	if query == nil {
		query = url.Values{}
	}

	query.Set("zone_id", zoneID)

	resp, err := c.httpClient.Get(ctx, "/records", query)
	if err != nil {
		return nil, err
	}

	var list skylift.RecordList
	if err := validation.DecodeResponse(resp.Body, &list, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing record list response: %w", err)
	}

	return &list, nil
}

// GetRecord implements skylift.ZonesClient.GetRecord.
func (c *ZonesClient) GetRecord(ctx context.Context, recordID string) (*skylift.Record, error) {
	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/records/%s", recordID), nil)
	if err != nil {
		return nil, err
	}

	var envelope recordResponse
	if err := validation.DecodeResponse(resp.Body, &envelope, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing record response: %w", err)
	}

	return &envelope.Record, nil
}

// CreateRecord implements skylift.ZonesClient.CreateRecord.
func (c *ZonesClient) CreateRecord(ctx context.Context, request *skylift.RecordCreateRequest) (*skylift.Record, error) {
	if err := validation.ValidateRequest(request); err != nil {
		return nil, fmt.Errorf("creating record: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, "/records", request)
	if err != nil {
		return nil, err
	}

	var envelope recordResponse
	if err := validation.DecodeResponse(resp.Body, &envelope, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing record create response: %w", err)
	}

	return &envelope.Record, nil
}

// UpdateRecord implements skylift.ZonesClient.UpdateRecord.
func (c *ZonesClient) UpdateRecord(ctx context.Context, recordID string, request *skylift.RecordUpdateRequest) (*skylift.Record, error) {
	if err := validation.ValidateRequest(request); err != nil {
		return nil, fmt.Errorf("updating record: %w", err)
	}

	resp, err := c.httpClient.Put(ctx, fmt.Sprintf("/records/%s", recordID), request)
	if err != nil {
		return nil, err
	}

	var envelope recordResponse
	if err := validation.DecodeResponse(resp.Body, &envelope, validation.Open); err != nil {
		return nil, fmt.Errorf("parsing record update response: %w", err)
	}

	return &envelope.Record, nil
}

// DeleteRecord implements skylift.ZonesClient.DeleteRecord.
func (c *ZonesClient) DeleteRecord(ctx context.Context, recordID string) error {
	_, err := c.httpClient.Delete(ctx, fmt.Sprintf("/records/%s", recordID))

	return err
}
