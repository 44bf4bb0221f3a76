package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skylift-io/skylift-go/pkg/skylift"
)

func TestPricingClient_Get(t *testing.T) {
	client := NewPricingClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/pricing", request.URL.Path)
		assert.Equal(t, "GET", request.Method)

		writeJSON(writer, http.StatusOK, pricingResponse{Pricing: skylift.Pricing{
			Currency: "EUR",
			VATRate:  "25.000000",
			Image: skylift.PricingImage{
				PerGBMonth: skylift.Price{Net: "0.0119", Gross: "0.0149"},
			},
			ServerTypes: []skylift.PricingServerType{
				{
					ID:   3,
					Name: "sl-2c-4g",
					Prices: []skylift.LocationPrice{
						{
							Location:     "osl1",
							PriceHourly:  skylift.Price{Net: "0.0060", Gross: "0.0075"},
							PriceMonthly: skylift.Price{Net: "3.9200", Gross: "4.9000"},
						},
					},
				},
			},
		}})
	})))

	pricing, err := client.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "EUR", pricing.Currency)
	assert.Equal(t, "0.0149", pricing.Image.PerGBMonth.Gross)
	require.Len(t, pricing.ServerTypes, 1)
	assert.Equal(t, "sl-2c-4g", pricing.ServerTypes[0].Name)
}

func TestPricingClient_Get_MissingCurrency(t *testing.T) {
	client := NewPricingClient(newTestHTTPClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writeJSON(writer, http.StatusOK, pricingResponse{Pricing: skylift.Pricing{VATRate: "25.000000"}})
	})))

	_, err := client.Get(context.Background())
	require.Error(t, err)

	var apiErr *skylift.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, skylift.IsValidationError(apiErr))
	require.True(t, apiErr.HasFieldErrors())
	assert.Equal(t, "pricing.currency", apiErr.Details.Fields[0].Name)
}
