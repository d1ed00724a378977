package esi

import (
	"context"
	"encoding/json"
)

// InsuranceGroup wraps the /insurance/ resource group.
type InsuranceGroup struct {
	client *Client
}

// Prices returns ship insurance levels and prices.
func (g *InsuranceGroup) Prices(ctx context.Context) (json.RawMessage, error) {
	var prices json.RawMessage
	if err := g.client.getJSON(ctx, "/insurance/prices/", nil, &prices); err != nil {
		return nil, err
	}
	return prices, nil
}
