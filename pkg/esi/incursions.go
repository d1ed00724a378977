package esi

import (
	"context"
	"encoding/json"
)

// IncursionsGroup wraps the /incursions/ resource group.
type IncursionsGroup struct {
	client *Client
}

// Incursions returns all active incursions.
func (g *IncursionsGroup) Incursions(ctx context.Context) (json.RawMessage, error) {
	var incursions json.RawMessage
	if err := g.client.getJSON(ctx, "/incursions/", nil, &incursions); err != nil {
		return nil, err
	}
	return incursions, nil
}
