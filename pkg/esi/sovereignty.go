package esi

import (
	"context"
	"encoding/json"
)

// SovereigntyGroup wraps the /sovereignty/ resource group. All endpoints
// are public.
type SovereigntyGroup struct {
	client *Client
}

// Campaigns returns active sovereignty campaigns.
func (g *SovereigntyGroup) Campaigns(ctx context.Context) (json.RawMessage, error) {
	var campaigns json.RawMessage
	if err := g.client.getJSON(ctx, "/sovereignty/campaigns/", nil, &campaigns); err != nil {
		return nil, err
	}
	return campaigns, nil
}

// Map returns the sovereignty of each solar system.
func (g *SovereigntyGroup) Map(ctx context.Context) (json.RawMessage, error) {
	var sovMap json.RawMessage
	if err := g.client.getJSON(ctx, "/sovereignty/map/", nil, &sovMap); err != nil {
		return nil, err
	}
	return sovMap, nil
}

// Structures returns all sovereignty structures.
func (g *SovereigntyGroup) Structures(ctx context.Context) (json.RawMessage, error) {
	var structures json.RawMessage
	if err := g.client.getJSON(ctx, "/sovereignty/structures/", nil, &structures); err != nil {
		return nil, err
	}
	return structures, nil
}
