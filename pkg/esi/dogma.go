package esi

import (
	"context"
	"encoding/json"
	"fmt"
)

// DogmaGroup wraps the /dogma/ resource group.
type DogmaGroup struct {
	client *Client
}

// Attributes returns all dogma attribute IDs.
func (g *DogmaGroup) Attributes(ctx context.Context) ([]int64, error) {
	var attributes []int64
	if err := g.client.getJSON(ctx, "/dogma/attributes/", nil, &attributes); err != nil {
		return nil, err
	}
	return attributes, nil
}

// Attribute returns details about a dogma attribute.
func (g *DogmaGroup) Attribute(ctx context.Context, attributeID int64) (json.RawMessage, error) {
	var attribute json.RawMessage
	path := fmt.Sprintf("/dogma/attributes/%d/", attributeID)
	if err := g.client.getJSON(ctx, path, nil, &attribute); err != nil {
		return nil, err
	}
	return attribute, nil
}

// Effects returns all dogma effect IDs.
func (g *DogmaGroup) Effects(ctx context.Context) ([]int64, error) {
	var effects []int64
	if err := g.client.getJSON(ctx, "/dogma/effects/", nil, &effects); err != nil {
		return nil, err
	}
	return effects, nil
}

// Effect returns details about a dogma effect.
func (g *DogmaGroup) Effect(ctx context.Context, effectID int64) (json.RawMessage, error) {
	var effect json.RawMessage
	path := fmt.Sprintf("/dogma/effects/%d/", effectID)
	if err := g.client.getJSON(ctx, path, nil, &effect); err != nil {
		return nil, err
	}
	return effect, nil
}

// DynamicItem returns the dogma attributes of a mutated item. Requires
// authentication.
func (g *DogmaGroup) DynamicItem(ctx context.Context, characterID string, typeID, itemID int64) (json.RawMessage, error) {
	var item json.RawMessage
	path := fmt.Sprintf("/dogma/dynamic/items/%d/%d/", typeID, itemID)
	opts := &RequestOptions{CharacterID: characterID}
	if err := g.client.getJSON(ctx, path, opts, &item); err != nil {
		return nil, err
	}
	return item, nil
}
