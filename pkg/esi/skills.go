package esi

import (
	"context"
	"encoding/json"
)

// SkillsGroup wraps the character skills resource group. Every method
// requires authentication.
type SkillsGroup struct {
	client *Client
}

// Attributes returns the character's neural attributes.
func (g *SkillsGroup) Attributes(ctx context.Context, characterID string) (json.RawMessage, error) {
	var attributes json.RawMessage
	path := "/characters/" + characterID + "/attributes/"
	opts := &RequestOptions{CharacterID: characterID}
	if err := g.client.getJSON(ctx, path, opts, &attributes); err != nil {
		return nil, err
	}
	return attributes, nil
}

// Skills returns the character's trained skills and total skill points.
func (g *SkillsGroup) Skills(ctx context.Context, characterID string) (json.RawMessage, error) {
	var skills json.RawMessage
	path := "/characters/" + characterID + "/skills/"
	opts := &RequestOptions{CharacterID: characterID}
	if err := g.client.getJSON(ctx, path, opts, &skills); err != nil {
		return nil, err
	}
	return skills, nil
}

// Skillqueue returns the character's skill training queue.
func (g *SkillsGroup) Skillqueue(ctx context.Context, characterID string) (json.RawMessage, error) {
	var queue json.RawMessage
	path := "/characters/" + characterID + "/skillqueue/"
	opts := &RequestOptions{CharacterID: characterID}
	if err := g.client.getJSON(ctx, path, opts, &queue); err != nil {
		return nil, err
	}
	return queue, nil
}
