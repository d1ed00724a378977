package esi

import (
	"context"
	"encoding/json"
	"fmt"
)

// AllianceGroup wraps the /alliances/ resource group.
type AllianceGroup struct {
	client *Client
}

// Alliances returns all active alliance IDs.
func (g *AllianceGroup) Alliances(ctx context.Context) ([]int64, error) {
	var alliances []int64
	if err := g.client.getJSON(ctx, "/alliances/", nil, &alliances); err != nil {
		return nil, err
	}
	return alliances, nil
}

// Info returns public information about an alliance.
func (g *AllianceGroup) Info(ctx context.Context, allianceID int64) (json.RawMessage, error) {
	var info json.RawMessage
	path := fmt.Sprintf("/alliances/%d/", allianceID)
	if err := g.client.getJSON(ctx, path, nil, &info); err != nil {
		return nil, err
	}
	return info, nil
}

// Corporations returns the member corporation IDs of an alliance.
func (g *AllianceGroup) Corporations(ctx context.Context, allianceID int64) ([]int64, error) {
	var corporations []int64
	path := fmt.Sprintf("/alliances/%d/corporations/", allianceID)
	if err := g.client.getJSON(ctx, path, nil, &corporations); err != nil {
		return nil, err
	}
	return corporations, nil
}

// Icon returns the alliance icon URLs.
func (g *AllianceGroup) Icon(ctx context.Context, allianceID int64) (json.RawMessage, error) {
	var icon json.RawMessage
	path := fmt.Sprintf("/alliances/%d/icons/", allianceID)
	if err := g.client.getJSON(ctx, path, nil, &icon); err != nil {
		return nil, err
	}
	return icon, nil
}

// Contacts returns a page of the alliance's contacts. Requires
// authentication.
func (g *AllianceGroup) Contacts(ctx context.Context, allianceID int64, characterID string, page int) (json.RawMessage, error) {
	var contacts json.RawMessage
	path := fmt.Sprintf("/alliances/%d/contacts/", allianceID)
	opts := &RequestOptions{CharacterID: characterID, Query: pageQuery(page)}
	if err := g.client.getJSON(ctx, path, opts, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

// ContactLabels returns the alliance's contact labels. Requires
// authentication.
func (g *AllianceGroup) ContactLabels(ctx context.Context, allianceID int64, characterID string) (json.RawMessage, error) {
	var labels json.RawMessage
	path := fmt.Sprintf("/alliances/%d/contacts/labels/", allianceID)
	opts := &RequestOptions{CharacterID: characterID}
	if err := g.client.getJSON(ctx, path, opts, &labels); err != nil {
		return nil, err
	}
	return labels, nil
}
