package esi

import (
	"context"
	"encoding/json"
	"fmt"
)

// KillmailsGroup wraps the /killmails/ resource group.
type KillmailsGroup struct {
	client *Client
}

// CharacterRecent returns a page of the character's recent killmail links.
// Requires authentication.
func (g *KillmailsGroup) CharacterRecent(ctx context.Context, characterID string, page int) (json.RawMessage, error) {
	var killmails json.RawMessage
	path := "/characters/" + characterID + "/killmails/recent/"
	opts := &RequestOptions{CharacterID: characterID, Query: pageQuery(page)}
	if err := g.client.getJSON(ctx, path, opts, &killmails); err != nil {
		return nil, err
	}
	return killmails, nil
}

// CorporationRecent returns a page of the corporation's recent killmail
// links. Requires authentication and corporation roles.
func (g *KillmailsGroup) CorporationRecent(ctx context.Context, corporationID int64, characterID string, page int) (json.RawMessage, error) {
	var killmails json.RawMessage
	path := fmt.Sprintf("/corporations/%d/killmails/recent/", corporationID)
	opts := &RequestOptions{CharacterID: characterID, Query: pageQuery(page)}
	if err := g.client.getJSON(ctx, path, opts, &killmails); err != nil {
		return nil, err
	}
	return killmails, nil
}

// Killmail returns a single killmail by ID and hash. The hash makes the
// lookup public.
func (g *KillmailsGroup) Killmail(ctx context.Context, killmailID int64, killmailHash string) (json.RawMessage, error) {
	var killmail json.RawMessage
	path := fmt.Sprintf("/killmails/%d/%s/", killmailID, killmailHash)
	if err := g.client.getJSON(ctx, path, nil, &killmail); err != nil {
		return nil, err
	}
	return killmail, nil
}
