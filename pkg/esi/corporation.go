package esi

import (
	"context"
	"encoding/json"
	"fmt"
)

// CorporationGroup wraps the /corporations/ resource group. Member and
// asset endpoints require authentication and corporation roles.
type CorporationGroup struct {
	client *Client
}

// Info returns public information about a corporation.
func (g *CorporationGroup) Info(ctx context.Context, corporationID int64) (json.RawMessage, error) {
	var info json.RawMessage
	path := fmt.Sprintf("/corporations/%d/", corporationID)
	if err := g.client.getJSON(ctx, path, nil, &info); err != nil {
		return nil, err
	}
	return info, nil
}

// AllianceHistory returns the corporation's alliance membership history.
func (g *CorporationGroup) AllianceHistory(ctx context.Context, corporationID int64) (json.RawMessage, error) {
	var history json.RawMessage
	path := fmt.Sprintf("/corporations/%d/alliancehistory/", corporationID)
	if err := g.client.getJSON(ctx, path, nil, &history); err != nil {
		return nil, err
	}
	return history, nil
}

// Icons returns the corporation icon URLs.
func (g *CorporationGroup) Icons(ctx context.Context, corporationID int64) (json.RawMessage, error) {
	var icons json.RawMessage
	path := fmt.Sprintf("/corporations/%d/icons/", corporationID)
	if err := g.client.getJSON(ctx, path, nil, &icons); err != nil {
		return nil, err
	}
	return icons, nil
}

// Members returns the corporation's member character IDs.
func (g *CorporationGroup) Members(ctx context.Context, corporationID int64, characterID string) ([]int64, error) {
	var members []int64
	path := fmt.Sprintf("/corporations/%d/members/", corporationID)
	opts := &RequestOptions{CharacterID: characterID}
	if err := g.client.getJSON(ctx, path, opts, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// MembersLimit returns the corporation's member capacity.
func (g *CorporationGroup) MembersLimit(ctx context.Context, corporationID int64, characterID string) (int, error) {
	var limit int
	path := fmt.Sprintf("/corporations/%d/members/limit/", corporationID)
	opts := &RequestOptions{CharacterID: characterID}
	if err := g.client.getJSON(ctx, path, opts, &limit); err != nil {
		return 0, err
	}
	return limit, nil
}

// MemberTracking returns tracking details for each corporation member.
func (g *CorporationGroup) MemberTracking(ctx context.Context, corporationID int64, characterID string) (json.RawMessage, error) {
	var tracking json.RawMessage
	path := fmt.Sprintf("/corporations/%d/membertracking/", corporationID)
	opts := &RequestOptions{CharacterID: characterID}
	if err := g.client.getJSON(ctx, path, opts, &tracking); err != nil {
		return nil, err
	}
	return tracking, nil
}

// Roles returns the roles of each corporation member.
func (g *CorporationGroup) Roles(ctx context.Context, corporationID int64, characterID string) (json.RawMessage, error) {
	var roles json.RawMessage
	path := fmt.Sprintf("/corporations/%d/roles/", corporationID)
	opts := &RequestOptions{CharacterID: characterID}
	if err := g.client.getJSON(ctx, path, opts, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

// Divisions returns the corporation's hangar and wallet division names.
func (g *CorporationGroup) Divisions(ctx context.Context, corporationID int64, characterID string) (json.RawMessage, error) {
	var divisions json.RawMessage
	path := fmt.Sprintf("/corporations/%d/divisions/", corporationID)
	opts := &RequestOptions{CharacterID: characterID}
	if err := g.client.getJSON(ctx, path, opts, &divisions); err != nil {
		return nil, err
	}
	return divisions, nil
}

// Blueprints returns a page of the corporation's blueprints.
func (g *CorporationGroup) Blueprints(ctx context.Context, corporationID int64, characterID string, page int) (json.RawMessage, error) {
	var blueprints json.RawMessage
	path := fmt.Sprintf("/corporations/%d/blueprints/", corporationID)
	opts := &RequestOptions{CharacterID: characterID, Query: pageQuery(page)}
	if err := g.client.getJSON(ctx, path, opts, &blueprints); err != nil {
		return nil, err
	}
	return blueprints, nil
}

// Structures returns a page of the corporation's structures.
func (g *CorporationGroup) Structures(ctx context.Context, corporationID int64, characterID string, page int) (json.RawMessage, error) {
	var structures json.RawMessage
	path := fmt.Sprintf("/corporations/%d/structures/", corporationID)
	opts := &RequestOptions{CharacterID: characterID, Query: pageQuery(page)}
	if err := g.client.getJSON(ctx, path, opts, &structures); err != nil {
		return nil, err
	}
	return structures, nil
}

// Standings returns a page of the corporation's standings.
func (g *CorporationGroup) Standings(ctx context.Context, corporationID int64, characterID string, page int) (json.RawMessage, error) {
	var standings json.RawMessage
	path := fmt.Sprintf("/corporations/%d/standings/", corporationID)
	opts := &RequestOptions{CharacterID: characterID, Query: pageQuery(page)}
	if err := g.client.getJSON(ctx, path, opts, &standings); err != nil {
		return nil, err
	}
	return standings, nil
}
