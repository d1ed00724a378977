package esi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// CharacterGroup wraps the /characters/ resource group.
type CharacterGroup struct {
	client *Client
}

// PublicInfo returns public information about a character. No authentication
// required.
func (g *CharacterGroup) PublicInfo(ctx context.Context, characterID int64) (json.RawMessage, error) {
	var info json.RawMessage
	path := fmt.Sprintf("/characters/%d/", characterID)
	if err := g.client.getJSON(ctx, path, nil, &info); err != nil {
		return nil, err
	}
	return info, nil
}

// Portrait returns portrait URLs for a character.
func (g *CharacterGroup) Portrait(ctx context.Context, characterID int64) (json.RawMessage, error) {
	var portrait json.RawMessage
	path := fmt.Sprintf("/characters/%d/portrait/", characterID)
	if err := g.client.getJSON(ctx, path, nil, &portrait); err != nil {
		return nil, err
	}
	return portrait, nil
}

// CorporationHistory returns a character's corporation membership history.
func (g *CharacterGroup) CorporationHistory(ctx context.Context, characterID int64) (json.RawMessage, error) {
	var history json.RawMessage
	path := fmt.Sprintf("/characters/%d/corporationhistory/", characterID)
	if err := g.client.getJSON(ctx, path, nil, &history); err != nil {
		return nil, err
	}
	return history, nil
}

// Attributes returns the character's neural attributes. Requires
// authentication.
func (g *CharacterGroup) Attributes(ctx context.Context, characterID string) (json.RawMessage, error) {
	var attributes json.RawMessage
	path := "/characters/" + characterID + "/attributes/"
	opts := &RequestOptions{CharacterID: characterID}
	if err := g.client.getJSON(ctx, path, opts, &attributes); err != nil {
		return nil, err
	}
	return attributes, nil
}

// Implants returns the character's plugged-in implant type IDs. Requires
// authentication.
func (g *CharacterGroup) Implants(ctx context.Context, characterID string) ([]int64, error) {
	var implants []int64
	path := "/characters/" + characterID + "/implants/"
	opts := &RequestOptions{CharacterID: characterID}
	if err := g.client.getJSON(ctx, path, opts, &implants); err != nil {
		return nil, err
	}
	return implants, nil
}

// Location returns the character's current location. Requires authentication.
func (g *CharacterGroup) Location(ctx context.Context, characterID string) (json.RawMessage, error) {
	var location json.RawMessage
	path := "/characters/" + characterID + "/location/"
	opts := &RequestOptions{CharacterID: characterID}
	if err := g.client.getJSON(ctx, path, opts, &location); err != nil {
		return nil, err
	}
	return location, nil
}

// Ship returns the character's current ship. Requires authentication.
func (g *CharacterGroup) Ship(ctx context.Context, characterID string) (json.RawMessage, error) {
	var ship json.RawMessage
	path := "/characters/" + characterID + "/ship/"
	opts := &RequestOptions{CharacterID: characterID}
	if err := g.client.getJSON(ctx, path, opts, &ship); err != nil {
		return nil, err
	}
	return ship, nil
}

// Online returns the character's online status. Requires authentication.
func (g *CharacterGroup) Online(ctx context.Context, characterID string) (json.RawMessage, error) {
	var online json.RawMessage
	path := "/characters/" + characterID + "/online/"
	opts := &RequestOptions{CharacterID: characterID}
	if err := g.client.getJSON(ctx, path, opts, &online); err != nil {
		return nil, err
	}
	return online, nil
}

// Assets returns a page of the character's assets. Requires authentication.
func (g *CharacterGroup) Assets(ctx context.Context, characterID string, page int) (json.RawMessage, error) {
	var assets json.RawMessage
	path := "/characters/" + characterID + "/assets/"
	opts := &RequestOptions{CharacterID: characterID, Query: pageQuery(page)}
	if err := g.client.getJSON(ctx, path, opts, &assets); err != nil {
		return nil, err
	}
	return assets, nil
}

// Blueprints returns a page of the character's blueprints. Requires
// authentication.
func (g *CharacterGroup) Blueprints(ctx context.Context, characterID string, page int) (json.RawMessage, error) {
	var blueprints json.RawMessage
	path := "/characters/" + characterID + "/blueprints/"
	opts := &RequestOptions{CharacterID: characterID, Query: pageQuery(page)}
	if err := g.client.getJSON(ctx, path, opts, &blueprints); err != nil {
		return nil, err
	}
	return blueprints, nil
}

// Contacts returns a page of the character's contacts. Requires
// authentication.
func (g *CharacterGroup) Contacts(ctx context.Context, characterID string, page int) (json.RawMessage, error) {
	var contacts json.RawMessage
	path := "/characters/" + characterID + "/contacts/"
	opts := &RequestOptions{CharacterID: characterID, Query: pageQuery(page)}
	if err := g.client.getJSON(ctx, path, opts, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

// ContactParams describes contacts to add for a character.
type ContactParams struct {
	ContactIDs []int64 `json:"contact_ids"`
	Standing   float64 `json:"standing"`
	Watched    bool    `json:"watched"`
	LabelIDs   []int64 `json:"label_ids,omitempty"`
}

// AddContacts adds contacts for the character. Requires authentication.
func (g *CharacterGroup) AddContacts(ctx context.Context, characterID string, params ContactParams) error {
	path := "/characters/" + characterID + "/contacts/"
	opts := &RequestOptions{CharacterID: characterID, Body: params}
	return g.client.postJSON(ctx, path, opts, nil)
}

// DeleteContacts removes contacts for the character. Requires authentication.
func (g *CharacterGroup) DeleteContacts(ctx context.Context, characterID string, contactIDs []int64) error {
	path := "/characters/" + characterID + "/contacts/"
	opts := &RequestOptions{CharacterID: characterID, Body: contactIDs}
	_, err := g.client.Delete(ctx, path, opts)
	return err
}

// pageQuery builds the pagination query parameter shared by list endpoints.
func pageQuery(page int) url.Values {
	if page <= 0 {
		page = 1
	}
	return url.Values{"page": {strconv.Itoa(page)}}
}
