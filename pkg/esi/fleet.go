package esi

import (
	"context"
	"encoding/json"
	"fmt"
)

// FleetGroup wraps the /fleets/ resource group. Every method requires
// authentication; fleet operations act on behalf of the given character.
type FleetGroup struct {
	client *Client
}

// CharacterFleet returns the fleet the character is currently in.
func (g *FleetGroup) CharacterFleet(ctx context.Context, characterID string) (json.RawMessage, error) {
	var fleet json.RawMessage
	path := "/characters/" + characterID + "/fleet/"
	opts := &RequestOptions{CharacterID: characterID}
	if err := g.client.getJSON(ctx, path, opts, &fleet); err != nil {
		return nil, err
	}
	return fleet, nil
}

// Info returns details about a fleet.
func (g *FleetGroup) Info(ctx context.Context, fleetID int64, characterID string) (json.RawMessage, error) {
	var info json.RawMessage
	path := fmt.Sprintf("/fleets/%d/", fleetID)
	opts := &RequestOptions{CharacterID: characterID}
	if err := g.client.getJSON(ctx, path, opts, &info); err != nil {
		return nil, err
	}
	return info, nil
}

// FleetUpdate carries the mutable fleet settings. Nil fields are left
// unchanged.
type FleetUpdate struct {
	IsFreeMove *bool   `json:"is_free_move,omitempty"`
	MOTD       *string `json:"motd,omitempty"`
}

// Update changes fleet settings (free-move flag, message of the day).
func (g *FleetGroup) Update(ctx context.Context, fleetID int64, characterID string, update FleetUpdate) error {
	path := fmt.Sprintf("/fleets/%d/", fleetID)
	opts := &RequestOptions{CharacterID: characterID, Body: update}
	_, err := g.client.Put(ctx, path, opts)
	return err
}

// Members returns the fleet's member list.
func (g *FleetGroup) Members(ctx context.Context, fleetID int64, characterID string) (json.RawMessage, error) {
	var members json.RawMessage
	path := fmt.Sprintf("/fleets/%d/members/", fleetID)
	opts := &RequestOptions{CharacterID: characterID}
	if err := g.client.getJSON(ctx, path, opts, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// FleetInvite describes a fleet invitation.
type FleetInvite struct {
	CharacterID int64  `json:"character_id"`
	Role        string `json:"role"`
	SquadID     int64  `json:"squad_id,omitempty"`
	WingID      int64  `json:"wing_id,omitempty"`
}

// Invite sends a fleet invitation.
func (g *FleetGroup) Invite(ctx context.Context, fleetID int64, characterID string, invite FleetInvite) error {
	path := fmt.Sprintf("/fleets/%d/members/", fleetID)
	opts := &RequestOptions{CharacterID: characterID, Body: invite}
	return g.client.postJSON(ctx, path, opts, nil)
}

// Kick removes a member from the fleet.
func (g *FleetGroup) Kick(ctx context.Context, fleetID int64, characterID string, memberID int64) error {
	path := fmt.Sprintf("/fleets/%d/members/%d/", fleetID, memberID)
	opts := &RequestOptions{CharacterID: characterID}
	_, err := g.client.Delete(ctx, path, opts)
	return err
}

// FleetMove describes a member's new position in the fleet.
type FleetMove struct {
	Role    string `json:"role"`
	SquadID int64  `json:"squad_id,omitempty"`
	WingID  int64  `json:"wing_id,omitempty"`
}

// MoveMember moves a member to a different role, squad, or wing.
func (g *FleetGroup) MoveMember(ctx context.Context, fleetID int64, characterID string, memberID int64, move FleetMove) error {
	path := fmt.Sprintf("/fleets/%d/members/%d/", fleetID, memberID)
	opts := &RequestOptions{CharacterID: characterID, Body: move}
	_, err := g.client.Put(ctx, path, opts)
	return err
}

// Wings returns the fleet's wing and squad layout.
func (g *FleetGroup) Wings(ctx context.Context, fleetID int64, characterID string) (json.RawMessage, error) {
	var wings json.RawMessage
	path := fmt.Sprintf("/fleets/%d/wings/", fleetID)
	opts := &RequestOptions{CharacterID: characterID}
	if err := g.client.getJSON(ctx, path, opts, &wings); err != nil {
		return nil, err
	}
	return wings, nil
}

// CreateWing adds a wing to the fleet and returns its ID payload.
func (g *FleetGroup) CreateWing(ctx context.Context, fleetID int64, characterID string) (json.RawMessage, error) {
	var created json.RawMessage
	path := fmt.Sprintf("/fleets/%d/wings/", fleetID)
	opts := &RequestOptions{CharacterID: characterID, Body: struct{}{}}
	if err := g.client.postJSON(ctx, path, opts, &created); err != nil {
		return nil, err
	}
	return created, nil
}

// DeleteWing removes a wing from the fleet.
func (g *FleetGroup) DeleteWing(ctx context.Context, fleetID int64, characterID string, wingID int64) error {
	path := fmt.Sprintf("/fleets/%d/wings/%d/", fleetID, wingID)
	opts := &RequestOptions{CharacterID: characterID}
	_, err := g.client.Delete(ctx, path, opts)
	return err
}

// RenameWing renames a fleet wing.
func (g *FleetGroup) RenameWing(ctx context.Context, fleetID int64, characterID string, wingID int64, name string) error {
	path := fmt.Sprintf("/fleets/%d/wings/%d/", fleetID, wingID)
	opts := &RequestOptions{CharacterID: characterID, Body: map[string]string{"name": name}}
	_, err := g.client.Put(ctx, path, opts)
	return err
}

// CreateSquad adds a squad to a wing and returns its ID payload.
func (g *FleetGroup) CreateSquad(ctx context.Context, fleetID int64, characterID string, wingID int64) (json.RawMessage, error) {
	var created json.RawMessage
	path := fmt.Sprintf("/fleets/%d/wings/%d/squads/", fleetID, wingID)
	opts := &RequestOptions{CharacterID: characterID, Body: struct{}{}}
	if err := g.client.postJSON(ctx, path, opts, &created); err != nil {
		return nil, err
	}
	return created, nil
}

// DeleteSquad removes a squad from a wing.
func (g *FleetGroup) DeleteSquad(ctx context.Context, fleetID int64, characterID string, wingID, squadID int64) error {
	path := fmt.Sprintf("/fleets/%d/wings/%d/squads/%d/", fleetID, wingID, squadID)
	opts := &RequestOptions{CharacterID: characterID}
	_, err := g.client.Delete(ctx, path, opts)
	return err
}

// RenameSquad renames a fleet squad.
func (g *FleetGroup) RenameSquad(ctx context.Context, fleetID int64, characterID string, wingID, squadID int64, name string) error {
	path := fmt.Sprintf("/fleets/%d/wings/%d/squads/%d/", fleetID, wingID, squadID)
	opts := &RequestOptions{CharacterID: characterID, Body: map[string]string{"name": name}}
	_, err := g.client.Put(ctx, path, opts)
	return err
}
