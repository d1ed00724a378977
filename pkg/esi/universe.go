package esi

import (
	"context"
	"encoding/json"
	"fmt"
)

// UniverseGroup wraps the /universe/ resource group. All endpoints are
// public except structure details.
type UniverseGroup struct {
	client *Client
}

// Regions returns all region IDs.
func (g *UniverseGroup) Regions(ctx context.Context) ([]int64, error) {
	var regions []int64
	if err := g.client.getJSON(ctx, "/universe/regions/", nil, &regions); err != nil {
		return nil, err
	}
	return regions, nil
}

// Region returns details about a region.
func (g *UniverseGroup) Region(ctx context.Context, regionID int64) (json.RawMessage, error) {
	var region json.RawMessage
	path := fmt.Sprintf("/universe/regions/%d/", regionID)
	if err := g.client.getJSON(ctx, path, nil, &region); err != nil {
		return nil, err
	}
	return region, nil
}

// Constellations returns all constellation IDs.
func (g *UniverseGroup) Constellations(ctx context.Context) ([]int64, error) {
	var constellations []int64
	if err := g.client.getJSON(ctx, "/universe/constellations/", nil, &constellations); err != nil {
		return nil, err
	}
	return constellations, nil
}

// Constellation returns details about a constellation.
func (g *UniverseGroup) Constellation(ctx context.Context, constellationID int64) (json.RawMessage, error) {
	var constellation json.RawMessage
	path := fmt.Sprintf("/universe/constellations/%d/", constellationID)
	if err := g.client.getJSON(ctx, path, nil, &constellation); err != nil {
		return nil, err
	}
	return constellation, nil
}

// Systems returns all solar system IDs.
func (g *UniverseGroup) Systems(ctx context.Context) ([]int64, error) {
	var systems []int64
	if err := g.client.getJSON(ctx, "/universe/systems/", nil, &systems); err != nil {
		return nil, err
	}
	return systems, nil
}

// System returns details about a solar system.
func (g *UniverseGroup) System(ctx context.Context, systemID int64) (json.RawMessage, error) {
	var system json.RawMessage
	path := fmt.Sprintf("/universe/systems/%d/", systemID)
	if err := g.client.getJSON(ctx, path, nil, &system); err != nil {
		return nil, err
	}
	return system, nil
}

// Types returns a page of item type IDs.
func (g *UniverseGroup) Types(ctx context.Context, page int) ([]int64, error) {
	var types []int64
	opts := &RequestOptions{Query: pageQuery(page)}
	if err := g.client.getJSON(ctx, "/universe/types/", opts, &types); err != nil {
		return nil, err
	}
	return types, nil
}

// Type returns details about an item type.
func (g *UniverseGroup) Type(ctx context.Context, typeID int64) (json.RawMessage, error) {
	var typeInfo json.RawMessage
	path := fmt.Sprintf("/universe/types/%d/", typeID)
	if err := g.client.getJSON(ctx, path, nil, &typeInfo); err != nil {
		return nil, err
	}
	return typeInfo, nil
}

// Categories returns all item category IDs.
func (g *UniverseGroup) Categories(ctx context.Context) ([]int64, error) {
	var categories []int64
	if err := g.client.getJSON(ctx, "/universe/categories/", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Category returns details about an item category.
func (g *UniverseGroup) Category(ctx context.Context, categoryID int64) (json.RawMessage, error) {
	var category json.RawMessage
	path := fmt.Sprintf("/universe/categories/%d/", categoryID)
	if err := g.client.getJSON(ctx, path, nil, &category); err != nil {
		return nil, err
	}
	return category, nil
}

// Factions returns all factions.
func (g *UniverseGroup) Factions(ctx context.Context) (json.RawMessage, error) {
	var factions json.RawMessage
	if err := g.client.getJSON(ctx, "/universe/factions/", nil, &factions); err != nil {
		return nil, err
	}
	return factions, nil
}

// Races returns all character races.
func (g *UniverseGroup) Races(ctx context.Context) (json.RawMessage, error) {
	var races json.RawMessage
	if err := g.client.getJSON(ctx, "/universe/races/", nil, &races); err != nil {
		return nil, err
	}
	return races, nil
}

// Station returns details about an NPC station.
func (g *UniverseGroup) Station(ctx context.Context, stationID int64) (json.RawMessage, error) {
	var station json.RawMessage
	path := fmt.Sprintf("/universe/stations/%d/", stationID)
	if err := g.client.getJSON(ctx, path, nil, &station); err != nil {
		return nil, err
	}
	return station, nil
}

// Structure returns details about a player-owned structure. A character ID
// makes the request authenticated, which is required for non-public
// structures.
func (g *UniverseGroup) Structure(ctx context.Context, structureID int64, characterID string) (json.RawMessage, error) {
	var structure json.RawMessage
	path := fmt.Sprintf("/universe/structures/%d/", structureID)
	opts := &RequestOptions{CharacterID: characterID}
	if err := g.client.getJSON(ctx, path, opts, &structure); err != nil {
		return nil, err
	}
	return structure, nil
}

// IDs resolves names to IDs across alliances, characters, corporations,
// systems, and more.
func (g *UniverseGroup) IDs(ctx context.Context, names []string) (json.RawMessage, error) {
	var resolved json.RawMessage
	opts := &RequestOptions{Body: names}
	if err := g.client.postJSON(ctx, "/universe/ids/", opts, &resolved); err != nil {
		return nil, err
	}
	return resolved, nil
}

// Names resolves IDs to names and categories.
func (g *UniverseGroup) Names(ctx context.Context, ids []int64) (json.RawMessage, error) {
	var resolved json.RawMessage
	opts := &RequestOptions{Body: ids}
	if err := g.client.postJSON(ctx, "/universe/names/", opts, &resolved); err != nil {
		return nil, err
	}
	return resolved, nil
}
