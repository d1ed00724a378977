package esi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// MarketGroup wraps the /markets/ resource group plus character and
// corporation order endpoints.
type MarketGroup struct {
	client *Client
}

// CharacterOrders returns the character's open market orders. Requires
// authentication.
func (g *MarketGroup) CharacterOrders(ctx context.Context, characterID string) (json.RawMessage, error) {
	var orders json.RawMessage
	path := "/characters/" + characterID + "/orders/"
	opts := &RequestOptions{CharacterID: characterID}
	if err := g.client.getJSON(ctx, path, opts, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// CharacterOrderHistory returns a page of the character's closed market
// orders. Requires authentication.
func (g *MarketGroup) CharacterOrderHistory(ctx context.Context, characterID string, page int) (json.RawMessage, error) {
	var orders json.RawMessage
	path := "/characters/" + characterID + "/orders/history/"
	opts := &RequestOptions{CharacterID: characterID, Query: pageQuery(page)}
	if err := g.client.getJSON(ctx, path, opts, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// CorporationOrders returns a page of the corporation's open market orders.
// Requires authentication and corporation roles.
func (g *MarketGroup) CorporationOrders(ctx context.Context, corporationID int64, characterID string, page int) (json.RawMessage, error) {
	var orders json.RawMessage
	path := fmt.Sprintf("/corporations/%d/orders/", corporationID)
	opts := &RequestOptions{CharacterID: characterID, Query: pageQuery(page)}
	if err := g.client.getJSON(ctx, path, opts, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Groups returns all market group IDs.
func (g *MarketGroup) Groups(ctx context.Context) ([]int64, error) {
	var groups []int64
	if err := g.client.getJSON(ctx, "/markets/groups/", nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// GroupInfo returns details about a market group.
func (g *MarketGroup) GroupInfo(ctx context.Context, marketGroupID int64) (json.RawMessage, error) {
	var info json.RawMessage
	path := fmt.Sprintf("/markets/groups/%d/", marketGroupID)
	if err := g.client.getJSON(ctx, path, nil, &info); err != nil {
		return nil, err
	}
	return info, nil
}

// Prices returns adjusted and average prices for all item types.
func (g *MarketGroup) Prices(ctx context.Context) (json.RawMessage, error) {
	var prices json.RawMessage
	if err := g.client.getJSON(ctx, "/markets/prices/", nil, &prices); err != nil {
		return nil, err
	}
	return prices, nil
}

// Types returns a page of type IDs with active orders in a region.
func (g *MarketGroup) Types(ctx context.Context, regionID int64, page int) ([]int64, error) {
	var types []int64
	path := fmt.Sprintf("/markets/%d/types/", regionID)
	opts := &RequestOptions{Query: pageQuery(page)}
	if err := g.client.getJSON(ctx, path, opts, &types); err != nil {
		return nil, err
	}
	return types, nil
}

// OrdersParams filters a regional order listing.
type OrdersParams struct {
	// OrderType is "buy", "sell", or "all" (default).
	OrderType string

	// TypeID limits the listing to a single item type when non-zero.
	TypeID int64

	// Page selects the result page.
	Page int
}

// Orders returns a page of market orders in a region.
func (g *MarketGroup) Orders(ctx context.Context, regionID int64, params OrdersParams) (json.RawMessage, error) {
	orderType := params.OrderType
	if orderType == "" {
		orderType = "all"
	}

	query := pageQuery(params.Page)
	query.Set("order_type", orderType)
	if params.TypeID != 0 {
		query.Set("type_id", strconv.FormatInt(params.TypeID, 10))
	}

	var orders json.RawMessage
	path := fmt.Sprintf("/markets/%d/orders/", regionID)
	if err := g.client.getJSON(ctx, path, &RequestOptions{Query: query}, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// History returns the daily price history for an item type in a region.
func (g *MarketGroup) History(ctx context.Context, regionID, typeID int64) (json.RawMessage, error) {
	query := url.Values{"type_id": {strconv.FormatInt(typeID, 10)}}

	var history json.RawMessage
	path := fmt.Sprintf("/markets/%d/history/", regionID)
	if err := g.client.getJSON(ctx, path, &RequestOptions{Query: query}, &history); err != nil {
		return nil, err
	}
	return history, nil
}

// StructureOrders returns a page of orders in a player-owned structure.
// Requires authentication and docking access.
func (g *MarketGroup) StructureOrders(ctx context.Context, structureID int64, characterID string, page int) (json.RawMessage, error) {
	var orders json.RawMessage
	path := fmt.Sprintf("/markets/structures/%d/", structureID)
	opts := &RequestOptions{CharacterID: characterID, Query: pageQuery(page)}
	if err := g.client.getJSON(ctx, path, opts, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
