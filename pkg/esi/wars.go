package esi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// WarsGroup wraps the /wars/ resource group. All endpoints are public.
type WarsGroup struct {
	client *Client
}

// Wars returns war IDs, newest first. A non-zero maxWarID limits the
// listing to wars with a smaller ID.
func (g *WarsGroup) Wars(ctx context.Context, maxWarID int64) ([]int64, error) {
	query := url.Values{}
	if maxWarID != 0 {
		query.Set("max_war_id", strconv.FormatInt(maxWarID, 10))
	}

	var wars []int64
	opts := &RequestOptions{Query: query}
	if err := g.client.getJSON(ctx, "/wars/", opts, &wars); err != nil {
		return nil, err
	}
	return wars, nil
}

// War returns details about a war.
func (g *WarsGroup) War(ctx context.Context, warID int64) (json.RawMessage, error) {
	var war json.RawMessage
	path := fmt.Sprintf("/wars/%d/", warID)
	if err := g.client.getJSON(ctx, path, nil, &war); err != nil {
		return nil, err
	}
	return war, nil
}

// Killmails returns a page of killmail links for a war.
func (g *WarsGroup) Killmails(ctx context.Context, warID int64, page int) (json.RawMessage, error) {
	var killmails json.RawMessage
	path := fmt.Sprintf("/wars/%d/killmails/", warID)
	opts := &RequestOptions{Query: pageQuery(page)}
	if err := g.client.getJSON(ctx, path, opts, &killmails); err != nil {
		return nil, err
	}
	return killmails, nil
}
