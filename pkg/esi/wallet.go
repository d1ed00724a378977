package esi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// WalletGroup wraps the character and corporation wallet resource group.
// Every method requires authentication.
type WalletGroup struct {
	client *Client
}

// CharacterBalance returns the character's wallet balance in ISK.
func (g *WalletGroup) CharacterBalance(ctx context.Context, characterID string) (float64, error) {
	var balance float64
	path := "/characters/" + characterID + "/wallet/"
	opts := &RequestOptions{CharacterID: characterID}
	if err := g.client.getJSON(ctx, path, opts, &balance); err != nil {
		return 0, err
	}
	return balance, nil
}

// CharacterJournal returns a page of the character's wallet journal.
func (g *WalletGroup) CharacterJournal(ctx context.Context, characterID string, page int) (json.RawMessage, error) {
	var journal json.RawMessage
	path := "/characters/" + characterID + "/wallet/journal/"
	opts := &RequestOptions{CharacterID: characterID, Query: pageQuery(page)}
	if err := g.client.getJSON(ctx, path, opts, &journal); err != nil {
		return nil, err
	}
	return journal, nil
}

// CharacterTransactions returns the character's wallet transactions. A
// non-zero fromID limits the result to transactions older than that ID.
func (g *WalletGroup) CharacterTransactions(ctx context.Context, characterID string, fromID int64) (json.RawMessage, error) {
	query := url.Values{}
	if fromID != 0 {
		query.Set("from_id", strconv.FormatInt(fromID, 10))
	}

	var transactions json.RawMessage
	path := "/characters/" + characterID + "/wallet/transactions/"
	opts := &RequestOptions{CharacterID: characterID, Query: query}
	if err := g.client.getJSON(ctx, path, opts, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

// CorporationWallets returns the corporation's wallet divisions. The
// character must hold the required corporation roles.
func (g *WalletGroup) CorporationWallets(ctx context.Context, corporationID int64, characterID string) (json.RawMessage, error) {
	var wallets json.RawMessage
	path := fmt.Sprintf("/corporations/%d/wallets/", corporationID)
	opts := &RequestOptions{CharacterID: characterID}
	if err := g.client.getJSON(ctx, path, opts, &wallets); err != nil {
		return nil, err
	}
	return wallets, nil
}

// CorporationJournal returns a page of a corporation wallet division's
// journal. Divisions are numbered 1-7.
func (g *WalletGroup) CorporationJournal(ctx context.Context, corporationID int64, division int, characterID string, page int) (json.RawMessage, error) {
	var journal json.RawMessage
	path := fmt.Sprintf("/corporations/%d/wallets/%d/journal/", corporationID, division)
	opts := &RequestOptions{CharacterID: characterID, Query: pageQuery(page)}
	if err := g.client.getJSON(ctx, path, opts, &journal); err != nil {
		return nil, err
	}
	return journal, nil
}

// CorporationTransactions returns a corporation wallet division's
// transactions.
func (g *WalletGroup) CorporationTransactions(ctx context.Context, corporationID int64, division int, characterID string, fromID int64) (json.RawMessage, error) {
	query := url.Values{}
	if fromID != 0 {
		query.Set("from_id", strconv.FormatInt(fromID, 10))
	}

	var transactions json.RawMessage
	path := fmt.Sprintf("/corporations/%d/wallets/%d/transactions/", corporationID, division)
	opts := &RequestOptions{CharacterID: characterID, Query: query}
	if err := g.client.getJSON(ctx, path, opts, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}
