package esi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordedRequest captures what the fake ESI server received.
type recordedRequest struct {
	Method string
	Path   string
	Query  map[string][]string
	Auth   string
	Body   string
}

// newRecordingClient builds a client whose server replies with the given
// body and records every request for assertions.
func newRecordingClient(t *testing.T, responseBody string) (*Client, *recordedRequest) {
	t.Helper()

	rec := &recordedRequest{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		rec.Method = r.Method
		rec.Path = r.URL.Path
		rec.Query = r.URL.Query()
		rec.Auth = r.Header.Get("Authorization")
		payload, _ := io.ReadAll(r.Body)
		rec.Body = string(payload)
		fmt.Fprint(w, responseBody)
	}, Config{Tokens: &staticTokens{token: "access-token"}})
	return client, rec
}

func TestCharacterPublicInfo(t *testing.T) {
	client, rec := newRecordingClient(t, `{"name": "Test Pilot", "corporation_id": 98000001}`)

	info, err := client.Character.PublicInfo(context.Background(), 123456)
	require.NoError(t, err)

	assert.Equal(t, "/latest/characters/123456/", rec.Path)
	assert.Empty(t, rec.Auth)
	assert.JSONEq(t, `{"name": "Test Pilot", "corporation_id": 98000001}`, string(info))
}

func TestCharacterPortrait(t *testing.T) {
	client, rec := newRecordingClient(t, `{"px128x128": "https://images.example/128.jpg"}`)

	portrait, err := client.Character.Portrait(context.Background(), 123456)
	require.NoError(t, err)

	assert.Equal(t, "/latest/characters/123456/portrait/", rec.Path)
	assert.Contains(t, string(portrait), "px128x128")
}

func TestCharacterCorporationHistory(t *testing.T) {
	client, rec := newRecordingClient(t, `[{"corporation_id": 98000001, "record_id": 1}]`)

	_, err := client.Character.CorporationHistory(context.Background(), 123456)
	require.NoError(t, err)

	assert.Equal(t, "/latest/characters/123456/corporationhistory/", rec.Path)
}

func TestCharacterImplants(t *testing.T) {
	client, rec := newRecordingClient(t, `[22118, 33329]`)

	implants, err := client.Character.Implants(context.Background(), "123456")
	require.NoError(t, err)

	assert.Equal(t, "/latest/characters/123456/implants/", rec.Path)
	assert.Equal(t, "Bearer access-token", rec.Auth)
	assert.Equal(t, []int64{22118, 33329}, implants)
}

func TestCharacterLocation(t *testing.T) {
	client, rec := newRecordingClient(t, `{"solar_system_id": 30000142}`)

	location, err := client.Character.Location(context.Background(), "123456")
	require.NoError(t, err)

	assert.Equal(t, "/latest/characters/123456/location/", rec.Path)
	assert.Equal(t, "Bearer access-token", rec.Auth)
	assert.JSONEq(t, `{"solar_system_id": 30000142}`, string(location))
}

func TestCharacterAssetsPaging(t *testing.T) {
	client, rec := newRecordingClient(t, `[]`)

	_, err := client.Character.Assets(context.Background(), "123456", 3)
	require.NoError(t, err)

	assert.Equal(t, "/latest/characters/123456/assets/", rec.Path)
	assert.Equal(t, []string{"3"}, rec.Query["page"])
}

func TestCharacterAssetsDefaultPage(t *testing.T) {
	client, rec := newRecordingClient(t, `[]`)

	_, err := client.Character.Assets(context.Background(), "123456", 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"1"}, rec.Query["page"])
}

func TestCharacterAddContacts(t *testing.T) {
	client, rec := newRecordingClient(t, `[2112345678]`)

	params := ContactParams{
		ContactIDs: []int64{2112345678},
		Standing:   5.0,
		Watched:    true,
	}
	err := client.Character.AddContacts(context.Background(), "123456", params)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, rec.Method)
	assert.Equal(t, "/latest/characters/123456/contacts/", rec.Path)
	assert.JSONEq(t, `{"contact_ids": [2112345678], "standing": 5.0, "watched": true}`, rec.Body)
}

func TestCharacterDeleteContacts(t *testing.T) {
	client, rec := newRecordingClient(t, ``)

	err := client.Character.DeleteContacts(context.Background(), "123456", []int64{2112345678})
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, rec.Method)
	assert.JSONEq(t, `[2112345678]`, rec.Body)
}
